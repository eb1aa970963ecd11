package middleware

import (
	"errors"

	"github.com/guildpanel/backend/internal/session"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/router"
	"github.com/guildpanel/backend/pkg/xcontext"
)

// Resolvers turn path parameters into live platform objects before the
// handler runs. A failed step short-circuits the chain with a 404; nested
// scopes reuse whatever an outer scope already resolved.

func ResolveGuild(store session.GuildStore) router.MiddlewareFunc {
	return func(ctx *router.Context) error {
		reqCtx := ctx.Request.Context()
		guild, err := store.Guild(reqCtx, ctx.Param("guildId"))
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return errorx.New(errorx.NotFound, "Guild not found")
			}

			xcontext.Logger(reqCtx).Errorf("Cannot fetch guild: %v", err)
			return errorx.New(errorx.Internal, "Failed to fetch guild: %v", err)
		}

		ctx.ReplaceContext(xcontext.WithGuild(reqCtx, guild))
		return nil
	}
}

// ResolveChannel keys on the channel id alone; channel ids are globally
// unique on the platform, so no guild scope is needed.
func ResolveChannel(store session.ChannelStore) router.MiddlewareFunc {
	return func(ctx *router.Context) error {
		reqCtx := ctx.Request.Context()
		channel, err := store.Channel(reqCtx, ctx.Param("channelId"))
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return errorx.New(errorx.NotFound, "Channel not found")
			}

			xcontext.Logger(reqCtx).Errorf("Cannot fetch channel: %v", err)
			return errorx.New(errorx.Internal, "Failed to fetch channel: %v", err)
		}

		ctx.ReplaceContext(xcontext.WithChannel(reqCtx, channel))
		return nil
	}
}

func ResolveRole(store session.RoleStore) router.MiddlewareFunc {
	return func(ctx *router.Context) error {
		reqCtx := ctx.Request.Context()
		guild := xcontext.Guild(reqCtx)
		if guild == nil {
			return errorx.New(errorx.NotFound, "Guild not found")
		}

		role, err := store.Role(reqCtx, guild.ID, ctx.Param("roleId"))
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return errorx.New(errorx.NotFound, "Role not found")
			}

			xcontext.Logger(reqCtx).Errorf("Cannot fetch role: %v", err)
			return errorx.New(errorx.Internal, "Failed to fetch role: %v", err)
		}

		ctx.ReplaceContext(xcontext.WithRole(reqCtx, role))
		return nil
	}
}

func ResolveMember(store session.MemberStore) router.MiddlewareFunc {
	return func(ctx *router.Context) error {
		reqCtx := ctx.Request.Context()
		guild := xcontext.Guild(reqCtx)
		if guild == nil {
			return errorx.New(errorx.NotFound, "Guild not found")
		}

		member, err := store.Member(reqCtx, guild.ID, ctx.Param("memberId"))
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return errorx.New(errorx.NotFound, "Member not found")
			}

			xcontext.Logger(reqCtx).Errorf("Cannot fetch member: %v", err)
			return errorx.New(errorx.Internal, "Failed to fetch member: %v", err)
		}

		ctx.ReplaceContext(xcontext.WithMember(reqCtx, member))
		return nil
	}
}
