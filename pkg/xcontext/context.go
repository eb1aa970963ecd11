// Package xcontext carries request-scoped values between middlewares and
// domain handlers. Resolvers store the platform objects they looked up here
// so nested scopes never repeat a lookup.
package xcontext

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/guildpanel/backend/pkg/logger"
)

type (
	loggerKey    struct{}
	requestIDKey struct{}
	guildKey     struct{}
	channelKey   struct{}
	roleKey      struct{}
	memberKey    struct{}
)

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}

	return logger.NewLogger(logger.INFO)
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

func WithGuild(ctx context.Context, guild *discordgo.Guild) context.Context {
	return context.WithValue(ctx, guildKey{}, guild)
}

// Guild returns the guild resolved by the enclosing route scope, or nil if
// the request is not guild-scoped.
func Guild(ctx context.Context) *discordgo.Guild {
	if g, ok := ctx.Value(guildKey{}).(*discordgo.Guild); ok {
		return g
	}

	return nil
}

func WithChannel(ctx context.Context, channel *discordgo.Channel) context.Context {
	return context.WithValue(ctx, channelKey{}, channel)
}

func Channel(ctx context.Context) *discordgo.Channel {
	if c, ok := ctx.Value(channelKey{}).(*discordgo.Channel); ok {
		return c
	}

	return nil
}

func WithRole(ctx context.Context, role *discordgo.Role) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

func Role(ctx context.Context) *discordgo.Role {
	if r, ok := ctx.Value(roleKey{}).(*discordgo.Role); ok {
		return r
	}

	return nil
}

func WithMember(ctx context.Context, member *discordgo.Member) context.Context {
	return context.WithValue(ctx, memberKey{}, member)
}

func Member(ctx context.Context) *discordgo.Member {
	if m, ok := ctx.Value(memberKey{}).(*discordgo.Member); ok {
		return m
	}

	return nil
}
