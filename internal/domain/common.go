package domain

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/xcontext"
)

// The resolver middlewares guarantee these objects are present on their
// routes; the not-found fallbacks only fire on a miswired route table.

func guildFromContext(ctx context.Context) (*discordgo.Guild, error) {
	if guild := xcontext.Guild(ctx); guild != nil {
		return guild, nil
	}

	return nil, errorx.New(errorx.NotFound, "Guild not found")
}

func channelFromContext(ctx context.Context) (*discordgo.Channel, error) {
	if channel := xcontext.Channel(ctx); channel != nil {
		return channel, nil
	}

	return nil, errorx.New(errorx.NotFound, "Channel not found")
}

func roleFromContext(ctx context.Context) (*discordgo.Role, error) {
	if role := xcontext.Role(ctx); role != nil {
		return role, nil
	}

	return nil, errorx.New(errorx.NotFound, "Role not found")
}

func memberFromContext(ctx context.Context) (*discordgo.Member, error) {
	if member := xcontext.Member(ctx); member != nil {
		return member, nil
	}

	return nil, errorx.New(errorx.NotFound, "Member not found")
}
