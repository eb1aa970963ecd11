package domain

import (
	"context"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/internal/session"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/xcontext"
)

type GuildDomain interface {
	GetGuilds(context.Context, *model.GetGuildsRequest) (*model.GetGuildsResponse, error)
	GetSettings(context.Context, *model.GetGuildSettingsRequest) (*model.GetGuildSettingsResponse, error)
	UpdateSettings(context.Context, *model.UpdateGuildSettingsRequest) (*model.UpdateGuildSettingsResponse, error)
}

type guildDomain struct {
	guildStore session.GuildStore
}

func NewGuildDomain(guildStore session.GuildStore) GuildDomain {
	return &guildDomain{guildStore: guildStore}
}

func (d *guildDomain) GetGuilds(ctx context.Context, req *model.GetGuildsRequest) (*model.GetGuildsResponse, error) {
	guilds := d.guildStore.Guilds(ctx)

	out := make([]model.Guild, 0, len(guilds))
	for _, guild := range guilds {
		out = append(out, model.ConvertGuild(guild))
	}

	return &model.GetGuildsResponse{
		Response: model.OK("Guilds fetched successfully"),
		Guilds:   out,
	}, nil
}

func (d *guildDomain) GetSettings(ctx context.Context, req *model.GetGuildSettingsRequest) (*model.GetGuildSettingsResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return &model.GetGuildSettingsResponse{
		Response: model.OK("Guild settings fetched successfully"),
		Settings: model.ConvertGuildSettings(guild),
	}, nil
}

// UpdateSettings forwards only the whitelisted fields; anything else in the
// body was already dropped at the binding boundary.
func (d *guildDomain) UpdateSettings(ctx context.Context, req *model.UpdateGuildSettingsRequest) (*model.UpdateGuildSettingsResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	params := session.GuildParams{
		Name:                        req.Name,
		Locale:                      req.Region,
		VerificationLevel:           req.VerificationLevel,
		ExplicitContentFilter:       req.ExplicitContentFilter,
		DefaultMessageNotifications: req.DefaultMessageNotifications,
	}

	updated, err := d.guildStore.EditGuild(ctx, guild.ID, params)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update guild settings: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to update guild settings: %v", err)
	}

	return &model.UpdateGuildSettingsResponse{
		Response: model.OK("Guild settings updated successfully"),
		Settings: model.ConvertGuildSettings(updated),
	}, nil
}
