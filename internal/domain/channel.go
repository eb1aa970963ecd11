package domain

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/exp/slices"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/internal/session"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/xcontext"
)

type ChannelDomain interface {
	GetChannels(context.Context, *model.GetChannelsRequest) (*model.GetChannelsResponse, error)
	CreateChannel(context.Context, *model.CreateChannelRequest) (*model.CreateChannelResponse, error)
	UpdateChannel(context.Context, *model.UpdateChannelRequest) (*model.UpdateChannelResponse, error)
	DeleteChannel(context.Context, *model.DeleteChannelRequest) (*model.DeleteChannelResponse, error)
}

type channelDomain struct {
	channelStore session.ChannelStore
}

func NewChannelDomain(channelStore session.ChannelStore) ChannelDomain {
	return &channelDomain{channelStore: channelStore}
}

func (d *channelDomain) GetChannels(ctx context.Context, req *model.GetChannelsRequest) (*model.GetChannelsResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	channels, err := d.channelStore.Channels(ctx, guild.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot fetch channels: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to fetch channels: %v", err)
	}

	// Cache order is arbitrary; present channels in their sidebar order.
	slices.SortFunc(channels, func(a, b *discordgo.Channel) int {
		if a.Position != b.Position {
			return a.Position - b.Position
		}

		return strings.Compare(a.ID, b.ID)
	})

	out := make([]model.Channel, 0, len(channels))
	for _, channel := range channels {
		out = append(out, model.ConvertChannel(channel))
	}

	return &model.GetChannelsResponse{
		Response: model.OK("Channels fetched successfully"),
		Channels: out,
	}, nil
}

func (d *channelDomain) CreateChannel(ctx context.Context, req *model.CreateChannelRequest) (*model.CreateChannelResponse, error) {
	guild, err := guildFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty channel name")
	}

	kind, ok := model.ChannelTypeFromTag(req.Type)
	if !ok {
		return nil, errorx.New(errorx.BadRequest, "Invalid channel type")
	}

	channel, err := d.channelStore.CreateChannel(ctx, guild.ID, session.ChannelCreateParams{
		Name:     req.Name,
		Type:     kind,
		ParentID: req.ParentID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create channel: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to create channel: %v", err)
	}

	return &model.CreateChannelResponse{
		Response: model.OK("Channel created successfully"),
		Channel:  model.ConvertChannel(channel),
	}, nil
}

func (d *channelDomain) UpdateChannel(ctx context.Context, req *model.UpdateChannelRequest) (*model.UpdateChannelResponse, error) {
	channel, err := channelFromContext(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := d.channelStore.EditChannel(ctx, channel.ID, session.ChannelEditParams{
		Name:     req.Name,
		Topic:    req.Topic,
		Position: req.Position,
		ParentID: req.ParentID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update channel: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to update channel: %v", err)
	}

	return &model.UpdateChannelResponse{
		Response: model.OK("Channel updated successfully"),
		Channel:  model.ConvertChannel(updated),
	}, nil
}

func (d *channelDomain) DeleteChannel(ctx context.Context, req *model.DeleteChannelRequest) (*model.DeleteChannelResponse, error) {
	channel, err := channelFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.channelStore.DeleteChannel(ctx, channel.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete channel: %v", err)
		return nil, errorx.New(errorx.Internal, "Failed to delete channel: %v", err)
	}

	return &model.DeleteChannelResponse{
		Response: model.OK("Channel deleted successfully"),
	}, nil
}
