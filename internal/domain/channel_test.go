package domain

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/testutil"
	"github.com/guildpanel/backend/pkg/xcontext"
)

func guildCtx(s *testutil.FakeSession) context.Context {
	return xcontext.WithGuild(context.Background(), s.GuildList[0])
}

func channelCtx(s *testutil.FakeSession, channelID string) context.Context {
	return xcontext.WithChannel(context.Background(), s.ChannelsByID[channelID])
}

func Test_channelDomain_GetChannels(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewChannelDomain(s)

	resp, err := d.GetChannels(guildCtx(s), &model.GetChannelsRequest{})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, resp.Channels, 3)

	byID := map[string]model.Channel{}
	for _, c := range resp.Channels {
		byID[c.ID] = c
	}
	require.Equal(t, "text", byID[testutil.TextChannelID].Type)
	require.Equal(t, "voice", byID[testutil.VoiceChannelID].Type)
	require.Equal(t, "category", byID[testutil.CategoryID].Type)
	require.Equal(t, "fixture talk", byID[testutil.TextChannelID].Topic)
}

func Test_channelDomain_CreateChannel(t *testing.T) {
	testCases := []struct {
		name     string
		req      *model.CreateChannelRequest
		wantErr  error
		wantType discordgo.ChannelType
	}{
		{
			name:     "create text channel",
			req:      &model.CreateChannelRequest{Name: "announcements", Type: "text"},
			wantType: discordgo.ChannelTypeGuildText,
		},
		{
			name:     "create voice channel",
			req:      &model.CreateChannelRequest{Name: "music", Type: "voice"},
			wantType: discordgo.ChannelTypeGuildVoice,
		},
		{
			name:     "create category",
			req:      &model.CreateChannelRequest{Name: "Staff", Type: "category"},
			wantType: discordgo.ChannelTypeGuildCategory,
		},
		{
			name:    "empty name",
			req:     &model.CreateChannelRequest{Type: "text"},
			wantErr: errorx.New(errorx.BadRequest, "Not allow empty channel name"),
		},
		{
			name:    "missing type",
			req:     &model.CreateChannelRequest{Name: "announcements"},
			wantErr: errorx.New(errorx.BadRequest, "Invalid channel type"),
		},
		{
			name:    "unknown type",
			req:     &model.CreateChannelRequest{Name: "announcements", Type: "forum"},
			wantErr: errorx.New(errorx.BadRequest, "Invalid channel type"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := testutil.NewFixtureSession()
			d := NewChannelDomain(s)

			resp, err := d.CreateChannel(guildCtx(s), tc.req)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.Equal(t, tc.wantErr, err)
				require.Nil(t, s.LastChannelCreate)
				return
			}

			require.NoError(t, err)
			require.True(t, resp.Success)
			require.Equal(t, tc.req.Name, resp.Channel.Name)
			require.NotNil(t, s.LastChannelCreate)
			require.Equal(t, tc.wantType, s.LastChannelCreate.Type)
		})
	}
}

func Test_channelDomain_CreateChannel_underCategory(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewChannelDomain(s)

	resp, err := d.CreateChannel(guildCtx(s), &model.CreateChannelRequest{
		Name:     "rules",
		Type:     "text",
		ParentID: testutil.CategoryID,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.CategoryID, resp.Channel.ParentID)
	require.Equal(t, testutil.CategoryID, s.LastChannelCreate.ParentID)
}

func Test_channelDomain_UpdateChannel_partial(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewChannelDomain(s)

	topic := "new topic"
	resp, err := d.UpdateChannel(channelCtx(s, testutil.TextChannelID), &model.UpdateChannelRequest{
		Topic: &topic,
	})
	require.NoError(t, err)
	require.Equal(t, "new topic", resp.Channel.Topic)

	// Only the supplied field reaches the platform.
	require.NotNil(t, s.LastChannelEdit)
	require.Nil(t, s.LastChannelEdit.Name)
	require.Nil(t, s.LastChannelEdit.Position)
	require.Nil(t, s.LastChannelEdit.ParentID)
	require.NotNil(t, s.LastChannelEdit.Topic)

	// Untouched fields keep their values.
	require.Equal(t, "general", resp.Channel.Name)
}

func Test_channelDomain_DeleteChannel(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewChannelDomain(s)

	resp, err := d.DeleteChannel(channelCtx(s, testutil.VoiceChannelID), &model.DeleteChannelRequest{})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "Channel deleted successfully", resp.Message)
	require.NotContains(t, s.ChannelsByID, testutil.VoiceChannelID)
}

func Test_channelDomain_upstreamFailure(t *testing.T) {
	s := testutil.NewFixtureSession()
	s.MutateErr = context.DeadlineExceeded
	d := NewChannelDomain(s)

	_, err := d.CreateChannel(guildCtx(s), &model.CreateChannelRequest{Name: "x", Type: "text"})
	require.Error(t, err)

	var xerr errorx.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, errorx.Internal, xerr.Code)
	require.Equal(t, "Failed to create channel: context deadline exceeded", xerr.Message)
}
