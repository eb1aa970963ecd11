package domain

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/guildpanel/backend/internal/model"
	"github.com/guildpanel/backend/pkg/errorx"
	"github.com/guildpanel/backend/pkg/testutil"
)

func Test_messageDomain_GetMessages(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewMessageDomain(s)

	resp, err := d.GetMessages(channelCtx(s, testutil.TextChannelID), &model.GetMessagesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Messages, 2)

	// Platform order is newest first; it must come through unaltered.
	require.Equal(t, testutil.Message1ID, resp.Messages[0].ID)
	require.Equal(t, testutil.Message2ID, resp.Messages[1].ID)

	// Limit defaults when the query omits it.
	require.Equal(t, 50, s.LastMessagesLimit)

	require.Equal(t, "alice", resp.Messages[1].Author.Username)
	require.Len(t, resp.Messages[1].Attachments, 1)
	require.Equal(t, "notes.txt", resp.Messages[1].Attachments[0].Filename)
}

func Test_messageDomain_GetMessages_paging(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewMessageDomain(s)

	_, err := d.GetMessages(channelCtx(s, testutil.TextChannelID), &model.GetMessagesRequest{
		Limit:  1,
		Before: testutil.Message1ID,
	})
	require.NoError(t, err)
	require.Equal(t, 1, s.LastMessagesLimit)
	require.Equal(t, testutil.Message1ID, s.LastMessagesBefore)
}

func Test_messageDomain_SendMessage(t *testing.T) {
	testCases := []struct {
		name    string
		req     *model.SendMessageRequest
		wantErr error
	}{
		{
			name: "content only",
			req:  &model.SendMessageRequest{Content: "hello"},
		},
		{
			name: "embed only",
			req: &model.SendMessageRequest{
				Embed: &discordgo.MessageEmbed{Title: "Notice", Description: "maintenance"},
			},
		},
		{
			name:    "empty message",
			req:     &model.SendMessageRequest{},
			wantErr: errorx.New(errorx.BadRequest, "Message must have content or an embed"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := testutil.NewFixtureSession()
			d := NewMessageDomain(s)

			resp, err := d.SendMessage(channelCtx(s, testutil.TextChannelID), tc.req)
			if tc.wantErr != nil {
				require.Equal(t, tc.wantErr, err)
				require.Nil(t, s.LastMessageSend)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "Message sent successfully", resp.Message)
			require.NotEmpty(t, resp.MessageData.ID)
			require.Equal(t, tc.req.Content, s.LastMessageSend.Content)
			require.Equal(t, tc.req.Embed, s.LastMessageSend.Embed)
		})
	}
}

func Test_messageDomain_DeleteMessage(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewMessageDomain(s)

	resp, err := d.DeleteMessage(channelCtx(s, testutil.TextChannelID), &model.DeleteMessageRequest{
		MessageID: testutil.Message2ID,
	})
	require.NoError(t, err)
	require.Equal(t, "Message deleted successfully", resp.Message)
	require.Len(t, s.MessagesByChannel[testutil.TextChannelID], 1)
}

func Test_messageDomain_DeleteMessage_unknown(t *testing.T) {
	s := testutil.NewFixtureSession()
	d := NewMessageDomain(s)

	_, err := d.DeleteMessage(channelCtx(s, testutil.TextChannelID), &model.DeleteMessageRequest{
		MessageID: "message-missing",
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Message not found"), err)
}

func Test_messageDomain_BulkDeleteMessages(t *testing.T) {
	makeIDs := func(n int) []string {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = fmt.Sprintf("message-%d", i)
		}
		return ids
	}

	testCases := []struct {
		name    string
		ids     []string
		wantErr error
	}{
		{
			name: "two messages",
			ids:  makeIDs(2),
		},
		{
			name: "exactly the batch limit",
			ids:  makeIDs(100),
		},
		{
			name:    "no ids",
			ids:     nil,
			wantErr: errorx.New(errorx.BadRequest, "Invalid message IDs"),
		},
		{
			name:    "over the batch limit",
			ids:     makeIDs(101),
			wantErr: errorx.New(errorx.BadRequest, "Cannot delete more than 100 messages at once"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := testutil.NewFixtureSession()
			d := NewMessageDomain(s)

			resp, err := d.BulkDeleteMessages(channelCtx(s, testutil.TextChannelID), &model.BulkDeleteMessagesRequest{
				MessageIDs: tc.ids,
			})
			if tc.wantErr != nil {
				require.Equal(t, tc.wantErr, err)
				require.Zero(t, s.BulkDeleteCalls)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "Messages deleted successfully", resp.Message)

			// A valid batch makes exactly one platform call.
			require.Equal(t, 1, s.BulkDeleteCalls)
			require.Equal(t, tc.ids, s.LastBulkDeleteIDs)
		})
	}
}
