package testutil

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	GuildID        = "guild-main"
	TextChannelID  = "channel-general"
	VoiceChannelID = "channel-lounge"
	CategoryID     = "channel-category"
	AdminRoleID    = "role-admin"
	AliceUserID    = "user-alice"
	BobUserID      = "user-bob"
	BannedUserID   = "user-banned"
	Message1ID     = "message-1"
	Message2ID     = "message-2"
)

// NewFixtureSession returns a FakeSession populated with one guild, three
// channels, two roles, two members, one ban, and two messages in the text
// channel (newest first). Each call builds fresh objects, so tests may mutate
// freely.
func NewFixtureSession() *FakeSession {
	s := NewFakeSession()

	s.GuildList = []*discordgo.Guild{
		{
			ID:                          GuildID,
			Name:                        "Fixture Guild",
			Icon:                        "abc123",
			PreferredLocale:             "en-US",
			VerificationLevel:           discordgo.VerificationLevelLow,
			ExplicitContentFilter:       discordgo.ExplicitContentFilterDisabled,
			DefaultMessageNotifications: discordgo.MessageNotificationsAllMessages,
		},
	}

	s.ChannelsByID[TextChannelID] = &discordgo.Channel{
		ID:       TextChannelID,
		GuildID:  GuildID,
		Name:     "general",
		Type:     discordgo.ChannelTypeGuildText,
		Topic:    "fixture talk",
		Position: 0,
		ParentID: CategoryID,
	}
	s.ChannelsByID[VoiceChannelID] = &discordgo.Channel{
		ID:       VoiceChannelID,
		GuildID:  GuildID,
		Name:     "lounge",
		Type:     discordgo.ChannelTypeGuildVoice,
		Position: 1,
		ParentID: CategoryID,
	}
	s.ChannelsByID[CategoryID] = &discordgo.Channel{
		ID:      CategoryID,
		GuildID: GuildID,
		Name:    "Fixture Area",
		Type:    discordgo.ChannelTypeGuildCategory,
	}

	s.RolesByGuild[GuildID] = []*discordgo.Role{
		{
			ID:          AdminRoleID,
			Name:        "Admin",
			Color:       0xFF0000,
			Hoist:       true,
			Position:    1,
			Permissions: 8,
		},
		{
			ID:          "role-everyone",
			Name:        "@everyone",
			Permissions: 104324673,
		},
	}

	alice := &discordgo.User{
		ID:            AliceUserID,
		Username:      "alice",
		Discriminator: "0001",
	}
	bob := &discordgo.User{
		ID:            BobUserID,
		Username:      "bob",
		Discriminator: "0002",
	}
	joined := time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC)
	s.MembersByGuild[GuildID] = map[string]*discordgo.Member{
		AliceUserID: {
			User:     alice,
			Nick:     "Alice",
			JoinedAt: joined,
			Roles:    []string{AdminRoleID},
		},
		BobUserID: {
			User:     bob,
			JoinedAt: joined.Add(24 * time.Hour),
		},
	}

	s.BansByGuild[GuildID] = []*discordgo.GuildBan{
		{
			User:   &discordgo.User{ID: BannedUserID, Username: "troll", Discriminator: "0666"},
			Reason: "spam",
		},
	}

	sent := time.Date(2023, time.April, 2, 9, 30, 0, 0, time.UTC)
	s.MessagesByChannel[TextChannelID] = []*discordgo.Message{
		{
			ID:        Message1ID,
			ChannelID: TextChannelID,
			Content:   "newest",
			Author:    bob,
			Timestamp: sent.Add(time.Minute),
		},
		{
			ID:        Message2ID,
			ChannelID: TextChannelID,
			Content:   "older",
			Author:    alice,
			Timestamp: sent,
			Attachments: []*discordgo.MessageAttachment{
				{ID: "attach-1", Filename: "notes.txt", URL: "https://cdn.example/notes.txt", Size: 42},
			},
		},
	}

	return s
}
