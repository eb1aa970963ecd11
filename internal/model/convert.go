package model

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

const iconSize = "128"

// Channel kind tags accepted and produced by the gateway. Kinds outside the
// closed enum are projected with their numeric value so listings stay
// complete.
const (
	ChannelTypeText     = "text"
	ChannelTypeVoice    = "voice"
	ChannelTypeCategory = "category"
)

func ChannelTypeFromTag(tag string) (discordgo.ChannelType, bool) {
	switch tag {
	case ChannelTypeText:
		return discordgo.ChannelTypeGuildText, true
	case ChannelTypeVoice:
		return discordgo.ChannelTypeGuildVoice, true
	case ChannelTypeCategory:
		return discordgo.ChannelTypeGuildCategory, true
	default:
		return 0, false
	}
}

func channelTypeTag(t discordgo.ChannelType) string {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return ChannelTypeText
	case discordgo.ChannelTypeGuildVoice:
		return ChannelTypeVoice
	case discordgo.ChannelTypeGuildCategory:
		return ChannelTypeCategory
	default:
		return strconv.Itoa(int(t))
	}
}

func ConvertGuild(guild *discordgo.Guild) Guild {
	return Guild{
		ID:   guild.ID,
		Name: guild.Name,
		Icon: guild.IconURL(iconSize),
	}
}

func ConvertGuildSettings(guild *discordgo.Guild) GuildSettings {
	return GuildSettings{
		Name:                        guild.Name,
		Icon:                        guild.IconURL(iconSize),
		Region:                      guild.PreferredLocale,
		VerificationLevel:           int(guild.VerificationLevel),
		ExplicitContentFilter:       int(guild.ExplicitContentFilter),
		DefaultMessageNotifications: int(guild.DefaultMessageNotifications),
	}
}

func ConvertChannel(channel *discordgo.Channel) Channel {
	return Channel{
		ID:       channel.ID,
		Name:     channel.Name,
		Type:     channelTypeTag(channel.Type),
		Position: channel.Position,
		ParentID: channel.ParentID,
		Topic:    channel.Topic,
	}
}

func ConvertRole(role *discordgo.Role) Role {
	return Role{
		ID:       role.ID,
		Name:     role.Name,
		Color:    role.Color,
		Hoist:    role.Hoist,
		Position: role.Position,
		// The cast is bit-preserving; the platform client stores the
		// unsigned bitfield in an int64.
		Permissions: strconv.FormatUint(uint64(role.Permissions), 10),
	}
}

func ConvertMember(member *discordgo.Member) Member {
	m := Member{
		Nickname: member.Nick,
		JoinedAt: member.JoinedAt,
		Roles:    member.Roles,
	}
	if member.User != nil {
		m.ID = member.User.ID
		m.Username = member.User.Username
		m.Discriminator = member.User.Discriminator
		m.Avatar = member.User.AvatarURL(iconSize)
	}
	if m.Roles == nil {
		m.Roles = []string{}
	}

	return m
}

func ConvertAuthor(user *discordgo.User) Author {
	if user == nil {
		return Author{}
	}

	return Author{
		ID:            user.ID,
		Username:      user.Username,
		Discriminator: user.Discriminator,
		Avatar:        user.AvatarURL(iconSize),
	}
}

func ConvertBan(ban *discordgo.GuildBan) Ban {
	return Ban{
		User:   ConvertAuthor(ban.User),
		Reason: ban.Reason,
	}
}

func ConvertMessage(message *discordgo.Message) Message {
	attachments := make([]Attachment, 0, len(message.Attachments))
	for _, a := range message.Attachments {
		attachments = append(attachments, Attachment{
			ID:       a.ID,
			URL:      a.URL,
			Filename: a.Filename,
			Size:     a.Size,
		})
	}

	return Message{
		ID:          message.ID,
		Content:     message.Content,
		Author:      ConvertAuthor(message.Author),
		Timestamp:   message.Timestamp,
		Attachments: attachments,
	}
}
