// Package session wraps the process's single platform connection behind
// per-resource stores. Lookups may be served from the gateway cache or fall
// back to a network round-trip; callers treat every call as potentially
// blocking. Mutations are thin pass-throughs to the platform API.
package session

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrNotFound is returned by lookups when the id is unknown or the session
// lacks access to the object.
var ErrNotFound = errors.New("session: object not found")

type GuildStore interface {
	Guilds(ctx context.Context) []*discordgo.Guild
	Guild(ctx context.Context, guildID string) (*discordgo.Guild, error)
	EditGuild(ctx context.Context, guildID string, params GuildParams) (*discordgo.Guild, error)
}

type ChannelStore interface {
	Channel(ctx context.Context, channelID string) (*discordgo.Channel, error)
	Channels(ctx context.Context, guildID string) ([]*discordgo.Channel, error)
	CreateChannel(ctx context.Context, guildID string, params ChannelCreateParams) (*discordgo.Channel, error)
	EditChannel(ctx context.Context, channelID string, params ChannelEditParams) (*discordgo.Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error
}

type RoleStore interface {
	Role(ctx context.Context, guildID, roleID string) (*discordgo.Role, error)
	Roles(ctx context.Context, guildID string) ([]*discordgo.Role, error)
	CreateRole(ctx context.Context, guildID string, params RoleParams) (*discordgo.Role, error)
	EditRole(ctx context.Context, guildID, roleID string, params RoleParams) (*discordgo.Role, error)
	DeleteRole(ctx context.Context, guildID, roleID string) error
}

type MemberStore interface {
	Member(ctx context.Context, guildID, userID string) (*discordgo.Member, error)
	Members(ctx context.Context, guildID string, limit int) ([]*discordgo.Member, error)
	Kick(ctx context.Context, guildID, userID, reason string) error
	// Ban takes the retention window in the platform's native seconds unit.
	Ban(ctx context.Context, guildID, userID, reason string, deleteMessageSeconds int) error
	Unban(ctx context.Context, guildID, userID, reason string) error
	Bans(ctx context.Context, guildID string, limit int) ([]*discordgo.GuildBan, error)
}

type MessageStore interface {
	Message(ctx context.Context, channelID, messageID string) (*discordgo.Message, error)
	Messages(ctx context.Context, channelID string, limit int, beforeID string) ([]*discordgo.Message, error)
	Send(ctx context.Context, channelID string, params MessageSendParams) (*discordgo.Message, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	BulkDeleteMessages(ctx context.Context, channelID string, messageIDs []string) error
}

type Session interface {
	GuildStore
	ChannelStore
	RoleStore
	MemberStore
	MessageStore
}

// GuildParams mirrors the whitelisted guild settings. Nil pointer fields are
// not forwarded.
type GuildParams struct {
	Name                        string
	Locale                      string
	VerificationLevel           *int
	ExplicitContentFilter       *int
	DefaultMessageNotifications *int
}

type ChannelCreateParams struct {
	Name     string
	Type     discordgo.ChannelType
	ParentID string
}

// ChannelEditParams is a partial update; nil fields are left untouched by
// the platform.
type ChannelEditParams struct {
	Name     *string
	Topic    *string
	Position *int
	ParentID *string
}

type RoleParams struct {
	Name        *string
	Color       *int
	Hoist       *bool
	Permissions *uint64
}

type MessageSendParams struct {
	Content string
	Embed   *discordgo.MessageEmbed
}
