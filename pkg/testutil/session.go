// Package testutil provides an in-memory stand-in for the platform session
// plus a canned fixture set, so domain and endpoint tests never touch the
// network.
package testutil

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/guildpanel/backend/internal/session"
)

// FakeSession implements session.Session against plain maps. Every call,
// lookup or mutation, increments Calls so tests can assert the gateway never
// reached the adapter.
type FakeSession struct {
	GuildList         []*discordgo.Guild
	ChannelsByID      map[string]*discordgo.Channel
	RolesByGuild      map[string][]*discordgo.Role
	MembersByGuild    map[string]map[string]*discordgo.Member
	MessagesByChannel map[string][]*discordgo.Message
	BansByGuild       map[string][]*discordgo.GuildBan

	Calls int

	LastChannelCreate  *session.ChannelCreateParams
	LastChannelEdit    *session.ChannelEditParams
	LastRoleParams     *session.RoleParams
	LastGuildParams    *session.GuildParams
	LastMessageSend    *session.MessageSendParams
	LastKickReason     string
	LastBanReason      string
	LastBanSeconds     int
	BanCalls           int
	LastUnbanUserID    string
	LastBulkDeleteIDs  []string
	BulkDeleteCalls    int
	LastMessagesLimit  int
	LastMessagesBefore string

	// MutateErr, when set, is returned by every mutating call.
	MutateErr error

	nextID int
}

func NewFakeSession() *FakeSession {
	return &FakeSession{
		ChannelsByID:      map[string]*discordgo.Channel{},
		RolesByGuild:      map[string][]*discordgo.Role{},
		MembersByGuild:    map[string]map[string]*discordgo.Member{},
		MessagesByChannel: map[string][]*discordgo.Message{},
		BansByGuild:       map[string][]*discordgo.GuildBan{},
	}
}

func (s *FakeSession) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *FakeSession) Guilds(ctx context.Context) []*discordgo.Guild {
	s.Calls++
	return s.GuildList
}

func (s *FakeSession) Guild(ctx context.Context, guildID string) (*discordgo.Guild, error) {
	s.Calls++
	for _, guild := range s.GuildList {
		if guild.ID == guildID {
			return guild, nil
		}
	}

	return nil, session.ErrNotFound
}

func (s *FakeSession) EditGuild(ctx context.Context, guildID string, params session.GuildParams) (*discordgo.Guild, error) {
	s.Calls++
	s.LastGuildParams = &params
	if s.MutateErr != nil {
		return nil, s.MutateErr
	}

	guild, err := s.Guild(ctx, guildID)
	if err != nil {
		return nil, err
	}

	if params.Name != "" {
		guild.Name = params.Name
	}
	if params.Locale != "" {
		guild.PreferredLocale = params.Locale
	}
	if params.VerificationLevel != nil {
		guild.VerificationLevel = discordgo.VerificationLevel(*params.VerificationLevel)
	}
	if params.ExplicitContentFilter != nil {
		guild.ExplicitContentFilter = discordgo.ExplicitContentFilterLevel(*params.ExplicitContentFilter)
	}
	if params.DefaultMessageNotifications != nil {
		guild.DefaultMessageNotifications = discordgo.MessageNotifications(*params.DefaultMessageNotifications)
	}

	return guild, nil
}

func (s *FakeSession) Channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	s.Calls++
	if channel, ok := s.ChannelsByID[channelID]; ok {
		return channel, nil
	}

	return nil, session.ErrNotFound
}

func (s *FakeSession) Channels(ctx context.Context, guildID string) ([]*discordgo.Channel, error) {
	s.Calls++
	var out []*discordgo.Channel
	for _, channel := range s.ChannelsByID {
		if channel.GuildID == guildID {
			out = append(out, channel)
		}
	}

	return out, nil
}

func (s *FakeSession) CreateChannel(ctx context.Context, guildID string, params session.ChannelCreateParams) (*discordgo.Channel, error) {
	s.Calls++
	s.LastChannelCreate = &params
	if s.MutateErr != nil {
		return nil, s.MutateErr
	}

	channel := &discordgo.Channel{
		ID:       s.newID("channel"),
		GuildID:  guildID,
		Name:     params.Name,
		Type:     params.Type,
		ParentID: params.ParentID,
		Position: len(s.ChannelsByID),
	}
	s.ChannelsByID[channel.ID] = channel

	return channel, nil
}

func (s *FakeSession) EditChannel(ctx context.Context, channelID string, params session.ChannelEditParams) (*discordgo.Channel, error) {
	s.Calls++
	s.LastChannelEdit = &params
	if s.MutateErr != nil {
		return nil, s.MutateErr
	}

	channel, ok := s.ChannelsByID[channelID]
	if !ok {
		return nil, session.ErrNotFound
	}

	if params.Name != nil {
		channel.Name = *params.Name
	}
	if params.Topic != nil {
		channel.Topic = *params.Topic
	}
	if params.Position != nil {
		channel.Position = *params.Position
	}
	if params.ParentID != nil {
		channel.ParentID = *params.ParentID
	}

	return channel, nil
}

func (s *FakeSession) DeleteChannel(ctx context.Context, channelID string) error {
	s.Calls++
	if s.MutateErr != nil {
		return s.MutateErr
	}

	delete(s.ChannelsByID, channelID)
	return nil
}

func (s *FakeSession) Role(ctx context.Context, guildID, roleID string) (*discordgo.Role, error) {
	s.Calls++
	for _, role := range s.RolesByGuild[guildID] {
		if role.ID == roleID {
			return role, nil
		}
	}

	return nil, session.ErrNotFound
}

func (s *FakeSession) Roles(ctx context.Context, guildID string) ([]*discordgo.Role, error) {
	s.Calls++
	return s.RolesByGuild[guildID], nil
}

func applyRoleParams(role *discordgo.Role, params session.RoleParams) {
	if params.Name != nil {
		role.Name = *params.Name
	}
	if params.Color != nil {
		role.Color = *params.Color
	}
	if params.Hoist != nil {
		role.Hoist = *params.Hoist
	}
	if params.Permissions != nil {
		role.Permissions = int64(*params.Permissions)
	}
}

func (s *FakeSession) CreateRole(ctx context.Context, guildID string, params session.RoleParams) (*discordgo.Role, error) {
	s.Calls++
	s.LastRoleParams = &params
	if s.MutateErr != nil {
		return nil, s.MutateErr
	}

	role := &discordgo.Role{
		ID:       s.newID("role"),
		Position: len(s.RolesByGuild[guildID]),
	}
	applyRoleParams(role, params)
	s.RolesByGuild[guildID] = append(s.RolesByGuild[guildID], role)

	return role, nil
}

func (s *FakeSession) EditRole(ctx context.Context, guildID, roleID string, params session.RoleParams) (*discordgo.Role, error) {
	s.Calls++
	s.LastRoleParams = &params
	if s.MutateErr != nil {
		return nil, s.MutateErr
	}

	role, err := s.Role(ctx, guildID, roleID)
	if err != nil {
		return nil, err
	}
	applyRoleParams(role, params)

	return role, nil
}

func (s *FakeSession) DeleteRole(ctx context.Context, guildID, roleID string) error {
	s.Calls++
	if s.MutateErr != nil {
		return s.MutateErr
	}

	roles := s.RolesByGuild[guildID]
	for i, role := range roles {
		if role.ID == roleID {
			s.RolesByGuild[guildID] = append(roles[:i], roles[i+1:]...)
			return nil
		}
	}

	return session.ErrNotFound
}

func (s *FakeSession) Member(ctx context.Context, guildID, userID string) (*discordgo.Member, error) {
	s.Calls++
	if member, ok := s.MembersByGuild[guildID][userID]; ok {
		return member, nil
	}

	return nil, session.ErrNotFound
}

func (s *FakeSession) Members(ctx context.Context, guildID string, limit int) ([]*discordgo.Member, error) {
	s.Calls++
	var out []*discordgo.Member
	for _, member := range s.MembersByGuild[guildID] {
		out = append(out, member)
	}

	return out, nil
}

func (s *FakeSession) Kick(ctx context.Context, guildID, userID, reason string) error {
	s.Calls++
	s.LastKickReason = reason
	if s.MutateErr != nil {
		return s.MutateErr
	}

	delete(s.MembersByGuild[guildID], userID)
	return nil
}

func (s *FakeSession) Ban(ctx context.Context, guildID, userID, reason string, deleteMessageSeconds int) error {
	s.Calls++
	s.BanCalls++
	s.LastBanReason = reason
	s.LastBanSeconds = deleteMessageSeconds
	if s.MutateErr != nil {
		return s.MutateErr
	}

	member := s.MembersByGuild[guildID][userID]
	delete(s.MembersByGuild[guildID], userID)

	ban := &discordgo.GuildBan{Reason: reason}
	if member != nil {
		ban.User = member.User
	} else {
		ban.User = &discordgo.User{ID: userID}
	}
	s.BansByGuild[guildID] = append(s.BansByGuild[guildID], ban)

	return nil
}

func (s *FakeSession) Unban(ctx context.Context, guildID, userID, reason string) error {
	s.Calls++
	s.LastUnbanUserID = userID
	if s.MutateErr != nil {
		return s.MutateErr
	}

	bans := s.BansByGuild[guildID]
	for i, ban := range bans {
		if ban.User != nil && ban.User.ID == userID {
			s.BansByGuild[guildID] = append(bans[:i], bans[i+1:]...)
			return nil
		}
	}

	return nil
}

func (s *FakeSession) Bans(ctx context.Context, guildID string, limit int) ([]*discordgo.GuildBan, error) {
	s.Calls++
	return s.BansByGuild[guildID], nil
}

func (s *FakeSession) Message(ctx context.Context, channelID, messageID string) (*discordgo.Message, error) {
	s.Calls++
	for _, message := range s.MessagesByChannel[channelID] {
		if message.ID == messageID {
			return message, nil
		}
	}

	return nil, session.ErrNotFound
}

func (s *FakeSession) Messages(ctx context.Context, channelID string, limit int, beforeID string) ([]*discordgo.Message, error) {
	s.Calls++
	s.LastMessagesLimit = limit
	s.LastMessagesBefore = beforeID

	messages := s.MessagesByChannel[channelID]
	if limit > 0 && limit < len(messages) {
		messages = messages[:limit]
	}

	return messages, nil
}

func (s *FakeSession) Send(ctx context.Context, channelID string, params session.MessageSendParams) (*discordgo.Message, error) {
	s.Calls++
	s.LastMessageSend = &params
	if s.MutateErr != nil {
		return nil, s.MutateErr
	}

	message := &discordgo.Message{
		ID:      s.newID("message"),
		Content: params.Content,
	}
	s.MessagesByChannel[channelID] = append([]*discordgo.Message{message}, s.MessagesByChannel[channelID]...)

	return message, nil
}

func (s *FakeSession) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	s.Calls++
	if s.MutateErr != nil {
		return s.MutateErr
	}

	messages := s.MessagesByChannel[channelID]
	for i, message := range messages {
		if message.ID == messageID {
			s.MessagesByChannel[channelID] = append(messages[:i], messages[i+1:]...)
			return nil
		}
	}

	return session.ErrNotFound
}

func (s *FakeSession) BulkDeleteMessages(ctx context.Context, channelID string, messageIDs []string) error {
	s.Calls++
	s.BulkDeleteCalls++
	s.LastBulkDeleteIDs = messageIDs
	if s.MutateErr != nil {
		return s.MutateErr
	}

	return nil
}
