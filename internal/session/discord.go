package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/guildpanel/backend/pkg/logger"
)

// Matches what the endpoints can reach in one page; the platform caps both
// listings at this value anyway.
const maxPageSize = 1000

type discordSession struct {
	dg     *discordgo.Session
	logger logger.Logger
	ready  chan struct{}
}

// New builds the gateway session but does not connect; call Open and then
// WaitUntilReady before serving lookups.
func New(token string, log logger.Logger) (*discordSession, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	dg.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMembers |
		discordgo.IntentGuildBans |
		discordgo.IntentGuildMessages |
		discordgo.IntentMessageContent

	s := &discordSession{
		dg:     dg,
		logger: log,
		ready:  make(chan struct{}),
	}

	dg.AddHandlerOnce(func(d *discordgo.Session, r *discordgo.Ready) {
		log.Infof("Logged in as %s", r.User.String())
		if err := d.UpdateGameStatus(0, "Server Management"); err != nil {
			log.Warnf("Cannot set activity: %v", err)
		}
		close(s.ready)
	})

	dg.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		log.Warnf("Gateway connection lost")
	})

	dg.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
		log.Infof("Gateway connection resumed")
	})

	return s, nil
}

func (s *discordSession) Open() error {
	return s.dg.Open()
}

// WaitUntilReady blocks until the gateway handshake completes. All lookups
// are invalid before that point.
func (s *discordSession) WaitUntilReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *discordSession) Close() error {
	return s.dg.Close()
}

// normalizeError folds the platform's "unknown object" and "missing access"
// REST failures into ErrNotFound; everything else passes through untouched.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound, http.StatusForbidden:
			return ErrNotFound
		}
	}

	return err
}

func (s *discordSession) Guilds(ctx context.Context) []*discordgo.Guild {
	return s.dg.State.Guilds
}

func (s *discordSession) Guild(ctx context.Context, guildID string) (*discordgo.Guild, error) {
	if guild, err := s.dg.State.Guild(guildID); err == nil {
		return guild, nil
	}

	guild, err := s.dg.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return guild, nil
}

func (s *discordSession) EditGuild(ctx context.Context, guildID string, params GuildParams) (*discordgo.Guild, error) {
	edit := &discordgo.GuildParams{
		Name:   params.Name,
		Region: params.Locale,
	}
	if params.VerificationLevel != nil {
		level := discordgo.VerificationLevel(*params.VerificationLevel)
		edit.VerificationLevel = &level
	}
	if params.ExplicitContentFilter != nil {
		edit.ExplicitContentFilter = *params.ExplicitContentFilter
	}
	if params.DefaultMessageNotifications != nil {
		edit.DefaultMessageNotifications = *params.DefaultMessageNotifications
	}

	guild, err := s.dg.GuildEdit(guildID, edit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return guild, nil
}

func (s *discordSession) Channel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if channel, err := s.dg.State.Channel(channelID); err == nil {
		return channel, nil
	}

	channel, err := s.dg.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return channel, nil
}

func (s *discordSession) Channels(ctx context.Context, guildID string) ([]*discordgo.Channel, error) {
	if guild, err := s.dg.State.Guild(guildID); err == nil && len(guild.Channels) > 0 {
		return guild.Channels, nil
	}

	channels, err := s.dg.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return channels, nil
}

func (s *discordSession) CreateChannel(ctx context.Context, guildID string, params ChannelCreateParams) (*discordgo.Channel, error) {
	return s.dg.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:     params.Name,
		Type:     params.Type,
		ParentID: params.ParentID,
	}, discordgo.WithContext(ctx))
}

func (s *discordSession) EditChannel(ctx context.Context, channelID string, params ChannelEditParams) (*discordgo.Channel, error) {
	edit := &discordgo.ChannelEdit{}
	if params.Name != nil {
		edit.Name = *params.Name
	}
	if params.Topic != nil {
		edit.Topic = *params.Topic
	}
	if params.Position != nil {
		edit.Position = params.Position
	}
	if params.ParentID != nil {
		edit.ParentID = *params.ParentID
	}

	return s.dg.ChannelEdit(channelID, edit, discordgo.WithContext(ctx))
}

func (s *discordSession) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := s.dg.ChannelDelete(channelID, discordgo.WithContext(ctx))
	return err
}

func (s *discordSession) Role(ctx context.Context, guildID, roleID string) (*discordgo.Role, error) {
	if role, err := s.dg.State.Role(guildID, roleID); err == nil {
		return role, nil
	}

	roles, err := s.dg.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	for _, role := range roles {
		if role.ID == roleID {
			return role, nil
		}
	}

	return nil, ErrNotFound
}

func (s *discordSession) Roles(ctx context.Context, guildID string) ([]*discordgo.Role, error) {
	roles, err := s.dg.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return roles, nil
}

func (s *discordSession) CreateRole(ctx context.Context, guildID string, params RoleParams) (*discordgo.Role, error) {
	return s.dg.GuildRoleCreate(guildID, roleParams(params), discordgo.WithContext(ctx))
}

func (s *discordSession) EditRole(ctx context.Context, guildID, roleID string, params RoleParams) (*discordgo.Role, error) {
	return s.dg.GuildRoleEdit(guildID, roleID, roleParams(params), discordgo.WithContext(ctx))
}

func roleParams(params RoleParams) *discordgo.RoleParams {
	out := &discordgo.RoleParams{
		Color: params.Color,
		Hoist: params.Hoist,
	}
	if params.Name != nil {
		out.Name = *params.Name
	}
	if params.Permissions != nil {
		// Bit-preserving cast; the platform client carries the unsigned
		// bitfield in an int64.
		perms := int64(*params.Permissions)
		out.Permissions = &perms
	}

	return out
}

func (s *discordSession) DeleteRole(ctx context.Context, guildID, roleID string) error {
	return s.dg.GuildRoleDelete(guildID, roleID, discordgo.WithContext(ctx))
}

func (s *discordSession) Member(ctx context.Context, guildID, userID string) (*discordgo.Member, error) {
	if member, err := s.dg.State.Member(guildID, userID); err == nil {
		return member, nil
	}

	member, err := s.dg.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return member, nil
}

func (s *discordSession) Members(ctx context.Context, guildID string, limit int) ([]*discordgo.Member, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	members, err := s.dg.GuildMembers(guildID, "", limit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return members, nil
}

func (s *discordSession) Kick(ctx context.Context, guildID, userID, reason string) error {
	return s.dg.GuildMemberDeleteWithReason(guildID, userID, reason, discordgo.WithContext(ctx))
}

func (s *discordSession) Ban(ctx context.Context, guildID, userID, reason string, deleteMessageSeconds int) error {
	// The client's ban helper still speaks the deprecated days unit, so the
	// ban endpoint is called directly with delete_message_seconds.
	data := struct {
		DeleteMessageSeconds int `json:"delete_message_seconds,omitempty"`
	}{DeleteMessageSeconds: deleteMessageSeconds}

	options := []discordgo.RequestOption{discordgo.WithContext(ctx)}
	if reason != "" {
		options = append(options, discordgo.WithAuditLogReason(reason))
	}

	_, err := s.dg.RequestWithBucketID(
		http.MethodPut,
		discordgo.EndpointGuildBan(guildID, userID),
		data,
		discordgo.EndpointGuildBan(guildID, ""),
		options...,
	)
	return err
}

func (s *discordSession) Unban(ctx context.Context, guildID, userID, reason string) error {
	options := []discordgo.RequestOption{discordgo.WithContext(ctx)}
	if reason != "" {
		options = append(options, discordgo.WithAuditLogReason(reason))
	}

	return s.dg.GuildBanDelete(guildID, userID, options...)
}

func (s *discordSession) Bans(ctx context.Context, guildID string, limit int) ([]*discordgo.GuildBan, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	bans, err := s.dg.GuildBans(guildID, limit, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return bans, nil
}

func (s *discordSession) Message(ctx context.Context, channelID, messageID string) (*discordgo.Message, error) {
	message, err := s.dg.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return message, nil
}

func (s *discordSession) Messages(ctx context.Context, channelID string, limit int, beforeID string) ([]*discordgo.Message, error) {
	messages, err := s.dg.ChannelMessages(channelID, limit, beforeID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, normalizeError(err)
	}

	return messages, nil
}

func (s *discordSession) Send(ctx context.Context, channelID string, params MessageSendParams) (*discordgo.Message, error) {
	send := &discordgo.MessageSend{Content: params.Content}
	if params.Embed != nil {
		send.Embeds = []*discordgo.MessageEmbed{params.Embed}
	}

	return s.dg.ChannelMessageSendComplex(channelID, send, discordgo.WithContext(ctx))
}

func (s *discordSession) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return s.dg.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
}

func (s *discordSession) BulkDeleteMessages(ctx context.Context, channelID string, messageIDs []string) error {
	return s.dg.ChannelMessagesBulkDelete(channelID, messageIDs, discordgo.WithContext(ctx))
}
