package main

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/guildpanel/backend/config"
	"github.com/guildpanel/backend/internal/domain"
	"github.com/guildpanel/backend/internal/middleware"
	"github.com/guildpanel/backend/internal/session"
	"github.com/guildpanel/backend/pkg/logger"
	"github.com/guildpanel/backend/pkg/router"
)

type platformSession interface {
	session.Session

	Open() error
	WaitUntilReady(ctx context.Context) error
	Close() error
}

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	session platformSession

	authDomain    domain.AuthDomain
	guildDomain   domain.GuildDomain
	channelDomain domain.ChannelDomain
	roleDomain    domain.RoleDomain
	memberDomain  domain.MemberDomain
	messageDomain domain.MessageDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s.configs = cfg
	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.LogLevel)
}

func (s *srv) loadSession(ctx context.Context) error {
	platform, err := session.New(s.configs.Session.Token, s.logger)
	if err != nil {
		return err
	}

	if err := platform.Open(); err != nil {
		return err
	}

	// Lookups against a cold cache are invalid; do not serve until the
	// gateway handshake completes.
	if err := platform.WaitUntilReady(ctx); err != nil {
		return err
	}

	s.session = platform
	return nil
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.configs)
	s.guildDomain = domain.NewGuildDomain(s.session)
	s.channelDomain = domain.NewChannelDomain(s.session)
	s.roleDomain = domain.NewRoleDomain(s.session)
	s.memberDomain = domain.NewMemberDomain(s.session)
	s.messageDomain = domain.NewMessageDomain(s.session)
}

func (s *srv) loadRouter() {
	s.router = router.New(s.configs, s.logger)
	s.router.Use(middleware.Logger())

	api := s.router.Group("/api")
	router.POST(api, "/auth", s.authDomain.Verify)

	authed := api.Group("")
	authed.Use(middleware.Authenticate(s.configs))
	{
		router.GET(authed, "/guilds", s.guildDomain.GetGuilds)
	}

	guildRouter := authed.Group("/guilds/:guildId")
	guildRouter.Use(middleware.ResolveGuild(s.session))
	{
		router.GET(guildRouter, "/settings", s.guildDomain.GetSettings)
		router.PATCH(guildRouter, "/settings", s.guildDomain.UpdateSettings)
		router.GET(guildRouter, "/channels", s.channelDomain.GetChannels)
		router.POST(guildRouter, "/channels", s.channelDomain.CreateChannel)
		router.GET(guildRouter, "/roles", s.roleDomain.GetRoles)
		router.POST(guildRouter, "/roles", s.roleDomain.CreateRole)
		router.GET(guildRouter, "/members", s.memberDomain.GetMembers)
		router.GET(guildRouter, "/bans", s.memberDomain.GetBans)
		router.POST(guildRouter, "/bans/:userId/unban", s.memberDomain.UnbanMember)
	}

	roleRouter := guildRouter.Group("/roles/:roleId")
	roleRouter.Use(middleware.ResolveRole(s.session))
	{
		router.PATCH(roleRouter, "", s.roleDomain.UpdateRole)
		router.DELETE(roleRouter, "", s.roleDomain.DeleteRole)
	}

	memberRouter := guildRouter.Group("/members/:memberId")
	memberRouter.Use(middleware.ResolveMember(s.session))
	{
		router.POST(memberRouter, "/kick", s.memberDomain.KickMember)
		router.POST(memberRouter, "/ban", s.memberDomain.BanMember)
	}

	channelRouter := authed.Group("/channels/:channelId")
	channelRouter.Use(middleware.ResolveChannel(s.session))
	{
		router.PATCH(channelRouter, "", s.channelDomain.UpdateChannel)
		router.DELETE(channelRouter, "", s.channelDomain.DeleteChannel)
		router.GET(channelRouter, "/messages", s.messageDomain.GetMessages)
		router.POST(channelRouter, "/messages", s.messageDomain.SendMessage)
		router.POST(channelRouter, "/messages/bulk-delete", s.messageDomain.BulkDeleteMessages)
		router.DELETE(channelRouter, "/messages/:messageId", s.messageDomain.DeleteMessage)
	}
}
