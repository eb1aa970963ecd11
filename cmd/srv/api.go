package main

import (
	"errors"
	"net/http"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	if err := s.loadConfig(); err != nil {
		return err
	}
	s.loadLogger()

	if err := s.loadSession(ct.Context); err != nil {
		return err
	}
	defer s.session.Close()

	s.loadDomains()
	s.loadRouter()

	allowedOrigins := s.configs.ApiServer.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: c.Handler(s.router.Handler()),
	}

	s.logger.Infof("Web server running on port %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Infof("Web server stopped")
	return nil
}
