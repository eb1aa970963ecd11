package main

import "github.com/urfave/cli/v2"

// loadApp creates the cli app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "guildpanel"
	app.Usage = "Administration panel backend for the chat platform"
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the panel api",
			Category:    "Api",
			Description: `Opens the platform session, waits for it to become ready and serves the REST api.`,
		},
	}

	s.app = app
}
