package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/wpt-fixtures/fixtures/app"
	"github.com/wpt-fixtures/fixtures/app/standalone"
	"github.com/wpt-fixtures/fixtures/util/conf"
	"github.com/wpt-fixtures/fixtures/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server that answers the
fixture routes. Routes are mounted below the configured prefix:

  /fledge/tentative/resources/update-url.py
  /resource-timing/resources/content-encoding.py

The command blocks until it receives a termination signal.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server and serve the fixtures.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "localhost",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

var serveDefaults = conf.DefaultConfig{
	"host": "localhost",
	"port": 8080,
	"h2c":  false,
}

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  serveDefaults,
		EnvPrefix: "HTTP_",
		Log:       log,
	})
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
