package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/wpt-fixtures/fixtures/config"
	"github.com/wpt-fixtures/fixtures/internal/shell"
	"github.com/wpt-fixtures/fixtures/util/conf"
	"github.com/wpt-fixtures/fixtures/util/logging"
)

var (
	appName  = "fixtures"
	appUsage = `Serves the dynamic resources used by web platform tests for
auction interest group updates and resource timing.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a json or .env file.",
				EnvVars: []string{"FIXTURES_CONFIG"},
			},
			// fixture flags
			&cli.StringFlag{
				Name:     "prefix",
				Usage:    "the path prefix to mount the fixture routes under.",
				Category: "fixtures",
				EnvVars:  []string{"FIXTURES_PREFIX"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the logger
			log, err := logging.New(appName, ctx.String("log-level"), ctx.String("log-format"))
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// parse config using defaults, file, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:      ctx,
				CliMap:   map[string]string{"prefix": "fixtures.prefix"},
				Defaults: config.DefaultConfig,
				FileName: ctx.Path("config"),
				Log:      log,
			})
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	code := shell.ExitCode(err)
	if code != 0 {
		fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())
	}

	return code
}
