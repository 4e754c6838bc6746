package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/wpt-fixtures/fixtures/config"
	"github.com/wpt-fixtures/fixtures/internal/shell"
	"github.com/wpt-fixtures/fixtures/util/conf"
	"github.com/wpt-fixtures/fixtures/util/logging"
)

// New creates the application shell from the logger and config stored in
// the cli context. Every deployment shares the fixture routes.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	return shell.New(log, SharedModule(cfg)), nil
}

func SharedModule(cfg config.Config) fx.Option {
	return fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
	)
}
