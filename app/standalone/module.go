package standalone

import (
	"go.uber.org/fx"

	"github.com/wpt-fixtures/fixtures/handler"
	"github.com/wpt-fixtures/fixtures/internal/server"
	"github.com/wpt-fixtures/fixtures/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide fixture routes
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
