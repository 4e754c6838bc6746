package handler

import (
	"path"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/wpt-fixtures/fixtures/config"
	"github.com/wpt-fixtures/fixtures/fixture"
	"github.com/wpt-fixtures/fixtures/internal/server"
)

const (
	UpdateURLPath       = "/fledge/tentative/resources/update-url.py"
	ContentEncodingPath = "/resource-timing/resources/content-encoding.py"
	HealthPath          = "/health"
)

type RouteParams struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

func NewUpdateURLRoute(params RouteParams) server.HttpHandlerResult {
	return newFixtureRoute(params, UpdateURLPath, "update-url", fixture.HandlerFunc(fixture.UpdateURL))
}

func NewContentEncodingRoute(params RouteParams) server.HttpHandlerResult {
	return newFixtureRoute(params, ContentEncodingPath, "content-encoding", fixture.HandlerFunc(fixture.ContentEncoding))
}

func NewHealthRoute(log *zap.Logger) server.HttpHandlerResult {
	return server.AsHttpHandler(HealthPath, NewHealthHandler(log))
}

func newFixtureRoute(
	params RouteParams,
	route string,
	name string,
	h fixture.Handler,
) server.HttpHandlerResult {
	return server.AsHttpHandler(
		RoutePath(params.Config.Fixtures.Prefix, route),
		NewFixtureHandler(name, h, params.Log),
	)
}

// RoutePath mounts route below prefix.
func RoutePath(prefix, route string) string {
	return path.Join("/", prefix, route)
}
