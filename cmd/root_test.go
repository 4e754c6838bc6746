package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/wpt-fixtures/fixtures/config"
	"github.com/wpt-fixtures/fixtures/util/conf"
)

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}

func TestRootApp_ParsesConfig(t *testing.T) {
	var got config.Config

	probe := &cli.Command{
		Name: "probe",
		Action: func(ctx *cli.Context) error {
			cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
			got = cfg
			return err
		},
	}

	rootApp.Commands = append(rootApp.Commands, probe)
	t.Cleanup(func() {
		rootApp.Commands = rootApp.Commands[:len(rootApp.Commands)-1]
	})

	code := run(context.Background(), []string{appName, "--log-level", "debug", "--prefix", "wpt", "probe"})
	require.Equal(t, 0, code)

	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, "production", got.LogFormat)
	assert.Equal(t, "wpt", got.Fixtures.Prefix)
}

func TestRootApp_RejectsInvalidPrefix(t *testing.T) {
	code := run(context.Background(), []string{appName, "--prefix", "{wpt}", "serve", "--port", "0"})
	assert.Equal(t, 1, code)
}
