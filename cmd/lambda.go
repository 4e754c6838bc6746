package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/wpt-fixtures/fixtures/app"
	"github.com/wpt-fixtures/fixtures/app/lambda"
	"github.com/wpt-fixtures/fixtures/util/conf"
	"github.com/wpt-fixtures/fixtures/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the fixtures as an AWS Lambda
runtime interface client. Proxy events from API Gateway or an
Application Load Balancer are translated to http requests and
routed to the fixtures.

The command blocks indefinitely, processing incoming events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

var lambdaDefaults = conf.DefaultConfig{
	"lambda_proxy_source": string(lambda.ProxySourceApiGatewayV2),
}

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Cli:      ctx,
		Defaults: lambdaDefaults,
		Log:      log,
	})
	if err != nil {
		return err
	}

	if err := cfg.ProxySource.Validate(); err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
