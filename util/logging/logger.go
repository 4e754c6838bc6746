package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// New builds the application logger. Unknown levels fall back to info,
// any format other than development logs json.
func New(app, level, format string) (*zap.Logger, error) {
	var config zap.Config
	if format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.InitialFields = map[string]any{
		"app": app,
	}

	config.Level = parseLevel(level)

	return config.Build()
}

func parseLevel(level string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(level); err == nil && level != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

func NamedLogger(name string) func(log *zap.Logger) *zap.Logger {
	return func(log *zap.Logger) *zap.Logger {
		return log.Named(name)
	}
}

// DecorateLogger renames the logger for every component of a fx module.
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(NamedLogger(name))
}
