package config

import (
	"fmt"
	"maps"
	"strings"
	"unicode"

	"github.com/wpt-fixtures/fixtures/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Fixtures is the fixture routing configuration
	Fixtures FixturesConfig `conf:"fixtures"`
}

type FixturesConfig struct {
	// Prefix is prepended to every fixture route
	Prefix string `conf:"prefix"`
}

// Validate reports config values that cannot be used at runtime.
func (c Config) Validate() error {
	return c.Fixtures.Validate()
}

// Validate rejects prefixes that would not form a literal route pattern.
func (c FixturesConfig) Validate() error {
	if strings.ContainsAny(c.Prefix, "{}") {
		return fmt.Errorf("invalid fixtures prefix %q: must not contain wildcards", c.Prefix)
	}

	if strings.ContainsFunc(c.Prefix, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) {
		return fmt.Errorf("invalid fixtures prefix %q: must not contain whitespace", c.Prefix)
	}

	return nil
}

// DefaultConfig holds the flattened defaults for Config.
var DefaultConfig = newDefaultConfig()

func newDefaultConfig() conf.DefaultConfig {
	defaults := conf.DefaultConfig{
		"log_level":  "info",
		"log_format": "production",
	}

	maps.Copy(defaults, conf.MergeDefaults("fixtures", conf.DefaultConfig{
		"prefix": "",
	}))

	return defaults
}
