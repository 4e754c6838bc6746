package conf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Level  string `conf:"level"`
	Nested struct {
		Prefix string `conf:"prefix"`
		Port   int    `conf:"port"`
	} `conf:"nested"`
}

var testDefaults = DefaultConfig{
	"level":         "info",
	"nested.prefix": "",
	"nested.port":   8080,
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse[testConfig](ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_DEFAULTS_",
	})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, 8080, cfg.Nested.Port)
}

func TestParse_Env(t *testing.T) {
	t.Setenv("CONFTEST_ENV_LEVEL", "debug")
	t.Setenv("CONFTEST_ENV_NESTED__PREFIX", "wpt")

	cfg, err := Parse[testConfig](ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_ENV_",
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "wpt", cfg.Nested.Prefix)
	assert.Equal(t, 8080, cfg.Nested.Port)
}

func TestParse_JSONFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"level":"warn","nested":{"port":9000}}`)

	cfg, err := Parse[testConfig](ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_JSON_",
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, 9000, cfg.Nested.Port)
}

func TestParse_DotenvFile(t *testing.T) {
	path := writeFile(t, "fixtures.env", "LEVEL=error\nNESTED__PREFIX=resources\n")

	cfg, err := Parse[testConfig](ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONFTEST_DOTENV_",
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, "resources", cfg.Nested.Prefix)
}

func TestParse_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.json", `{"level":"warn"}`)
	t.Setenv("CONFTEST_ORDER_LEVEL", "debug")

	cfg, err := Parse[testConfig](ParseOptions{
		EnvPrefix: "CONFTEST_ORDER_",
		FileName:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Level)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse[testConfig](ParseOptions{
		EnvPrefix: "CONFTEST_MISSING_",
		FileName:  filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestTransformEnv(t *testing.T) {
	assert.Equal(t, "log_level", transformEnv("LOG_LEVEL", ""))
	assert.Equal(t, "fixtures.prefix", transformEnv("FIXTURES__PREFIX", ""))
	assert.Equal(t, "fixtures.prefix", transformEnv("APP_FIXTURES__PREFIX", "APP_"))
}

func TestMergeDefaults(t *testing.T) {
	merged := MergeDefaults("fixtures",
		DefaultConfig{"prefix": ""},
		DefaultConfig{"enabled": true},
	)

	assert.Equal(t, DefaultConfig{
		"fixtures.prefix":  "",
		"fixtures.enabled": true,
	}, merged)
}

func TestConfigContext(t *testing.T) {
	_, err := GetConfigFromContext[testConfig](context.Background())
	assert.Error(t, err)

	ctx := ContextWithConfig(context.Background(), testConfig{Level: "debug"})

	cfg, err := GetConfigFromContext[testConfig](ctx)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)

	_, err = GetConfigFromContext[string](ctx)
	assert.Error(t, err)
}
