package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(Config{
		DatabasePath: "healthguard.db",
		LogLevel:     "info",
		LogFormat:    "text",
	}, c))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"database_path":  "json.db",
		"directory_dsn":  "postgres://json",
		"signing_secret": "json-secret",
		"log_level":      "debug",
		"metrics_addr":   ":1111",
	})
	t.Setenv("HEALTHGUARD_LOG_LEVEL", "warn")
	t.Setenv("HEALTHGUARD_METRICS_ADDR", ":2222")

	cfg, err := LoadConfig([]string{"-c", path, "-m", ":3333"})
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(&Config{
		DatabasePath:  "json.db",
		DirectoryDSN:  "postgres://json",
		SigningSecret: "json-secret",
		LogLevel:      "warn",
		LogFormat:     "text",
		MetricsAddr:   ":3333",
	}, cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing json file", func(t *testing.T) {
		_, err := LoadConfig([]string{"-c", "/does/not/exist.json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "json config")
	})

	t.Run("bad env bool", func(t *testing.T) {
		t.Setenv("HEALTHGUARD_SEED_DIRECTORY", "maybe")
		_, err := LoadConfig(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "env config")
	})
}
