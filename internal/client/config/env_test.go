package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv("HEALTHGUARD_DIRECTORY_DSN", "postgres://env")
	t.Setenv("HEALTHGUARD_SEED_DIRECTORY", "true")
	t.Setenv("HEALTHGUARD_SIGNING_SECRET", "s3cret")

	cfg := &Config{DatabasePath: "keep.db", LogLevel: "info"}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "postgres://env", cfg.DirectoryDSN)
	assert.True(t, cfg.SeedDirectory)
	assert.Equal(t, "s3cret", cfg.SigningSecret)
	assert.Equal(t, "keep.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}
