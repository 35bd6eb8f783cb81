package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "x.db", "-p", "postgres://flag", "-l", "debug", "-m", ":9464"},
			expected: &Config{
				DatabasePath: "x.db",
				DirectoryDSN: "postgres://flag",
				LogLevel:     "debug",
				MetricsAddr:  ":9464",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "hg.json", "-v", "-d=y.db"},
			expected: &Config{DatabasePath: "y.db"},
		},
		{
			name:    "missing value",
			args:    []string{"-l"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
