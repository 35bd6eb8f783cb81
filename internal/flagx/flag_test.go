package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "flag with separate value",
			args:         []string{"-d", "hg.db", "-x", "1"},
			allowedFlags: []string{"-d", "-l"},
			want:         []string{"-d", "hg.db"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-l=debug", "-x", "1"},
			allowedFlags: []string{"-d", "-l"},
			want:         []string{"-l=debug"},
		},
		{
			name:         "equals value may start with a dash",
			args:         []string{"--config=--odd.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--odd.json"},
		},
		{
			name:         "next flag is not taken as value",
			args:         []string{"-d", "-l", "warn"},
			allowedFlags: []string{"-d", "-l"},
			want:         []string{"-d", "-l", "warn"},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-m"},
			allowedFlags: []string{"-m"},
			want:         []string{"-m"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"positional", "-x", "1", "--y=2"},
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
		{
			name:         "repeats kept in order",
			args:         []string{"-d", "a.db", "-m", ":9090", "-d", "b.db"},
			allowedFlags: []string{"-d", "-m"},
			want:         []string{"-d", "a.db", "-m", ":9090", "-d", "b.db"},
		},
		{
			name:         "nil args",
			args:         nil,
			allowedFlags: []string{"-d"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/hg.json"}, "/etc/hg.json"},
		{"long", []string{"-config", "/etc/hg.json", "-d", "x.db"}, "/etc/hg.json"},
		{"equals", []string{"-l", "debug", "-config=/tmp/hg.json"}, "/tmp/hg.json"},
		{"last wins", []string{"-c", "/a.json", "-config", "/b.json"}, "/b.json"},
		{"absent", []string{"-d", "x.db"}, ""},
		{"missing value", []string{"-c"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
