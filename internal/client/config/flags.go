package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/healthguard/internal/flagx"
)

// parseFlags overlays cfg with the flags it owns; every other argument is
// filtered out first so that -c/-config and unknown flags do not fail the
// parse.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-p", "-l", "-m"})

	fs := flag.NewFlagSet("healthguard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")
	fs.StringVar(&cfg.DirectoryDSN, "p", cfg.DirectoryDSN, "postgres DSN of the credential directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	return fs.Parse(args)
}
