// Package config loads runtime configuration for the HealthGuard terminal
// dashboard.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. HEALTHGUARD_* environment variables.
//  4. Command-line flags.
//
// Flags
//
//	-d string   path of the local session database
//	-p string   Postgres DSN of the credential directory
//	-l string   log level (debug, info, warn, error)
//	-m string   listen address of the /metrics endpoint
//
// # JSON schema
//
//	{
//	  "database_path": "healthguard.db",
//	  "directory_dsn": "postgres://hg:hg@localhost:5432/hg",
//	  "seed_directory": true,
//	  "signing_secret": "change-me",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "metrics_addr": "127.0.0.1:9464"
//	}
//
// Empty JSON values leave the earlier value in place. The signing secret has
// no flag.
package config
