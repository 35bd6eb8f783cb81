package config

import "fmt"

// Config holds runtime settings for the HealthGuard CLI.
//
// An empty DirectoryDSN selects the built-in static directory; an empty
// SigningSecret stores the session snapshot as plain JSON; an empty
// MetricsAddr disables the metrics endpoint.
type Config struct {
	DatabasePath  string `split_words:"true"`
	DirectoryDSN  string `split_words:"true"`
	SeedDirectory bool   `split_words:"true"`
	SigningSecret string `split_words:"true"`
	LogLevel      string `split_words:"true"`
	LogFormat     string `split_words:"true"`
	MetricsAddr   string `split_words:"true"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "healthguard.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and args (usually os.Args[1:]), in that order.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
