package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/healthguard/internal/flagx"
)

// jsonConfig is the on-disk shape of the config file.
type jsonConfig struct {
	DatabasePath  string `json:"database_path"`
	DirectoryDSN  string `json:"directory_dsn"`
	SeedDirectory *bool  `json:"seed_directory"`
	SigningSecret string `json:"signing_secret"`
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"`
	MetricsAddr   string `json:"metrics_addr"`
}

// parseJSON overlays cfg with the file named by -c/-config. Without the flag
// it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setIfNotEmpty(&cfg.DatabasePath, jc.DatabasePath)
	setIfNotEmpty(&cfg.DirectoryDSN, jc.DirectoryDSN)
	setIfNotEmpty(&cfg.SigningSecret, jc.SigningSecret)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	setIfNotEmpty(&cfg.MetricsAddr, jc.MetricsAddr)
	if jc.SeedDirectory != nil {
		cfg.SeedDirectory = *jc.SeedDirectory
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
