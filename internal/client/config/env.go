package config

import "github.com/kelseyhightower/envconfig"

// envPrefix is prepended to every variable name, e.g. HEALTHGUARD_LOG_LEVEL.
const envPrefix = "healthguard"

// parseEnv overlays cfg with the variables that are set. Unset variables
// leave fields untouched.
func parseEnv(cfg *Config) error {
	return envconfig.Process(envPrefix, cfg)
}
