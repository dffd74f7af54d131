package config

import (
	"log"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with values from the environment. Only variables
// that are actually set override earlier sources; there are no envDefault
// tags, so absent variables leave the config untouched.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		log.Printf("error parsing environment: %v", err)
	}
}
