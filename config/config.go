package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents configuration for larray-eurostat
type Config struct {
	EurostatSdmxURL       string        `envconfig:"EUROSTAT_SDMX_URL"`
	EurostatAgencyID      string        `envconfig:"EUROSTAT_AGENCY_ID"`
	EurostatLocale        string        `envconfig:"EUROSTAT_LOCALE"`
	DefaultRequestTimeout time.Duration `envconfig:"DEFAULT_REQUEST_TIMEOUT"`
	UserAgent             string        `envconfig:"USER_AGENT"`
}

var cfg *Config

// Get returns the default config with any modifications through environment
// variables
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		EurostatSdmxURL:       "https://ec.europa.eu/eurostat/api/dissemination/sdmx/2.1",
		EurostatAgencyID:      "ESTAT",
		EurostatLocale:        "en",
		DefaultRequestTimeout: 10 * time.Second,
		UserAgent:             "larray-eurostat",
	}

	return cfg, envconfig.Process("", cfg)
}
