package app

import (
	"os"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Config holds the complete application configuration, loadable from
// environment variables (SUQ_ prefix), a .env file, or YAML config files.
// Command-specific flags are parsed by the commands themselves.
type Config struct {
	// APIEndpoint is the single external configuration value: every
	// request and asset URL is built from it.
	APIEndpoint string `usage:"Storefront API base endpoint (SUQ_API_ENDPOINT or API_ENDPOINT)"`
}

// LoadConfig loads configuration from .env, environment variables, and YAML
// config files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; the environment wins anyway.
	_ = godotenv.Load()

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "SUQ",
		SkipFlags: true,
		Files:     []string{"config.yaml", "/etc/suq/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if cfg.APIEndpoint == "" {
		return nil, errors.New("API endpoint is required: set SUQ_API_ENDPOINT or API_ENDPOINT")
	}

	return &cfg, nil
}

// applyPlatformDefaults honors the bare API_ENDPOINT variable used by the
// hosting platform alongside the SUQ_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.APIEndpoint == "" {
		if v := os.Getenv("API_ENDPOINT"); v != "" {
			c.APIEndpoint = v
		}
	}
}
