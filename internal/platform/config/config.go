package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-driven setting for the storefront API.
// The four STRIFE_* values configure the document store connection and
// are all required; everything else has a usable default.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// RedisAddr enables the redis-backed product cache when set. Empty
	// means an in-process cache is used instead.
	RedisAddr string `envconfig:"REDIS_ADDR" default:""`

	// Certificate is the base64-encoded PKCS#12 client credential for
	// the document store, unlocked by CertificatePassword.
	Certificate         string   `envconfig:"STRIFE_CERTIFICATE"`
	CertificatePassword string   `envconfig:"STRIFE_CERTIFICATE_PASSWORD"`
	DatabaseURLs        []string `envconfig:"STRIFE_DATABASE_URLS"`
	Database            string   `envconfig:"STRIFE_DATABASE"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateStore reports an error when any of the four store connection
// options is missing. The caller is expected to treat this as fatal.
func (c *Config) ValidateStore() error {
	var missing []string
	if c.Certificate == "" {
		missing = append(missing, "STRIFE_CERTIFICATE")
	}
	if c.CertificatePassword == "" {
		missing = append(missing, "STRIFE_CERTIFICATE_PASSWORD")
	}
	if len(c.DatabaseURLs) == 0 {
		missing = append(missing, "STRIFE_DATABASE_URLS")
	}
	if c.Database == "" {
		missing = append(missing, "STRIFE_DATABASE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("one or more store connection options are missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
