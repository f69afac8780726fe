package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingJwtSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Env                  string        `mapstructure:"ENV"`
	Port                 int           `mapstructure:"PORT"`
	Database_url         string        `mapstructure:"DATABASE_URL"`
	Jwt_secret           string        `mapstructure:"JWT_SECRET"`
	Jwt_expires_in       time.Duration `mapstructure:"JWT_EXPIRES_IN"`
	Docs_username        string        `mapstructure:"DOCS_USERNAME"`
	Docs_password        string        `mapstructure:"DOCS_PASSWORD"`
	Rate_limit_rps       float64       `mapstructure:"RATE_LIMIT_RPS"`
	Rate_limit_burst     int           `mapstructure:"RATE_LIMIT_BURST"`
	Cors_allowed_origins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var defaults = map[string]any{
	"ENV":                  "dev",
	"PORT":                 8080,
	"DATABASE_URL":         "",
	"JWT_SECRET":           "",
	"JWT_EXPIRES_IN":       "24h",
	"DOCS_USERNAME":        "",
	"DOCS_PASSWORD":        "",
	"RATE_LIMIT_RPS":       5,
	"RATE_LIMIT_BURST":     10,
	"CORS_ALLOWED_ORIGINS": "*",
}

// Load reads an optional .env file, then the process environment.
// Environment variables win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading env file: %v", err)
	}

	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %v", err)
	}

	return &cfg, nil
}

// Validate checks the settings the http server cannot start without.
func (c *Config) Validate() error {
	if c.Jwt_secret == "" {
		return ErrMissingJwtSecret
	}

	if c.Jwt_expires_in <= 0 {
		return fmt.Errorf("JWT_EXPIRES_IN must be positive, got %s", c.Jwt_expires_in)
	}

	return nil
}

func (c *Config) AllowedOrigins() []string {
	var origins []string

	for _, o := range strings.Split(c.Cors_allowed_origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}
