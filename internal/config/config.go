// Package config loads the server configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the process-wide configuration. It is loaded once at startup and
// treated as immutable afterwards; the JWT secret in particular is passed
// explicitly to the token service rather than read from ambient state.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	DB         DB     `yaml:"db"`
	HTTPServer HTTP   `yaml:"http_server"`
	Auth       Auth   `yaml:"auth"`
}

type DB struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:"data/staffdesk.db"`
}

type HTTP struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Auth struct {
	// JWTSecret signs every issued token. Required; at least 16 characters.
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	// TokenTTL is the lifetime of issued tokens. The console re-authenticates
	// after expiry; there is no refresh flow.
	TokenTTL time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"3h"`
	// BcryptCost is the password hashing work factor.
	BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"12"`
}

// MustLoad loads the configuration or panics. main calls this before any
// other setup; a server with a broken config should not start.
//
// If configPath names an existing file it is read first and env vars
// override it; otherwise configuration comes from the environment alone.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}

// Load reads the configuration from configPath (optional) and the
// environment.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("reading %s: %w", configPath, err)
			}
			return &cfg, nil
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}
