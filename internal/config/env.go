package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultFile is read when present; environment variables override it.
const DefaultFile = "config.yml"

type Env struct {
	AppAddr     string   `yaml:"app_addr" env:"APP_ADDR" env-default:":8080"`
	GinMode     string   `yaml:"gin_mode" env:"GIN_MODE"`
	DataDir     string   `yaml:"data_dir" env:"DATA_DIR" env-default:"./data"`
	Timezone    string   `yaml:"timezone" env:"TIMEZONE" env-default:"UTC"`
	APIVersion  string   `yaml:"api_version" env:"API_VERSION" env-default:"v1"`
	LogLevel    string   `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	CORSOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:","`

	RateLimitRPS   float64 `yaml:"rate_limit_rps" env:"RATE_LIMIT_RPS" env-default:"0"`
	RateLimitBurst int     `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST" env-default:"20"`
}

// LoadEnv reads config from path (when it exists) and the environment.
func LoadEnv(path string) (Env, error) {
	var env Env
	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, &env); err != nil {
			return Env{}, fmt.Errorf("config error: %w", err)
		}
	case path == "" || errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&env); err != nil {
			return Env{}, fmt.Errorf("config error: %w", err)
		}
	default:
		return Env{}, fmt.Errorf("config error: %w", statErr)
	}

	env.APIVersion = strings.Trim(strings.TrimSpace(env.APIVersion), "/")
	if env.APIVersion == "" {
		env.APIVersion = "v1"
	}
	if _, err := env.Location(); err != nil {
		return Env{}, err
	}
	return env, nil
}

// Location resolves TIMEZONE; "today" for flight listings and the delete
// guard is taken in this location.
func (e Env) Location() (*time.Location, error) {
	name := strings.TrimSpace(e.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("config error: TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (e Env) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(e.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Usage describes the supported environment variables.
func Usage() string {
	var env Env
	desc, err := cleanenv.GetDescription(&env, nil)
	if err != nil {
		return ""
	}
	return desc
}
