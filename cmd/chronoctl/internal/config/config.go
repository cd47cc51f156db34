package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/client"
)

type contextKey string

const configKey contextKey = "chronoctl-config"

// DefaultServerURL is where the backend listens in a local setup.
const DefaultServerURL = "http://localhost:8081"

// FileConfig is the on-disk configuration (~/.chrono/config.yaml), overridable
// through CHRONO_* environment variables. Flags win over both.
type FileConfig struct {
	Server         string `yaml:"server" env:"CHRONO_SERVER"`
	NonInteractive bool   `yaml:"non_interactive" env:"CHRONO_NON_INTERACTIVE"`
}

// LoadFile reads the config file and applies environment overrides. A missing
// file yields defaults; a malformed file is an error.
func LoadFile() (FileConfig, error) {
	cfg := FileConfig{Server: DefaultServerURL}

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".chrono", "config.yaml")
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	if cfg.Server == "" {
		cfg.Server = DefaultServerURL
	}
	return cfg, nil
}

// GlobalConfig holds shared configuration for all chronoctl commands.
// This is injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	Provider       *client.Provider
}

// InjectConfig adds config to the cobra command context.
// This should be called in the root command's PersistentPreRun.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics.
// This should only be used in command RunE functions where we know
// the config has been injected by the root command.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("chronoctl: config not found in context - this is a bug in chronoctl")
	}
	return cfg
}
