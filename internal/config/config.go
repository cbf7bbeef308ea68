// Package config reads the party sheet server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration.
type Config struct {
	Addr     string `env:"PARTYSHEET_ADDR"      envDefault:":8080"`
	Roster   string `env:"PARTYSHEET_ROSTER"    envDefault:"data/roster.yaml"`
	DataDir  string `env:"PARTYSHEET_DATA_DIR"  envDefault:"data"`
	ChatDB   string `env:"PARTYSHEET_CHAT_DB"`
	Locale   string `env:"PARTYSHEET_LOCALE"    envDefault:"en-US"`
	NotifyGM bool   `env:"PARTYSHEET_NOTIFY_GM" envDefault:"true"`
}

// Load returns the configuration from the environment. An empty ChatDB
// keeps the chat log in memory.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("config: PARTYSHEET_ADDR is empty")
	}
	if cfg.Roster == "" {
		return Config{}, fmt.Errorf("config: PARTYSHEET_ROSTER is empty")
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
