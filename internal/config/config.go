// Package config loads furrystore settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds settings shared by the furrystore commands.
type Config struct {
	TickRate      time.Duration `env:"FURRY_STORE_TICK_RATE" envDefault:"100ms"`
	Palette       []string      `env:"FURRY_STORE_PALETTE" envDefault:"blue,red,green,yellow,magenta,cyan" envSeparator:","`
	LogFile       string        `env:"FURRY_STORE_LOG_FILE"`
	InspectFormat string        `env:"FURRY_STORE_INSPECT_FORMAT" envDefault:"json"`
	InspectStyle  string        `env:"FURRY_STORE_INSPECT_STYLE" envDefault:"monokai"`
}

// Load reads .env files and then the environment.
func Load() (Config, error) {
	if _, err := LoadDotEnv(DefaultDotEnvFiles...); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Palette = cleanPalette(cfg.Palette)
	if len(cfg.Palette) == 0 {
		return Config{}, fmt.Errorf("palette: at least one color is required")
	}
	if cfg.TickRate < 0 {
		return Config{}, fmt.Errorf("tick rate: must not be negative, got %s", cfg.TickRate)
	}
	return cfg, nil
}

func cleanPalette(colors []string) []string {
	out := colors[:0]
	for _, c := range colors {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
