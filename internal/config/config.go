// Package config loads ~/.config/rectlab/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rectlab/internal/logging"
)

// EnvConfig overrides the config file location.
const EnvConfig = "RECTLAB_CONFIG"

type Config struct {
	Logging logging.Config `yaml:"logging"`
	View    ViewConfig     `yaml:"view"`
}

// ViewConfig sets the terminal viewer's initial state.
type ViewConfig struct {
	Zoom             float64 `yaml:"zoom"`
	ShowHelp         *bool   `yaml:"show_help"`
	ShowSidebar      bool    `yaml:"show_sidebar"`
	FillIntersection *bool   `yaml:"fill_intersection"`
}

func Defaults() Config {
	return Config{View: ViewConfig{Zoom: 1.0}}
}

// HelpVisible defaults to true when unset.
func (v ViewConfig) HelpVisible() bool { return v.ShowHelp == nil || *v.ShowHelp }

// FillOverlap defaults to true when unset.
func (v ViewConfig) FillOverlap() bool { return v.FillIntersection == nil || *v.FillIntersection }

// DefaultPath resolves the config path: $RECTLAB_CONFIG, then
// $XDG_CONFIG_HOME/rectlab/config.yaml, then ~/.config/rectlab/config.yaml.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "rectlab", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rectlab", "config.yaml"), nil
}

// Load reads path over Defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.View.Zoom <= 0 {
		cfg.View.Zoom = 1.0
	}
	return cfg, nil
}
