// Package config loads plm settings from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/plm/internal/playlist"
)

const (
	appName        = "plm"
	configFileName = "config.toml"
)

// Config is plm's settings. Values missing from config.toml keep their
// Default.
type Config struct {
	DurationPolicy string `koanf:"duration_policy"` // "reject", "clamp" or "accept"
	ShuffleSeed    int64  `koanf:"shuffle_seed"`    // 0 seeds from the clock
	ImportDir      string `koanf:"import_dir"`      // base for relative import paths

	Theme ThemeConfig `koanf:"theme"`
}

// ThemeConfig holds the header gradient colors.
type ThemeConfig struct {
	Primary   string `koanf:"primary"`
	Secondary string `koanf:"secondary"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DurationPolicy: playlist.DurationReject.String(),
		Theme: ThemeConfig{
			Primary:   "#a78bfa",
			Secondary: "#f1a208",
		},
	}
}

// Load reads configuration. With an explicit path only that file is read
// and it must exist; otherwise the standard locations are tried in order of
// priority (last wins) and missing files are skipped.
func Load(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, err
		}
		return loadFrom([]string{explicitPath})
	}
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if _, ok := playlist.ParseDurationPolicy(cfg.DurationPolicy); !ok {
		return nil, fmt.Errorf("invalid duration_policy %q (want reject, clamp or accept)", cfg.DurationPolicy)
	}

	if cfg.ImportDir != "" {
		cfg.ImportDir = expandPath(cfg.ImportDir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/plm/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Policy returns the negative duration policy for new playlists.
func (c *Config) Policy() playlist.DurationPolicy {
	p, _ := playlist.ParseDurationPolicy(c.DurationPolicy)
	return p
}

// ResolveImportPath expands ~ and joins relative paths onto ImportDir.
func (c *Config) ResolveImportPath(path string) string {
	path = expandPath(path)
	if path == "" || filepath.IsAbs(path) || c.ImportDir == "" {
		return path
	}
	return filepath.Join(c.ImportDir, path)
}
