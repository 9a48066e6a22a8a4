package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config captures hcalc's file locations and palette choices.
type Config struct {
	StatePath    string
	LogPath      string
	LightPalette string
	DarkPalette  string
}

const (
	defaultConfigPath   = "~/.config/hcalc/config.toml"
	defaultStatePath    = "~/.local/state/hcalc/state.toml"
	defaultLogPath      = "~/.local/state/hcalc/hcalc.log"
	defaultLightPalette = "Dawnfox"
	defaultDarkPalette  = "Nightfox"

	envPrefix = "HCALC"
)

// Load locates and parses the hcalc config, falling back to defaults when
// the file is missing. HCALC_* environment variables override file values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("state_path", defaultStatePath)
	v.SetDefault("log_path", defaultLogPath)
	v.SetDefault("light_palette", defaultLightPalette)
	v.SetDefault("dark_palette", defaultDarkPalette)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if _, err := os.Stat(resolved); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
	} else {
		v.SetConfigFile(resolved)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg := Config{
		StatePath:    pathOrDefault(v.GetString("state_path"), defaultStatePath),
		LogPath:      pathOrDefault(v.GetString("log_path"), defaultLogPath),
		LightPalette: valueOrDefault(v.GetString("light_palette"), defaultLightPalette),
		DarkPalette:  valueOrDefault(v.GetString("dark_palette"), defaultDarkPalette),
	}
	return cfg, nil
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func pathOrDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		value = def
	}
	return mustExpand(value)
}

func valueOrDefault(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
