package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings for the accordion list.
type Config struct {
	DataPath    string        // empty uses the builtin catalog
	ReloadEvery time.Duration // zero disables file reloads
	Animation   time.Duration
	Filter      string
	LogPath     string

	// ResolvedFrom is the file that was read, empty when defaults were used.
	ResolvedFrom string
}

const (
	defaultConfigPath  = "~/.config/accordion/config.toml"
	defaultLogPath     = "~/.local/state/accordion/accordion.log"
	defaultAnimationMS = 200
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Animation: defaultAnimationMS * time.Millisecond,
		LogPath:   mustExpand(defaultLogPath),
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataPath      string `toml:"data_path"`
		ReloadSeconds int    `toml:"reload_seconds"`
		AnimationMS   *int   `toml:"animation_ms"`
		Filter        string `toml:"filter"`
		LogPath       string `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.ResolvedFrom = resolved

	if data := strings.TrimSpace(raw.DataPath); data != "" {
		expanded, err := expandPath(data)
		if err != nil {
			return Config{}, fmt.Errorf("data_path: %w", err)
		}
		cfg.DataPath = expanded
	}

	if raw.ReloadSeconds > 0 {
		cfg.ReloadEvery = time.Duration(raw.ReloadSeconds) * time.Second
	}
	if raw.AnimationMS != nil && *raw.AnimationMS >= 0 {
		cfg.Animation = time.Duration(*raw.AnimationMS) * time.Millisecond
	}

	cfg.Filter = strings.TrimSpace(raw.Filter)

	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}

	return cfg, nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
