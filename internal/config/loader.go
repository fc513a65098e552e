package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadTetris loads the puzzle configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, DefaultTetrisConfig)
}

// LoadFlappy loads the side-scroller configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, DefaultFlappyConfig)
}

// load resolves a game config. Files are decoded over the hardcoded defaults,
// so a partial YAML file only overrides the keys it names. An explicit
// customPath must exist and validate; the implicit locations are skipped with
// a warning when broken.
func load[T validator](gameID, customPath string, defaults func() T) (T, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath, defaults)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := decodeFile(path, defaults)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			log.Warn("ignoring config file", "game", gameID, "path", path, "error", err)
			continue
		}
		log.Debug("loaded config", "game", gameID, "path", path)
		return cfg, nil
	}

	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		log.Warn("embedded config unreadable, using built-in values", "game", gameID, "error", err)
		return defaults(), nil
	}
	return cfg, nil
}

func decodeFile[T any](path string, defaults func() T) (T, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
