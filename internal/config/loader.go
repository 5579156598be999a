package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source records where a loaded config came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadRunner loads Cube Runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, Source, error) {
	return load("runner.yaml", customPath, defaultRunnerYAML, DefaultRunnerConfig, RunnerConfig.Validate)
}

// LoadClicker loads Chicken Clicker configuration.
// Search order: customPath -> ~/.arcade/configs/clicker.yaml -> ./configs/clicker.yaml -> embedded default
func LoadClicker(customPath string) (ClickerConfig, Source, error) {
	return load("clicker.yaml", customPath, defaultClickerYAML, DefaultClickerConfig, ClickerConfig.Validate)
}

// LoadFlock loads Chicken Flock configuration.
// Search order: customPath -> ~/.arcade/configs/flock.yaml -> ./configs/flock.yaml -> embedded default
func LoadFlock(customPath string) (FlockConfig, Source, error) {
	return load("flock.yaml", customPath, defaultFlockYAML, DefaultFlockConfig, FlockConfig.Validate)
}

// load walks the search order. Files are decoded on top of the built-in
// defaults, so a file only needs the keys it changes. A custom path that
// cannot be read, parsed or validated is an error; the other locations are
// skipped silently when unusable.
func load[T any](filename, customPath string, embedded []byte, builtin func() T, validate func(T) error) (T, Source, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath, builtin, validate)
		if err != nil {
			return builtin(), SourceBuiltin, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := decodeFile(userCfgPath, builtin, validate); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := decodeFile(filepath.Join("configs", filename), builtin, validate); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	if cfg, err := decode(embedded, builtin, validate); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return builtin(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

func decodeFile[T any](path string, builtin func() T, validate func(T) error) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(data, builtin, validate)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decode[T any](data []byte, builtin func() T, validate func(T) error) (T, error) {
	cfg := builtin()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid: %w", err)
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
