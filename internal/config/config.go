package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the on-disk configuration record.
type Config struct {
	// IconsRoot is the directory holding the .ico badge files.
	IconsRoot string `json:"icons_root"`
	// WorkspaceSubdir optionally namespaces workspace icons under
	// IconsRoot. Empty means workspace icons live in IconsRoot itself.
	WorkspaceSubdir string `json:"workspace_subdir,omitempty"`
}

// Dir returns the taskbadge directory under the user config root.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, "taskbadge"), nil
}

// Path returns the well-known config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default places the icons directory next to the config file.
func Default() Config {
	dir, err := Dir()
	if err != nil {
		return Config{IconsRoot: "icons"}
	}
	return Config{IconsRoot: filepath.Join(dir, "icons")}
}

// Load reads the config file at path. A missing or corrupt file falls
// back to defaults: the returned Config is always usable and the error
// is advisory, for drivers that want to log it. IconsRoot comes back
// absolute.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return finalize(cfg), nil
		}
		return finalize(cfg), fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return finalize(Default()), fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.IconsRoot == "" {
		cfg.IconsRoot = Default().IconsRoot
	}
	return finalize(cfg), nil
}

// finalize enforces the absolute-path invariant once, at load time.
func finalize(cfg Config) Config {
	if abs, err := filepath.Abs(cfg.IconsRoot); err == nil {
		cfg.IconsRoot = abs
	}
	return cfg
}
