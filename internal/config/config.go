// Package config loads the user settings shared by the control panels.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "rsx-arm"
	configFile = "config.yaml"

	// CurrentVersion is the only supported config file version.
	CurrentVersion = 1
)

// DefaultCameraTopics are offered by the dashboard's camera selector.
var DefaultCameraTopics = []string{
	"/camera/image_raw",
	"/camera/color/image_raw",
	"/camera/rgb/image_raw",
}

// Config is the on-disk settings file.
type Config struct {
	Version      int      `yaml:"version"`
	Stylesheet   string   `yaml:"stylesheet,omitempty"`    // Empty means styles.yaml in the working directory
	CameraTopics []string `yaml:"camera_topics,omitempty"` // Options for the camera topic selector
	LogLevel     string   `yaml:"log_level,omitempty"`     // Overridden by RSX_LOG_LEVEL when set
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Version:      CurrentVersion,
		CameraTopics: append([]string(nil), DefaultCameraTopics...),
	}
}

// Dir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/rsx-arm or $HOME/.config/rsx-arm
//   - macOS: $HOME/.config/rsx-arm
//   - Windows: %LOCALAPPDATA%\rsx-arm
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".config", appName), nil
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config at path, or at the default location when path is
// empty. A missing file yields Default() and a missing version key is read
// as CurrentVersion.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", cfg.Version, CurrentVersion)
	}
	if len(cfg.CameraTopics) == 0 {
		cfg.CameraTopics = append([]string(nil), DefaultCameraTopics...)
	}
	return &cfg, nil
}

// Save writes the config to path atomically, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# RSX Arm control panel settings
#
# stylesheet:    style file applied at startup (default: ./styles.yaml)
# camera_topics: entries for the dashboard camera topic selector
# log_level:     debug, info, warn or error (RSX_LOG_LEVEL wins when set)

`)
	data = append(header, data...)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}
