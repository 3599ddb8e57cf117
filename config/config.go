package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the user config directory
const FileName = "config.yaml"

// Config holds settings shared by all commands
type Config struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
	Width       int    `yaml:"width"`  // Output columns, 0 keeps the video width
	Height      int    `yaml:"height"` // Output rows, 0 keeps the video height
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/asciiplay/config.yaml or the platform equivalent
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "asciiplay", FileName), nil
}

// Load reads the config file at path. An empty path means the default
// location, where a missing file is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = defaultPath
	}

	cfg, err := Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	return cfg, nil
}

// Read parses a YAML config file on top of the defaults
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Write stores the config as YAML, creating the parent directory if needed
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values a user may have edited by hand
func (c *Config) Validate() error {
	if strings.TrimSpace(c.FFmpegPath) == "" {
		return errors.New("ffmpeg_path must not be empty")
	}
	if strings.TrimSpace(c.FFprobePath) == "" {
		return errors.New("ffprobe_path must not be empty")
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("width and height must not be negative (got %dx%d)", c.Width, c.Height)
	}
	return nil
}

// WithSize returns a copy of the config with non-zero overrides applied
func (c *Config) WithSize(width, height int) *Config {
	out := *c
	if width > 0 {
		out.Width = width
	}
	if height > 0 {
		out.Height = height
	}
	return &out
}
