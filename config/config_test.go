package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("Expected FFmpegPath 'ffmpeg', got %q", cfg.FFmpegPath)
	}
	if cfg.FFprobePath != "ffprobe" {
		t.Errorf("Expected FFprobePath 'ffprobe', got %q", cfg.FFprobePath)
	}
	if cfg.Width != 0 || cfg.Height != 0 {
		t.Errorf("Expected source size by default, got %dx%d", cfg.Width, cfg.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid, got: %v", err)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expected    Config
		expectError string
	}{
		{
			name:     "Full config",
			content:  "ffmpeg_path: /opt/ffmpeg/bin/ffmpeg\nffprobe_path: /opt/ffmpeg/bin/ffprobe\nwidth: 120\nheight: 40\n",
			expected: Config{FFmpegPath: "/opt/ffmpeg/bin/ffmpeg", FFprobePath: "/opt/ffmpeg/bin/ffprobe", Width: 120, Height: 40},
		},
		{
			name:     "Partial config keeps defaults",
			content:  "width: 80\n",
			expected: Config{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe", Width: 80},
		},
		{
			name:     "Empty file",
			content:  "",
			expected: Config{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe"},
		},
		{
			name:        "Negative width",
			content:     "width: -1\n",
			expectError: "must not be negative",
		},
		{
			name:        "Blank ffmpeg path",
			content:     "ffmpeg_path: \"  \"\n",
			expectError: "ffmpeg_path must not be empty",
		},
		{
			name:        "Malformed YAML",
			content:     "width: [1, 2\n",
			expectError: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			cfg, err := Read(path)

			if tt.expectError != "" {
				if err == nil {
					t.Fatalf("Expected error containing %q, got nil", tt.expectError)
				}
				if !strings.Contains(err.Error(), tt.expectError) {
					t.Errorf("Expected error containing %q, got: %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}
			if *cfg != tt.expected {
				t.Errorf("Read() = %+v, expected %+v", *cfg, tt.expected)
			}
		})
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for explicit config path that does not exist")
	}
}

func TestLoad_DefaultLocationMissing(t *testing.T) {
	// Point the user config dir at an empty directory
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") unexpected error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults when no config file exists, got %+v", *cfg)
	}
}

func TestLoad_DefaultLocation(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", configHome)
	t.Setenv("AppData", configHome)

	path, err := DefaultPath()
	if err != nil {
		t.Skipf("No user config dir on this platform: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := Write(&Config{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe", Width: 100}, path); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") unexpected error: %v", err)
	}
	if cfg.Width != 100 {
		t.Errorf("Expected width 100 from default config file, got %d", cfg.Width)
	}
}

func TestWithSize(t *testing.T) {
	base := &Config{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe", Width: 100, Height: 50}

	tests := []struct {
		name           string
		width, height  int
		expectedWidth  int
		expectedHeight int
	}{
		{"No overrides", 0, 0, 100, 50},
		{"Width only", 80, 0, 80, 50},
		{"Height only", 0, 20, 100, 20},
		{"Both", 160, 45, 160, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base.WithSize(tt.width, tt.height)
			if cfg.Width != tt.expectedWidth || cfg.Height != tt.expectedHeight {
				t.Errorf("WithSize(%d, %d) = %dx%d, expected %dx%d",
					tt.width, tt.height, cfg.Width, cfg.Height, tt.expectedWidth, tt.expectedHeight)
			}
		})
	}

	if base.Width != 100 || base.Height != 50 {
		t.Error("WithSize() must not modify the receiver")
	}
}
