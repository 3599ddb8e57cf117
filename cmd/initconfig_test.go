package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lepinkainen/asciiplay/config"
	"github.com/lepinkainen/asciiplay/video"
)

func TestInitConfigCmd_WritesLoadableFile(t *testing.T) {
	appCtx, _, _ := newTestAppContext(t)
	appCtx.ConfigPath = filepath.Join(t.TempDir(), "nested", "config.yaml")

	cmd := &InitConfigCmd{FFmpeg: "/opt/ffmpeg/bin/ffmpeg", Width: 120}
	if err := cmd.Run(appCtx); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	cfg, err := config.Load(appCtx.ConfigPath)
	if err != nil {
		t.Fatalf("Load() of written config failed: %v", err)
	}
	if cfg.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Expected ffmpeg path to be stored, got %q", cfg.FFmpegPath)
	}
	if cfg.FFprobePath != "ffprobe" {
		t.Errorf("Expected default ffprobe path, got %q", cfg.FFprobePath)
	}
	if cfg.Width != 120 || cfg.Height != 0 {
		t.Errorf("Expected size 120x0, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestInitConfigCmd_ExistingFile(t *testing.T) {
	appCtx, _, _ := newTestAppContext(t)
	appCtx.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(appCtx.ConfigPath, []byte("width: 10\n"), 0644); err != nil {
		t.Fatalf("Failed to create config: %v", err)
	}

	err := (&InitConfigCmd{}).Run(appCtx)
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("Expected refusal to overwrite, got: %v", err)
	}

	if err := (&InitConfigCmd{Force: true, Height: 40}).Run(appCtx); err != nil {
		t.Fatalf("Run() with --force unexpected error: %v", err)
	}
	cfg, err := config.Load(appCtx.ConfigPath)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Height != 40 {
		t.Errorf("Expected height 40 after overwrite, got %d", cfg.Height)
	}
}

func TestInitConfigCmd_NegativeSize(t *testing.T) {
	appCtx, _, _ := newTestAppContext(t)
	appCtx.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")

	if err := (&InitConfigCmd{Width: -5}).Run(appCtx); !errors.Is(err, video.ErrUsage) {
		t.Errorf("Expected ErrUsage, got: %v", err)
	}
	if _, err := os.Stat(appCtx.ConfigPath); !os.IsNotExist(err) {
		t.Error("Nothing should be written for invalid input")
	}
}
