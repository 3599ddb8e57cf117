package utils

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestResolveFFmpeg(t *testing.T) {
	_, ffmpegErr := exec.LookPath("ffmpeg")
	_, ffprobeErr := exec.LookPath("ffprobe")

	ffmpeg, ffprobe, err := ResolveFFmpeg("", "")

	if ffmpegErr == nil && ffprobeErr == nil {
		// Both are available, resolution should pass
		if err != nil {
			t.Fatalf("Expected resolution to pass when both ffmpeg and ffprobe are available, got error: %v", err)
		}
		if !strings.Contains(filepath.Base(ffmpeg), "ffmpeg") {
			t.Errorf("Expected ffmpeg path, got %q", ffmpeg)
		}
		if !strings.Contains(filepath.Base(ffprobe), "ffprobe") {
			t.Errorf("Expected ffprobe path, got %q", ffprobe)
		}
		return
	}

	// At least one is missing, resolution should fail
	if err == nil {
		t.Fatal("Expected resolution to fail when ffmpeg or ffprobe is missing")
	}
	if !strings.Contains(err.Error(), "Install with:") && !strings.Contains(err.Error(), "Download from") {
		t.Errorf("Expected error message to contain installation instructions, got: %v", err)
	}
}

func TestResolveFFmpeg_MissingBinary(t *testing.T) {
	tests := []struct {
		name        string
		ffmpegPath  string
		ffprobePath string
		mentions    string
	}{
		{"Missing ffprobe", "ffmpeg", "/nonexistent/bin/ffprobe-missing", "ffprobe"},
		{"Missing ffmpeg", "/nonexistent/bin/ffmpeg-missing", "ffprobe", "ffmpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mentions == "ffmpeg" {
				// ffprobe is checked first, it has to resolve for the ffmpeg error to show
				if _, err := exec.LookPath("ffprobe"); err != nil {
					t.Skip("ffprobe not installed")
				}
			}

			_, _, err := ResolveFFmpeg(tt.ffmpegPath, tt.ffprobePath)
			if err == nil {
				t.Fatal("Expected error for missing executable, got nil")
			}
			if !strings.HasPrefix(err.Error(), tt.mentions+" not found") {
				t.Errorf("Expected error to start with %q, got: %v", tt.mentions+" not found", err)
			}
		})
	}
}

func TestGetInstallationInstructions(t *testing.T) {
	instructions := getInstallationInstructions()

	// Test that instructions are not empty
	if instructions == "" {
		t.Error("Installation instructions should not be empty")
	}

	// Test platform-specific instructions
	switch runtime.GOOS {
	case "darwin":
		if !strings.Contains(instructions, "brew install ffmpeg") {
			t.Errorf("Expected macOS instructions to mention brew, got: %s", instructions)
		}
	case "linux":
		if !strings.Contains(instructions, "apt-get install ffmpeg") && !strings.Contains(instructions, "yum install ffmpeg") {
			t.Errorf("Expected Linux instructions to mention package managers, got: %s", instructions)
		}
	case "windows":
		if !strings.Contains(instructions, "ffmpeg.org") && !strings.Contains(instructions, "PATH") {
			t.Errorf("Expected Windows instructions to mention ffmpeg.org and PATH, got: %s", instructions)
		}
	default:
		if !strings.Contains(instructions, "ffmpeg.org") {
			t.Errorf("Expected default instructions to mention ffmpeg.org, got: %s", instructions)
		}
	}
}
