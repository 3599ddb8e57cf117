package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ResolveFFmpeg looks up the ffmpeg and ffprobe executables and returns their full paths.
// Empty names fall back to "ffmpeg" and "ffprobe" on PATH.
func ResolveFFmpeg(ffmpegPath, ffprobePath string) (string, string, error) {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}

	ffprobe, err := exec.LookPath(ffprobePath)
	if err != nil {
		return "", "", fmt.Errorf("ffprobe not found (%s). %s", ffprobePath, getInstallationInstructions())
	}

	ffmpeg, err := exec.LookPath(ffmpegPath)
	if err != nil {
		return "", "", fmt.Errorf("ffmpeg not found (%s). %s", ffmpegPath, getInstallationInstructions())
	}

	return ffmpeg, ffprobe, nil
}

// getInstallationInstructions returns platform-specific installation instructions
func getInstallationInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or yum install ffmpeg (CentOS/RHEL)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}
