package video

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Descriptor identifies the video to play and the rate to play it at.
// A Descriptor is only valid when built with ParseDescriptor or NewDescriptor.
type Descriptor struct {
	SourcePath string
	FrameRate  int
}

// NewDescriptor creates a descriptor from an already-parsed frame rate
func NewDescriptor(sourcePath string, frameRate int) (Descriptor, error) {
	if sourcePath == "" {
		return Descriptor{}, fmt.Errorf("%w: missing filename", ErrUsage)
	}
	if frameRate <= 0 {
		return Descriptor{}, fmt.Errorf("%w: %d (must be a positive integer)", ErrInvalidFrameRate, frameRate)
	}
	return Descriptor{SourcePath: sourcePath, FrameRate: frameRate}, nil
}

// ParseDescriptor validates the frame rate text given on the command line.
// The source path is not touched; opening it is left to the decoder.
func ParseDescriptor(sourcePath, frameRateText string) (Descriptor, error) {
	text := strings.TrimSpace(frameRateText)
	if text == "" {
		return Descriptor{}, fmt.Errorf("%w: missing fps", ErrUsage)
	}

	fps, err := strconv.Atoi(text)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %q is not a number", ErrInvalidFrameRate, frameRateText)
	}

	return NewDescriptor(sourcePath, fps)
}

// FrameInterval is the delay between two displayed frames
func (d Descriptor) FrameInterval() time.Duration {
	if d.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(d.FrameRate)
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s @ %d fps", d.SourcePath, d.FrameRate)
}
