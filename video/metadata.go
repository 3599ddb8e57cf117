package video

import (
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// Metadata describes the first video stream of a file as reported by ffprobe
type Metadata struct {
	Width       int
	Height      int
	Codec       string
	FrameRate   float64 // Source frame rate, 0 if unknown
	FrameCount  int     // Number of frames, 0 if the container does not say
	DurationSec float64
	Rotation    int // Display rotation in degrees, normalised to [0, 360)
}

// Resolution formats the frame size as WxH
func (m *Metadata) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// rotationEntries asks ffprobe for both places a display rotation can live:
// the legacy "rotate" tag and the display matrix side data
const rotationEntries = ":stream_tags=rotate:stream_side_data=rotation"

// ProbeDimensions returns the displayed frame size of the first video stream.
// ffmpeg applies the rotation metadata while decoding, so a 90° clip is
// reported with its sides swapped.
func ProbeDimensions(ffprobePath, videoFile string) (int, int, error) {
	cmd := exec.Command(ffprobePath, "-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=width,height"+rotationEntries,
		"-of", "default=noprint_wrappers=1", "--", videoFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get resolution: %w\nffprobe output: %s", err, extractFirstLine(string(output)))
	}

	meta, err := parseMetadata(string(output))
	if err != nil {
		return 0, 0, err
	}
	return meta.Width, meta.Height, nil
}

// ProbeMetadata collects stream and container information for the check command
func ProbeMetadata(ffprobePath, videoFile string) (*Metadata, error) {
	cmd := exec.Command(ffprobePath, "-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=width,height,codec_name,r_frame_rate,nb_frames:format=duration"+rotationEntries,
		"-of", "default=noprint_wrappers=1", "--", videoFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to probe video: %w\nffprobe output: %s", err, extractFirstLine(string(output)))
	}

	return parseMetadata(string(output))
}

// parseMetadata turns ffprobe key=value lines into Metadata.
// Unknown or "N/A" values are left at zero. Width and Height are the
// displayed size, after rotation.
func parseMetadata(output string) (*Metadata, error) {
	values := make(map[string]string)
	for _, line := range strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		// First occurrence wins, later streams are ignored
		if _, seen := values[key]; !seen {
			values[key] = value
		}
	}

	meta := &Metadata{Codec: values["codec_name"]}
	meta.Width, _ = strconv.Atoi(values["width"])
	meta.Height, _ = strconv.Atoi(values["height"])
	if meta.Width == 0 || meta.Height == 0 {
		return nil, fmt.Errorf("no video stream found")
	}

	meta.FrameCount, _ = strconv.Atoi(values["nb_frames"])
	meta.DurationSec, _ = strconv.ParseFloat(values["duration"], 64)
	meta.FrameRate = parseFrameRate(values["r_frame_rate"])

	// Side data wins over the tag, newer muxers only write the former
	rotation, ok := values["rotation"]
	if !ok {
		rotation = values["TAG:rotate"]
	}
	meta.Rotation = parseRotation(rotation)
	if meta.Rotation == 90 || meta.Rotation == 270 {
		meta.Width, meta.Height = meta.Height, meta.Width
	}

	return meta, nil
}

// parseRotation normalises degrees such as "-90" or "270.000" to [0, 360).
// Anything else than a right angle counts as no rotation.
func parseRotation(value string) int {
	degrees, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	r := int(math.Round(degrees)) % 360
	if r < 0 {
		r += 360
	}
	if r%90 != 0 {
		return 0
	}
	return r
}

// parseFrameRate parses ffprobe rationals such as "30000/1001" or plain numbers
func parseFrameRate(rate string) float64 {
	num, den, found := strings.Cut(rate, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
