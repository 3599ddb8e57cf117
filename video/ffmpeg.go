package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strconv"

	"github.com/lepinkainen/asciiplay/ascii"
	"github.com/lepinkainen/asciiplay/utils"
)

// FFmpegDecoder decodes video files by piping raw rgb24 frames out of an
// ffmpeg child process. One decoder can open any number of streams.
type FFmpegDecoder struct {
	FFmpegPath  string
	FFprobePath string

	// Output size. Zero keeps the source size; setting only one side keeps
	// the source aspect ratio.
	Width  int
	Height int

	ffmpeg  string
	ffprobe string
}

// NewFFmpegDecoder creates a decoder using the given executables
func NewFFmpegDecoder(ffmpegPath, ffprobePath string) *FFmpegDecoder {
	return &FFmpegDecoder{FFmpegPath: ffmpegPath, FFprobePath: ffprobePath}
}

// Init resolves the ffmpeg and ffprobe executables. Open calls it when needed.
func (d *FFmpegDecoder) Init() error {
	if d.ffmpeg != "" && d.ffprobe != "" {
		return nil
	}

	ffmpeg, ffprobe, err := utils.ResolveFFmpeg(d.FFmpegPath, d.FFprobePath)
	if err != nil {
		return err
	}

	d.ffmpeg, d.ffprobe = ffmpeg, ffprobe
	return nil
}

// FFprobe returns the resolved ffprobe executable, resolving it if needed
func (d *FFmpegDecoder) FFprobe() (string, error) {
	if err := d.Init(); err != nil {
		return "", err
	}
	return d.ffprobe, nil
}

// Open starts decoding path. The file is checked before any process is spawned.
func (d *FFmpegDecoder) Open(ctx context.Context, path string) (Stream, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceOpen, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceOpen, path)
	}

	if err := d.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceOpen, err)
	}

	srcWidth, srcHeight, err := ProbeDimensions(d.ffprobe, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceOpen, path, err)
	}
	width, height := outputSize(srcWidth, srcHeight, d.Width, d.Height)

	args := []string{"-nostdin", "-loglevel", "error", "-i", path, "-an"}
	if width != srcWidth || height != srcHeight {
		args = append(args, "-vf", "scale="+strconv.Itoa(width)+":"+strconv.Itoa(height))
	}
	args = append(args, "-f", "rawvideo", "-pix_fmt", "rgb24", "-")

	cmd := exec.CommandContext(ctx, d.ffmpeg, args...)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to access the ffmpeg stdout pipe: %w", ErrSourceOpen, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: failed to start ffmpeg: %w", ErrSourceOpen, err)
	}

	return &ffmpegStream{
		cmd:    cmd,
		pipe:   pipe,
		stderr: stderr,
		frame: ascii.Frame{
			Width:  width,
			Height: height,
			Pix:    make([]byte, width*height*ascii.BytesPerPixel),
		},
	}, nil
}

// outputSize applies the requested size to the source dimensions
func outputSize(srcWidth, srcHeight, width, height int) (int, int) {
	switch {
	case width > 0 && height > 0:
		return width, height
	case width > 0:
		return width, scaleSide(srcHeight, width, srcWidth)
	case height > 0:
		return scaleSide(srcWidth, height, srcHeight), height
	default:
		return srcWidth, srcHeight
	}
}

func scaleSide(side, num, den int) int {
	scaled := int(math.Round(float64(side) * float64(num) / float64(den)))
	if scaled < 1 {
		return 1
	}
	return scaled
}

type ffmpegStream struct {
	cmd    *exec.Cmd
	pipe   io.ReadCloser
	stderr *bytes.Buffer
	frame  ascii.Frame

	waited  bool
	waitErr error
}

// Next reads one full frame into the shared buffer
func (s *ffmpegStream) Next() (*ascii.Frame, error) {
	if s.waited {
		return nil, io.EOF
	}

	n, err := io.ReadFull(s.pipe, s.frame.Pix)
	switch {
	case err == nil:
		return &s.frame, nil
	case errors.Is(err, io.EOF):
		if werr := s.wait(); werr != nil {
			return nil, fmt.Errorf("%w: ffmpeg exited: %w: %s", ErrDecode, werr, lastLine(s.stderr.String()))
		}
		return nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		_ = s.wait()
		return nil, fmt.Errorf("%w: truncated frame (%d of %d bytes): %s", ErrDecode, n, len(s.frame.Pix), lastLine(s.stderr.String()))
	default:
		_ = s.Close()
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
}

// Close stops ffmpeg if it is still running and reaps the process
func (s *ffmpegStream) Close() error {
	if s.waited {
		return nil
	}
	_ = s.pipe.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.wait()
	return nil
}

func (s *ffmpegStream) wait() error {
	if !s.waited {
		s.waitErr = s.cmd.Wait()
		s.waited = true
	}
	return s.waitErr
}
