package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lepinkainen/asciiplay/ascii"
	"github.com/lepinkainen/asciiplay/types"
	"github.com/lepinkainen/asciiplay/ui"
	"github.com/lepinkainen/asciiplay/video"
	"github.com/schollz/progressbar/v3"
)

// CheckCmd decodes and renders every frame of a video without showing it.
// It reports how fast frames can be produced, which bounds a sensible fps for play.
type CheckCmd struct {
	File   string `arg:"" name:"filename" help:"Video file to check" type:"existingfile"`
	Width  int    `help:"Output width in characters (0 keeps the video width or config value)" default:"0"`
	Height int    `help:"Output height in characters (0 keeps the video height or config value)" default:"0"`
}

// checkResult summarises a full decode and render pass
type checkResult struct {
	Frames        int
	Width, Height int
	Elapsed       time.Duration
}

// Rate returns frames rendered per second
func (r *checkResult) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Frames) / r.Elapsed.Seconds()
}

func (cmd *CheckCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	if appCtx == nil {
		appCtx = types.NewAppContext(types.DefaultVersion, nil)
	}
	if cmd.Width < 0 || cmd.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative", video.ErrUsage)
	}
	cfg := appCtx.Config.WithSize(cmd.Width, cmd.Height)
	out := appCtx.Stderr

	decoder := video.NewFFmpegDecoder(cfg.FFmpegPath, cfg.FFprobePath)
	decoder.Width = cfg.Width
	decoder.Height = cfg.Height

	ffprobe, err := decoder.FFprobe()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.HeaderStyle.Render(fmt.Sprintf("ASCII Player %s", appCtx.Version)))

	if err := video.ValidateVideoIntegrity(ffprobe, cmd.File); err != nil {
		return fmt.Errorf("%w: %w", video.ErrSourceOpen, err)
	}

	meta, err := video.ProbeMetadata(ffprobe, cmd.File)
	if err != nil {
		return fmt.Errorf("%w: %w", video.ErrSourceOpen, err)
	}

	fmt.Fprintln(out, ui.ProcessingStyle.Render(fmt.Sprintf("📹 %s", cmd.File)))
	printInfo(out, "📏 Resolution: %s", meta.Resolution())
	if meta.Rotation != 0 {
		printInfo(out, "🔄 Rotation: %d°", meta.Rotation)
	}
	printInfo(out, "🎥 Codec: %s", meta.Codec)
	if meta.FrameRate > 0 {
		printInfo(out, "⏱️  Source frame rate: %.2f fps", meta.FrameRate)
	}
	if meta.FrameCount > 0 {
		printInfo(out, "🎞️  Frames: %d", meta.FrameCount)
	}

	bar := newFrameBar(meta.FrameCount, out)
	result, err := renderAll(ctx, decoder, cmd.File, func() { _ = bar.Add(1) })
	_ = bar.Finish()
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "%s\n", ui.WarnStyle.Render("⏹  Check interrupted"))
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Rendered %d frames (%dx%d characters) in %s, %.1f frames/s",
		result.Frames, result.Width, result.Height, result.Elapsed.Round(time.Millisecond), result.Rate())))

	if meta.FrameRate > 0 && result.Frames > 0 && result.Rate() < meta.FrameRate {
		fmt.Fprintf(out, "%s\n", ui.WarnStyle.Render(fmt.Sprintf("⚠️  Rendering is slower than the source (%.1f fps), playback will lag behind real time", meta.FrameRate)))
	}

	return nil
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ui.InfoStyle.Render("   "+fmt.Sprintf(format, args...)))
}

// renderAll decodes and renders every frame of path, calling tick after each one
func renderAll(ctx context.Context, decoder video.Decoder, path string, tick func()) (*checkResult, error) {
	stream, err := decoder.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = stream.Close() }()

	result := &checkResult{}
	start := time.Now()

	for {
		frame, err := stream.Next()
		if errors.Is(err, io.EOF) || (err == nil && frame == nil) {
			break
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, err
		}

		text := ascii.Render(frame)
		result.Frames++
		result.Width, result.Height = text.Width(), text.Height()
		tick()
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// newFrameBar shows a counting bar, or a spinner when the container has no frame count
func newFrameBar(total int, w io.Writer) *progressbar.ProgressBar {
	limit := int64(total)
	if total <= 0 {
		limit = -1
	}
	return progressbar.NewOptions64(limit,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("frames"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)
}
