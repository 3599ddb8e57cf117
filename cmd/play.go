package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lepinkainen/asciiplay/player"
	"github.com/lepinkainen/asciiplay/types"
	"github.com/lepinkainen/asciiplay/ui"
	"github.com/lepinkainen/asciiplay/utils"
	"github.com/lepinkainen/asciiplay/video"
)

// PlayCmd renders a video file as ASCII art in the terminal at a fixed frame rate
type PlayCmd struct {
	File   string `arg:"" name:"filename" help:"Video file to play"`
	FPS    string `arg:"" name:"fps" help:"Playback frame rate (positive integer)"`
	Width  int    `help:"Output width in characters (0 keeps the video width or config value)" default:"0"`
	Height int    `help:"Output height in characters (0 keeps the video height or config value)" default:"0"`
}

// Run validates the arguments, then plays the video until the last frame.
// Status lines go to stderr so stdout only carries frames.
func (cmd *PlayCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	if appCtx == nil {
		appCtx = types.NewAppContext(types.DefaultVersion, nil)
	}

	descriptor, err := video.ParseDescriptor(cmd.File, cmd.FPS)
	if err != nil {
		return err
	}

	if cmd.Width < 0 || cmd.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative", video.ErrUsage)
	}
	cfg := appCtx.Config.WithSize(cmd.Width, cmd.Height)

	if !video.IsVideoFile(cmd.File) {
		fmt.Fprintf(appCtx.Stderr, "%s\n", ui.WarnStyle.Render(fmt.Sprintf("⚠️  %s does not look like a video file, trying anyway", cmd.File)))
	}
	if !utils.IsTerminal(appCtx.Stdout) {
		fmt.Fprintf(appCtx.Stderr, "%s\n", ui.WarnStyle.Render("⚠️  stdout is not a terminal, frames will contain raw escape sequences"))
	}

	decoder := video.NewFFmpegDecoder(cfg.FFmpegPath, cfg.FFprobePath)
	decoder.Width = cfg.Width
	decoder.Height = cfg.Height

	p := player.New(decoder, appCtx.Stdout)

	start := time.Now()
	err = p.Play(ctx, descriptor)
	elapsed := time.Since(start).Round(time.Millisecond)

	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(appCtx.Stderr, "\n%s\n", ui.WarnStyle.Render(fmt.Sprintf("⏹  Playback interrupted after %d frames", p.Frames())))
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to play video: %w", err)
	}

	fmt.Fprintf(appCtx.Stderr, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Played %d frames in %s", p.Frames(), elapsed)))
	return nil
}
