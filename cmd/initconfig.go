package cmd

import (
	"fmt"
	"os"

	"github.com/lepinkainen/asciiplay/config"
	"github.com/lepinkainen/asciiplay/types"
	"github.com/lepinkainen/asciiplay/ui"
	"github.com/lepinkainen/asciiplay/video"
)

// InitConfigCmd saves the effective settings so they can be edited by hand
type InitConfigCmd struct {
	FFmpeg  string `help:"ffmpeg executable to store" placeholder:"PATH"`
	FFprobe string `help:"ffprobe executable to store" placeholder:"PATH"`
	Width   int    `help:"Default output width in characters" default:"0"`
	Height  int    `help:"Default output height in characters" default:"0"`
	Force   bool   `help:"Overwrite an existing config file" short:"f"`
}

func (cmd *InitConfigCmd) Run(appCtx *types.AppContext) error {
	if appCtx == nil {
		appCtx = types.NewAppContext(types.DefaultVersion, nil)
	}

	if cmd.Width < 0 || cmd.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative", video.ErrUsage)
	}

	path := appCtx.ConfigPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("cannot determine config location: %w", err)
		}
		path = defaultPath
	}

	if _, err := os.Stat(path); err == nil && !cmd.Force {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
	}

	cfg := appCtx.Config.WithSize(cmd.Width, cmd.Height)
	if cmd.FFmpeg != "" {
		cfg.FFmpegPath = cmd.FFmpeg
	}
	if cmd.FFprobe != "" {
		cfg.FFprobePath = cmd.FFprobe
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Write(cfg, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(appCtx.Stderr, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Wrote %s", path)))
	return nil
}
