package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/asciiplay/cmd"
	"github.com/lepinkainen/asciiplay/config"
	"github.com/lepinkainen/asciiplay/types"
	"github.com/lepinkainen/asciiplay/ui"
	"github.com/lepinkainen/asciiplay/video"
)

var Version = "dev"

type CLI struct {
	Config  string           `help:"Path to a YAML config file" type:"path" placeholder:"FILE"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Play       cmd.PlayCmd       `cmd:"" default:"withargs" help:"Play a video as ASCII art (default command)"`
	Check      cmd.CheckCmd      `cmd:"" help:"Decode and render a video without displaying it"`
	InitConfig cmd.InitConfigCmd `cmd:"" name:"init-config" help:"Write the current settings to the config file"`
}

// usage is the one-line synopsis shown when arguments are missing or malformed
func usage(program string) string {
	return fmt.Sprintf("Usage: %s <filename> <fps>", program)
}

func newParser(cli *CLI, ctx context.Context) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("asciiplay"),
		kong.Description("Play video files as ASCII art in the terminal."),
		kong.Vars{"version": Version},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
}

// exitInterrupted is the conventional status for a process stopped by SIGINT
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, executes the selected command and returns the exit status
func run(ctx context.Context, args []string, stderr io.Writer) int {
	program := filepath.Base(args[0])

	var cli CLI
	parser, err := newParser(&cli, ctx)
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(args[1:])
	if err != nil {
		printError(stderr, err)
		fmt.Fprintln(stderr, usage(program))
		return 1
	}

	cfg, err := config.Load(cli.Config)
	if errors.Is(err, os.ErrNotExist) && kctx.Command() == "init-config" {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		printError(stderr, err)
		return 1
	}

	appCtx := types.NewAppContext(Version, cfg)
	appCtx.ConfigPath = cli.Config
	appCtx.Stderr = stderr

	return exitCode(stderr, program, kctx.Run(appCtx))
}

// exitCode reports a command error and maps it to a process status.
// Bad arguments get the usage line, interrupts were already reported by the command.
func exitCode(stderr io.Writer, program string, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case video.IsConfigError(err):
		printError(stderr, err)
		fmt.Fprintln(stderr, usage(program))
		return 1
	default:
		printError(stderr, err)
		return 1
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.ErrorStyle.Render(fmt.Sprintf("❌ %v", err)))
}
