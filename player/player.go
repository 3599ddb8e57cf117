package player

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/lepinkainen/asciiplay/ascii"
	"github.com/lepinkainen/asciiplay/video"
)

// ClearScreen erases the whole terminal and moves the cursor to the top-left corner
const ClearScreen = ansi.EraseEntireScreen + ansi.CursorHomePosition

// SleepFunc blocks for d or until ctx is done
type SleepFunc func(ctx context.Context, d time.Duration) error

// Player decodes a video and shows it as text frames, one frame per interval.
// A Player is not safe for concurrent use.
type Player struct {
	decoder video.Decoder
	out     io.Writer
	sleep   SleepFunc

	state  State
	frames int
	buf    bytes.Buffer
}

// Option customises a Player
type Option func(*Player)

// WithSleep replaces the pacing delay, mainly for tests
func WithSleep(fn SleepFunc) Option {
	return func(p *Player) {
		p.sleep = fn
	}
}

// New creates a player that decodes with decoder and draws to out
func New(decoder video.Decoder, out io.Writer, opts ...Option) *Player {
	p := &Player{
		decoder: decoder,
		out:     out,
		sleep:   Sleep,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns where the player is in its lifecycle
func (p *Player) State() State {
	return p.state
}

// Frames returns the number of frames shown by the last Play call
func (p *Player) Frames() int {
	return p.frames
}

// Play shows every frame of the descriptor's source and returns nil once the
// source is exhausted. Open failures wrap video.ErrSourceOpen, mid-stream
// failures wrap video.ErrDecode. Frames already drawn stay on screen.
// There is no catch-up: a slow frame delays every frame after it.
func (p *Player) Play(ctx context.Context, d video.Descriptor) (err error) {
	p.frames = 0
	p.state = Initializing
	defer func() {
		if err != nil {
			p.state = Failed
		} else {
			p.state = Finished
		}
	}()

	if d.FrameRate <= 0 {
		return fmt.Errorf("%w: %d (must be a positive integer)", video.ErrInvalidFrameRate, d.FrameRate)
	}

	stream, err := p.decoder.Open(ctx, d.SourcePath)
	if err != nil {
		if !errors.Is(err, video.ErrSourceOpen) {
			err = fmt.Errorf("%w: %w", video.ErrSourceOpen, err)
		}
		return err
	}
	defer func() { _ = stream.Close() }()

	interval := d.FrameInterval()
	p.state = Playing

	for {
		frame, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// A cancelled context kills the decoder, report the cancellation instead
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if !errors.Is(err, video.ErrDecode) {
				err = fmt.Errorf("%w: %w", video.ErrDecode, err)
			}
			return err
		}
		// Neither a frame nor an error counts as end of stream
		if frame == nil {
			return nil
		}

		if err := p.display(ascii.Render(frame)); err != nil {
			return err
		}
		p.frames++

		if err := p.sleep(ctx, interval); err != nil {
			return err
		}
	}
}

// display clears the terminal and draws text in a single write
func (p *Player) display(text *ascii.TextFrame) error {
	p.buf.Reset()
	p.buf.WriteString(ClearScreen)
	p.buf.Write(text.Bytes())

	if _, err := p.out.Write(p.buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Sleep waits for d, returning early with ctx.Err() if ctx is cancelled
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
