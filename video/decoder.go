package video

import (
	"context"

	"github.com/lepinkainen/asciiplay/ascii"
)

// Decoder opens video sources and turns them into frame streams
type Decoder interface {
	Open(ctx context.Context, path string) (Stream, error)
}

// Stream yields decoded frames in presentation order.
//
// Next returns io.EOF once the source is exhausted. Any other error means a
// frame could not be decoded. The returned frame is only valid until the
// next call to Next or Close.
type Stream interface {
	Next() (*ascii.Frame, error)
	Close() error
}
