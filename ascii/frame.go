package ascii

import (
	"bytes"
	"fmt"
	"strings"
)

// BytesPerPixel is the size of one packed RGB triple
const BytesPerPixel = 3

// Frame is a decoded RGB picture, row-major, three bytes per pixel.
// Frames handed out by a decoder are borrowed and only valid until the
// decoder produces the next one.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame wraps packed rgb24 data, checking that it covers width x height pixels
func NewFrame(width, height int, pix []byte) (*Frame, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if want := width * height * BytesPerPixel; len(pix) < want {
		return nil, fmt.Errorf("frame buffer too small: have %d bytes, need %d", len(pix), want)
	}
	return &Frame{Width: width, Height: height, Pix: pix}, nil
}

// RGBAt returns the channels of the pixel at column x, row y
func (f *Frame) RGBAt(x, y int) (r, g, b uint8) {
	i := (y*f.Width + x) * BytesPerPixel
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// TextFrame is one rendered frame: Height rows of Width characters,
// each row followed by a newline.
type TextFrame struct {
	width  int
	height int
	buf    []byte
}

func (t *TextFrame) Width() int  { return t.width }
func (t *TextFrame) Height() int { return t.height }

// Bytes returns the rendered rows including their terminators.
// The slice must not be modified.
func (t *TextFrame) Bytes() []byte { return t.buf }

func (t *TextFrame) String() string { return string(t.buf) }

// Rows returns the rendered rows without terminators
func (t *TextFrame) Rows() []string {
	if t.height == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(t.buf), "\n"), "\n")
}

// Equal reports whether two text frames are byte-for-byte identical
func (t *TextFrame) Equal(other *TextFrame) bool {
	return t.width == other.width && t.height == other.height && bytes.Equal(t.buf, other.buf)
}
