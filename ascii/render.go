package ascii

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lightness returns the HSL lightness of an 8-bit RGB triple, in [0, 1]
func Lightness(r, g, b uint8) float64 {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	_, _, l := c.Hsl()
	return l
}

// Render converts a frame to text, one character per pixel, scanning rows
// top to bottom and columns left to right.
func Render(frame *Frame) *TextFrame {
	out := &TextFrame{
		width:  frame.Width,
		height: frame.Height,
		buf:    make([]byte, 0, (frame.Width+1)*frame.Height),
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b := frame.RGBAt(x, y)
			out.buf = append(out.buf, MapLightnessToChar(Lightness(r, g, b)))
		}
		out.buf = append(out.buf, '\n')
	}

	return out
}
