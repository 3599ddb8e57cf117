package video

import "errors"

var (
	// ErrUsage is returned when required arguments are missing
	ErrUsage = errors.New("usage: <filename> <fps>")

	// ErrInvalidFrameRate is returned when the frame rate is not a positive integer
	ErrInvalidFrameRate = errors.New("invalid frame rate")

	// ErrSourceOpen covers missing files, unsupported formats and decoder start-up failures
	ErrSourceOpen = errors.New("cannot open video source")

	// ErrDecode is returned when a frame cannot be read mid-stream
	ErrDecode = errors.New("failed to decode frame")
)

// IsConfigError reports whether err was caused by bad user input rather than the video itself
func IsConfigError(err error) bool {
	return errors.Is(err, ErrUsage) || errors.Is(err, ErrInvalidFrameRate)
}
