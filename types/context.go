package types

import (
	"io"
	"os"

	"github.com/lepinkainen/asciiplay/config"
)

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands
type AppContext struct {
	Version string
	Config  *config.Config

	// ConfigPath is the --config value, empty for the default location
	ConfigPath string

	// Frames go to Stdout, status and errors to Stderr
	Stdout *os.File
	Stderr io.Writer
}

// NewAppContext returns a context writing to the process' standard streams
func NewAppContext(version string, cfg *config.Config) *AppContext {
	if cfg == nil {
		cfg = config.Default()
	}
	return &AppContext{
		Version: version,
		Config:  cfg,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}
