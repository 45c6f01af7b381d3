package config

import "os"

// Default stamp formats.
const (
	// DefaultFormat is the stamp applied when no format is given.
	DefaultFormat = "%b %d %H:%M:%S"

	// DefaultDeltaFormat replaces DefaultFormat in the delta modes unless
	// an explicit format was supplied.
	DefaultDeltaFormat = "%H:%M:%S"
)

// Environment variable names.
const (
	EnvConfig = "LINESTAMP_CONFIG"
	EnvFormat = "LINESTAMP_FORMAT"
)

// DefaultOptions returns the configuration used when no file, environment
// variable, or flag overrides anything.
func DefaultOptions() *Options {
	return &Options{
		Format: DefaultFormat,
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (o *Options) applyEnvironmentOverrides() {
	if format := os.Getenv(EnvFormat); format != "" {
		o.SetFormat(format)
	}
}
