// Package config provides configuration loading and validation for linestamp.
package config

// Options holds the fully resolved run configuration.
type Options struct {
	// Relative rewrites timestamps already present in each line instead
	// of prepending a new one.
	Relative bool

	// Incremental stamps each line with the time elapsed since the
	// previous line.
	Incremental bool

	// SinceStart stamps each line with the time elapsed since the run
	// began. Incremental takes precedence when both are set.
	SinceStart bool

	// Monotonic reads the monotonic clock instead of the wall clock.
	Monotonic bool

	// Unique suppresses lines identical to the previous line.
	Unique bool

	// Format is the strftime stamp format, including the %.S/%.s/%.T/%N
	// extensions.
	Format string

	// FormatSet records whether Format was supplied explicitly (argument,
	// config file, or environment) rather than defaulted. Explicit
	// formats survive the delta-mode override and switch relative mode
	// from "ago" strings to reformatting.
	FormatSet bool
}

// SetFormat records an explicitly supplied format.
func (o *Options) SetFormat(format string) {
	o.Format = format
	o.FormatSet = true
}
