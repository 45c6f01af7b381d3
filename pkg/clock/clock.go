// Package clock provides high-resolution clock readings for line stamping.
package clock

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// NanosPerSecond is the number of nanoseconds in one second.
const NanosPerSecond = 1_000_000_000

// HighResTime is a clock reading split into whole seconds and nanoseconds.
// Nsec is always in [0, 999999999]. For wall readings Sec is a Unix epoch;
// for monotonic readings it counts seconds since the source was created.
// A parsed timestamp reuses Nsec to carry its fractional-second remainder.
type HighResTime struct {
	Sec  int64
	Nsec int64
}

// Time converts the reading to a wall-clock time in the local zone.
// Only meaningful for wall readings.
func (t HighResTime) Time() time.Time {
	return time.Unix(t.Sec, t.Nsec)
}

// Sub returns t - u, borrowing one second whenever the nanosecond
// difference goes negative so nsec stays in range.
func (t HighResTime) Sub(u HighResTime) (sec, nsec int64) {
	sec = t.Sec - u.Sec
	nsec = t.Nsec - u.Nsec
	if nsec < 0 {
		sec--
		nsec += NanosPerSecond
	}
	return sec, nsec
}

// IsZero reports whether the reading is the zero value.
func (t HighResTime) IsZero() bool {
	return t.Sec == 0 && t.Nsec == 0
}

// Source produces HighResTime readings from either the wall clock or the
// runtime's monotonic clock. Monotonic readings are guaranteed only to be
// non-decreasing within one process run; they are meant for delta
// computation, not calendar formatting.
//
// Reading the wall clock cannot fail in Go, so there is no error surface
// here; if the monotonic clock turns out to be unavailable the source
// degrades to wall semantics and warns once instead of failing.
type Source struct {
	monotonic bool
	base      time.Time
	warn      io.Writer
}

// Option configures a Source.
type Option func(*Source)

// WithWarnWriter redirects degradation warnings. Default is os.Stderr.
func WithWarnWriter(w io.Writer) Option {
	return func(s *Source) {
		s.warn = w
	}
}

// WithBase overrides the reference reading taken at creation time.
// Intended for tests.
func WithBase(t time.Time) Option {
	return func(s *Source) {
		s.base = t
	}
}

// NewSource creates a clock source. With monotonic set, readings count
// elapsed time since creation; otherwise they are wall-clock epochs.
func NewSource(monotonic bool, opts ...Option) *Source {
	s := &Source{
		monotonic: monotonic,
		base:      time.Now(),
		warn:      os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.monotonic && !hasMonotonic(s.base) {
		s.monotonic = false
		_, _ = fmt.Fprintln(s.warn, "Warning: monotonic clock unavailable, falling back to wall clock")
	}
	return s
}

// Monotonic reports whether the source is actually serving monotonic
// readings (false after a degradation).
func (s *Source) Monotonic() bool {
	return s.monotonic
}

// Now returns the current reading.
func (s *Source) Now() HighResTime {
	if s.monotonic {
		d := time.Since(s.base)
		return HighResTime{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
	}
	now := time.Now()
	return HighResTime{Sec: now.Unix(), Nsec: int64(now.Nanosecond())}
}

// hasMonotonic reports whether t carries a monotonic clock reading.
// time.Time.String appends an "m=" component exactly when one is present.
func hasMonotonic(t time.Time) bool {
	return strings.Contains(t.String(), " m=")
}
