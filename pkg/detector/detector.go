// Package detector locates and parses timestamps embedded in log lines.
//
// All detection decisions come from a single immutable table of formats
// (see Formats), walked under two deliberately different selection rules:
// DetectAndParse takes the first entry whose match also parses, while
// LocateLeftmost takes the earliest-starting match regardless of whether
// it parses. Conflating the two would silently change behavior on lines
// containing more than one timestamp-shaped substring.
package detector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	timefmt "github.com/itchyny/timefmt-go"

	"github.com/ccollicutt/linestamp/pkg/clock"
)

var (
	// ErrNoTimestamp reports that no table entry both matched and parsed.
	ErrNoTimestamp = errors.New("detector: no timestamp found")

	// ErrInvalidEpoch reports a numeric match that is not a usable epoch.
	ErrInvalidEpoch = errors.New("detector: invalid epoch value")
)

// futureSlack is how far past "now" a parsed calendar time may land
// before the year is assumed to be last year. A December timestamp with
// no year, read in January, would otherwise parse eleven months into the
// future. The correction is applied once, never iterated; it is a policy
// choice inherited from the original tool, not a calendar truth.
const futureSlack = 30 * 24 * time.Hour

// Span identifies a half-open [Start, End) byte range within a line.
type Span struct {
	Start int
	End   int
}

// Detector applies the format table to individual lines. Detectors hold
// no per-line state and are safe for concurrent use.
type Detector struct {
	formats []*Format
	now     func() time.Time
}

// Option configures a Detector.
type Option func(*Detector)

// WithNow overrides the current-time source used for year defaulting and
// the future correction. Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(d *Detector) {
		d.now = now
	}
}

// New creates a Detector over the built-in format table.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats: Formats(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectAndParse walks the format table in priority order and returns the
// parsed value of the first entry whose match also parses. Parse success,
// not match position, decides the winner: a later entry can match further
// right in the line than an earlier entry's unparseable match and still
// win. Returns ErrNoTimestamp when no entry both matches and parses.
//
// Fractional epochs return the integer part as seconds with the fraction
// scaled to nanoseconds in Nsec; the fraction never adjusts the seconds.
func (d *Detector) DetectAndParse(line string) (clock.HighResTime, error) {
	for _, f := range d.formats {
		loc := f.Pattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		ts, err := d.parseMatch(f, line[loc[0]:loc[1]])
		if err != nil {
			continue
		}
		return ts, nil
	}
	return clock.HighResTime{}, ErrNoTimestamp
}

// LocateLeftmost returns the span of the earliest-starting match across
// the entire table, ignoring whether the match parses. Ties on start
// offset go to the earlier table entry. The span is the replacement
// target for Rewrite, decoupled from whichever entry DetectAndParse used
// to produce the value being substituted in.
func (d *Detector) LocateLeftmost(line string) (Span, bool) {
	best := Span{Start: -1}
	for _, f := range d.formats {
		loc := f.Pattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		if best.Start == -1 || loc[0] < best.Start {
			best = Span{Start: loc[0], End: loc[1]}
		}
	}
	if best.Start == -1 {
		return Span{}, false
	}
	return best, true
}

// Rewrite replaces the leftmost located timestamp in line with
// replacement, leaving every other byte untouched. Lines without a
// timestamp-shaped substring are returned unchanged.
func (d *Detector) Rewrite(line, replacement string) string {
	span, ok := d.LocateLeftmost(line)
	if !ok {
		return line
	}
	return line[:span.Start] + replacement + line[span.End:]
}

func (d *Detector) parseMatch(f *Format, match string) (clock.HighResTime, error) {
	switch f.Name {
	case FormatUnixFrac:
		return parseFractionalEpoch(match)
	case FormatUnix:
		sec, err := parsePlainEpoch(match)
		if err != nil {
			return clock.HighResTime{}, err
		}
		return clock.HighResTime{Sec: sec}, nil
	default:
		return d.parseCalendar(f, match)
	}
}

// parsePlainEpoch parses a run of ASCII digits as an unsigned epoch.
// Zero is rejected: the original tool used 0 as its "no timestamp"
// sentinel, so a literal zero epoch counts as not-a-timestamp. A policy
// choice, kept for compatibility.
func parsePlainEpoch(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidEpoch)
	}
	v, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidEpoch, s)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: zero", ErrInvalidEpoch)
	}
	return int64(v), nil
}

// parseFractionalEpoch splits at the first dot, parses the integer prefix
// under plain-epoch rules, and scales the fractional digits to
// nanoseconds.
func parseFractionalEpoch(s string) (clock.HighResTime, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return clock.HighResTime{}, fmt.Errorf("%w: missing fraction in %q", ErrInvalidEpoch, s)
	}
	sec, err := parsePlainEpoch(s[:dot])
	if err != nil {
		return clock.HighResTime{}, err
	}
	var nsec int64
	scale := int64(clock.NanosPerSecond / 10)
	for _, c := range []byte(s[dot+1:]) {
		if scale == 0 {
			break
		}
		nsec += int64(c-'0') * scale
		scale /= 10
	}
	return clock.HighResTime{Sec: sec, Nsec: nsec}, nil
}

// parseCalendar parses a matched substring against the entry's strftime
// format. Fields the format cannot supply are defaulted: a missing year
// becomes the current local year (the strftime engine already defaults
// month to January and day to the 1st). The result then gets the
// single-shot future correction described at futureSlack.
func (d *Detector) parseCalendar(f *Format, match string) (clock.HighResTime, error) {
	t, err := timefmt.ParseInLocation(canonicalizeNames(match), f.Strftime, time.Local)
	if err != nil {
		return clock.HighResTime{}, fmt.Errorf("parsing %q as %s: %w", match, f.Name, err)
	}

	now := d.now()
	if !hasYear(f.Strftime) {
		t = time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
	}
	if t.Sub(now) > futureSlack {
		t = time.Date(t.Year()-1, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
	}

	return clock.HighResTime{Sec: t.Unix()}, nil
}

func hasYear(format string) bool {
	return strings.Contains(format, "%y") || strings.Contains(format, "%Y")
}

// canonicalizeNames title-cases three-letter alphabetic tokens so
// lowercase month and weekday abbreviations ("dec", "mon") parse.
// strptime matches names case-insensitively; the Go-side tables do not.
func canonicalizeNames(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); {
		if !isASCIILetter(b[i]) {
			i++
			continue
		}
		j := i
		for j < len(b) && isASCIILetter(b[j]) {
			j++
		}
		if j-i == 3 {
			b[i] = asciiUpper(b[i])
			b[i+1] = asciiLower(b[i+1])
			b[i+2] = asciiLower(b[i+2])
		}
		i = j
	}
	return string(b)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func asciiUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
