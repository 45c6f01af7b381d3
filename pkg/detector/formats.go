package detector

import "regexp"

// Format names, in table priority order.
const (
	FormatSyslog        = "syslog"
	FormatISO8601       = "iso8601"
	FormatRFC822        = "rfc822"
	FormatLastlog       = "lastlog"
	FormatShort         = "short"
	FormatShortWithYear = "short_with_year"
	FormatUnixFrac      = "unix_frac"
	FormatUnix          = "unix"
)

// Format represents one recognized timestamp shape.
type Format struct {
	Name       string         // Identifier, e.g. "syslog"
	Pattern    *regexp.Regexp // Compiled match expression (set during init)
	PatternStr string         // Pattern source, for listings
	Strftime   string         // strftime parse format; empty for the numeric epoch entries
	Example    string         // Example timestamp, for listings
}

// Formats returns the built-in timestamp formats in priority order.
//
// Order is significant in two ways: DetectAndParse takes the first entry
// whose match also parses, and LocateLeftmost breaks start-offset ties in
// table order. The fractional epoch entry precedes the plain epoch entry
// because a fractional epoch's integer prefix also satisfies the plain
// shape; trying plain first would truncate the fraction.
func Formats() []*Format {
	formats := []*Format{
		// syslog: Dec 22 22:25:23
		{
			Name:       FormatSyslog,
			PatternStr: `[A-Za-z]{3} [0-9]{1,2} [0-9]{2}:[0-9]{2}:[0-9]{2}`,
			Strftime:   "%b %d %H:%M:%S",
			Example:    "Dec 22 22:25:23",
		},
		// ISO-8601 prefix: 2025-12-22T22:25:23 (a .123Z suffix in the
		// line is not part of the match and survives replacement)
		{
			Name:       FormatISO8601,
			PatternStr: `[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}`,
			Strftime:   "%Y-%m-%dT%H:%M:%S",
			Example:    "2025-12-22T22:25:23",
		},
		// RFC-822 style: 16 Jun 94 07:29:35
		{
			Name:       FormatRFC822,
			PatternStr: `[0-9]{1,2} [A-Za-z]{3} [0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}`,
			Strftime:   "%d %b %y %H:%M:%S",
			Example:    "16 Jun 94 07:29:35",
		},
		// lastlog: Mon Dec 22 22:25
		{
			Name:       FormatLastlog,
			PatternStr: `[A-Za-z]{3} [A-Za-z]{3} [0-9]{2} [0-9]{2}:[0-9]{2}`,
			Strftime:   "%a %b %d %H:%M",
			Example:    "Mon Dec 22 22:25",
		},
		// short, no year: 21 dec 17:05
		{
			Name:       FormatShort,
			PatternStr: `[0-9]{2} [a-z]{3} [0-9]{2}:[0-9]{2}`,
			Strftime:   "%d %b %H:%M",
			Example:    "21 dec 17:05",
		},
		// short with year: 22 dec/93 17:05:30
		{
			Name:       FormatShortWithYear,
			PatternStr: `[0-9]{2} [a-z]{3}/[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}`,
			Strftime:   "%d %b/%y %H:%M:%S",
			Example:    "22 dec/93 17:05:30",
		},
		// Unix epoch with fraction: 1755921813.123456
		{
			Name:       FormatUnixFrac,
			PatternStr: `[0-9]{10,}\.[0-9]{1,9}`,
			Example:    "1755921813.123456",
		},
		// Unix epoch: 1755921813
		{
			Name:       FormatUnix,
			PatternStr: `[0-9]{10,}`,
			Example:    "1755921813",
		},
	}

	// Compile all patterns
	for _, f := range formats {
		f.Pattern = regexp.MustCompile(f.PatternStr)
	}

	return formats
}
