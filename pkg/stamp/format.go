// Package stamp renders clock readings as text: absolute calendar stamps
// with sub-second extensions, compact human relative times, and elapsed
// deltas. Formatters never append or strip line terminators; framing
// belongs to the caller.
package stamp

import (
	"fmt"
	"strings"
	"time"

	timefmt "github.com/itchyny/timefmt-go"

	"github.com/ccollicutt/linestamp/pkg/clock"
)

// Absolute renders t using a strftime format string extended with four
// sub-second directives:
//
//	%.S  two-digit seconds, a dot, six-digit microseconds
//	%.s  epoch seconds, a dot, six-digit microseconds
//	%.T  HH:MM:SS, a dot, six-digit microseconds
//	%N   nine-digit zero-padded nanoseconds
//
// plus %s for plain epoch seconds. Expansion is two-pass: the first pass
// substitutes only the tokens above and copies everything else through;
// the second pass runs the intermediate through strftime, and only if a
// '%' survived the first pass. Extensions may therefore sit anywhere
// among standard directives, e.g. "%Y%m%d-%H%M%S.%.S".
func Absolute(format string, t clock.HighResTime) string {
	local := t.Time()
	micros := t.Nsec / 1000

	var b strings.Builder
	for i := 0; i < len(format); {
		rest := format[i:]
		switch {
		case strings.HasPrefix(rest, "%.S"):
			fmt.Fprintf(&b, "%02d.%06d", local.Second(), micros)
			i += 3
		case strings.HasPrefix(rest, "%.s"):
			fmt.Fprintf(&b, "%d.%06d", t.Sec, micros)
			i += 3
		case strings.HasPrefix(rest, "%.T"):
			fmt.Fprintf(&b, "%s.%06d", timefmt.Format(local, "%H:%M:%S"), micros)
			i += 3
		case strings.HasPrefix(rest, "%N"):
			fmt.Fprintf(&b, "%09d", t.Nsec)
			i += 2
		case strings.HasPrefix(rest, "%s"):
			fmt.Fprintf(&b, "%d", t.Sec)
			i += 2
		default:
			b.WriteByte(format[i])
			i++
		}
	}

	out := b.String()
	if strings.ContainsRune(out, '%') {
		out = timefmt.Format(local, out)
	}
	return out
}

// Relative renders now minus ts (both epoch seconds) as a compact human
// string, suffixed " ago" for past times and prefixed "in " for future
// ones. The magnitude uses the largest fitting unit pair: "Ns", "NmMs",
// "NhMm", or "NdMh", with the smaller component omitted when zero. At
// most two unit components ever appear.
func Relative(now, ts int64) string {
	diff := now - ts
	future := diff < 0
	if future {
		diff = -diff
	}

	var mag string
	switch {
	case diff < 60:
		mag = fmt.Sprintf("%ds", diff)
	case diff < 3600:
		minutes, seconds := diff/60, diff%60
		if seconds > 0 {
			mag = fmt.Sprintf("%dm%ds", minutes, seconds)
		} else {
			mag = fmt.Sprintf("%dm", minutes)
		}
	case diff < 86400:
		hours, minutes := diff/3600, diff%3600/60
		if minutes > 0 {
			mag = fmt.Sprintf("%dh%dm", hours, minutes)
		} else {
			mag = fmt.Sprintf("%dh", hours)
		}
	default:
		days, hours := diff/86400, diff%86400/3600
		if hours > 0 {
			mag = fmt.Sprintf("%dd%dh", days, hours)
		} else {
			mag = fmt.Sprintf("%dd", days)
		}
	}

	if future {
		return "in " + mag
	}
	return mag + " ago"
}

// Delta renders an elapsed duration of sec seconds plus nsec nanoseconds
// according to which sub-second extension the format carries:
//
//	%.s  total seconds, a dot, six-digit microseconds
//	%.S  seconds mod 60, a dot, six-digit microseconds
//	%.T  HH:MM:SS, a dot, six-digit microseconds
//
// Without an extension the elapsed value is treated as a UTC civil time
// and handed to strftime, matching the original tool's gmtime-based
// encoding (formats beyond %H:%M:%S give calendar fields of the epoch).
func Delta(sec, nsec int64, format string) string {
	micros := nsec / 1000
	switch {
	case strings.Contains(format, "%.s"):
		return fmt.Sprintf("%d.%06d", sec, micros)
	case strings.Contains(format, "%.S"):
		return fmt.Sprintf("%02d.%06d", sec%60, micros)
	case strings.Contains(format, "%.T"):
		return fmt.Sprintf("%02d:%02d:%02d.%06d", sec/3600, sec%3600/60, sec%60, micros)
	default:
		return timefmt.Format(time.Unix(sec, 0).UTC(), format)
	}
}
