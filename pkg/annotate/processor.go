// Package annotate implements the per-line stamping pipeline.
package annotate

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/linestamp/pkg/clock"
	"github.com/ccollicutt/linestamp/pkg/config"
	"github.com/ccollicutt/linestamp/pkg/detector"
	"github.com/ccollicutt/linestamp/pkg/stamp"
	"github.com/ccollicutt/linestamp/pkg/textbuf"
)

// MaxLineLength caps the size of an assembled output line. Lines whose
// stamped form would not fit are emitted unchanged.
const MaxLineLength = 64 * 1024

// Processor stamps one line at a time, carrying the only stream state the
// modes need: the run's start tick, the previous line's tick, and the
// previous line's text for the unique filter.
type Processor struct {
	opts *config.Options
	src  *clock.Source
	det  *detector.Detector

	start    clock.HighResTime
	last     clock.HighResTime
	lastLine string

	buf *textbuf.Buffer
}

// New creates a Processor. The clock source is read once at creation to
// seed the start and previous ticks.
func New(opts *config.Options, src *clock.Source, det *detector.Detector) *Processor {
	start := src.Now()
	return &Processor{
		opts:  opts,
		src:   src,
		det:   det,
		start: start,
		last:  start,
		buf:   textbuf.New(MaxLineLength),
	}
}

// Line processes a single input line, terminator included, and returns
// the line to emit. emit is false when the unique filter suppresses the
// line. Failures degrade per line: the original line comes back unchanged
// and the stream goes on.
func (p *Processor) Line(line string) (out string, emit bool) {
	if p.opts.Unique && line == p.lastLine {
		return "", false
	}

	now := p.src.Now()

	switch {
	case p.opts.Relative:
		return p.relative(line, now), true
	case p.opts.Incremental:
		sec, nsec := now.Sub(p.last)
		p.last = now
		p.recordLine(line)
		return p.prepend(stamp.Delta(sec, nsec, p.opts.Format), line), true
	case p.opts.SinceStart:
		sec, nsec := now.Sub(p.start)
		p.recordLine(line)
		return p.prepend(stamp.Delta(sec, nsec, p.opts.Format), line), true
	default:
		p.recordLine(line)
		return p.prepend(stamp.Absolute(p.opts.Format, now), line), true
	}
}

// relative rewrites an embedded timestamp in place. With an explicit
// format the parsed time is reformatted; otherwise it becomes an
// "ago"/"in" string. Lines without a parseable timestamp pass through
// unchanged. The previous-line record is deliberately not updated here:
// the original tool only tracked stamped lines, so the unique filter
// never suppresses in relative mode.
func (p *Processor) relative(line string, now clock.HighResTime) string {
	parsed, err := p.det.DetectAndParse(line)
	if err != nil {
		return line
	}

	var replacement string
	if p.opts.FormatSet {
		replacement = stamp.Absolute(p.opts.Format, parsed)
	} else {
		replacement = stamp.Relative(now.Sec, parsed.Sec)
	}
	return p.det.Rewrite(line, replacement)
}

// prepend joins the stamp and the line with a single space through the
// bounded line buffer; overflow degrades to the unmodified line.
func (p *Processor) prepend(ts, line string) string {
	p.buf.Reset()
	if err := p.buf.Appendf("%s %s", ts, line); err != nil {
		return line
	}
	return p.buf.String()
}

func (p *Processor) recordLine(line string) {
	if p.opts.Unique {
		p.lastLine = line
	}
}

// Run streams r to w one line at a time. Terminators travel inside each
// processed line, so output framing always matches input framing,
// including a final line with no terminator.
func (p *Processor) Run(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if out, emit := p.Line(line); emit {
				if _, werr := bw.WriteString(out); werr != nil {
					return fmt.Errorf("writing output: %w", werr)
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("reading input: %w", err)
		}
	}

	return bw.Flush()
}
