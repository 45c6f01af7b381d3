package annotate

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/ccollicutt/linestamp/pkg/clock"
	"github.com/ccollicutt/linestamp/pkg/config"
	"github.com/ccollicutt/linestamp/pkg/detector"
)

// newProcessor builds a validated processor for the given option tweaks.
func newProcessor(t *testing.T, mutate func(*config.Options)) *Processor {
	t.Helper()
	opts := config.DefaultOptions()
	if mutate != nil {
		mutate(opts)
	}
	if err := config.Validate(opts); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	return New(opts, clock.NewSource(opts.Monotonic), detector.New())
}

// run pushes input through the processor and returns the output.
func run(t *testing.T, p *Processor, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := p.Run(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestProcessor_DefaultStamp(t *testing.T) {
	p := newProcessor(t, nil)

	got := run(t, p, "test line\n")

	want := regexp.MustCompile(`^[A-Za-z]{3} [0-9]{1,2} [0-9]{2}:[0-9]{2}:[0-9]{2} test line\n$`)
	if !want.MatchString(got) {
		t.Errorf("Output %q does not match default stamp shape", got)
	}
}

func TestProcessor_SubsecondFormat(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.SetFormat("%.S")
	})

	got := run(t, p, "test line\n")

	want := regexp.MustCompile(`^[0-9]{2}\.[0-9]{6} test line\n$`)
	if !want.MatchString(got) {
		t.Errorf("Output %q does not match %%.S shape", got)
	}
}

func TestProcessor_UniqueFilter(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.Unique = true
	})

	got := run(t, p, "same\nsame\ndifferent\n")

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected exactly 2 output lines, got %d: %q", len(lines), got)
	}
	if !strings.HasSuffix(lines[0], " same") || !strings.HasSuffix(lines[1], " different") {
		t.Errorf("Unexpected surviving lines: %q", got)
	}
}

func TestProcessor_Incremental(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.Incremental = true
	})

	got := run(t, p, "a\nb\n")

	want := regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{2} a\n[0-9]{2}:[0-9]{2}:[0-9]{2} b\n$`)
	if !want.MatchString(got) {
		t.Errorf("Output %q does not match incremental shape", got)
	}
}

func TestProcessor_IncrementalSubsecond(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.Incremental = true
		o.SetFormat("%.s")
	})

	got := run(t, p, "x\n")

	want := regexp.MustCompile(`^[0-9]+\.[0-9]{6} x\n$`)
	if !want.MatchString(got) {
		t.Errorf("Output %q does not match %%.s delta shape", got)
	}
}

func TestProcessor_SinceStart_Monotonic(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.SinceStart = true
		o.Monotonic = true
	})

	got := run(t, p, "x\ny\n")

	want := regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{2} x\n[0-9]{2}:[0-9]{2}:[0-9]{2} y\n$`)
	if !want.MatchString(got) {
		t.Errorf("Output %q does not match since-start shape", got)
	}
}

func TestProcessor_Relative(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.Relative = true
	})

	line := fmt.Sprintf("%d test line\n", time.Now().Unix()-90061)
	got := run(t, p, line)

	// 1d1h1m1s back rounds to a day-and-hours string.
	want := regexp.MustCompile(`^1d([0-9]+h)? ago test line\n$`)
	if !want.MatchString(got) {
		t.Errorf("Output %q does not match relative shape", got)
	}
}

func TestProcessor_Relative_Future(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.Relative = true
	})

	line := fmt.Sprintf("%d test line\n", time.Now().Unix()+7200)
	got := run(t, p, line)

	want := regexp.MustCompile(`^in (2h|1h59m) test line\n$`)
	if !want.MatchString(got) {
		t.Errorf("Output %q does not match future relative shape", got)
	}
}

func TestProcessor_Relative_ExplicitFormat(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.Relative = true
		o.SetFormat("%Y")
	})

	got := run(t, p, "1755921813 test line\n")

	want := fmt.Sprintf("%d test line\n", time.Unix(1755921813, 0).Year())
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestProcessor_Relative_PassthroughWithoutTimestamp(t *testing.T) {
	p := newProcessor(t, func(o *config.Options) {
		o.Relative = true
	})

	input := "no timestamps here\n"
	if got := run(t, p, input); got != input {
		t.Errorf("Expected passthrough, got %q", got)
	}
}

func TestProcessor_TerminatorPreserved(t *testing.T) {
	p := newProcessor(t, nil)

	got := run(t, p, "no newline end")

	if strings.HasSuffix(got, "\n") {
		t.Errorf("Output %q gained a terminator the input did not have", got)
	}
	if !strings.HasSuffix(got, " no newline end") {
		t.Errorf("Output %q lost the original text", got)
	}
}

func TestProcessor_OverlongLineDegrades(t *testing.T) {
	p := newProcessor(t, nil)

	line := strings.Repeat("a", MaxLineLength) + "\n"
	out, emit := p.Line(line)

	if !emit {
		t.Fatal("Expected the line to be emitted")
	}
	// The stamp would not fit, so the line comes back untouched.
	if out != line {
		t.Error("Expected overlong line to pass through unchanged")
	}
}

func TestProcessor_EmptyInput(t *testing.T) {
	p := newProcessor(t, nil)

	if got := run(t, p, ""); got != "" {
		t.Errorf("Expected no output for empty input, got %q", got)
	}
}
