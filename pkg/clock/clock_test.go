package clock

import (
	"strings"
	"testing"
	"time"
)

func TestHighResTime_Sub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     HighResTime
		wantSec  int64
		wantNsec int64
	}{
		{
			name:     "no borrow",
			a:        HighResTime{Sec: 5, Nsec: 300},
			b:        HighResTime{Sec: 3, Nsec: 200},
			wantSec:  2,
			wantNsec: 100,
		},
		{
			name:     "borrow a second",
			a:        HighResTime{Sec: 5, Nsec: 100},
			b:        HighResTime{Sec: 3, Nsec: 200},
			wantSec:  1,
			wantNsec: 999_999_900,
		},
		{
			name:     "equal",
			a:        HighResTime{Sec: 7, Nsec: 7},
			b:        HighResTime{Sec: 7, Nsec: 7},
			wantSec:  0,
			wantNsec: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, nsec := tt.a.Sub(tt.b)
			if sec != tt.wantSec || nsec != tt.wantNsec {
				t.Errorf("Sub = (%d, %d), want (%d, %d)", sec, nsec, tt.wantSec, tt.wantNsec)
			}
			if nsec < 0 || nsec >= NanosPerSecond {
				t.Errorf("Nanoseconds out of range: %d", nsec)
			}
		})
	}
}

func TestHighResTime_Time(t *testing.T) {
	hr := HighResTime{Sec: 1755921813, Nsec: 500}
	if got := hr.Time().Unix(); got != 1755921813 {
		t.Errorf("Expected unix 1755921813, got %d", got)
	}
}

func TestHighResTime_IsZero(t *testing.T) {
	if !(HighResTime{}).IsZero() {
		t.Error("Zero value should report IsZero")
	}
	if (HighResTime{Sec: 1}).IsZero() {
		t.Error("Non-zero value should not report IsZero")
	}
}

func TestSource_Now_Wall(t *testing.T) {
	src := NewSource(false)

	got := src.Now()
	now := time.Now().Unix()

	if got.Sec < now-2 || got.Sec > now+2 {
		t.Errorf("Wall reading %d too far from now %d", got.Sec, now)
	}
	if got.Nsec < 0 || got.Nsec >= NanosPerSecond {
		t.Errorf("Nanoseconds out of range: %d", got.Nsec)
	}
}

func TestSource_Now_Monotonic(t *testing.T) {
	src := NewSource(true)

	if !src.Monotonic() {
		t.Fatal("Expected monotonic source")
	}

	a := src.Now()
	b := src.Now()

	// Readings count from source creation and never decrease.
	if a.Sec > 5 {
		t.Errorf("Expected small elapsed seconds, got %d", a.Sec)
	}
	if b.Sec < a.Sec || (b.Sec == a.Sec && b.Nsec < a.Nsec) {
		t.Errorf("Monotonic readings decreased: %+v then %+v", a, b)
	}
}

func TestNewSource_MonotonicDegradation(t *testing.T) {
	var warnings strings.Builder

	// Round(0) strips the monotonic reading, forcing the fallback.
	src := NewSource(true, WithBase(time.Now().Round(0)), WithWarnWriter(&warnings))

	if src.Monotonic() {
		t.Error("Expected degradation to wall clock")
	}
	if !strings.Contains(warnings.String(), "monotonic") {
		t.Errorf("Expected a degradation warning, got %q", warnings.String())
	}

	got := src.Now()
	now := time.Now().Unix()
	if got.Sec < now-2 || got.Sec > now+2 {
		t.Errorf("Degraded reading %d should be a wall epoch near %d", got.Sec, now)
	}
}
