package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ccollicutt/linestamp/pkg/detector"
)

func TestNewListing(t *testing.T) {
	listing := NewListing(detector.Formats())

	if len(listing.Formats) != 8 {
		t.Fatalf("Expected 8 entries, got %d", len(listing.Formats))
	}
	if listing.Formats[0].Name != detector.FormatSyslog {
		t.Errorf("Expected syslog first, got %s", listing.Formats[0].Name)
	}
	if listing.Formats[0].Priority != 1 {
		t.Errorf("Expected priority 1, got %d", listing.Formats[0].Priority)
	}
	if listing.Formats[7].Strftime != "" {
		t.Errorf("Numeric entry should have no strftime format, got %q", listing.Formats[7].Strftime)
	}
}

func TestTextFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	listing := NewListing(detector.Formats())

	if err := NewTextFormatter().Format(context.Background(), listing, &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"syslog", "unix_frac", "(numeric)", "%b %d %H:%M:%S"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, got)
		}
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	listing := NewListing(detector.Formats())

	if err := NewJSONFormatter().Format(context.Background(), listing, &buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded Listing
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(decoded.Formats) != 8 {
		t.Errorf("Expected 8 entries, got %d", len(decoded.Formats))
	}
	if decoded.Formats[6].Name != detector.FormatUnixFrac {
		t.Errorf("Expected unix_frac at priority 7, got %s", decoded.Formats[6].Name)
	}
}

func TestFormatter_Names(t *testing.T) {
	if got := NewTextFormatter().Name(); got != "text" {
		t.Errorf("Expected text, got %q", got)
	}
	if got := NewJSONFormatter().Name(); got != "json" {
		t.Errorf("Expected json, got %q", got)
	}
}
