package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter renders listings as human-readable text.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the listing as text, one entry per priority slot.
func (f *TextFormatter) Format(_ context.Context, listing *Listing, w io.Writer) error {
	for _, e := range listing.Formats {
		strftime := e.Strftime
		if strftime == "" {
			strftime = "(numeric)"
		}
		_, err := fmt.Fprintf(w, "%d. %-16s %-22s e.g. %q\n   pattern: %s\n",
			e.Priority, e.Name, strftime, e.Example, e.Pattern)
		if err != nil {
			return err
		}
	}
	return nil
}
