// Package output renders the detector's format table for the formats
// command.
package output

import (
	"context"
	"io"
)

// Formatter renders a format listing in a specific output style.
type Formatter interface {
	// Format renders the listing to the given writer.
	Format(ctx context.Context, listing *Listing, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}
