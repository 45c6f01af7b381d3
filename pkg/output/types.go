package output

import "github.com/ccollicutt/linestamp/pkg/detector"

// Listing is the renderable view of the detector's format table.
type Listing struct {
	Formats []Entry `json:"formats"`
}

// Entry describes one recognized timestamp format.
type Entry struct {
	Priority int    `json:"priority"`
	Name     string `json:"name"`
	Pattern  string `json:"pattern"`
	Strftime string `json:"strftime,omitempty"`
	Example  string `json:"example"`
}

// NewListing builds a Listing from the detector's table, preserving
// priority order.
func NewListing(formats []*detector.Format) *Listing {
	listing := &Listing{
		Formats: make([]Entry, 0, len(formats)),
	}
	for i, f := range formats {
		listing.Formats = append(listing.Formats, Entry{
			Priority: i + 1,
			Name:     f.Name,
			Pattern:  f.PatternStr,
			Strftime: f.Strftime,
			Example:  f.Example,
		})
	}
	return listing
}
