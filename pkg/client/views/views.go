// Package views holds the list-screen controllers: loading, text
// filtering and the curator actions each screen offers.
package views

import "strings"

// Source tells the screen where its data came from.
type Source int

const (
	// SourceLive is data fetched from the server.
	SourceLive Source = iota
	// SourceDemo is built-in sample data, shown only when the view
	// was explicitly configured to fall back to it.
	SourceDemo
)

func (s Source) String() string {
	if s == SourceDemo {
		return "demo"
	}
	return "live"
}

// Options configures view behavior shared by all screens.
type Options struct {
	// DemoFallback replaces a failed load with sample data instead
	// of surfacing the error. It is off unless turned on, so a
	// broken backend is visible by default.
	DemoFallback bool
}

// matchesQuery reports whether any of the fields contains the query,
// ignoring case. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
