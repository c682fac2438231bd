package entity

import "time"

// NewsItem is one US economic news entry, newest first in sequences.
type NewsItem struct {
	Title       string
	Description string
	Time        time.Time
	Category    string
	Importance  int // 1 (low) .. 3 (high)
	URL         string
}

// CalendarEvent is one scheduled economic release on the US calendar.
// Actual stays empty until the figure is published.
type CalendarEvent struct {
	Date      time.Time
	Event     string
	Actual    string
	Consensus string
	Previous  string
	Forecast  string // upstream's own projection
}

// Freshness describes how current a cached dataset is. Stale is set when
// the payload outlived its TTL but was served anyway because the upstream
// could not be reached.
type Freshness struct {
	FetchedAt time.Time
	Stale     bool
}
