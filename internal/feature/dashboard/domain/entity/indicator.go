// Package entity defines the domain models for the dashboard feature.
package entity

import "time"

// CategoryGroups are the economy category groups the upstream snapshot
// assigns to every US indicator, in sidebar order.
var CategoryGroups = []string{
	"GDP", "Labour", "Prices", "Housing", "Consumer",
	"Business", "Trade", "Money", "Government", "Energy",
}

// ValidCategoryGroup reports whether g is one of the known snapshot groups.
func ValidCategoryGroup(g string) bool {
	for _, known := range CategoryGroups {
		if g == known {
			return true
		}
	}
	return false
}

// Indicator is one row of the US country snapshot: the latest reading of a
// single economic indicator. Numeric fields are pointers because the
// upstream serves null for indicators without a current reading; nil means
// unavailable, never zero.
type Indicator struct {
	CategoryGroup string    // One of CategoryGroups (e.g. "Labour")
	Name          string    // Indicator name (e.g. "Unemployment Rate")
	LatestValue   *float64  // Most recent reading
	PreviousValue *float64  // Reading before the latest one
	Unit          string    // e.g. "percent", "USD Billion"
	Reference     time.Time // Period the latest value refers to
}

// Change returns latest minus previous, or nil when either side is missing.
func (i Indicator) Change() *float64 {
	if i.LatestValue == nil || i.PreviousValue == nil {
		return nil
	}
	d := *i.LatestValue - *i.PreviousValue
	return &d
}

// PctChange returns the percentage change from the previous value, or nil
// when it cannot be computed (missing values or a zero previous reading).
func (i Indicator) PctChange() *float64 {
	if i.LatestValue == nil || i.PreviousValue == nil || *i.PreviousValue == 0 {
		return nil
	}
	p := (*i.LatestValue - *i.PreviousValue) / *i.PreviousValue * 100
	return &p
}

// HistoricalPoint is one observation of an indicator or market symbol.
// Sequences are ordered by Time ascending.
type HistoricalPoint struct {
	Indicator string
	Time      time.Time
	Value     *float64
}

// ForecastPoint is a projected value for an indicator at a target period,
// overlaid onto the historical series in drill-down charts.
type ForecastPoint struct {
	Indicator string
	Period    string // "Q1".."Q4"
	Date      time.Time
	Value     float64
}
