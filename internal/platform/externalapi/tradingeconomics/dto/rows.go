// Package dto holds the raw JSON row shapes served by the Trading
// Economics API, before normalization into domain entities.
package dto

import (
	"strconv"
	"strings"
)

// Number decodes a numeric field that may arrive as a JSON number, a
// numeric string, null, or an empty string. Unparseable values are treated
// as absent rather than failing the whole payload.
type Number struct {
	Float64 float64
	Valid   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		n.Valid = false
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		n.Valid = false
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		n.Valid = false
		return nil
	}
	n.Float64 = f
	n.Valid = true
	return nil
}

// Ptr returns the value as *float64, nil when absent.
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// SnapshotRow is one indicator of the /country/{country} response.
type SnapshotRow struct {
	Country         string `json:"Country"`
	Category        string `json:"Category"`
	Title           string `json:"Title"`
	LatestValue     Number `json:"LatestValue"`
	LatestValueDate string `json:"LatestValueDate"`
	PreviousValue   Number `json:"PreviousValue"`
	Unit            string `json:"Unit"`
	CategoryGroup   string `json:"CategoryGroup"`
	Frequency       string `json:"Frequency"`
}

// HistoricalRow is one observation of /historical/country/.../indicator/...
type HistoricalRow struct {
	Country  string `json:"Country"`
	Category string `json:"Category"`
	DateTime string `json:"DateTime"`
	Value    Number `json:"Value"`
}

// ForecastRow is one indicator of /forecast/country/{country}: up to four
// quarterly projections with their target dates.
type ForecastRow struct {
	Country  string `json:"Country"`
	Category string `json:"Category"`
	Q1       Number `json:"q1"`
	Q1Date   string `json:"q1_date"`
	Q2       Number `json:"q2"`
	Q2Date   string `json:"q2_date"`
	Q3       Number `json:"q3"`
	Q3Date   string `json:"q3_date"`
	Q4       Number `json:"q4"`
	Q4Date   string `json:"q4_date"`
}

// MarketRow is one quote of /markets/{category}.
type MarketRow struct {
	Symbol                  string `json:"Symbol"`
	Name                    string `json:"Name"`
	Last                    Number `json:"Last"`
	Close                   Number `json:"Close"`
	DailyChange             Number `json:"DailyChange"`
	DailyPercentualChange   Number `json:"DailyPercentualChange"`
	WeeklyPercentualChange  Number `json:"WeeklyPercentualChange"`
	MonthlyPercentualChange Number `json:"MonthlyPercentualChange"`
	YearlyPercentualChange  Number `json:"YearlyPercentualChange"`
}

// MarketHistoricalRow is one bar of /markets/historical/{symbol}. Date is
// day-first.
type MarketHistoricalRow struct {
	Symbol string `json:"Symbol"`
	Date   string `json:"Date"`
	Open   Number `json:"Open"`
	High   Number `json:"High"`
	Low    Number `json:"Low"`
	Close  Number `json:"Close"`
}

// NewsRow is one item of /news/country/{country}. Field names are
// lower-case upstream, unlike every other endpoint.
type NewsRow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Country     string `json:"country"`
	Category    string `json:"category"`
	Importance  int    `json:"importance"`
	URL         string `json:"url"`
}

// CalendarRow is one scheduled release of /calendar/country/{country}.
// Forecast is the market consensus; TEForecast is the upstream's own
// projection.
type CalendarRow struct {
	Date       string `json:"Date"`
	Country    string `json:"Country"`
	Category   string `json:"Category"`
	Event      string `json:"Event"`
	Actual     string `json:"Actual"`
	Forecast   string `json:"Forecast"`
	Previous   string `json:"Previous"`
	TEForecast string `json:"TEForecast"`
}
