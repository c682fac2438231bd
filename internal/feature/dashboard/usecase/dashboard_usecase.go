// Package usecase implements the read API the dashboard UI consumes.
package usecase

import (
	"context"
	"time"

	"te_dashboard/internal/feature/dashboard/domain/entity"
)

const (
	// DefaultNewsLimit is the number of news items fetched when the UI
	// does not ask for a specific count.
	DefaultNewsLimit = 25
	// MaxNewsLimit caps the news request size.
	MaxNewsLimit = 100
)

// DataSource abstracts the cached access layer over the upstream API.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (the cache decorator).
type DataSource interface {
	Snapshot(ctx context.Context) ([]entity.Indicator, entity.Freshness, error)
	Historical(ctx context.Context, indicator string) ([]entity.HistoricalPoint, entity.Freshness, error)
	Forecasts(ctx context.Context) ([]entity.ForecastPoint, entity.Freshness, error)
	Markets(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error)
	MarketHistory(ctx context.Context, symbol string) ([]entity.OHLCBar, entity.Freshness, error)
	News(ctx context.Context, limit int) ([]entity.NewsItem, entity.Freshness, error)
	Calendar(ctx context.Context) ([]entity.CalendarEvent, entity.Freshness, error)
}

// DashboardUsecase serves the datasets behind every dashboard page.
type DashboardUsecase struct {
	source  DataSource
	tickers []TickerEntry
}

// NewDashboardUsecase creates a DashboardUsecase. An empty tickers slice
// falls back to the default curated ticker bar.
func NewDashboardUsecase(source DataSource, tickers []TickerEntry) *DashboardUsecase {
	if len(tickers) == 0 {
		tickers = DefaultTickerEntries
	}
	return &DashboardUsecase{source: source, tickers: tickers}
}

// GetIndicators returns the snapshot rows of one category group.
func (u *DashboardUsecase) GetIndicators(ctx context.Context, group string) ([]entity.Indicator, entity.Freshness, error) {
	if !entity.ValidCategoryGroup(group) {
		return nil, entity.Freshness{}, ErrUnknownGroup
	}

	all, fr, err := u.source.Snapshot(ctx)
	if err != nil {
		return nil, fr, err
	}

	out := make([]entity.Indicator, 0, len(all))
	for _, ind := range all {
		if ind.CategoryGroup == group {
			out = append(out, ind)
		}
	}
	return out, fr, nil
}

// GetHistorical returns the series for one indicator, optionally limited
// to observations at or after from (zero time means the full history).
func (u *DashboardUsecase) GetHistorical(ctx context.Context, indicator string, from time.Time) ([]entity.HistoricalPoint, entity.Freshness, error) {
	points, fr, err := u.source.Historical(ctx, indicator)
	if err != nil {
		return nil, fr, err
	}
	return clipFrom(points, from, func(p entity.HistoricalPoint) time.Time { return p.Time }), fr, nil
}

// GetForecast returns the forecast points for one indicator, for overlay
// onto its historical chart.
func (u *DashboardUsecase) GetForecast(ctx context.Context, indicator string) ([]entity.ForecastPoint, entity.Freshness, error) {
	all, fr, err := u.source.Forecasts(ctx)
	if err != nil {
		return nil, fr, err
	}

	out := make([]entity.ForecastPoint, 0, 4)
	for _, p := range all {
		if p.Indicator == indicator {
			out = append(out, p)
		}
	}
	return out, fr, nil
}

// GetMarketQuotes returns live quotes for one market category.
func (u *DashboardUsecase) GetMarketQuotes(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error) {
	if !entity.ValidMarketCategory(category) {
		return nil, entity.Freshness{}, ErrUnknownCategory
	}
	return u.source.Markets(ctx, category)
}

// GetOHLC returns OHLC bars for a market symbol, optionally limited to
// bars at or after from.
func (u *DashboardUsecase) GetOHLC(ctx context.Context, symbol string, from time.Time) ([]entity.OHLCBar, entity.Freshness, error) {
	bars, fr, err := u.source.MarketHistory(ctx, symbol)
	if err != nil {
		return nil, fr, err
	}
	return clipFrom(bars, from, func(b entity.OHLCBar) time.Time { return b.Time }), fr, nil
}

// GetNews returns the latest news items. Non-positive limits fall back to
// the default; limits above the cap are clamped to it.
func (u *DashboardUsecase) GetNews(ctx context.Context, limit int) ([]entity.NewsItem, entity.Freshness, error) {
	if limit <= 0 {
		limit = DefaultNewsLimit
	} else if limit > MaxNewsLimit {
		limit = MaxNewsLimit
	}
	return u.source.News(ctx, limit)
}

// GetCalendar returns the upcoming US economic calendar.
func (u *DashboardUsecase) GetCalendar(ctx context.Context) ([]entity.CalendarEvent, entity.Freshness, error) {
	return u.source.Calendar(ctx)
}

// clipFrom drops elements before from. Sequences arrive time-ascending, so
// the first kept index is found once.
func clipFrom[T any](seq []T, from time.Time, at func(T) time.Time) []T {
	if from.IsZero() {
		return seq
	}
	for i, v := range seq {
		if !at(v).Before(from) {
			return seq[i:]
		}
	}
	return []T{}
}
