package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"te_dashboard/internal/feature/dashboard/domain/entity"
)

func float64Ptr(v float64) *float64 { return &v }

// mockDataSource implements DataSource with per-method function fields.
type mockDataSource struct {
	snapshot      func(ctx context.Context) ([]entity.Indicator, entity.Freshness, error)
	historical    func(ctx context.Context, indicator string) ([]entity.HistoricalPoint, entity.Freshness, error)
	forecasts     func(ctx context.Context) ([]entity.ForecastPoint, entity.Freshness, error)
	markets       func(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error)
	marketHistory func(ctx context.Context, symbol string) ([]entity.OHLCBar, entity.Freshness, error)
	news          func(ctx context.Context, limit int) ([]entity.NewsItem, entity.Freshness, error)
	calendar      func(ctx context.Context) ([]entity.CalendarEvent, entity.Freshness, error)
}

func (m *mockDataSource) Snapshot(ctx context.Context) ([]entity.Indicator, entity.Freshness, error) {
	return m.snapshot(ctx)
}
func (m *mockDataSource) Historical(ctx context.Context, indicator string) ([]entity.HistoricalPoint, entity.Freshness, error) {
	return m.historical(ctx, indicator)
}
func (m *mockDataSource) Forecasts(ctx context.Context) ([]entity.ForecastPoint, entity.Freshness, error) {
	return m.forecasts(ctx)
}
func (m *mockDataSource) Markets(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error) {
	return m.markets(ctx, category)
}
func (m *mockDataSource) MarketHistory(ctx context.Context, symbol string) ([]entity.OHLCBar, entity.Freshness, error) {
	return m.marketHistory(ctx, symbol)
}
func (m *mockDataSource) News(ctx context.Context, limit int) ([]entity.NewsItem, entity.Freshness, error) {
	return m.news(ctx, limit)
}
func (m *mockDataSource) Calendar(ctx context.Context) ([]entity.CalendarEvent, entity.Freshness, error) {
	return m.calendar(ctx)
}

func TestGetIndicators_FiltersByGroup(t *testing.T) {
	t.Parallel()

	fetchedAt := time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC)
	source := &mockDataSource{
		snapshot: func(ctx context.Context) ([]entity.Indicator, entity.Freshness, error) {
			return []entity.Indicator{
				{CategoryGroup: "Labour", Name: "Unemployment Rate"},
				{CategoryGroup: "Prices", Name: "Inflation Rate"},
				{CategoryGroup: "Labour", Name: "Non Farm Payrolls"},
			}, entity.Freshness{FetchedAt: fetchedAt}, nil
		},
	}
	u := NewDashboardUsecase(source, nil)

	got, fr, err := u.GetIndicators(context.Background(), "Labour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 indicators, got %d", len(got))
	}
	for _, ind := range got {
		if ind.CategoryGroup != "Labour" {
			t.Errorf("wrong group in result: %+v", ind)
		}
	}
	if !fr.FetchedAt.Equal(fetchedAt) {
		t.Error("freshness not passed through")
	}
}

func TestGetIndicators_UnknownGroup(t *testing.T) {
	t.Parallel()

	called := false
	source := &mockDataSource{
		snapshot: func(ctx context.Context) ([]entity.Indicator, entity.Freshness, error) {
			called = true
			return nil, entity.Freshness{}, nil
		},
	}
	u := NewDashboardUsecase(source, nil)

	_, _, err := u.GetIndicators(context.Background(), "Astrology")
	if !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
	if called {
		t.Error("snapshot fetched for an invalid group")
	}
}

func TestGetHistorical_ClipsFrom(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2025, 8, d, 0, 0, 0, 0, time.UTC) }
	source := &mockDataSource{
		historical: func(ctx context.Context, indicator string) ([]entity.HistoricalPoint, entity.Freshness, error) {
			return []entity.HistoricalPoint{
				{Indicator: indicator, Time: day(1)},
				{Indicator: indicator, Time: day(10)},
				{Indicator: indicator, Time: day(20)},
			}, entity.Freshness{}, nil
		},
	}
	u := NewDashboardUsecase(source, nil)
	ctx := context.Background()

	got, _, err := u.GetHistorical(ctx, "Inflation Rate", day(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || !got[0].Time.Equal(day(10)) {
		t.Errorf("expected points from the 10th on, got %+v", got)
	}

	// Zero time means no clipping.
	all, _, err := u.GetHistorical(ctx, "Inflation Rate", time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected full series, got %d points", len(all))
	}

	// A cutoff past the last point yields an empty, non-nil slice.
	none, _, err := u.GetHistorical(ctx, "Inflation Rate", day(21))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty slice, got %v", none)
	}
}

func TestGetForecast_FiltersByIndicator(t *testing.T) {
	t.Parallel()

	source := &mockDataSource{
		forecasts: func(ctx context.Context) ([]entity.ForecastPoint, entity.Freshness, error) {
			return []entity.ForecastPoint{
				{Indicator: "Inflation Rate", Period: "Q1", Value: 2.3},
				{Indicator: "GDP Growth Rate", Period: "Q1", Value: 1.8},
				{Indicator: "Inflation Rate", Period: "Q2", Value: 2.2},
			}, entity.Freshness{}, nil
		},
	}
	u := NewDashboardUsecase(source, nil)

	got, _, err := u.GetForecast(context.Background(), "Inflation Rate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	for _, p := range got {
		if p.Indicator != "Inflation Rate" {
			t.Errorf("wrong indicator in result: %+v", p)
		}
	}
}

func TestGetMarketQuotes_UnknownCategory(t *testing.T) {
	t.Parallel()

	u := NewDashboardUsecase(&mockDataSource{}, nil)

	_, _, err := u.GetMarketQuotes(context.Background(), "crypto")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestGetNews_LimitDefaulting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"explicit", 40, 40},
		{"zero falls back", 0, DefaultNewsLimit},
		{"negative falls back", -5, DefaultNewsLimit},
		{"over cap clamps", MaxNewsLimit + 1, MaxNewsLimit},
		{"at cap passes", MaxNewsLimit, MaxNewsLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got int
			source := &mockDataSource{
				news: func(ctx context.Context, limit int) ([]entity.NewsItem, entity.Freshness, error) {
					got = limit
					return nil, entity.Freshness{}, nil
				},
			}
			u := NewDashboardUsecase(source, nil)

			if _, _, err := u.GetNews(context.Background(), tt.in); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected limit %d, got %d", tt.want, got)
			}
		})
	}
}
