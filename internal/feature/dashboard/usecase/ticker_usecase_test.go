package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"te_dashboard/internal/feature/dashboard/domain/entity"
)

// tickerQuotes is a full quote table covering every default slot.
var tickerQuotes = map[entity.MarketCategory][]entity.MarketQuote{
	entity.MarketIndex: {
		{Category: entity.MarketIndex, Symbol: "US500", Name: "S&P 500", Last: float64Ptr(4500), DailyPct: float64Ptr(0.2)},
		{Category: entity.MarketIndex, Symbol: "US30", Name: "Dow Jones", Last: float64Ptr(39000), DailyPct: float64Ptr(-0.1)},
		{Category: entity.MarketIndex, Symbol: "US100", Name: "Nasdaq 100", Last: float64Ptr(18500), DailyPct: float64Ptr(0.4)},
		{Category: entity.MarketIndex, Symbol: "USVIX", Name: "VIX", Last: float64Ptr(15.2), DailyPct: float64Ptr(-2.1)},
	},
	entity.MarketBond: {
		{Category: entity.MarketBond, Symbol: "USGG2YR:IND", Name: "US 2Y", Last: float64Ptr(3.9)},
		{Category: entity.MarketBond, Symbol: "USGG10YR:IND", Name: "US 10Y", Last: float64Ptr(4.4), DailyPct: float64Ptr(0.5)},
	},
	entity.MarketCurrency: {
		{Category: entity.MarketCurrency, Symbol: "DXY", Name: "US Dollar Index", Last: float64Ptr(104.2), DailyPct: float64Ptr(0.1)},
	},
	entity.MarketCommodities: {
		{Category: entity.MarketCommodities, Symbol: "CL1:COM", Name: "Crude Oil WTI", Last: float64Ptr(78.5), DailyPct: float64Ptr(1.2)},
	},
}

func TestGetTicker_ResolvesAllDefaultSlots(t *testing.T) {
	t.Parallel()

	fetchedAt := time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC)
	source := &mockDataSource{
		markets: func(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error) {
			return tickerQuotes[category], entity.Freshness{FetchedAt: fetchedAt}, nil
		},
	}
	u := NewDashboardUsecase(source, nil)

	items, fr, err := u.GetTicker(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != len(DefaultTickerEntries) {
		t.Fatalf("expected %d slots, got %d", len(DefaultTickerEntries), len(items))
	}

	// Exact symbol match for the indices.
	if items[0].Label != "S&P 500" || items[0].Value == nil || *items[0].Value != 4500 {
		t.Errorf("unexpected first slot: %+v", items[0])
	}
	// Name-contains fallback for the 10Y yield slot.
	var tenY *entity.TickerItem
	for i := range items {
		if items[i].Label == "10Y Yield" {
			tenY = &items[i]
		}
	}
	if tenY == nil {
		t.Fatal("10Y slot missing")
	}
	if tenY.Value == nil || *tenY.Value != 4.4 {
		t.Errorf("expected 10Y resolved by name, got %+v", tenY)
	}
	if !fr.FetchedAt.Equal(fetchedAt) || fr.Stale {
		t.Errorf("unexpected freshness: %+v", fr)
	}
}

func TestGetTicker_SkipsFailedCategory(t *testing.T) {
	t.Parallel()

	source := &mockDataSource{
		markets: func(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error) {
			if category == entity.MarketBond {
				return nil, entity.Freshness{}, errors.New("bond table down")
			}
			return tickerQuotes[category], entity.Freshness{FetchedAt: time.Now()}, nil
		},
	}
	u := NewDashboardUsecase(source, nil)

	items, _, err := u.GetTicker(context.Background())
	if err != nil {
		t.Fatalf("expected partial bar, got error: %v", err)
	}
	// All slots except the bond-backed one.
	if len(items) != len(DefaultTickerEntries)-1 {
		t.Fatalf("expected %d slots, got %d", len(DefaultTickerEntries)-1, len(items))
	}
	for _, item := range items {
		if item.Label == "10Y Yield" {
			t.Error("bond slot present despite fetch failure")
		}
	}
}

func TestGetTicker_AllCategoriesFailing(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("upstream down")
	source := &mockDataSource{
		markets: func(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error) {
			return nil, entity.Freshness{}, wantErr
		},
	}
	u := NewDashboardUsecase(source, nil)

	_, _, err := u.GetTicker(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestGetTicker_FreshnessIsOldestAndStaleIfAny(t *testing.T) {
	t.Parallel()

	newer := time.Date(2025, 8, 25, 9, 5, 0, 0, time.UTC)
	older := time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC)
	source := &mockDataSource{
		markets: func(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error) {
			fr := entity.Freshness{FetchedAt: newer}
			if category == entity.MarketCommodities {
				fr = entity.Freshness{FetchedAt: older, Stale: true}
			}
			return tickerQuotes[category], fr, nil
		},
	}
	u := NewDashboardUsecase(source, nil)

	_, fr, err := u.GetTicker(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fr.FetchedAt.Equal(older) {
		t.Errorf("expected oldest fetch time %v, got %v", older, fr.FetchedAt)
	}
	if !fr.Stale {
		t.Error("expected stale flag when any dataset was stale")
	}
}

func TestGetTicker_SkipsUnresolvableSlot(t *testing.T) {
	t.Parallel()

	entries := []TickerEntry{
		{Label: "S&P 500", Category: entity.MarketIndex, Symbol: "US500"},
		{Label: "Ghost", Category: entity.MarketIndex, Symbol: "NOPE", NameContains: "Nothing"},
	}
	source := &mockDataSource{
		markets: func(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error) {
			return tickerQuotes[category], entity.Freshness{FetchedAt: time.Now()}, nil
		},
	}
	u := NewDashboardUsecase(source, entries)

	items, _, err := u.GetTicker(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Label != "S&P 500" {
		t.Errorf("expected only the resolvable slot, got %+v", items)
	}
}
