package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/platform/clock"
	"te_dashboard/internal/platform/externalapi/tradingeconomics"
)

// maxOutboundFetches caps simultaneous upstream calls so a burst of cold
// fingerprints cannot trip the API's rate limit.
const maxOutboundFetches = 4

// defaultRetryBackoff is the pause before the single transport-fault retry.
const defaultRetryBackoff = 500 * time.Millisecond

// Upstream is the uncached endpoint adapter set the decorator wraps.
// *tradingeconomics.Client satisfies it.
type Upstream interface {
	Snapshot(ctx context.Context) ([]entity.Indicator, error)
	Historical(ctx context.Context, indicator string) ([]entity.HistoricalPoint, error)
	Forecasts(ctx context.Context) ([]entity.ForecastPoint, error)
	Markets(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, error)
	MarketHistory(ctx context.Context, symbol string) ([]entity.OHLCBar, error)
	News(ctx context.Context, limit int) ([]entity.NewsItem, error)
	Calendar(ctx context.Context) ([]entity.CalendarEvent, error)
}

// CachingSource decorates an Upstream with the tiered cache contract:
// fresh entries are served without a network call, expired entries trigger
// exactly one refetch regardless of concurrent callers, and recoverable
// upstream failures degrade to the retained stale payload. Auth and decode
// failures always propagate; stale data must never mask a bad credential
// or a broken upstream contract.
type CachingSource struct {
	upstream     Upstream
	store        *MemoryStore
	mirror       *RedisMirror
	clock        clock.Clock
	group        singleflight.Group
	sem          *semaphore.Weighted
	retryBackoff time.Duration
}

// NewCachingSource decorates upstream. mirror may be nil (no Redis);
// clk nil defaults to the wall clock.
func NewCachingSource(upstream Upstream, mirror *RedisMirror, clk clock.Clock) *CachingSource {
	if clk == nil {
		clk = clock.Real{}
	}
	return &CachingSource{
		upstream:     upstream,
		store:        NewMemoryStore(),
		mirror:       mirror,
		clock:        clk,
		sem:          semaphore.NewWeighted(maxOutboundFetches),
		retryBackoff: defaultRetryBackoff,
	}
}

type fetchFunc func(ctx context.Context) (any, error)

// decodeAs rebuilds a mirrored JSON payload as its concrete type.
func decodeAs[T any](b []byte) (any, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// fingerprintPart normalizes a parameter for use in a cache key.
func fingerprintPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return strings.ReplaceAll(s, ":", "_")
}

// get implements the cache contract for one fingerprint: serve fresh from
// memory, warm-start from the mirror on a cold fingerprint, otherwise
// refresh through the single-flight fetch path.
func (s *CachingSource) get(ctx context.Context, fingerprint string, tier Tier, fetch fetchFunc, decode func([]byte) (any, error)) (any, entity.Freshness, error) {
	e, ok := s.store.Get(fingerprint)
	if !ok && s.mirror != nil {
		if b, fetchedAt, hit := s.mirror.Load(ctx, fingerprint); hit {
			if payload, err := decode(b); err == nil {
				e = Entry{Payload: payload, FetchedAt: fetchedAt, Tier: tier}
				s.store.Set(fingerprint, e)
				ok = true
			}
		}
	}
	if ok && s.clock.Now().Sub(e.FetchedAt) < tier.TTL() {
		return e.Payload, entity.Freshness{FetchedAt: e.FetchedAt}, nil
	}
	return s.refresh(ctx, fingerprint, tier, fetch)
}

// refresh fetches regardless of TTL. Concurrent callers for the same
// fingerprint share one in-flight fetch and its result.
func (s *CachingSource) refresh(ctx context.Context, fingerprint string, tier Tier, fetch fetchFunc) (any, entity.Freshness, error) {
	v, err, _ := s.group.Do(fingerprint, func() (any, error) {
		// The fetch outlives the caller: a navigated-away consumer still
		// leaves a populated cache behind for the next reader.
		fctx := context.WithoutCancel(ctx)

		if err := s.sem.Acquire(fctx, 1); err != nil {
			return nil, &tradingeconomics.TransportError{Err: err}
		}
		defer s.sem.Release(1)

		payload, err := fetch(fctx)
		if err != nil {
			var te *tradingeconomics.TransportError
			if !errors.As(err, &te) {
				return nil, err
			}
			time.Sleep(s.retryBackoff)
			if payload, err = fetch(fctx); err != nil {
				return nil, err
			}
		}

		e := Entry{Payload: payload, FetchedAt: s.clock.Now(), Tier: tier}
		s.store.Set(fingerprint, e)
		s.mirror.Store(fctx, fingerprint, e)
		return e, nil
	})
	if err != nil {
		if servableFromStale(err) {
			if e, ok := s.store.Get(fingerprint); ok {
				slog.Warn("serving stale cache entry",
					"fingerprint", fingerprint, "age", s.clock.Now().Sub(e.FetchedAt), "error", err)
				return e.Payload, entity.Freshness{FetchedAt: e.FetchedAt, Stale: true}, nil
			}
		}
		return nil, entity.Freshness{}, err
	}
	e := v.(Entry)
	return e.Payload, entity.Freshness{FetchedAt: e.FetchedAt}, nil
}

// servableFromStale reports whether the failure is recoverable enough to
// mask with a retained stale entry. Auth and decode failures are not.
func servableFromStale(err error) bool {
	var rl *tradingeconomics.RateLimitError
	var tr *tradingeconomics.TransportError
	return errors.As(err, &rl) || errors.As(err, &tr)
}

// Snapshot returns the cached US country snapshot (indicator tier).
func (s *CachingSource) Snapshot(ctx context.Context) ([]entity.Indicator, entity.Freshness, error) {
	v, fr, err := s.get(ctx, "snapshot", TierIndicator,
		func(ctx context.Context) (any, error) { return s.upstream.Snapshot(ctx) },
		decodeAs[[]entity.Indicator])
	if err != nil {
		return nil, fr, err
	}
	return v.([]entity.Indicator), fr, nil
}

// Historical returns the cached series for one indicator (historical tier).
func (s *CachingSource) Historical(ctx context.Context, indicator string) ([]entity.HistoricalPoint, entity.Freshness, error) {
	v, fr, err := s.get(ctx, "historical:"+fingerprintPart(indicator), TierHistorical,
		func(ctx context.Context) (any, error) { return s.upstream.Historical(ctx, indicator) },
		decodeAs[[]entity.HistoricalPoint])
	if err != nil {
		return nil, fr, err
	}
	return v.([]entity.HistoricalPoint), fr, nil
}

// Forecasts returns the cached forecast set (indicator tier).
func (s *CachingSource) Forecasts(ctx context.Context) ([]entity.ForecastPoint, entity.Freshness, error) {
	v, fr, err := s.get(ctx, "forecasts", TierIndicator,
		func(ctx context.Context) (any, error) { return s.upstream.Forecasts(ctx) },
		decodeAs[[]entity.ForecastPoint])
	if err != nil {
		return nil, fr, err
	}
	return v.([]entity.ForecastPoint), fr, nil
}

// Markets returns cached live quotes for one category (market tier).
func (s *CachingSource) Markets(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error) {
	v, fr, err := s.get(ctx, marketFingerprint(category), TierMarket,
		func(ctx context.Context) (any, error) { return s.upstream.Markets(ctx, category) },
		decodeAs[[]entity.MarketQuote])
	if err != nil {
		return nil, fr, err
	}
	return v.([]entity.MarketQuote), fr, nil
}

// MarketHistory returns cached OHLC bars for a symbol (historical tier).
func (s *CachingSource) MarketHistory(ctx context.Context, symbol string) ([]entity.OHLCBar, entity.Freshness, error) {
	v, fr, err := s.get(ctx, "ohlc:"+fingerprintPart(symbol), TierHistorical,
		func(ctx context.Context) (any, error) { return s.upstream.MarketHistory(ctx, symbol) },
		decodeAs[[]entity.OHLCBar])
	if err != nil {
		return nil, fr, err
	}
	return v.([]entity.OHLCBar), fr, nil
}

// News returns cached news items (historical tier). The limit is part of
// the fingerprint because it changes the upstream response.
func (s *CachingSource) News(ctx context.Context, limit int) ([]entity.NewsItem, entity.Freshness, error) {
	v, fr, err := s.get(ctx, "news:"+strconv.Itoa(limit), TierHistorical,
		func(ctx context.Context) (any, error) { return s.upstream.News(ctx, limit) },
		decodeAs[[]entity.NewsItem])
	if err != nil {
		return nil, fr, err
	}
	return v.([]entity.NewsItem), fr, nil
}

// Calendar returns the cached economic calendar (indicator tier).
func (s *CachingSource) Calendar(ctx context.Context) ([]entity.CalendarEvent, entity.Freshness, error) {
	v, fr, err := s.get(ctx, "calendar", TierIndicator,
		func(ctx context.Context) (any, error) { return s.upstream.Calendar(ctx) },
		decodeAs[[]entity.CalendarEvent])
	if err != nil {
		return nil, fr, err
	}
	return v.([]entity.CalendarEvent), fr, nil
}

// ForceRefreshMarkets refetches every market-tier fingerprint, bypassing
// the TTL check. Used by the refresh scheduler and the manual Refresh Now
// action; the single-flight group keeps a tick and a manual trigger from
// fetching the same category twice.
func (s *CachingSource) ForceRefreshMarkets(ctx context.Context) error {
	var errs []error
	for _, category := range entity.MarketCategories {
		cat := category
		_, _, err := s.refresh(ctx, marketFingerprint(cat), TierMarket,
			func(ctx context.Context) (any, error) { return s.upstream.Markets(ctx, cat) })
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Clear drops every cached entry, memory and mirror. Used at credential
// rotation, not by the periodic refresh.
func (s *CachingSource) Clear(ctx context.Context) {
	s.store.Clear()
	if err := s.mirror.Clear(ctx); err != nil {
		slog.Warn("cache mirror clear failed", "error", err)
	}
}

func marketFingerprint(category entity.MarketCategory) string {
	return "markets:" + string(category)
}
