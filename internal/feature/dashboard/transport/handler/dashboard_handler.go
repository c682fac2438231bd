// Package handler provides the HTTP handlers of the dashboard read API.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/feature/dashboard/transport/http/dto"
	"te_dashboard/internal/feature/dashboard/usecase"
	"te_dashboard/internal/platform/externalapi/tradingeconomics"
)

// timeLayout formats response timestamps.
const timeLayout = time.RFC3339

// DashboardUsecase defines the read operations the handlers expose.
// Following Go convention, the interface is defined on the consumer side.
type DashboardUsecase interface {
	GetTicker(ctx context.Context) ([]entity.TickerItem, entity.Freshness, error)
	GetIndicators(ctx context.Context, group string) ([]entity.Indicator, entity.Freshness, error)
	GetHistorical(ctx context.Context, indicator string, from time.Time) ([]entity.HistoricalPoint, entity.Freshness, error)
	GetForecast(ctx context.Context, indicator string) ([]entity.ForecastPoint, entity.Freshness, error)
	GetMarketQuotes(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, entity.Freshness, error)
	GetOHLC(ctx context.Context, symbol string, from time.Time) ([]entity.OHLCBar, entity.Freshness, error)
	GetNews(ctx context.Context, limit int) ([]entity.NewsItem, entity.Freshness, error)
	GetCalendar(ctx context.Context) ([]entity.CalendarEvent, entity.Freshness, error)
}

// DashboardHandler serves the dataset endpoints.
type DashboardHandler struct {
	uc DashboardUsecase
}

// NewDashboardHandler creates a DashboardHandler over the given usecase.
func NewDashboardHandler(uc DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetTicker handles GET /api/ticker.
func (h *DashboardHandler) GetTicker(c *gin.Context) {
	items, fr, err := h.uc.GetTicker(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.TickerItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TickerItemResponse{Label: it.Label, Value: it.Value, Change: it.Change})
	}
	writeData(c, out, fr)
}

// GetIndicators handles GET /api/indicators?group=Labour.
func (h *DashboardHandler) GetIndicators(c *gin.Context) {
	group := c.Query("group")

	inds, fr, err := h.uc.GetIndicators(c.Request.Context(), group)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.IndicatorResponse, 0, len(inds))
	for _, ind := range inds {
		row := dto.IndicatorResponse{
			Group:     ind.CategoryGroup,
			Name:      ind.Name,
			Latest:    ind.LatestValue,
			Previous:  ind.PreviousValue,
			Change:    ind.Change(),
			PctChange: ind.PctChange(),
			Unit:      ind.Unit,
		}
		if !ind.Reference.IsZero() {
			row.Reference = ind.Reference.Format("2006-01-02")
		}
		out = append(out, row)
	}
	writeData(c, out, fr)
}

// GetHistorical handles GET /api/historical/:indicator?from=2020-01-01.
func (h *DashboardHandler) GetHistorical(c *gin.Context) {
	from, ok := parseFrom(c)
	if !ok {
		return
	}

	points, fr, err := h.uc.GetHistorical(c.Request.Context(), c.Param("indicator"), from)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.HistoricalPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.HistoricalPointResponse{
			Time:  p.Time.Format("2006-01-02"),
			Value: p.Value,
		})
	}
	writeData(c, out, fr)
}

// GetForecast handles GET /api/forecast/:indicator.
func (h *DashboardHandler) GetForecast(c *gin.Context) {
	points, fr, err := h.uc.GetForecast(c.Request.Context(), c.Param("indicator"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.ForecastPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ForecastPointResponse{
			Period: p.Period,
			Date:   p.Date.Format("2006-01-02"),
			Value:  p.Value,
		})
	}
	writeData(c, out, fr)
}

// GetMarkets handles GET /api/markets/:category.
func (h *DashboardHandler) GetMarkets(c *gin.Context) {
	category := entity.MarketCategory(c.Param("category"))

	quotes, fr, err := h.uc.GetMarketQuotes(c.Request.Context(), category)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.MarketQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, dto.MarketQuoteResponse{
			Symbol:     q.Symbol,
			Name:       q.Name,
			Last:       q.Last,
			Close:      q.Close,
			DailyChg:   q.DailyChg,
			DailyPct:   q.DailyPct,
			WeeklyPct:  q.WeeklyPct,
			MonthlyPct: q.MonthlyPct,
			YearlyPct:  q.YearlyPct,
		})
	}
	writeData(c, out, fr)
}

// GetOHLC handles GET /api/ohlc/:symbol?from=2024-01-01.
func (h *DashboardHandler) GetOHLC(c *gin.Context) {
	from, ok := parseFrom(c)
	if !ok {
		return
	}

	bars, fr, err := h.uc.GetOHLC(c.Request.Context(), c.Param("symbol"), from)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.OHLCBarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.OHLCBarResponse{
			Time:  b.Time.Format("2006-01-02"),
			Open:  b.Open,
			High:  b.High,
			Low:   b.Low,
			Close: b.Close,
		})
	}
	writeData(c, out, fr)
}

// GetNews handles GET /api/news?limit=25.
func (h *DashboardHandler) GetNews(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultNewsLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be an integer", Code: "bad_request"})
		return
	}

	items, fr, err := h.uc.GetNews(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.NewsItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewsItemResponse{
			Title:       it.Title,
			Description: it.Description,
			Time:        it.Time.Format(timeLayout),
			Category:    it.Category,
			Importance:  it.Importance,
			URL:         it.URL,
		})
	}
	writeData(c, out, fr)
}

// GetCalendar handles GET /api/calendar.
func (h *DashboardHandler) GetCalendar(c *gin.Context) {
	events, fr, err := h.uc.GetCalendar(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.CalendarEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.CalendarEventResponse{
			Date:      e.Date.Format(timeLayout),
			Event:     e.Event,
			Actual:    e.Actual,
			Consensus: e.Consensus,
			Previous:  e.Previous,
			Forecast:  e.Forecast,
		})
	}
	writeData(c, out, fr)
}

// writeData wraps a dataset in the standard envelope.
func writeData(c *gin.Context, data any, fr entity.Freshness) {
	res := dto.DataResponse{Data: data, Stale: fr.Stale}
	if !fr.FetchedAt.IsZero() {
		res.AsOf = fr.FetchedAt.UTC().Format(timeLayout)
	}
	c.JSON(http.StatusOK, res)
}

// parseFrom reads the optional from query parameter (YYYY-MM-DD). The
// second return is false when the parameter was present but invalid, in
// which case the response has already been written.
func parseFrom(c *gin.Context) (time.Time, bool) {
	s := c.Query("from")
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "from must be YYYY-MM-DD", Code: "bad_request"})
		return time.Time{}, false
	}
	return t, true
}

// writeError maps the upstream error taxonomy onto HTTP statuses and the
// UI's notice codes.
func writeError(c *gin.Context, err error) {
	var (
		authErr *tradingeconomics.AuthError
		rateErr *tradingeconomics.RateLimitError
		tranErr *tradingeconomics.TransportError
		decErr  *tradingeconomics.DecodeError
	)
	switch {
	case errors.Is(err, usecase.ErrUnknownGroup) || errors.Is(err, usecase.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: "bad_request"})
	case errors.As(err, &authErr):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error(), Code: "check_api_key"})
	case errors.As(err, &rateErr):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error(), Code: "temporarily_unavailable"})
	case errors.As(err, &decErr):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error(), Code: "upstream_contract"})
	case errors.As(err, &tranErr):
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: err.Error(), Code: "upstream_unreachable"})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
