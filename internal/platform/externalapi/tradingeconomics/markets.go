package tradingeconomics

import (
	"context"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/platform/externalapi/tradingeconomics/dto"
)

// Markets fetches live quotes for one market category (index, bond,
// currency, commodities).
func (c *Client) Markets(ctx context.Context, category entity.MarketCategory) ([]entity.MarketQuote, error) {
	var rows []dto.MarketRow
	if err := c.get(ctx, "/markets/"+string(category), nil, &rows); err != nil {
		return nil, err
	}

	out := make([]entity.MarketQuote, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.MarketQuote{
			Symbol:     r.Symbol,
			Name:       r.Name,
			Category:   category,
			Last:       r.Last.Ptr(),
			Close:      r.Close.Ptr(),
			DailyChg:   r.DailyChange.Ptr(),
			DailyPct:   r.DailyPercentualChange.Ptr(),
			WeeklyPct:  r.WeeklyPercentualChange.Ptr(),
			MonthlyPct: r.MonthlyPercentualChange.Ptr(),
			YearlyPct:  r.YearlyPercentualChange.Ptr(),
		})
	}
	return out, nil
}
