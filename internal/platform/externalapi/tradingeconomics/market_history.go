package tradingeconomics

import (
	"context"
	"net/url"
	"sort"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/platform/externalapi/tradingeconomics/dto"
)

// MarketHistory fetches OHLC bars for a market symbol (e.g.
// "USGG10YR:IND"), ordered by time ascending. Upstream dates are day-first.
func (c *Client) MarketHistory(ctx context.Context, symbol string) ([]entity.OHLCBar, error) {
	path := "/markets/historical/" + url.PathEscape(symbol)

	var rows []dto.MarketHistoricalRow
	if err := c.get(ctx, path, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]entity.OHLCBar, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.OHLCBar{
			Symbol: r.Symbol,
			Time:   parseOHLCDate(r.Date),
			Open:   r.Open.Ptr(),
			High:   r.High.Ptr(),
			Low:    r.Low.Ptr(),
			Close:  r.Close.Ptr(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out, nil
}
