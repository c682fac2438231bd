package tradingeconomics

import (
	"context"
	"net/url"
	"sort"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/platform/externalapi/tradingeconomics/dto"
)

// Historical fetches the full history of one US indicator, ordered by time
// ascending.
func (c *Client) Historical(ctx context.Context, indicator string) ([]entity.HistoricalPoint, error) {
	path := "/historical/country/" + usCountry + "/indicator/" + url.PathEscape(indicator)

	var rows []dto.HistoricalRow
	if err := c.get(ctx, path, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]entity.HistoricalPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.HistoricalPoint{
			Indicator: r.Category,
			Time:      parseDate(r.DateTime),
			Value:     r.Value.Ptr(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out, nil
}
