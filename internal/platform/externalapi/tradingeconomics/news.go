package tradingeconomics

import (
	"context"
	"net/url"
	"sort"
	"strconv"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/platform/externalapi/tradingeconomics/dto"
)

// News fetches the latest US economic news, newest first.
func (c *Client) News(ctx context.Context, limit int) ([]entity.NewsItem, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	var rows []dto.NewsRow
	if err := c.get(ctx, "/news/country/"+usCountry, q, &rows); err != nil {
		return nil, err
	}

	out := make([]entity.NewsItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.NewsItem{
			Title:       r.Title,
			Description: r.Description,
			Time:        parseDate(r.Date),
			Category:    r.Category,
			Importance:  r.Importance,
			URL:         r.URL,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, nil
}
