package tradingeconomics

import (
	"context"
	"sort"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/platform/externalapi/tradingeconomics/dto"
)

// Calendar fetches the upcoming US economic release calendar, ordered by
// date ascending. Actual stays empty until a figure is published.
func (c *Client) Calendar(ctx context.Context) ([]entity.CalendarEvent, error) {
	var rows []dto.CalendarRow
	if err := c.get(ctx, "/calendar/country/"+usCountry, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]entity.CalendarEvent, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.CalendarEvent{
			Date:      parseDate(r.Date),
			Event:     r.Event,
			Actual:    r.Actual,
			Consensus: r.Forecast,
			Previous:  r.Previous,
			Forecast:  r.TEForecast,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
