package tradingeconomics

import (
	"context"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/platform/externalapi/tradingeconomics/dto"
)

// Forecasts fetches the quarterly projections for all US indicators,
// flattened to one point per quarter. Quarters without both a value and a
// target date are skipped.
func (c *Client) Forecasts(ctx context.Context) ([]entity.ForecastPoint, error) {
	var rows []dto.ForecastRow
	if err := c.get(ctx, "/forecast/country/"+usCountry, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]entity.ForecastPoint, 0, len(rows))
	for _, r := range rows {
		quarters := []struct {
			period string
			value  dto.Number
			date   string
		}{
			{"Q1", r.Q1, r.Q1Date},
			{"Q2", r.Q2, r.Q2Date},
			{"Q3", r.Q3, r.Q3Date},
			{"Q4", r.Q4, r.Q4Date},
		}
		for _, q := range quarters {
			if !q.value.Valid {
				continue
			}
			date := parseDate(q.date)
			if date.IsZero() {
				continue
			}
			out = append(out, entity.ForecastPoint{
				Indicator: r.Category,
				Period:    q.period,
				Date:      date,
				Value:     q.value.Float64,
			})
		}
	}
	return out, nil
}
