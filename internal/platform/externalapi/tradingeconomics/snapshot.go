package tradingeconomics

import (
	"context"

	"te_dashboard/internal/feature/dashboard/domain/entity"
	"te_dashboard/internal/platform/externalapi/tradingeconomics/dto"
)

// Snapshot fetches the latest reading of every US economic indicator
// (~280 rows) and maps them to domain records.
func (c *Client) Snapshot(ctx context.Context) ([]entity.Indicator, error) {
	var rows []dto.SnapshotRow
	if err := c.get(ctx, "/country/"+usCountry, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]entity.Indicator, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.Indicator{
			CategoryGroup: r.CategoryGroup,
			Name:          r.Category,
			LatestValue:   r.LatestValue.Ptr(),
			PreviousValue: r.PreviousValue.Ptr(),
			Unit:          r.Unit,
			Reference:     parseDate(r.LatestValueDate),
		})
	}
	return out, nil
}
