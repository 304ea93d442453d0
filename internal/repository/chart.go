package repository

import (
	"context"
	"time"

	"portfoliodash/types"
)

var bucketToInterval = map[types.Interval]string{
	types.OneMinute:      "1 minute",
	types.FiveMinutes:    "5 minutes",
	types.FifteenMinutes: "15 minutes",
	types.ThirtyMinutes:  "30 minutes",
	types.Hour:           "1 hour",
	types.Day:            "1 day",
}

// GetChartPoints retrieves the bucketed close-price series for a symbol
// over [start, end).
func (db *Database) GetChartPoints(ctx context.Context, symbol string, interval types.Interval, start, end time.Time) ([]types.ChartPoint, error) {
	bucket, ok := bucketToInterval[interval]
	if !ok {
		return nil, ErrIntervalNotSupported
	}
	rows, err := db.charts.GetChartRows(ctx, bucket, symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoChartPoints
	}
	return convertChartRows(rows), nil
}

func convertChartRows(rows []chartRow) []types.ChartPoint {
	var points []types.ChartPoint
	for _, row := range rows {
		points = append(points, types.ChartPoint{
			Timestamp:  row.Bucket,
			ClosePrice: row.ClosePrice,
		})
	}
	return points
}
