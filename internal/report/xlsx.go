// Package report renders the dashboard payload for review: an xlsx
// workbook for spreadsheet users and a plain-text summary for the
// console.
package report

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"portfoliodash/types"
)

const (
	performanceSheet = "Performance"
	benchmarkSheet   = "Benchmark"
)

type XLSXGenerator struct {
	log zerolog.Logger
}

func NewXLSXGenerator(log zerolog.Logger) *XLSXGenerator {
	return &XLSXGenerator{log: log.With().Str("component", "report").Logger()}
}

// Generate renders the payload into an xlsx workbook and returns the
// file bytes. The ROI columns only cover BUY legs, so they are laid out
// on their own sheet rather than zipped against the full date column.
func (g *XLSXGenerator) Generate(payload types.DashboardPayload) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.log.Error().Err(err).Msg("closing workbook")
		}
	}()

	if err := g.fillPerformanceSheet(f, payload); err != nil {
		return nil, err
	}
	if err := g.fillBenchmarkSheet(f, payload); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		g.log.Error().Err(err).Msg("deleting default sheet")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	g.log.Debug().Int("bytes", buf.Len()).Msg("xlsx report generated")
	return buf.Bytes(), nil
}

func (g *XLSXGenerator) fillPerformanceSheet(f *excelize.File, payload types.DashboardPayload) error {
	if _, err := f.NewSheet(performanceSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", performanceSheet, err)
	}

	headers := []string{"ROI %", "Cumulative ROI %"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(performanceSheet, cell, h); err != nil {
			return err
		}
	}

	for i, roi := range payload.ROISeries {
		roiCell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(performanceSheet, roiCell, roi.InexactFloat64()); err != nil {
			return err
		}
		cumCell, err := excelize.CoordinatesToCellName(2, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(performanceSheet, cumCell, payload.CumulativeROISeries[i].InexactFloat64()); err != nil {
			return err
		}
	}

	summaryRow := len(payload.ROISeries) + 3
	labelCell, err := excelize.CoordinatesToCellName(1, summaryRow)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(performanceSheet, labelCell, "Sharpe Ratio"); err != nil {
		return err
	}
	valueCell, err := excelize.CoordinatesToCellName(2, summaryRow)
	if err != nil {
		return err
	}
	return f.SetCellValue(performanceSheet, valueCell, payload.SharpeRatio.InexactFloat64())
}

func (g *XLSXGenerator) fillBenchmarkSheet(f *excelize.File, payload types.DashboardPayload) error {
	if _, err := f.NewSheet(benchmarkSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", benchmarkSheet, err)
	}

	if err := f.SetCellValue(benchmarkSheet, "A1", "Reference Price"); err != nil {
		return err
	}
	for i, price := range payload.BenchmarkSeries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(benchmarkSheet, cell, price.InexactFloat64()); err != nil {
			return err
		}
	}
	return nil
}
