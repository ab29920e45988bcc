package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"salesetl/pkg/contracts/domain"
)

// WorkbookFile is the Excel export written next to the CSV results.
const WorkbookFile = "results.xlsx"

// Sheet names inside the workbook.
const (
	sheetColorRevenue    = "Colour Revenue"
	sheetAverageLeadTime = "Average Lead Time"
)

// WriteWorkbook exports both result tables into a single Excel workbook,
// one sheet per table.
func WriteWorkbook(outputDir string, revenue []domain.ColorRevenue, leads []domain.CategoryLeadTime) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, WorkbookFile)

	f := excelize.NewFile()
	defer f.Close()

	// Reuse the default sheet for the first table.
	if err := f.SetSheetName("Sheet1", sheetColorRevenue); err != nil {
		return "", fmt.Errorf("failed to name revenue sheet: %w", err)
	}
	if err := writeRevenueSheet(f, revenue); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(sheetAverageLeadTime); err != nil {
		return "", fmt.Errorf("failed to create lead time sheet: %w", err)
	}
	if err := writeLeadTimeSheet(f, leads); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	slog.Info("wrote result workbook",
		slog.String("path", path),
		slog.Int("revenue_rows", len(revenue)),
		slog.Int("lead_time_rows", len(leads)))
	return path, nil
}

func writeRevenueSheet(f *excelize.File, rows []domain.ColorRevenue) error {
	if err := f.SetSheetRow(sheetColorRevenue, "A1", &[]any{"year", "Color", "revenue"}); err != nil {
		return fmt.Errorf("failed to write revenue header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate revenue row %d: %w", i, err)
		}
		row := []any{nil, nil, r.Revenue}
		if r.Year != nil {
			row[0] = *r.Year
		}
		if r.Color != nil {
			row[1] = *r.Color
		}
		if err := f.SetSheetRow(sheetColorRevenue, cell, &row); err != nil {
			return fmt.Errorf("failed to write revenue row %d: %w", i, err)
		}
	}
	return nil
}

func writeLeadTimeSheet(f *excelize.File, rows []domain.CategoryLeadTime) error {
	if err := f.SetSheetRow(sheetAverageLeadTime, "A1", &[]any{"ProductCategoryName", "average_lead_time"}); err != nil {
		return fmt.Errorf("failed to write lead time header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to locate lead time row %d: %w", i, err)
		}
		row := []any{nil, nil}
		if r.ProductCategoryName != nil {
			row[0] = *r.ProductCategoryName
		}
		if r.AverageLeadTime != nil {
			row[1] = *r.AverageLeadTime
		}
		if err := f.SetSheetRow(sheetAverageLeadTime, cell, &row); err != nil {
			return fmt.Errorf("failed to write lead time row %d: %w", i, err)
		}
	}
	return nil
}
