package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"salesetl/pkg/contracts/domain"
)

// Result file names written under the output directory.
const (
	ColorRevenueFile    = "colour_revenue.csv"
	AverageLeadTimeFile = "average_lead.csv"
)

// CSVWriter writes result tables as comma-delimited text under a fixed
// output directory.
type CSVWriter struct {
	outputDir string
}

// NewCSVWriter creates a CSV writer rooted at outputDir.
func NewCSVWriter(outputDir string) *CSVWriter {
	return &CSVWriter{outputDir: outputDir}
}

// WriteColorRevenue exports the revenue-leader-by-year result.
func (w *CSVWriter) WriteColorRevenue(rows []domain.ColorRevenue) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			formatOptionalInt(r.Year),
			formatOptionalString(r.Color),
			formatFloat(r.Revenue),
		})
	}
	return w.write(ColorRevenueFile, []string{"year", "Color", "revenue"}, records)
}

// WriteAverageLeadTime exports the average-lead-time-by-category result.
func (w *CSVWriter) WriteAverageLeadTime(rows []domain.CategoryLeadTime) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			formatOptionalString(r.ProductCategoryName),
			formatOptionalFloat(r.AverageLeadTime),
		})
	}
	return w.write(AverageLeadTimeFile, []string{"ProductCategoryName", "average_lead_time"}, records)
}

// write creates (or truncates) one CSV file with a header row.
func (w *CSVWriter) write(name string, headers []string, records [][]string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(w.outputDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}

	slog.Info("wrote result file",
		slog.String("path", path),
		slog.Int("rows", len(records)))
	return path, nil
}
