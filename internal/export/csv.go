// Package export persists generated series as delimited tables.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/earth-data-report/internal/domain"
)

// Header is the column set of the exported table, one row per year.
var Header = []string{"Year", "Base_Value", "Risk_Level", "Environmental_Index"}

// CSVExporter writes a series to a CSV file named after the indicator and
// year range, e.g. earth_temperature_data_1850_2025.csv.
type CSVExporter struct {
	dir string
}

// NewCSVExporter creates an exporter writing into dir. The directory is
// created on first export if missing.
func NewCSVExporter(dir string) *CSVExporter {
	return &CSVExporter{dir: dir}
}

// Export writes the series and returns the path of the file produced.
func (e *CSVExporter) Export(ind domain.Indicator, records []domain.YearRecord) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(e.dir, FileName(ind))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Year),
			formatValue(rec.BaseValue),
			formatValue(rec.RiskLevel),
			formatValue(rec.EnvironmentalIndex),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row for year %d: %w", rec.Year, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}

// FileName returns the export file name for an indicator.
func FileName(ind domain.Indicator) string {
	return fmt.Sprintf("earth_%s_data_%d_%d.csv", ind, domain.StartYear, domain.EndYear)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
