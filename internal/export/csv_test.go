package export_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/couchcryptid/earth-data-report/internal/domain"
	"github.com/couchcryptid/earth-data-report/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_WritesFullTable(t *testing.T) {
	dir := t.TempDir()
	records, err := domain.NewGenerator(42).Generate(domain.Temperature)
	require.NoError(t, err)

	path, err := export.NewCSVExporter(dir).Export(domain.Temperature, records)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "earth_temperature_data_1850_2025.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, domain.YearCount+1)

	assert.Equal(t, export.Header, rows[0])
	assert.Equal(t, "1850", rows[1][0])
	assert.Equal(t, "2025", rows[len(rows)-1][0])

	// Values round-trip as parseable floats.
	for i, row := range rows[1:] {
		year, err := strconv.Atoi(row[0])
		require.NoError(t, err)
		assert.Equal(t, domain.StartYear+i, year)
		for col := 1; col < len(row); col++ {
			_, err := strconv.ParseFloat(row[col], 64)
			require.NoError(t, err, "row %d col %d", i, col)
		}
	}
}

func TestExport_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	records, err := domain.NewGenerator(1).Generate(domain.OceanPH)
	require.NoError(t, err)

	path, err := export.NewCSVExporter(dir).Export(domain.OceanPH, records)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "earth_co2_data_1850_2025.csv", export.FileName(domain.CO2))
	assert.Equal(t, "earth_sea_level_data_1850_2025.csv", export.FileName(domain.SeaLevel))
}
