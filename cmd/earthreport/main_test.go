package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/earth-data-report/internal/domain"
)

func TestReadSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Indicator
		wantErr bool
	}{
		{"first indicator", "1\n", domain.Temperature, false},
		{"last indicator", "8\n", domain.OceanPH, false},
		{"surrounding whitespace", "  3 \n", domain.SeaLevel, false},
		{"missing trailing newline", "2", domain.CO2, false},
		{"zero", "0\n", "", true},
		{"out of range", "9\n", "", true},
		{"negative", "-1\n", "", true},
		{"not a number", "abc\n", "", true},
		{"empty line", "\n", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSelection(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintMenu_ListsAllIndicators(t *testing.T) {
	var buf bytes.Buffer
	printMenu(&buf)
	out := buf.String()

	assert.Contains(t, out, "🌍 ANALYSE DES DONNÉES NUMÉRIQUES DE LA TERRE (1850-2025)")
	for i, ind := range domain.Indicators() {
		profile, err := ind.Profile()
		require.NoError(t, err)
		assert.Contains(t, out, profile.Label, "indicator %d", i+1)
	}
	assert.Contains(t, out, "8. ")
	assert.Contains(t, out, "Choisissez un indicateur (1-8):")
}
