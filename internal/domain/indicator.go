package domain

import (
	"errors"
	"fmt"
)

// Observation window: the start of modern meteorological record-keeping
// through the analysis year.
const (
	StartYear = 1850
	EndYear   = 2025

	// YearCount is the number of records in a complete series.
	YearCount = EndYear - StartYear + 1

	// ReferenceYear anchors the "recent change" calculations.
	ReferenceYear = 2000
)

// ErrInvalidSelection reports an unrecognized indicator menu index.
var ErrInvalidSelection = errors.New("invalid indicator selection")

// Trend is the long-term direction of an indicator's profile.
type Trend string

const (
	TrendRising    Trend = "croissante"
	TrendDeclining Trend = "décroissante"
	TrendVariable  Trend = "variable"
)

// Indicator identifies one of the supported Earth-system metrics.
type Indicator string

const (
	Temperature   Indicator = "temperature"
	CO2           Indicator = "co2"
	SeaLevel      Indicator = "sea_level"
	Precipitation Indicator = "precipitation"
	Glaciers      Indicator = "glaciers"
	Biodiversity  Indicator = "biodiversity"
	AirQuality    Indicator = "air_quality"
	OceanPH       Indicator = "ocean_ph"
)

// Profile holds the generation constants and display metadata for an indicator.
type Profile struct {
	BaseValue  float64
	CycleYears float64
	Amplitude  float64
	Trend      Trend
	Unit       string
	Label      string
}

// indicators lists the supported types in menu order (selection 1-8).
var indicators = []Indicator{
	Temperature, CO2, SeaLevel, Precipitation,
	Glaciers, Biodiversity, AirQuality, OceanPH,
}

var profiles = map[Indicator]Profile{
	Temperature: {
		BaseValue:  14.0,
		CycleYears: 1.0,
		Amplitude:  15.0,
		Trend:      TrendRising,
		Unit:       "°C",
		Label:      "Température moyenne globale",
	},
	CO2: {
		BaseValue:  280,
		CycleYears: 1.0,
		Amplitude:  10,
		Trend:      TrendRising,
		Unit:       "ppm",
		Label:      "Concentration de CO2 atmosphérique",
	},
	SeaLevel: {
		BaseValue:  0,
		CycleYears: 1.0,
		Amplitude:  5,
		Trend:      TrendRising,
		Unit:       "mm",
		Label:      "Élévation du niveau de la mer",
	},
	Precipitation: {
		BaseValue:  1000,
		CycleYears: 1.0,
		Amplitude:  300,
		Trend:      TrendVariable,
		Unit:       "mm/an",
		Label:      "Précipitations annuelles",
	},
	Glaciers: {
		BaseValue:  100,
		CycleYears: 10.0,
		Amplitude:  30,
		Trend:      TrendDeclining,
		Unit:       "% de masse",
		Label:      "Masse des glaciers",
	},
	Biodiversity: {
		BaseValue:  100,
		CycleYears: 10.0,
		Amplitude:  20,
		Trend:      TrendDeclining,
		Unit:       "Index de diversité",
		Label:      "Diversité biologique",
	},
	AirQuality: {
		BaseValue:  50,
		CycleYears: 1.0,
		Amplitude:  30,
		Trend:      TrendVariable,
		Unit:       "AQI",
		Label:      "Qualité de l'air",
	},
	OceanPH: {
		BaseValue:  8.1,
		CycleYears: 10.0,
		Amplitude:  0.3,
		Trend:      TrendDeclining,
		Unit:       "pH",
		Label:      "Acidification des océans",
	},
}

// Indicators returns the supported indicators in menu order.
func Indicators() []Indicator {
	out := make([]Indicator, len(indicators))
	copy(out, indicators)
	return out
}

// FromSelection maps a 1-based menu index to its indicator.
// Out-of-range indexes return ErrInvalidSelection.
func FromSelection(n int) (Indicator, error) {
	if n < 1 || n > len(indicators) {
		return "", fmt.Errorf("%w: %d (expected 1-%d)", ErrInvalidSelection, n, len(indicators))
	}
	return indicators[n-1], nil
}

// Profile returns the generation profile for the indicator.
// Unknown indicators return ErrInvalidSelection.
func (i Indicator) Profile() (Profile, error) {
	p, ok := profiles[i]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrInvalidSelection, string(i))
	}
	return p, nil
}

// Valid reports whether the indicator is one of the supported types.
func (i Indicator) Valid() bool {
	_, ok := profiles[i]
	return ok
}
