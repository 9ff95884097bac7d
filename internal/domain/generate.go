package domain

import (
	"math"
	"math/rand"
)

// noiseFraction scales the gaussian perturbation relative to the profile
// amplitude.
const noiseFraction = 0.05

// Generator synthesizes indicator series. All randomness flows through its
// seeded source, so the same seed reproduces a series exactly.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. Seed 0 derives one from the injected
// clock; any other value makes generation fully reproducible.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces exactly one YearRecord per year in [StartYear, EndYear]
// for the given indicator. The only error condition is an unrecognized
// indicator, reported before any record is produced.
func (g *Generator) Generate(ind Indicator) ([]YearRecord, error) {
	p, err := ind.Profile()
	if err != nil {
		return nil, err
	}

	records := make([]YearRecord, 0, YearCount)
	for year := StartYear; year <= EndYear; year++ {
		base := baseValue(p, year) + g.rng.NormFloat64()*noiseFraction*p.Amplitude
		extreme := g.extremeIntensity(year)

		rec := YearRecord{
			Year:               year,
			BaseValue:          base,
			RiskLevel:          riskLevel(year, extreme),
			EnvironmentalIndex: environmentalIndex(p, year, base),
		}
		records = append(records, applyHistoricalEvents(ind, rec))
	}
	return records, nil
}

// baseValue is the deterministic part of the main series: baseline scaled by
// the long-term trend plus the cyclic term.
func baseValue(p Profile, year int) float64 {
	return p.BaseValue*trendFactor(p, year) + p.Amplitude*cycle(p, year)
}

// cycle evaluates the profile's periodic term for a year.
func cycle(p Profile, year int) float64 {
	return math.Sin(2 * math.Pi * float64(year-StartYear) / p.CycleYears)
}

// trendFactor drifts the baseline by ±1% per century depending on the
// profile's trend direction.
func trendFactor(p Profile, year int) float64 {
	switch p.Trend {
	case TrendRising:
		return 1 + 0.01*float64(year-StartYear)/100
	case TrendDeclining:
		return 1 - 0.01*float64(year-StartYear)/100
	default:
		return 1.0
	}
}

// ClimateTrendFactor is the piecewise industrial-era multiplier: flat through
// the pre-industrial period, then four accelerating segments.
func ClimateTrendFactor(year int) float64 {
	switch {
	case year < 1900:
		return 1.0
	case year < 1950:
		return 1.0 + 0.002*float64(year-1900)
	case year < 1980:
		return 1.02 + 0.005*float64(year-1950)
	case year < 2000:
		return 1.1 + 0.01*float64(year-1980)
	default:
		return 1.3 + 0.015*float64(year-2000)
	}
}

// HumanImpactFactor models the growing footprint of human activity as a
// piecewise multiplier, from ~1.25 in 1850 to 4.2 by 2025.
func HumanImpactFactor(year int) float64 {
	switch {
	case year < 1800:
		return 1.0
	case year < 1900:
		return 1.0 + 0.005*float64(year-1800)
	case year < 1950:
		return 1.5 + 0.01*float64(year-1900)
	case year < 1980:
		return 2.0 + 0.02*float64(year-1950)
	case year < 2000:
		return 2.6 + 0.03*float64(year-1980)
	default:
		return 3.2 + 0.04*float64(year-2000)
	}
}

// extremeIntensity samples the extreme-event term for a year. The trigger
// probability rises from 0.1 toward a 0.8 cap as the window progresses;
// triggered years get an intensity above 1 that also grows with the year.
func (g *Generator) extremeIntensity(year int) float64 {
	prob := math.Min(0.8, 0.1+0.001*float64(year-StartYear))
	if g.rng.Float64() < prob {
		return 1.0 + 0.5*float64(year-StartYear)/100
	}
	return 1.0
}

// riskLevel combines human impact and extreme-event intensity into the
// bounded [0, 100] severity score.
func riskLevel(year int, extreme float64) float64 {
	risk := HumanImpactFactor(year)*20 + (extreme-1)*50
	return clampRisk(risk)
}

// environmentalIndex is the composite secondary metric: the realized base
// value weighted against the climate-trend contribution.
func environmentalIndex(p Profile, year int, base float64) float64 {
	return base*0.6 + ClimateTrendFactor(year)*p.BaseValue*0.4
}

func clampRisk(risk float64) float64 {
	return math.Max(0, math.Min(100, risk))
}
