// Package analysis derives the report aggregates from a generated series:
// descriptive statistics, anchored percent changes, risk classification, and
// the linear projection.
package analysis

import (
	"errors"

	"github.com/couchcryptid/earth-data-report/internal/domain"
)

// ErrEmptyDataset reports a summary request over zero records.
var ErrEmptyDataset = errors.New("empty dataset")

// ProjectionYear is the fixed horizon of the linear extrapolation.
const ProjectionYear = domain.EndYear + 10

// Risk bucket thresholds. The four-level scale maps the bounded [0, 100]
// risk score to user-facing labels.
const (
	riskModerate = 30
	riskHigh     = 55
	riskElevated = 80
)

// Trend direction labels. A total change within ±1% counts as stable.
const (
	TrendUp     = "croissante"
	TrendDown   = "décroissante"
	TrendStable = "stable"

	flatBandPct = 1.0
)

// Summary is the read-only aggregate over a full series. It is computed once
// per run and never persisted.
type Summary struct {
	Indicator domain.Indicator

	// Over BaseValue.
	Mean    float64
	Min     float64
	Max     float64
	Current float64

	// Anchored percent changes of BaseValue.
	ChangeSinceStartPct     float64
	ChangeSinceReferencePct float64
	TrendDirection          string

	// Risk assessment.
	CurrentRisk                 float64
	RiskBucket                  string
	RiskChangeSinceReferencePct float64

	// Human impact multiplier at EndYear and its growth since StartYear.
	HumanImpactFactor    float64
	HumanImpactGrowthPct float64

	// Naive linear projection.
	ProjectionYear     int
	ProjectedValue     float64
	ProjectedChangePct float64
}

// Summarize computes the Summary for a series. The input is never mutated.
// An empty series returns ErrEmptyDataset.
func Summarize(ind domain.Indicator, records []domain.YearRecord) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, ErrEmptyDataset
	}

	first := records[0]
	last := records[len(records)-1]
	ref := recordAt(records, domain.ReferenceYear, first)

	s := Summary{
		Indicator: ind,
		Min:       first.BaseValue,
		Max:       first.BaseValue,
		Current:   last.BaseValue,
	}

	var sum float64
	for _, rec := range records {
		sum += rec.BaseValue
		if rec.BaseValue < s.Min {
			s.Min = rec.BaseValue
		}
		if rec.BaseValue > s.Max {
			s.Max = rec.BaseValue
		}
	}
	s.Mean = sum / float64(len(records))

	s.ChangeSinceStartPct = percentChange(first.BaseValue, last.BaseValue)
	s.ChangeSinceReferencePct = percentChange(ref.BaseValue, last.BaseValue)
	s.TrendDirection = trendDirection(s.ChangeSinceStartPct)

	s.CurrentRisk = last.RiskLevel
	s.RiskBucket = RiskBucket(last.RiskLevel)
	s.RiskChangeSinceReferencePct = percentChange(ref.RiskLevel, last.RiskLevel)

	s.HumanImpactFactor = domain.HumanImpactFactor(last.Year)
	s.HumanImpactGrowthPct = percentChange(
		domain.HumanImpactFactor(first.Year), s.HumanImpactFactor)

	s.ProjectionYear = ProjectionYear
	s.ProjectedValue = projectLinear(records)
	s.ProjectedChangePct = percentChange(last.BaseValue, s.ProjectedValue)

	return s, nil
}

// RiskBucket maps a risk level to its qualitative label via fixed thresholds.
func RiskBucket(level float64) string {
	switch {
	case level >= riskElevated:
		return "ÉLEVÉ"
	case level >= riskHigh:
		return "IMPORTANT"
	case level >= riskModerate:
		return "MODÉRÉ"
	default:
		return "FAIBLE"
	}
}

// percentChange is (current−anchor)/anchor·100, with a zero anchor reported
// as no change rather than a division blow-up (sea level starts at 0 mm).
func percentChange(anchor, current float64) float64 {
	if anchor == 0 {
		return 0
	}
	return (current - anchor) / anchor * 100
}

func trendDirection(changePct float64) string {
	switch {
	case changePct > flatBandPct:
		return TrendUp
	case changePct < -flatBandPct:
		return TrendDown
	default:
		return TrendStable
	}
}

// projectLinear extrapolates the historical per-year rate of change
// (endpoint slope) out to ProjectionYear.
func projectLinear(records []domain.YearRecord) float64 {
	first := records[0]
	last := records[len(records)-1]
	if last.Year == first.Year {
		return last.BaseValue
	}
	slope := (last.BaseValue - first.BaseValue) / float64(last.Year-first.Year)
	return last.BaseValue + slope*float64(ProjectionYear-last.Year)
}

// recordAt returns the record for the given year, or the fallback when the
// series does not cover it.
func recordAt(records []domain.YearRecord, year int, fallback domain.YearRecord) domain.YearRecord {
	for _, rec := range records {
		if rec.Year == year {
			return rec
		}
	}
	return fallback
}
