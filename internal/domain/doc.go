// Package domain models synthetic Earth-system indicator series.
//
// # Indicators
//
// Eight indicators are supported (temperature, CO2, sea level, precipitation,
// glacier mass, biodiversity, air quality, ocean acidification). Each carries
// a generation profile: a baseline value, a cycle period in years, an
// amplitude, a long-term trend direction, and display metadata (unit, French
// label). Profiles drive both generation and report labelling.
//
// # Series shape
//
// One record per integer year in [1850, 2025]: 176 records, contiguous, no
// gaps. Records are independent closed-form functions of the year; there is
// no recurrence between years, so the series is immutable once produced.
//
// # Synthesis model
//
// Per-year base values combine three terms:
//
//	base·trendFactor(year) + amplitude·sin(2π·(year−1850)/cycle) + N(0, 0.05·amplitude)
//
// where trendFactor drifts ±1% per century depending on the profile's trend
// direction. Two piecewise industrial-era curves feed the derived columns:
// a climate-trend factor (flat before 1900, accelerating through four era
// segments afterwards) and a human-impact factor (1.25 in 1850, 4.2 by 2025).
// Risk level is clamp(humanImpact·20 + (extreme−1)·50, 0, 100), where extreme
// is a probabilistic event-intensity term whose likelihood grows with the
// year. The environmental index is a weighted composite of the base value and
// the climate-trend factor.
//
// # Historical events
//
// A fixed table of notable climate events (Dust Bowl, the major El Niño
// episodes, the 2003 European heatwave, the 2019 Australian fires, the 2020
// temperature record) scales the affected years' base value and risk after
// the closed forms run. The 1815 Tambora eruption predates the observation
// window and is listed in reports only.
//
// # Reproducibility
//
// All randomness flows through a single seeded source owned by the Generator.
// The same seed reproduces a series exactly; different seeds vary values but
// never the shape (year range, column set).
package domain
