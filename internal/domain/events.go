package domain

// HistoricalEvent is one entry in the static list of notable climate events
// printed by the report.
type HistoricalEvent struct {
	Period      string
	Description string
}

// HistoricalEvents returns the notable-event list in chronological order.
// The 1815 Tambora entry predates the observation window, so it appears here
// but never adjusts generated records.
func HistoricalEvents() []HistoricalEvent {
	return []HistoricalEvent{
		{"1815-1816", "Éruption du Tambora - 'année sans été'"},
		{"1930-1939", "Dust Bowl - sécheresse extrême aux États-Unis"},
		{"1982-1983", "El Niño majeur avec impacts globaux"},
		{"1997-1998", "El Niño le plus intense du 20ème siècle"},
		{"2003", "Canicule européenne - 70,000 morts"},
		{"2005", "Ouragan Katrina - New Orleans inondée"},
		{"2011", "Sécheresse du Texas + Fukushima"},
		{"2019-2020", "Incendies records en Australie"},
		{"2020", "Année record de températures globales"},
	}
}

// applyHistoricalEvents scales a record's base value and risk when its year
// falls on a notable climate event affecting the indicator. Risk stays
// clamped to [0, 100].
func applyHistoricalEvents(ind Indicator, rec YearRecord) YearRecord {
	switch {
	case rec.Year >= 1930 && rec.Year <= 1939:
		// Dust Bowl: prolonged drought shows up in heat and rainfall.
		if ind == Temperature || ind == Precipitation {
			rec.BaseValue *= 1.1
			rec.RiskLevel = clampRisk(rec.RiskLevel * 1.3)
		}
	case rec.Year == 1982 || rec.Year == 1983:
		rec.BaseValue *= 1.05
	case rec.Year == 1997 || rec.Year == 1998:
		rec.BaseValue *= 1.08
	case rec.Year == 2003:
		if ind == Temperature {
			rec.BaseValue *= 1.1
			rec.RiskLevel = clampRisk(rec.RiskLevel * 1.4)
		}
	case rec.Year == 2011:
		rec.RiskLevel = clampRisk(rec.RiskLevel * 1.3)
	case rec.Year == 2019:
		if ind == Temperature || ind == AirQuality {
			rec.BaseValue *= 1.05
			rec.RiskLevel = clampRisk(rec.RiskLevel * 1.2)
		}
	case rec.Year == 2020:
		if ind == Temperature {
			rec.BaseValue *= 1.02
		}
	}
	return rec
}
