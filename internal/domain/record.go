package domain

// YearRecord is one synthesized observation. Records are generated
// independently per year; nothing downstream mutates them.
type YearRecord struct {
	Year               int     `json:"year"`
	BaseValue          float64 `json:"base_value"`
	RiskLevel          float64 `json:"risk_level"` // bounded [0, 100]
	EnvironmentalIndex float64 `json:"environmental_index"`
}
