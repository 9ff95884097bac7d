// Package report renders the console analysis report for a generated series.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/couchcryptid/earth-data-report/internal/analysis"
	"github.com/couchcryptid/earth-data-report/internal/domain"
)

// previewRows is how many leading records the report shows before the
// analytical sections.
const previewRows = 5

// Reporter prints the fixed multi-section text report. The section wording
// and emoji markers are cosmetic, not a compatibility surface.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report summarizes the series and prints the full report. An empty series
// returns analysis.ErrEmptyDataset before anything is printed.
func (r *Reporter) Report(ind domain.Indicator, records []domain.YearRecord) error {
	s, err := analysis.Summarize(ind, records)
	if err != nil {
		return err
	}
	profile, err := ind.Profile()
	if err != nil {
		return err
	}

	r.printPreview(records)

	fmt.Fprintf(r.w, "\n🌍 INSIGHTS ANALYTIQUES - %s\n", profile.Label)
	fmt.Fprintln(r.w, strings.Repeat("=", 70))

	r.printStatistics(profile, s)
	r.printTrends(profile, s)
	r.printRisk(s)
	r.printHistoricalEvents()
	r.printHumanImpact(s)
	r.printProjection(profile, s)
	r.printImplications(ind)

	fmt.Fprintf(r.w, "\nGénéré le %s\n", domain.Now().Format("02/01/2006 15:04"))
	return nil
}

// printPreview renders the first records as a table, mirroring the head of
// the exported file.
func (r *Reporter) printPreview(records []domain.YearRecord) {
	fmt.Fprintln(r.w, "\n👀 Aperçu des données:")

	table := tablewriter.NewTable(r.w,
		tablewriter.WithHeader([]string{"Year", "Base_Value", "Risk_Level", "Environmental_Index"}),
	)
	for i, rec := range records {
		if i >= previewRows {
			break
		}
		_ = table.Append([]string{
			strconv.Itoa(rec.Year),
			fmt.Sprintf("%.2f", rec.BaseValue),
			fmt.Sprintf("%.2f", rec.RiskLevel),
			fmt.Sprintf("%.2f", rec.EnvironmentalIndex),
		})
	}
	_ = table.Render()
}

func (r *Reporter) printStatistics(p domain.Profile, s analysis.Summary) {
	fmt.Fprintln(r.w, "\n1. 📊 STATISTIQUES FONDAMENTALES:")
	fmt.Fprintf(r.w, "Valeur moyenne: %.2f %s\n", s.Mean, p.Unit)
	fmt.Fprintf(r.w, "Valeur maximale: %.2f %s\n", s.Max, p.Unit)
	fmt.Fprintf(r.w, "Valeur minimale: %.2f %s\n", s.Min, p.Unit)
	fmt.Fprintf(r.w, "Valeur actuelle: %.2f %s\n", s.Current, p.Unit)
}

func (r *Reporter) printTrends(p domain.Profile, s analysis.Summary) {
	fmt.Fprintln(r.w, "\n2. 📈 ANALYSE DES TENDANCES:")
	fmt.Fprintf(r.w, "Changement total depuis %d: %+.1f%%\n", domain.StartYear, s.ChangeSinceStartPct)
	fmt.Fprintf(r.w, "Changement depuis %d: %+.1f%%\n", domain.ReferenceYear, s.ChangeSinceReferencePct)
	fmt.Fprintf(r.w, "Tendance principale: %s\n", s.TrendDirection)
}

func (r *Reporter) printRisk(s analysis.Summary) {
	fmt.Fprintln(r.w, "\n3. ⚠️  RISQUE ENVIRONNEMENTAL:")
	fmt.Fprintf(r.w, "Niveau de risque actuel: %.1f/100\n", s.CurrentRisk)
	fmt.Fprintf(r.w, "Évolution du risque depuis %d: %+.1f%%\n", domain.ReferenceYear, s.RiskChangeSinceReferencePct)
	fmt.Fprintf(r.w, "→ Niveau de risque %s\n", s.RiskBucket)
}

func (r *Reporter) printHistoricalEvents() {
	fmt.Fprintln(r.w, "\n4. 🌪️  ÉVÉNEMENTS CLIMATIQUES MARQUANTS:")
	for _, ev := range domain.HistoricalEvents() {
		fmt.Fprintf(r.w, "• %s: %s\n", ev.Period, ev.Description)
	}
}

func (r *Reporter) printHumanImpact(s analysis.Summary) {
	fmt.Fprintln(r.w, "\n5. 👥 IMPACT HUMAIN:")
	fmt.Fprintf(r.w, "Facteur d'impact humain actuel: %.1fx\n", s.HumanImpactFactor)
	fmt.Fprintf(r.w, "Augmentation depuis %d: %+.0f%%\n", domain.StartYear, s.HumanImpactGrowthPct)
}

func (r *Reporter) printProjection(p domain.Profile, s analysis.Summary) {
	fmt.Fprintln(r.w, "\n6. 🔮 PROJECTIONS FUTURES:")
	fmt.Fprintf(r.w, "Valeur projetée en %d: %.2f %s\n", s.ProjectionYear, s.ProjectedValue, p.Unit)
	fmt.Fprintf(r.w, "Changement projeté: %+.1f%%\n", s.ProjectedChangePct)

	switch p.Trend {
	case domain.TrendRising:
		fmt.Fprintln(r.w, "→ Tendance à la hausse prévue")
	case domain.TrendDeclining:
		fmt.Fprintln(r.w, "→ Tendance à la baisse prévue")
	default:
		fmt.Fprintln(r.w, "→ Stabilité relative prévue")
	}
}

func (r *Reporter) printImplications(ind domain.Indicator) {
	fmt.Fprintln(r.w, "\n7. 🎯 IMPLICATIONS ENVIRONNEMENTALES:")
	for _, line := range implications(ind) {
		fmt.Fprintf(r.w, "• %s\n", line)
	}
}

// implications returns the indicator-specific bullet list followed by the
// bullets common to every report.
func implications(ind domain.Indicator) []string {
	var lines []string
	switch ind {
	case domain.Temperature:
		lines = []string{
			"Impact direct sur les écosystèmes",
			"Risque d'événements extrêmes accru",
			"Implications pour la sécurité alimentaire",
		}
	case domain.CO2:
		lines = []string{
			"Principal facteur du changement climatique",
			"Acidification des océans",
			"Impact sur la photosynthèse",
		}
	case domain.SeaLevel:
		lines = []string{
			"Menace pour les zones côtières",
			"Déplacement des populations",
			"Perte de territoires",
		}
	case domain.Biodiversity:
		lines = []string{
			"Effondrement des écosystèmes",
			"Perte de services écosystémiques",
			"Risque pour la sécurité alimentaire",
		}
	}

	return append(lines,
		"Nécessité d'actions d'atténuation",
		"Importance de l'adaptation climatique",
		"Enjeu de gouvernance mondiale",
	)
}
