// Package chart renders a generated series as a PNG line chart.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/earth-data-report/internal/domain"
)

// smoothingWindow is the moving-average span, matching the decadal smoothing
// of the report's source model.
const smoothingWindow = 10

// Renderer draws the time-series chart into a directory.
type Renderer struct {
	dir string
}

// NewRenderer creates a Renderer writing into dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render draws the raw series and its 10-year moving average and returns the
// path of the PNG produced, e.g. earth_temperature_analysis.png.
func (r *Renderer) Render(ind domain.Indicator, records []domain.YearRecord) (string, error) {
	profile, err := ind.Profile()
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Analyse des Données Terrestres: %s (%d-%d)",
		profile.Label, domain.StartYear, domain.EndYear)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Année"
	p.Y.Label.Text = profile.Unit

	raw, err := plotter.NewLine(seriesPoints(records))
	if err != nil {
		return "", fmt.Errorf("raw series line: %w", err)
	}
	raw.Color = color.RGBA{R: 30, G: 144, B: 255, A: 160}
	raw.Width = vg.Points(1)

	smoothed, err := plotter.NewLine(smoothedPoints(records, smoothingWindow))
	if err != nil {
		return "", fmt.Errorf("smoothed series line: %w", err)
	}
	smoothed.Color = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	smoothed.Width = vg.Points(2)

	p.Add(raw, smoothed, plotter.NewGrid())
	p.Legend.Add("Valeur observée", raw)
	p.Legend.Add("Moyenne mobile (10 ans)", smoothed)
	p.Legend.Top = true

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(r.dir, FileName(ind))
	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save chart: %w", err)
	}
	return path, nil
}

// FileName returns the chart file name for an indicator.
func FileName(ind domain.Indicator) string {
	return fmt.Sprintf("earth_%s_analysis.png", ind)
}

func seriesPoints(records []domain.YearRecord) plotter.XYs {
	pts := make(plotter.XYs, len(records))
	for i, rec := range records {
		pts[i].X = float64(rec.Year)
		pts[i].Y = rec.BaseValue
	}
	return pts
}

// smoothedPoints computes a centered moving average over the base values,
// shrinking the window at the series edges.
func smoothedPoints(records []domain.YearRecord, window int) plotter.XYs {
	half := window / 2
	pts := make(plotter.XYs, len(records))
	for i, rec := range records {
		lo := max(0, i-half)
		hi := min(len(records), i+half)
		var sum float64
		for _, r := range records[lo:hi] {
			sum += r.BaseValue
		}
		pts[i].X = float64(rec.Year)
		pts[i].Y = sum / float64(hi-lo)
	}
	return pts
}
