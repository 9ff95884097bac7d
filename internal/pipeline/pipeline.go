// Package pipeline orchestrates a full report run: synthesize the series,
// export it, print the analysis, and optionally render the chart.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/earth-data-report/internal/domain"
	"github.com/couchcryptid/earth-data-report/internal/observability"
)

// Generator synthesizes the yearly series for an indicator.
type Generator interface {
	Generate(ind domain.Indicator) ([]domain.YearRecord, error)
}

// Exporter persists a series and returns the path of the file produced.
type Exporter interface {
	Export(ind domain.Indicator, records []domain.YearRecord) (string, error)
}

// Reporter prints the analysis of a series.
type Reporter interface {
	Report(ind domain.Indicator, records []domain.YearRecord) error
}

// ChartRenderer draws a series and returns the path of the image produced.
type ChartRenderer interface {
	Render(ind domain.Indicator, records []domain.YearRecord) (string, error)
}

// Pipeline runs the stages of one report in order. The chart renderer is
// optional; a nil renderer skips the chart stage.
type Pipeline struct {
	generator Generator
	exporter  Exporter
	reporter  Reporter
	chart     ChartRenderer
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(g Generator, e Exporter, r Reporter, c ChartRenderer, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		generator: g,
		exporter:  e,
		reporter:  r,
		chart:     c,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes generate, export, report, and chart for one indicator.
// Cancellation is checked between stages; a cancelled context returns its
// error without running the remaining stages.
func (p *Pipeline) Run(ctx context.Context, ind domain.Indicator) error {
	p.logger.Info("run started", "indicator", string(ind))
	p.metrics.RunActive.Set(1)
	defer p.metrics.RunActive.Set(0)

	start := time.Now()
	records, err := p.generator.Generate(ind)
	p.metrics.StageDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	p.metrics.RecordsGenerated.Add(float64(len(records)))
	p.logger.Info("series generated", "indicator", string(ind), "records", len(records))

	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	path, err := p.exporter.Export(ind, records)
	p.metrics.StageDuration.WithLabelValues("export").Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	p.metrics.ExportsWritten.Inc()
	p.logger.Info("series exported", "path", path)

	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	if err := p.reporter.Report(ind, records); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	p.metrics.StageDuration.WithLabelValues("report").Observe(time.Since(start).Seconds())

	if p.chart == nil {
		p.logger.Info("chart rendering disabled")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	chartPath, err := p.chart.Render(ind, records)
	p.metrics.StageDuration.WithLabelValues("chart").Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	p.metrics.ChartsRendered.Inc()
	p.logger.Info("chart rendered", "path", chartPath)

	return nil
}
