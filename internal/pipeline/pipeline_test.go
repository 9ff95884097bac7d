package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/earth-data-report/internal/domain"
	"github.com/couchcryptid/earth-data-report/internal/observability"
	"github.com/couchcryptid/earth-data-report/internal/pipeline"
)

// --- mocks ---

type mockGenerator struct {
	records []domain.YearRecord
	err     error
}

func (m *mockGenerator) Generate(_ domain.Indicator) ([]domain.YearRecord, error) {
	return m.records, m.err
}

type mockExporter struct {
	got []domain.YearRecord
	err error
}

func (m *mockExporter) Export(_ domain.Indicator, records []domain.YearRecord) (string, error) {
	m.got = records
	return "out.csv", m.err
}

type mockReporter struct {
	called bool
	err    error
}

func (m *mockReporter) Report(_ domain.Indicator, _ []domain.YearRecord) error {
	m.called = true
	return m.err
}

type mockRenderer struct {
	called bool
	err    error
}

func (m *mockRenderer) Render(_ domain.Indicator, _ []domain.YearRecord) (string, error) {
	m.called = true
	return "out.png", m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *observability.Metrics {
	// Use a fresh registry to avoid "already registered" panics in tests.
	return observability.NewMetricsForTesting()
}

func sampleRecords() []domain.YearRecord {
	return []domain.YearRecord{
		{Year: 1850, BaseValue: 14.0, RiskLevel: 25.0, EnvironmentalIndex: 14.0},
		{Year: 1851, BaseValue: 14.1, RiskLevel: 25.1, EnvironmentalIndex: 14.1},
	}
}

// --- tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	gen := &mockGenerator{records: sampleRecords()}
	exp := &mockExporter{}
	rep := &mockReporter{}
	chart := &mockRenderer{}

	p := pipeline.New(gen, exp, rep, chart, discardLogger(), newTestMetrics())
	require.NoError(t, p.Run(context.Background(), domain.Temperature))

	assert.True(t, rep.called)
	assert.True(t, chart.called)
	if diff := cmp.Diff(gen.records, exp.got); diff != "" {
		t.Fatalf("exported records mismatch (-want +got):\n%s", diff)
	}
}

func TestPipeline_Run_NilChartSkipsRendering(t *testing.T) {
	gen := &mockGenerator{records: sampleRecords()}
	rep := &mockReporter{}

	p := pipeline.New(gen, &mockExporter{}, rep, nil, discardLogger(), newTestMetrics())
	require.NoError(t, p.Run(context.Background(), domain.CO2))
	assert.True(t, rep.called)
}

func TestPipeline_Run_GenerateError(t *testing.T) {
	gen := &mockGenerator{err: domain.ErrInvalidSelection}
	rep := &mockReporter{}

	p := pipeline.New(gen, &mockExporter{}, rep, nil, discardLogger(), newTestMetrics())
	err := p.Run(context.Background(), domain.Indicator("nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.False(t, rep.called)
}

func TestPipeline_Run_ExportError(t *testing.T) {
	gen := &mockGenerator{records: sampleRecords()}
	exp := &mockExporter{err: errors.New("disk full")}
	rep := &mockReporter{}

	p := pipeline.New(gen, exp, rep, nil, discardLogger(), newTestMetrics())
	err := p.Run(context.Background(), domain.SeaLevel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export:")
	assert.False(t, rep.called)
}

func TestPipeline_Run_ChartErrorSurfaces(t *testing.T) {
	gen := &mockGenerator{records: sampleRecords()}
	chart := &mockRenderer{err: errors.New("no fonts")}

	p := pipeline.New(gen, &mockExporter{}, &mockReporter{}, chart, discardLogger(), newTestMetrics())
	err := p.Run(context.Background(), domain.Glaciers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chart:")
}

func TestPipeline_Run_ContextCancellation(t *testing.T) {
	gen := &mockGenerator{records: sampleRecords()}
	exp := &mockExporter{}
	rep := &mockReporter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := pipeline.New(gen, exp, rep, nil, discardLogger(), newTestMetrics())
	err := p.Run(ctx, domain.Temperature)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, exp.got)
	assert.False(t, rep.called)
}
