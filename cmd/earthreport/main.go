// Command earthreport synthesizes a yearly environmental series for one
// indicator chosen interactively, exports it as CSV, prints the analysis
// report, and renders a chart of the series.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/earth-data-report/internal/chart"
	"github.com/couchcryptid/earth-data-report/internal/config"
	"github.com/couchcryptid/earth-data-report/internal/domain"
	"github.com/couchcryptid/earth-data-report/internal/export"
	"github.com/couchcryptid/earth-data-report/internal/observability"
	"github.com/couchcryptid/earth-data-report/internal/pipeline"
	"github.com/couchcryptid/earth-data-report/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
		logger.Info("metrics endpoint enabled", "addr", cfg.MetricsAddr)
	}

	printMenu(os.Stdout)

	ind, err := readSelection(os.Stdin)
	if err != nil {
		return err
	}
	profile, err := ind.Profile()
	if err != nil {
		return err
	}
	fmt.Printf("\n🔄 Génération des données pour: %s\n", profile.Label)

	var renderer pipeline.ChartRenderer
	if cfg.ChartEnabled {
		renderer = chart.NewRenderer(cfg.OutputDir)
	}

	p := pipeline.New(
		domain.NewGenerator(cfg.Seed),
		export.NewCSVExporter(cfg.OutputDir),
		report.New(os.Stdout),
		renderer,
		logger,
		metrics,
	)

	if err := p.Run(ctx, ind); err != nil {
		return err
	}

	fmt.Println("\n✅ Analyse terminée!")
	return nil
}

func printMenu(w io.Writer) {
	fmt.Fprintf(w, "🌍 ANALYSE DES DONNÉES NUMÉRIQUES DE LA TERRE (%d-%d)\n",
		domain.StartYear, domain.EndYear)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "\nIndicateurs disponibles:")
	for i, ind := range domain.Indicators() {
		profile, err := ind.Profile()
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, profile.Label, profile.Unit)
	}
	fmt.Fprint(w, "\nChoisissez un indicateur (1-8): ")
}

// readSelection reads one line from r and maps it to an indicator. Anything
// outside 1-8, including non-numeric input, is an invalid selection.
func readSelection(r io.Reader) (domain.Indicator, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read selection: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSelection, strings.TrimSpace(line))
	}
	return domain.FromSelection(n)
}
