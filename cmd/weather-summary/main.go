// Command weather-summary loads a daily min/max temperature table and prints
// an overview and per-day summary in Celsius.
//
// It is configured from the environment (a .env file is honoured):
//
//	WEATHER_CSV_PATH=data/week.csv SUMMARY_MODE=both weather-summary
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/weather-summary/internal/adapter/csvtable"
	"github.com/couchcryptid/weather-summary/internal/config"
	"github.com/couchcryptid/weather-summary/internal/observability"
	"github.com/couchcryptid/weather-summary/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if code := run(ctx, cfg, os.Stdout, os.Stderr); code != 0 {
		stop()
		os.Exit(code)
	}
}

func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) int {
	logger := observability.NewLogger(stderr, cfg.LogLevel, cfg.LogFormat)

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetricsWithRegistry(reg)

	loader := csvtable.NewLoader(logger, metrics)
	p := pipeline.New(loader, pipeline.Mode(cfg.SummaryMode), logger, metrics)

	code := 0
	if err := p.Run(ctx, cfg.CSVPath, stdout); err != nil {
		logger.Error("summary run failed", "error", err)
		code = 1
	}

	if cfg.MetricsTextfile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsTextfile, reg); err != nil {
			logger.Error("write metrics textfile failed", "path", cfg.MetricsTextfile, "error", err)
			code = 1
		}
	}
	return code
}
