package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/couchcryptid/weather-summary/internal/domain"
	"github.com/couchcryptid/weather-summary/internal/observability"
	"github.com/couchcryptid/weather-summary/internal/summary"
)

// Mode selects which summaries a run renders.
type Mode string

const (
	ModeOverview Mode = "overview"
	ModeDaily    Mode = "daily"
	ModeBoth     Mode = "both"
)

// Kinds returns the summary kinds rendered for the mode, in output order.
func (m Mode) Kinds() ([]summary.Kind, error) {
	switch m {
	case ModeOverview:
		return []summary.Kind{summary.KindOverview}, nil
	case ModeDaily:
		return []summary.Kind{summary.KindDaily}, nil
	case ModeBoth, "":
		return []summary.Kind{summary.KindOverview, summary.KindDaily}, nil
	default:
		return nil, fmt.Errorf("unknown summary mode %q", m)
	}
}

// TableSource loads a weather table from a path.
type TableSource interface {
	Load(path string) (domain.WeatherTable, error)
}

// Pipeline loads a table and writes the selected summaries.
type Pipeline struct {
	source  TableSource
	mode    Mode
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline with the given source and observability.
func New(source TableSource, mode Mode, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:  source,
		mode:    mode,
		logger:  logger,
		metrics: metrics,
	}
}

// Run loads path and writes each rendered summary to w, separated by a blank
// line. Nothing is written unless every summary renders.
func (p *Pipeline) Run(ctx context.Context, path string, w io.Writer) error {
	kinds, err := p.mode.Kinds()
	if err != nil {
		return err
	}

	start := clock.Now()
	defer func() { p.metrics.RunDuration.Observe(clock.Since(start).Seconds()) }()

	if err := ctx.Err(); err != nil {
		return err
	}
	table, err := p.source.Load(path)
	if err != nil {
		p.logger.Error("load table failed", "path", path, "error", err)
		return err
	}
	p.logger.Info("table loaded", "path", path, "records", table.Len())

	rendered := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := summary.Render(kind, table)
		if err != nil {
			p.metrics.SummaryErrors.WithLabelValues(string(kind)).Inc()
			p.logger.Error("render summary failed", "kind", kind, "error", err)
			return fmt.Errorf("render %s: %w", kind, err)
		}
		p.metrics.SummariesRendered.WithLabelValues(string(kind)).Inc()
		rendered = append(rendered, out)
	}

	for i, out := range rendered {
		if i > 0 {
			out = "\n" + out
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("%w: write summary: %w", domain.ErrIO, err)
		}
	}

	p.logger.Info("summaries written", "mode", p.mode, "records", table.Len())
	return nil
}
