// Package csvtable reads weather tables from comma-separated files.
package csvtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-summary/internal/domain"
	"github.com/couchcryptid/weather-summary/internal/observability"
)

// Column names the header must declare. Other columns are ignored.
const (
	ColumnDate = "date"
	ColumnMin  = "min"
	ColumnMax  = "max"
)

const utf8BOM = "\ufeff"

var errMissingValue = errors.New("missing value")

// Loader reads CSV weather tables into domain.WeatherTable values.
type Loader struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader that reports to the given logger and metrics.
func NewLoader(logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{logger: logger, metrics: metrics}
}

// Load opens path and decodes it. The file is closed before Load returns.
func (l *Loader) Load(path string) (domain.WeatherTable, error) {
	f, err := os.Open(path)
	if err != nil {
		l.metrics.LoadErrors.WithLabelValues("io").Inc()
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrIO, path, err)
	}
	defer f.Close()

	table, err := l.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	l.logger.Debug("table loaded", "path", path, "records", table.Len())
	return table, nil
}

// Decode reads a header row followed by one record per non-empty row,
// preserving row order.
func (l *Loader) Decode(r io.Reader) (domain.WeatherTable, error) {
	table, err := decode(r)
	if err != nil {
		var pe *domain.ParseError
		switch {
		case errors.As(err, &pe) && pe.Row > 0:
			l.metrics.RowsRejected.Inc()
			l.metrics.LoadErrors.WithLabelValues("parse").Inc()
		case errors.Is(err, domain.ErrParse):
			l.metrics.LoadErrors.WithLabelValues("parse").Inc()
		default:
			l.metrics.LoadErrors.WithLabelValues("io").Inc()
		}
		l.logger.Error("decode table failed", "error", err)
		return nil, err
	}
	l.metrics.RecordsLoaded.Add(float64(len(table)))
	return table, nil
}

func decode(r io.Reader) (domain.WeatherTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.ParseError{Field: "header", Err: errors.New("missing header row")}
	}
	if err != nil {
		return nil, readError(err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	table := domain.WeatherTable{}
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		if err != nil {
			return nil, readError(err)
		}
		rec, err := cols.record(row, fields)
		if err != nil {
			return nil, err
		}
		table = append(table, rec)
	}
}

// readError classifies a csv.Reader failure: syntax problems are parse
// errors, anything else comes from the underlying reader.
func readError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &domain.ParseError{Row: max(csvErr.StartLine-1, 0), Err: csvErr.Err}
	}
	return fmt.Errorf("%w: read table: %w", domain.ErrIO, err)
}

type columns struct {
	date, minF, maxF int
}

func columnIndex(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		idx[name] = i
	}

	var c columns
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{ColumnDate, &c.date},
		{ColumnMin, &c.minF},
		{ColumnMax, &c.maxF},
	} {
		i, ok := idx[col.name]
		if !ok {
			return columns{}, &domain.ParseError{Field: "header", Err: fmt.Errorf("missing column %q", col.name)}
		}
		*col.dst = i
	}
	return c, nil
}

func (c columns) record(row int, fields []string) (domain.WeatherRecord, error) {
	for _, col := range []struct {
		name string
		i    int
	}{
		{ColumnDate, c.date},
		{ColumnMin, c.minF},
		{ColumnMax, c.maxF},
	} {
		if col.i >= len(fields) {
			return domain.WeatherRecord{}, &domain.ParseError{Row: row, Field: col.name, Err: errMissingValue}
		}
	}

	minF, err := parseField(row, ColumnMin, fields[c.minF])
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	maxF, err := parseField(row, ColumnMax, fields[c.maxF])
	if err != nil {
		return domain.WeatherRecord{}, err
	}
	return domain.WeatherRecord{Date: fields[c.date], MinF: minF, MaxF: maxF}, nil
}

func parseField(row int, name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &domain.ParseError{Row: row, Field: name, Value: raw, Err: err}
	}
	return v, nil
}
