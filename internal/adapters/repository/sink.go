package repository

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/okian/podium/internal/domain/types"
)

// Output formats understood by NewSink.
const (
	FormatCSV    = "csv"
	FormatXLSX   = "xlsx"
	FormatSQLite = "sqlite"
)

// NewSink creates the Sink for format writing to path.
func NewSink(format, path string, opts ...SinkOption) (Sink, error) {
	st := sinkSettings{
		encoding: defaultEncoding,
		sheet:    defaultSheet,
		table:    defaultTable,
	}
	for _, opt := range opts {
		opt(&st)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		enc, err := lookupEncoding(st.encoding)
		if err != nil {
			return nil, err
		}
		return &CSVSink{path: path, enc: enc}, nil
	case FormatXLSX:
		return &XLSXSink{path: path, sheet: st.sheet}, nil
	case FormatSQLite:
		return &SQLiteSink{path: path, table: st.table, runID: st.runID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// writeFileAtomic writes path through a temporary file in the same
// directory, renaming it into place only when write succeeds. A failed write
// leaves any previous file untouched.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	if err := ensureDir(path); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// formatCell renders a feature value as text. Floats always carry a decimal
// point ("0.0", "0.25") and switch to exponent form outside [1e-4, 1e16).
func formatCell(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case float64:
		return formatFloat(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0.0"
	}
	if abs := math.Abs(v); abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// records renders rows as a header plus one string record per row.
func records(rows []types.FeatureRow) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, append([]string(nil), types.Columns...))
	for i := range rows {
		values := rows[i].Values()
		rec := make([]string, len(values))
		for j, v := range values {
			rec[j] = formatCell(v)
		}
		out = append(out, rec)
	}
	return out
}
