package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/okian/podium/internal/domain/types"
)

// XLSXSink writes the feature table to a single worksheet.
type XLSXSink struct {
	path  string
	sheet string
}

// Format implements Sink.
func (s *XLSXSink) Format() string { return FormatXLSX }

// Write implements Sink.
func (s *XLSXSink) Write(_ context.Context, rows []types.FeatureRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), s.sheet); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	sw, err := f.NewStreamWriter(s.sheet)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	header := make([]interface{}, len(types.Columns))
	for i, c := range types.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		if err := sw.SetRow(cell, rows[i].Values()); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrWriteOutput, i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return writeFileAtomic(s.path, func(w io.Writer) error {
		return f.Write(w)
	})
}
