package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding"

	"github.com/okian/podium/internal/domain/types"
)

// CSVSink writes the feature table as delimited text in a legacy encoding.
type CSVSink struct {
	path string
	enc  encoding.Encoding
}

// Format implements Sink.
func (s *CSVSink) Format() string { return FormatCSV }

// Write implements Sink.
func (s *CSVSink) Write(_ context.Context, rows []types.FeatureRow) error {
	df := dataframe.LoadRecords(records(rows),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if df.Err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, df.Err)
	}

	return writeFileAtomic(s.path, func(w io.Writer) error {
		ew := encodingWriter(w, s.enc)
		if err := df.WriteCSV(ew); err != nil {
			return err
		}
		return ew.Close()
	})
}
