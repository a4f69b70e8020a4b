package repository

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/okian/podium/internal/domain/model"
)

// CSVSource reads the appearance table from a delimited text file.
type CSVSource struct {
	path       string
	encoding   string
	columns    Columns
	sampleSize int
}

// NewSource creates a CSVSource for path with configuration options.
func NewSource(path string, opts ...SourceOption) *CSVSource {
	s := &CSVSource{
		path:       path,
		encoding:   defaultEncoding,
		columns:    DefaultColumns(),
		sampleSize: defaultSampleSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load decodes the file, parses it into a string-typed data frame and
// coerces each row into an Appearance.
func (s *CSVSource) Load(_ context.Context) ([]model.Appearance, Profile, error) {
	enc, err := lookupEncoding(s.encoding)
	if err != nil {
		return nil, Profile{}, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, Profile{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer func() { _ = f.Close() }()

	// Every cell stays a raw string; coercion happens per field below.
	df := dataframe.ReadCSV(decodingReader(f, enc),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
		dataframe.WithLazyQuotes(true),
	)
	if df.Err != nil {
		return nil, Profile{}, fmt.Errorf("%w: %s: %w", ErrReadInput, s.path, df.Err)
	}

	cols, err := s.columnRecords(df)
	if err != nil {
		return nil, Profile{}, err
	}

	return s.coerce(cols, df.Nrow())
}

// columnRecords returns the raw cells of every configured column, in the
// order year, noc, sport, event, name, medal, host.
func (s *CSVSource) columnRecords(df dataframe.DataFrame) ([7][]string, error) {
	var out [7][]string

	// Headers may carry a UTF-8 BOM or stray spaces.
	actual := make(map[string]string, df.Ncol())
	for _, n := range df.Names() {
		actual[strings.TrimSpace(strings.TrimPrefix(n, "\ufeff"))] = n
	}

	wanted := [7]string{
		s.columns.Year, s.columns.NOC, s.columns.Sport, s.columns.Event,
		s.columns.Name, s.columns.Medal, s.columns.Host,
	}
	for i, name := range wanted {
		got, ok := actual[name]
		if !ok {
			return out, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		col := df.Col(got)
		if col.Err != nil {
			return out, fmt.Errorf("%w: %q: %w", ErrReadInput, name, col.Err)
		}
		out[i] = col.Records()
	}
	return out, nil
}

func (s *CSVSource) coerce(cols [7][]string, n int) ([]model.Appearance, Profile, error) {
	years, nocs, sports, events, names, medals, hosts := cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6]

	p := Profile{HostValues: make(map[string]int)}
	apps := make([]model.Appearance, 0, n)

	for i := 0; i < n; i++ {
		p.HostValues[hosts[i]]++
		if len(p.Sample) < s.sampleSize {
			p.Sample = append(p.Sample, SampleRow{NOC: nocs[i], Host: hosts[i], Year: years[i]})
		}

		noc := strings.TrimSpace(nocs[i])
		if noc == "" {
			p.MissingNOC++
		}
		sport := strings.TrimSpace(sports[i])
		if sport == "" {
			sport = model.MissingSportCode
			p.MissingSports++
		}

		year, ok := parseYear(years[i])
		if !ok {
			p.InvalidYears++
		}
		host := parseHost(hosts[i])
		if host {
			p.HostRows++
		}

		apps = append(apps, model.Appearance{
			Year:      year,
			YearValid: ok,
			NOC:       noc,
			SportCode: sport,
			Event:     strings.TrimSpace(events[i]),
			Athlete:   strings.TrimSpace(names[i]),
			Medal:     model.ParseMedal(medals[i]),
			Host:      host,
		})
	}

	p.Rows = len(apps)
	return apps, p, nil
}

// parseYear accepts integral numbers such as "1896" or "1896.0".
func parseYear(raw string) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// parseHost reports whether the cell is numerically 1. Anything else,
// including unparsable text, is not a host.
func parseHost(raw string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	return err == nil && v == 1
}
