// Package repository reads the appearance table and writes the feature table.
package repository

import (
	"context"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// Source loads the record store.
type Source interface {
	// Load reads every appearance. Rows failing coercion are kept with their
	// invalid markers; only unreadable input is an error.
	Load(ctx context.Context) ([]model.Appearance, Profile, error)
}

// Sink persists a feature table.
type Sink interface {
	// Write replaces any previous output with rows.
	Write(ctx context.Context, rows []types.FeatureRow) error

	// Format names the output format, e.g. "csv".
	Format() string
}

// Profile summarises what a Source read.
type Profile struct {
	Rows          int            // appearances returned
	InvalidYears  int            // rows whose year failed coercion
	MissingNOC    int            // rows without a NOC; they only count toward Games totals
	MissingSports int            // rows whose empty sport code became model.MissingSportCode
	HostRows      int            // rows whose host cell coerced to 1
	HostValues    map[string]int // raw host cell value -> occurrences
	Sample        []SampleRow    // first rows as read, for debugging
}

// SampleRow is one (NOC, host, Year) triple as found in the input.
type SampleRow struct {
	NOC  string
	Host string
	Year string
}
