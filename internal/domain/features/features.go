// Package features derives the per (year, noc, sport_code) feature table from
// the athlete record store.
//
// Each pass reads the shared read-only index and produces a keyed subtable;
// Merge joins them into the final rows. Two notions of history coexist on
// purpose: HistoricalRates works once per (noc, sport_code) group using the
// group's latest year as "current", while Lookback works per row against the
// global year sequence.
package features

import (
	"context"
	"time"

	"github.com/okian/podium/internal/domain/index"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// Pass names reported to the PassObserver.
const (
	PassIndex    = "index"
	PassCounters = "counters"
	PassHost     = "host"
	PassRates    = "historical_rates"
	PassLookback = "lookback"
	PassCareer   = "career_length"
	PassMerge    = "merge"
)

// Calculator runs every aggregation pass over one record store.
type Calculator struct {
	careerOutlierYears int
	firstGamesYear     int

	observe    PassObserver
	onFallback FallbackHandler
}

// NewCalculator creates a Calculator with configuration options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		careerOutlierYears: defaultCareerOutlierYears,
		firstGamesYear:     defaultFirstGamesYear,
		observe:            func(context.Context, string, time.Duration, int) {},
		onFallback:         func(context.Context, model.Key, error) {},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compute builds the index from apps and returns the merged feature rows,
// sorted by (year, noc, sport_code).
func (c *Calculator) Compute(ctx context.Context, apps []model.Appearance) []types.FeatureRow {
	start := time.Now()
	idx := index.Build(apps)
	c.observe(ctx, PassIndex, time.Since(start), len(idx.Keys()))

	start = time.Now()
	counts := Counters(ctx, idx)
	c.observe(ctx, PassCounters, time.Since(start), len(counts))

	start = time.Now()
	hosts := HostFlags(ctx, idx)
	c.observe(ctx, PassHost, time.Since(start), len(hosts))

	start = time.Now()
	rates := HistoricalRates(ctx, idx)
	c.observe(ctx, PassRates, time.Since(start), len(rates))

	start = time.Now()
	stars := Lookback(ctx, idx, c.onFallback)
	c.observe(ctx, PassLookback, time.Since(start), len(stars))

	start = time.Now()
	careers := CareerLengths(ctx, idx, c.careerOutlierYears, c.firstGamesYear)
	c.observe(ctx, PassCareer, time.Since(start), len(careers))

	start = time.Now()
	rows := Merge(ctx, idx, counts, hosts, rates, stars, careers)
	c.observe(ctx, PassMerge, time.Since(start), len(rows))

	return rows
}
