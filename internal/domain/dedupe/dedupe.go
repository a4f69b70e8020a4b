// Package dedupe collapses repeated appearances of the same athlete into a
// single best result.
package dedupe

import (
	"context"

	"github.com/okian/podium/internal/domain/model"
)

// Deduper records athletes and keeps only the best medal seen for each.
type Deduper interface {
	// SeenAndRecord records medal for athlete and reports whether the athlete
	// had already been recorded. The stored medal only ever improves.
	SeenAndRecord(ctx context.Context, athlete string, medal model.Medal) bool

	// Best returns the best medal recorded for athlete.
	Best(ctx context.Context, athlete string) (model.Medal, bool)

	// Tally counts athletes by their best medal.
	Tally(ctx context.Context) Tally

	Size() int64
}

// Tally is the distribution of best medals across distinct athletes.
type Tally struct {
	Athletes int
	Gold     int
	Silver   int
	Bronze   int
}

// inMemoryDeduper implements Deduper with a map keyed by athlete name.
// Not safe for concurrent use.
type inMemoryDeduper struct {
	best         map[string]model.Medal
	expectedSize int
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}

	for _, opt := range opts {
		opt(d)
	}

	d.best = make(map[string]model.Medal, d.expectedSize)
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, athlete string, medal model.Medal) bool {
	if medal == 0 {
		medal = model.NoMedal
	}
	cur, seen := d.best[athlete]
	if !seen || medal.Rank() < cur.Rank() {
		d.best[athlete] = medal
	}
	return seen
}

func (d *inMemoryDeduper) Best(_ context.Context, athlete string) (model.Medal, bool) {
	m, ok := d.best[athlete]
	return m, ok
}

func (d *inMemoryDeduper) Tally(_ context.Context) Tally {
	t := Tally{Athletes: len(d.best)}
	for _, m := range d.best {
		switch m {
		case model.Gold:
			t.Gold++
		case model.Silver:
			t.Silver++
		case model.Bronze:
			t.Bronze++
		}
	}
	return t
}

// Size returns the number of distinct athletes recorded.
func (d *inMemoryDeduper) Size() int64 {
	return int64(len(d.best))
}
