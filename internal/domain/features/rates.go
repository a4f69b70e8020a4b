package features

import (
	"context"

	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/index"
	"github.com/okian/podium/internal/domain/model"
)

// Rates is the share of distinct historical athletes per best medal colour.
type Rates struct {
	Gold   float64
	Silver float64
	Bronze float64
}

// HistoricalRates computes one rate triple per (noc, sport_code) group.
//
// The group's own latest year stands in for "current": every row with a
// smaller year is history, and every row of the group shares the same
// triple regardless of its own year. Groups spanning fewer than two distinct
// years get zero rates. Unnamed appearances widen the athlete count by one
// but never contribute a medal.
func HistoricalRates(ctx context.Context, idx *index.Index) map[model.Pair]Rates {
	pairs := idx.Pairs()
	out := make(map[model.Pair]Rates, len(pairs))

	for _, p := range pairs {
		rows := idx.ByPair(p)

		maxYear, distinct := 0, make(map[int]struct{})
		for _, r := range rows {
			a := idx.At(r)
			if !a.YearValid {
				continue
			}
			distinct[a.Year] = struct{}{}
			if a.Year > maxYear {
				maxYear = a.Year
			}
		}
		if len(distinct) < 2 {
			out[p] = Rates{}
			continue
		}

		d := dedupe.NewInMemoryDeduper(dedupe.WithExpectedSize(len(rows)))
		unnamed := false
		for _, r := range rows {
			a := idx.At(r)
			if !a.YearValid || a.Year >= maxYear {
				continue
			}
			if a.Athlete == "" {
				unnamed = true
				continue
			}
			d.SeenAndRecord(ctx, a.Athlete, a.Medal)
		}

		// All unnamed appearances together count as one athlete without a medal.
		t := d.Tally(ctx)
		if unnamed {
			t.Athletes++
		}
		out[p] = ratesOf(t)
	}

	return out
}

func ratesOf(t dedupe.Tally) Rates {
	if t.Athletes == 0 {
		return Rates{}
	}
	n := float64(t.Athletes)
	return Rates{
		Gold:   float64(t.Gold) / n,
		Silver: float64(t.Silver) / n,
		Bronze: float64(t.Bronze) / n,
	}
}
