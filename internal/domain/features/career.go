package features

import (
	"context"

	"github.com/okian/podium/internal/domain/index"
	"github.com/okian/podium/internal/domain/model"
)

type span struct{ min, max int }

// CareerLengths computes the mean per-athlete career span of every
// (noc, sport_code) group. Spans longer than outlierYears are discarded.
// Groups whose earliest year is firstGamesYear report 0.
func CareerLengths(_ context.Context, idx *index.Index, outlierYears, firstGamesYear int) map[model.Pair]float64 {
	pairs := idx.Pairs()
	out := make(map[model.Pair]float64, len(pairs))

	for _, p := range pairs {
		spans := make(map[string]*span)
		earliest := 0
		for _, r := range idx.ByPair(p) {
			a := idx.At(r)
			if !a.YearValid || a.Athlete == "" {
				continue
			}
			if earliest == 0 || a.Year < earliest {
				earliest = a.Year
			}
			s, ok := spans[a.Athlete]
			if !ok {
				spans[a.Athlete] = &span{min: a.Year, max: a.Year}
				continue
			}
			if a.Year < s.min {
				s.min = a.Year
			}
			if a.Year > s.max {
				s.max = a.Year
			}
		}

		if earliest == firstGamesYear {
			out[p] = 0
			continue
		}

		total, n := 0, 0
		for _, s := range spans {
			length := s.max - s.min
			if length > outlierYears {
				continue
			}
			total += length
			n++
		}
		if n == 0 {
			out[p] = 0
			continue
		}
		out[p] = float64(total) / float64(n)
	}

	return out
}
