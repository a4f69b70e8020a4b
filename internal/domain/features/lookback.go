package features

import (
	"context"
	"fmt"

	"github.com/okian/podium/internal/domain/index"
	"github.com/okian/podium/internal/domain/model"
)

// Stars holds the lookback counts of one (year, noc, sport_code) key.
type Stars struct {
	Star   int
	Rising int
}

// medalCounts maps athlete name to the number of awarded medals.
type medalCounts map[string]int

// medalIndex maps a (year, noc, sport_code) key to its per-athlete medal counts.
type medalIndex map[model.Key]medalCounts

func buildMedalIndex(idx *index.Index) medalIndex {
	mi := make(medalIndex)
	for _, k := range idx.Keys() {
		for _, r := range idx.Rows(k) {
			a := idx.At(r)
			if a.Athlete == "" || !a.Medal.Awarded() {
				continue
			}
			mc, ok := mi[k]
			if !ok {
				mc = make(medalCounts)
				mi[k] = mc
			}
			mc[a.Athlete]++
		}
	}
	return mi
}

// Lookback computes star and rising-star counts for every key against the
// global year sequence. Keys at the first or second Olympiad get zeros. A key
// whose history cannot be resolved falls back to zeros and is reported to
// onFallback; it never aborts the pass.
func Lookback(ctx context.Context, idx *index.Index, onFallback FallbackHandler) map[model.Key]Stars {
	if onFallback == nil {
		onFallback = func(context.Context, model.Key, error) {}
	}

	mi := buildMedalIndex(idx)
	years := idx.Years()
	keys := idx.Keys()
	out := make(map[model.Key]Stars, len(keys))

	for _, k := range keys {
		s, err := lookbackKey(idx, mi, years, k)
		if err != nil {
			onFallback(ctx, k, err)
			s = Stars{}
		}
		out[k] = s
	}

	return out
}

func lookbackKey(idx *index.Index, mi medalIndex, years []int, k model.Key) (Stars, error) {
	pos, ok := idx.YearPosition(k.Year)
	if !ok {
		return Stars{}, fmt.Errorf("%w: %d", ErrYearNotIndexed, k.Year)
	}
	if pos < 2 {
		return Stars{}, nil
	}

	last := mi[model.Key{Year: years[pos-1], NOC: k.NOC, SportCode: k.SportCode}]
	prev := mi[model.Key{Year: years[pos-2], NOC: k.NOC, SportCode: k.SportCode}]

	var s Stars
	for athlete, n := range last {
		if n >= 2 {
			s.Rising++
		}
		if prev[athlete] > 0 {
			s.Star++
		}
	}
	return s, nil
}
