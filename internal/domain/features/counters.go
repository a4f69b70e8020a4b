package features

import (
	"context"

	"github.com/okian/podium/internal/domain/index"
	"github.com/okian/podium/internal/domain/model"
)

// Counts holds the basic counters of one (year, noc, sport_code) key.
type Counts struct {
	Participation  int // appearances matching the key
	Gold           int
	Silver         int
	Bronze         int
	Events         int // distinct non-empty events
	YearTotal      int // appearances at the whole Games
	YearSportTotal int // appearances in the sport category across all countries
}

// Counters computes participation, medal and distinct-event counts per key.
// Games-wide and sport-wide totals are aggregated once and broadcast to keys.
func Counters(_ context.Context, idx *index.Index) map[model.Key]Counts {
	keys := idx.Keys()
	out := make(map[model.Key]Counts, len(keys))
	sportTotals := make(map[model.YearSport]int)

	for _, k := range keys {
		rows := idx.Rows(k)
		c := Counts{Participation: len(rows)}
		events := make(map[string]struct{})
		for _, r := range rows {
			a := idx.At(r)
			switch a.Medal {
			case model.Gold:
				c.Gold++
			case model.Silver:
				c.Silver++
			case model.Bronze:
				c.Bronze++
			}
			if a.Event != "" {
				events[a.Event] = struct{}{}
			}
		}
		c.Events = len(events)
		out[k] = c
		sportTotals[k.YearSport()] += c.Participation
	}

	for k, c := range out {
		c.YearTotal = len(idx.ByYear(k.Year))
		c.YearSportTotal = sportTotals[k.YearSport()]
		out[k] = c
	}

	return out
}
