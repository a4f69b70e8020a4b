package features

import (
	"context"

	"github.com/okian/podium/internal/domain/index"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// Merge joins the keyed subtables into one row per key, in key order.
// Group-level rates and career lengths are broadcast to every year of the
// group; missing entries read as zero.
func Merge(
	_ context.Context,
	idx *index.Index,
	counts map[model.Key]Counts,
	hosts map[model.YearNOC]bool,
	rates map[model.Pair]Rates,
	stars map[model.Key]Stars,
	careers map[model.Pair]float64,
) []types.FeatureRow {
	keys := idx.Keys()
	rows := make([]types.FeatureRow, 0, len(keys))

	for _, k := range keys {
		c := counts[k]
		r := rates[k.Pair()]
		s := stars[k]

		row := types.FeatureRow{
			Year:             k.Year,
			NOC:              k.NOC,
			SportCode:        k.SportCode,
			YearTotal:        c.YearTotal,
			YearSportTotal:   c.YearSportTotal,
			YearCountrySport: c.Participation,
			EventCount:       c.Events,
			GoldRate:         r.Gold,
			SilverRate:       r.Silver,
			BronzeRate:       r.Bronze,
			StarAthletes:     s.Star,
			RisingStars:      s.Rising,
			AvgCareerLength:  careers[k.Pair()],
			Gold:             c.Gold,
			Silver:           c.Silver,
			Bronze:           c.Bronze,
		}
		if hosts[k.YearNOC()] {
			row.IsHost = 1
		}
		rows = append(rows, row)
	}

	return rows
}
