package features

import (
	"context"

	"github.com/okian/podium/internal/domain/index"
	"github.com/okian/podium/internal/domain/model"
)

// HostFlags marks every (year, noc) pair with at least one host-flagged row.
// Pairs that never hosted are absent from the result.
func HostFlags(_ context.Context, idx *index.Index) map[model.YearNOC]bool {
	out := make(map[model.YearNOC]bool)
	for _, k := range idx.Keys() {
		yn := k.YearNOC()
		if _, done := out[yn]; done {
			continue
		}
		for _, r := range idx.ByYearNOC(yn) {
			if idx.At(r).Host {
				out[yn] = true
				break
			}
		}
	}
	return out
}
