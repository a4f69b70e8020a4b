// Package index groups appearances by the keys every aggregation pass needs.
//
// The index is built once from the record store and is read-only afterwards;
// slices returned by its accessors must not be modified by callers.
package index

import (
	"sort"

	"github.com/okian/podium/internal/domain/model"
)

// Index maps grouping keys to row positions in the record store.
type Index struct {
	apps []model.Appearance

	byKey     map[model.Key][]int
	byYearNOC map[model.YearNOC][]int
	byPair    map[model.Pair][]int
	byYear    map[int][]int

	keys    []model.Key
	pairs   []model.Pair
	years   []int
	yearPos map[int]int
}

// Build indexes apps. Rows whose year failed coercion are kept in their
// (noc, sport_code) group but never appear under a year-bearing key. Rows
// without a NOC only count toward their Games.
func Build(apps []model.Appearance) *Index {
	idx := &Index{
		apps:      apps,
		byKey:     make(map[model.Key][]int),
		byYearNOC: make(map[model.YearNOC][]int),
		byPair:    make(map[model.Pair][]int),
		byYear:    make(map[int][]int),
		yearPos:   make(map[int]int),
	}

	for i := range apps {
		a := &apps[i]
		keyed := a.NOC != ""
		if keyed {
			p := model.PairOf(*a)
			if _, ok := idx.byPair[p]; !ok {
				idx.pairs = append(idx.pairs, p)
			}
			idx.byPair[p] = append(idx.byPair[p], i)
		}

		if !a.YearValid {
			continue
		}

		if keyed {
			k := model.KeyOf(*a)
			if _, ok := idx.byKey[k]; !ok {
				idx.keys = append(idx.keys, k)
			}
			idx.byKey[k] = append(idx.byKey[k], i)

			yn := k.YearNOC()
			idx.byYearNOC[yn] = append(idx.byYearNOC[yn], i)
		}

		if _, ok := idx.byYear[a.Year]; !ok {
			idx.years = append(idx.years, a.Year)
		}
		idx.byYear[a.Year] = append(idx.byYear[a.Year], i)
	}

	sort.Slice(idx.keys, func(i, j int) bool { return idx.keys[i].Less(idx.keys[j]) })
	sort.Slice(idx.pairs, func(i, j int) bool { return idx.pairs[i].Less(idx.pairs[j]) })
	sort.Ints(idx.years)
	for i, y := range idx.years {
		idx.yearPos[y] = i
	}

	return idx
}

// At returns the appearance stored at row.
func (i *Index) At(row int) *model.Appearance { return &i.apps[row] }

// Keys returns every (year, noc, sport_code) key, sorted.
func (i *Index) Keys() []model.Key { return i.keys }

// Rows returns the rows matching k.
func (i *Index) Rows(k model.Key) []int { return i.byKey[k] }

// ByYearNOC returns the rows of one country at one Games.
func (i *Index) ByYearNOC(k model.YearNOC) []int { return i.byYearNOC[k] }

// Pairs returns every (noc, sport_code) group, sorted.
func (i *Index) Pairs() []model.Pair { return i.pairs }

// ByPair returns the rows of a (noc, sport_code) group across all years,
// including rows whose year is invalid.
func (i *Index) ByPair(p model.Pair) []int { return i.byPair[p] }

// ByYear returns the rows of one Games, including rows without a NOC.
func (i *Index) ByYear(year int) []int { return i.byYear[year] }

// Years returns the global sorted sequence of distinct valid years.
func (i *Index) Years() []int { return i.years }

// YearPosition returns the position of year in Years.
func (i *Index) YearPosition(year int) (int, bool) {
	pos, ok := i.yearPos[year]
	return pos, ok
}
