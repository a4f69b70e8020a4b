// Package model contains domain models passed between layers.
package model

// Appearance is one athlete's participation in one event at one Games.
// Fields mirror the columns of the raw athlete record set after coercion.
type Appearance struct {
	Year      int    // olympiad year; meaningful only when YearValid
	YearValid bool   // false when the raw year failed numeric coercion
	NOC       string // national olympic committee code
	SportCode string // coarse sport category, e.g. "ATH"
	Event     string // fine-grained event within the sport category
	Athlete   string // athlete name, used as identity
	Medal     Medal
	Host      bool // (year, noc) hosted the games
}

// MissingSportCode replaces an empty sport code so the row still forms its
// own group.
const MissingSportCode = "nan"

// Key identifies one output row: (year, noc, sport_code).
type Key struct {
	Year      int
	NOC       string
	SportCode string
}

// Pair returns the (noc, sport_code) part of the key.
func (k Key) Pair() Pair {
	return Pair{NOC: k.NOC, SportCode: k.SportCode}
}

// YearNOC returns the (year, noc) part of the key.
func (k Key) YearNOC() YearNOC {
	return YearNOC{Year: k.Year, NOC: k.NOC}
}

// YearSport returns the (year, sport_code) part of the key.
func (k Key) YearSport() YearSport {
	return YearSport{Year: k.Year, SportCode: k.SportCode}
}

// Less orders keys by year, then noc, then sport code.
func (k Key) Less(o Key) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.NOC != o.NOC {
		return k.NOC < o.NOC
	}
	return k.SportCode < o.SportCode
}

// Pair is a (noc, sport_code) group.
type Pair struct {
	NOC       string
	SportCode string
}

// Less orders pairs by noc, then sport code.
func (p Pair) Less(o Pair) bool {
	if p.NOC != o.NOC {
		return p.NOC < o.NOC
	}
	return p.SportCode < o.SportCode
}

// YearNOC is a (year, noc) pair, the grain of the host flag.
type YearNOC struct {
	Year int
	NOC  string
}

// YearSport is a (year, sport_code) pair.
type YearSport struct {
	Year      int
	SportCode string
}

// KeyOf returns the grouping key of a. Callers must check YearValid first.
func KeyOf(a Appearance) Key { //nolint:gocritic // hugeParam
	return Key{Year: a.Year, NOC: a.NOC, SportCode: a.SportCode}
}

// PairOf returns the (noc, sport_code) group of a.
func PairOf(a Appearance) Pair { //nolint:gocritic // hugeParam
	return Pair{NOC: a.NOC, SportCode: a.SportCode}
}
