package model

import "strings"

// Medal is the outcome of an appearance.
type Medal uint8

// Medal values ordered from best to worst.
const (
	Gold Medal = iota + 1
	Silver
	Bronze
	// Unrecognised is a non-empty medal value that is none of the known colours
	// nor the no-medal sentinel.
	Unrecognised
	NoMedal
)

// NoMedalSentinel is the raw value the record set uses for "no medal".
const NoMedalSentinel = "No medal"

// ParseMedal maps a raw medal cell to a Medal. Empty cells and the usual
// missing-value markers ("NA", "NaN", "null", ...) are treated as missing.
func ParseMedal(raw string) Medal {
	switch s := strings.TrimSpace(raw); s {
	case "Gold":
		return Gold
	case "Silver":
		return Silver
	case "Bronze":
		return Bronze
	case "", NoMedalSentinel, "NA", "N/A", "n/a", "NaN", "nan", "null", "NULL", "None", "#N/A":
		return NoMedal
	default:
		return Unrecognised
	}
}

// Awarded reports whether the appearance counts as a medal: present and not
// the no-medal sentinel.
func (m Medal) Awarded() bool {
	return m != NoMedal && m != 0
}

// Rank orders medals for best-result selection: gold 1, silver 2, bronze 3,
// everything else 4.
func (m Medal) Rank() int {
	switch m {
	case Gold:
		return 1
	case Silver:
		return 2
	case Bronze:
		return 3
	default:
		return 4
	}
}

func (m Medal) String() string {
	switch m {
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case Bronze:
		return "Bronze"
	case Unrecognised:
		return "Unrecognised"
	default:
		return NoMedalSentinel
	}
}
