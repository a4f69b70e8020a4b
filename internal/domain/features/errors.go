package features

import "errors"

// Sentinel kinds for feature derivation errors.
var (
	ErrYearNotIndexed = errors.New("year not in global year sequence")
)
