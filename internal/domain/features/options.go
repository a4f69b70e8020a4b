package features

import (
	"context"
	"time"

	"github.com/okian/podium/internal/domain/model"
)

// Default calculator configuration constants.
const (
	defaultCareerOutlierYears = 24
	defaultFirstGamesYear     = 1896
)

// PassObserver is told how long each pass took and how many entries it produced.
type PassObserver func(ctx context.Context, pass string, elapsed time.Duration, produced int)

// FallbackHandler is told about a row whose lookback could not be computed.
type FallbackHandler func(ctx context.Context, key model.Key, err error)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithCareerOutlierYears sets the longest career span still considered valid.
func WithCareerOutlierYears(years int) Option {
	return func(c *Calculator) {
		if years > 0 {
			c.careerOutlierYears = years
		}
	}
}

// WithFirstGamesYear sets the year of the first Games; groups starting that
// year report a zero career length.
func WithFirstGamesYear(year int) Option {
	return func(c *Calculator) {
		if year > 0 {
			c.firstGamesYear = year
		}
	}
}

// WithPassObserver registers a callback invoked after each pass.
func WithPassObserver(fn PassObserver) Option {
	return func(c *Calculator) {
		if fn != nil {
			c.observe = fn
		}
	}
}

// WithFallbackHandler registers a callback invoked for each lookback fallback.
func WithFallbackHandler(fn FallbackHandler) Option {
	return func(c *Calculator) {
		if fn != nil {
			c.onFallback = fn
		}
	}
}
