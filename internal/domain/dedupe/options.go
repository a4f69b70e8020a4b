// Package dedupe collapses repeated appearances of the same athlete into a
// single best result.
package dedupe

// Option applies a configuration option to the in-memory deduper.
type Option func(*inMemoryDeduper)

// WithExpectedSize pre-sizes the athlete map. Values <= 0 are ignored.
func WithExpectedSize(n int) Option {
	return func(d *inMemoryDeduper) {
		if n > 0 {
			d.expectedSize = n
		}
	}
}
