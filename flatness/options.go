package flatness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/terrain50/dem"
)

// Option configures Detect via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Detect runs.
type Option func(*Options)

// Options holds the tunable parameters of a detection run.
type Options struct {
	// Tolerance is the absolute altitude equality bound in metres.
	Tolerance float64

	// Workers is the Phase 1 parallelism; 0 or 1 runs serially.
	Workers int

	// Rescan keeps the full-grid fallback pass that runs once after the
	// frontier is exhausted.
	Rescan bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the standard configuration:
// dem.DefaultTolerance, serial Phase 1, fallback rescan enabled.
func DefaultOptions() Options {
	return Options{
		Tolerance: dem.DefaultTolerance,
		Workers:   1,
		Rescan:    true,
	}
}

// WithTolerance sets the altitude equality tolerance in metres.
// t must be positive and finite.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t <= 0 || math.IsInf(t, 1) || math.IsNaN(t) {
			o.err = fmt.Errorf("%w: tolerance must be positive and finite (%v)", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}

// WithWorkers sets the number of Phase 1 workers.
//
//	n > 1:  classify seed rows across n goroutines
//	n == 0 or n == 1: serial
//	n < 0:  invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		if n == 0 {
			n = 1
		}
		o.Workers = n
	}
}

// WithRescanFallback keeps (true) or drops (false) the full-grid rescan
// that runs once after the growth frontier empties.
func WithRescanFallback(on bool) Option {
	return func(o *Options) {
		o.Rescan = on
	}
}
