// Package geom implements the reference PrimitiveOracle that boolcore
// consumes: points, segments, arcs, their mutual intersection and splitting
// routines, and the epsilon-tolerant scalar comparisons the engine uses
// instead of raw equality.
package geom

import "errors"

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("geom: invalid config")

// DefaultEpsilon is the tolerance used when no Config is supplied.
const DefaultEpsilon = 1e-9

// Config holds the oracle's tolerance knob (spec §9 "Epsilon arithmetic":
// "Tolerance is a single configuration knob on the oracle").
type Config struct {
	Epsilon float64
}

// NewConfig validates epsilon and returns a Config, following the same
// range-checked-options-struct pattern the teacher uses for OffsetOptions.
func NewConfig(epsilon float64) (Config, error) {
	if epsilon <= 0 {
		return Config{}, ErrInvalidConfig
	}
	return Config{Epsilon: epsilon}, nil
}

// DefaultConfig returns a Config using DefaultEpsilon.
func DefaultConfig() Config {
	return Config{Epsilon: DefaultEpsilon}
}

// EQ reports whether a and b are equal within the configured epsilon.
func (c Config) EQ(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= c.Epsilon
}

// LT reports whether a is less than b outside epsilon tolerance.
func (c Config) LT(a, b float64) bool {
	return b-a > c.Epsilon
}

// GT reports whether a is greater than b outside epsilon tolerance.
func (c Config) GT(a, b float64) bool {
	return a-b > c.Epsilon
}

// LTE reports a <= b under epsilon tolerance.
func (c Config) LTE(a, b float64) bool {
	return !c.GT(a, b)
}

// GTE reports a >= b under epsilon tolerance.
func (c Config) GTE(a, b float64) bool {
	return !c.LT(a, b)
}

// IsZero reports whether v is within epsilon of zero.
func (c Config) IsZero(v float64) bool {
	return c.EQ(v, 0)
}
