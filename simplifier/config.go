package simplifier

import (
	"math"

	"github.com/cartocrow/isosimplify/ladder"
)

// Config holds the simplifier's tunable parameters. Use DefaultOptions
// plus WithXxx functional options to build one; the zero Config is not
// valid (Policy is nil).
type Config struct {
	Policy          ladder.CollapsePolicy
	AngleFilter     float64
	AlignmentFilter float64
	// Debug, when set, makes Step/Simplify print progress to stderr and
	// dump a ladder's full rung chain whenever a collapse turns out to be
	// inconsistent with the store (see driver.go's collapseLadder).
	Debug bool
}

// Option configures a Config in place.
type Option func(*Config)

// DefaultOptions returns the baseline configuration: the midpoint
// collapse policy and both filters disabled (set larger than 2*pi, so
// nothing is filtered), matching the resolver's own defaults.
func DefaultOptions() Config {
	return Config{
		Policy:          ladder.Midpoint{},
		AngleFilter:     math.Inf(1),
		AlignmentFilter: math.Inf(1),
	}
}

// WithPolicy selects the collapse policy used to place each rung's
// replacement point.
func WithPolicy(p ladder.CollapsePolicy) Option {
	if p == nil {
		panic("simplifier: WithPolicy requires a non-nil CollapsePolicy")
	}
	return func(c *Config) { c.Policy = p }
}

// WithAngleFilter bounds the acute angle between two sites' supporting
// lines that the matching resolver will still cross with a match.
func WithAngleFilter(radians float64) Option {
	if radians <= 0 {
		panic("simplifier: WithAngleFilter requires a positive angle")
	}
	return func(c *Config) { c.AngleFilter = radians }
}

// WithAlignmentFilter bounds the vertex-alignment angle the matching
// resolver will still accept for a candidate pair.
func WithAlignmentFilter(radians float64) Option {
	if radians <= 0 {
		panic("simplifier: WithAlignmentFilter requires a positive angle")
	}
	return func(c *Config) { c.AlignmentFilter = radians }
}

// WithDebug turns on stderr progress printing and ladder dumps.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}
