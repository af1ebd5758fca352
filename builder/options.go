// SPDX-License-Identifier: MIT
// Package: shortway/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     BuildGraph itself never panics.

package builder

import (
	"math"

	log "github.com/inconshreveable/log15/v3"
)

// Option customizes BuildGraph by mutating a builderConfig before
// construction begins.
type Option func(*builderConfig)

// WithThresholds sets both per-axis proximity thresholds.
// Panics if either is negative, NaN or infinite.
func WithThresholds(x, y float64) Option {
	mustThreshold("WithThresholds", x)
	mustThreshold("WithThresholds", y)

	return func(c *builderConfig) {
		c.xThreshold, c.yThreshold = x, y
	}
}

// WithXThreshold sets the maximum |Δx| for two points to be linked.
// Panics if x is negative, NaN or infinite.
func WithXThreshold(x float64) Option {
	mustThreshold("WithXThreshold", x)

	return func(c *builderConfig) { c.xThreshold = x }
}

// WithYThreshold sets the maximum |Δy| for two points to be linked.
// Panics if y is negative, NaN or infinite.
func WithYThreshold(y float64) Option {
	mustThreshold("WithYThreshold", y)

	return func(c *builderConfig) { c.yThreshold = y }
}

// WithLogger routes the build summary to l. Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}

	return func(c *builderConfig) { c.logger = l.New("module", "builder") }
}

// mustThreshold panics with the option name if t is not a finite value >= 0.
func mustThreshold(option string, t float64) {
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		panic("builder: " + option + ": threshold must be finite and >= 0")
	}
}
