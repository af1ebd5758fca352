// SPDX-License-Identifier: MIT
// Package: shortway/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals are mutated.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • xThreshold = DefaultXThreshold (3.0)
//   • yThreshold = DefaultYThreshold (3.5)
//   • logger     = discard

package builder

import (
	log "github.com/inconshreveable/log15/v3"
)

// Reference proximity thresholds, in scene units.
const (
	DefaultXThreshold = 3.0
	DefaultYThreshold = 3.5
)

// R-tree fan-out. Scenes are small; these match the branching used for
// polygon indexes elsewhere and keep the tree shallow.
const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// queryPad is the relative margin added to every R-tree query box so points
// exactly on the threshold are always returned as candidates; the exact test
// is applied afterwards. It also sizes the degenerate per-point boxes.
const queryPad = 1e-9

// builderConfig aggregates all knobs used by BuildGraph.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	xThreshold float64
	yThreshold float64
	logger     log.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		xThreshold: DefaultXThreshold,
		yThreshold: DefaultYThreshold,
		logger:     discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logger that drops every record.
func discardLogger() log.Logger {
	l := log.New("module", "builder")
	l.SetHandler(log.DiscardHandler())

	return l
}
