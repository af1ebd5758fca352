// SPDX-License-Identifier: MIT
// Package: shortway/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failure site (see builderErrorf).
//   • BuildGraph never panics; validation panics are confined to option constructors.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortway/core"
)

// ErrNoPoints indicates BuildGraph received an empty point set.
var ErrNoPoints = errors.New("builder: no points")

// ErrStartNotFound indicates startID names no point in the input.
// It wraps core.ErrNodeNotFound so callers may branch on either.
var ErrStartNotFound = fmt.Errorf("builder: start point: %w", core.ErrNodeNotFound)

// ErrEndNotFound indicates endID names no point in the input.
// It wraps core.ErrNodeNotFound so callers may branch on either.
var ErrEndNotFound = fmt.Errorf("builder: end point: %w", core.ErrNodeNotFound)

// ErrStartIsEnd indicates startID and endID are the same point.
var ErrStartIsEnd = errors.New("builder: start and end are the same point")

// builderErrorf prefixes an error with the builder stage it came from.
// The %w verb in format keeps sentinels reachable through errors.Is.
func builderErrorf(stage, format string, args ...interface{}) error {
	return fmt.Errorf("builder: %s: %w", stage, fmt.Errorf(format, args...))
}
