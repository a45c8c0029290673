// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors returned by constructors; BuildGraph wraps them with context.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil Constructor was passed to BuildGraph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
