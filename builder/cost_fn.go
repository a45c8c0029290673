// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeCost is the cost used when no CostFn is configured.
const DefaultEdgeCost int64 = 1

// CostFn returns the cost of the next emitted edge. rng may be nil.
type CostFn func(rng *rand.Rand) int64

// DefaultCostFn always returns DefaultEdgeCost.
func DefaultCostFn(_ *rand.Rand) int64 { return DefaultEdgeCost }

// ConstantCostFn always returns value. Panics if value < 0.
func ConstantCostFn(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCostFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformCostFn draws uniformly from [min, max]. Without an RNG it returns min.
// Panics unless 0 ≤ min ≤ max.
func UniformCostFn(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
