// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is the resolved, immutable view of all BuilderOptions.
type builderConfig struct {
	idFn   IDFn       // vertex index → name
	rng    *rand.Rand // nil unless WithSeed/WithRand
	costFn CostFn     // edge cost source
	oneWay bool       // emit directed records only
}

// newBuilderConfig applies opts over the defaults: decimal names, no RNG,
// constant cost 1, bidirectional edges.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
