// Package testutil provides testing utilities for facet.
//
// This package is intended for use in tests only. It generates seeded random
// record trees for property-style tests of the catalog and filter engine.
//
//	rng := testutil.NewRNG(4711)
//	tree := rng.RandomTree(testutil.TreeConfig{Depth: 2, Fanout: 4})
package testutil
