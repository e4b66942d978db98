// Package testutil provides testing utilities for numgo.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded RNG whose operand streams are biased toward the values
// numeric code gets wrong: zeros, ones, kind bounds, and values straddling
// them.
//
//	rng := testutil.NewRNG(seed)
//	for _, v := range rng.Uint64s(256) { ... }
package testutil
