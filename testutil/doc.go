// Package testutil provides seeded random inputs and reference models
// for tests.
//
// RNG is safe for concurrent use, so parallel subtests may share one.
package testutil
