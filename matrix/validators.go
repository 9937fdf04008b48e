// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the shape and value checks applied to
//    adjacency data before it is wrapped into a *Weights.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    add their own context uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.
//  - ValidateWeights runs O(n²) in row-major order and reports the first
//    violation found.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateOrder ensures n describes a usable square matrix (n > 0).
// Complexity: O(1).
func ValidateOrder(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidateOrder", ErrBadShape)
	}

	return nil
}

// ValidateLen ensures a flat row-major buffer holds exactly n*n values.
// Complexity: O(1).
func ValidateLen(data []float64, n int) error {
	if len(data) != n*n {
		return validatorErrorf(
			fmt.Sprintf("ValidateLen: got %d values, want %d", len(data), n*n),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateWeight checks a single edge weight: finite and non-negative.
// Zero is accepted and means "no edge".
// Complexity: O(1).
func ValidateWeight(w float64) error {
	// NaN and ±Inf are rejected first: NaN compares false with everything.
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrInvalidWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}

// ValidateWeights scans a flat n×n buffer in row-major order and returns the
// first invalid entry, tagged with its (row, col) position.
// Assumes ValidateLen already succeeded.
// Complexity: O(n²).
func ValidateWeights(data []float64, n int) error {
	var (
		i   int
		err error
	)
	for i = range data {
		if err = ValidateWeight(data[i]); err != nil {
			return validatorErrorf(
				fmt.Sprintf("ValidateWeights(%d,%d)=%g", i/n, i%n, data[i]),
				err,
			)
		}
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}
