// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and validators in this package return these sentinels
// (optionally wrapped with positional context). Callers match them via
// errors.Is. Nothing in this package panics on user-supplied data.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines can be grepped.
// Context (row, column, value) is added with fmt.Errorf("...: %w", ErrX)
// at the point of detection; callers still use errors.Is.

var (
	// ErrBadShape is returned when the requested order is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates that the flat data length is not n*n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidWeight indicates a NaN or ±Inf edge weight.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrNilMatrix indicates that a nil *Weights was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
