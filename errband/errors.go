// SPDX-License-Identifier: MIT
// Package errband: sentinel errors.
//
// Callers branch with errors.Is; implementations wrap with %w to add context.

package errband

import "errors"

var (
	// ErrBadRepresentation is returned when a Representation is outside the
	// known set (Value, Percent, Factor) or a name cannot be parsed.
	ErrBadRepresentation = errors.New("errband: unknown error representation")
)
