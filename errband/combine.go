// SPDX-License-Identifier: MIT

package errband

import (
	"fmt"
	"math"
)

// Combine sums percent errors in quadrature, each side independently, and
// projects the total into rep around center.
//
// Algorithm:
//  1. h = sqrt(Σ (High_i/100)²), l = sqrt(Σ (Low_i/100)²).
//  2. Project:
//     Value   → (center·(1+h), center·(1−l))
//     Percent → (h·100, l·100)
//     Factor  → (1+h, 1−l)
//
// An empty errs yields a band of zero width. Inputs are taken as magnitudes;
// signs are not checked.
//
// Complexity: O(len(errs)) time, O(1) space.
func Combine(errs []Pair, rep Representation, center float64) (Pair, error) {
	if !rep.Valid() {
		return Pair{}, fmt.Errorf("Combine(%v): %w", rep, ErrBadRepresentation)
	}

	var sumHigh, sumLow float64
	for _, e := range errs {
		h, l := e.High/100, e.Low/100
		sumHigh += h * h
		sumLow += l * l
	}
	high, low := math.Sqrt(sumHigh), math.Sqrt(sumLow)

	switch rep {
	case Percent:
		return Pair{High: high * 100, Low: low * 100}, nil
	case Factor:
		return Pair{High: 1 + high, Low: 1 - low}, nil
	default: // Value
		return Pair{High: center * (1 + high), Low: center * (1 - low)}, nil
	}
}
