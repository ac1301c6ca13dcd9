// SPDX-License-Identifier: MIT
// Package errband_test covers quadrature combination.
package errband_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/yellowhiggs/errband"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestCombine_Empty verifies that no inputs means no added uncertainty.
func TestCombine_Empty(t *testing.T) {
	got, err := errband.Combine(nil, errband.Percent, 3.5)
	require.NoError(t, err)
	assert.Equal(t, errband.Pair{}, got)

	got, err = errband.Combine([]errband.Pair{}, errband.Factor, 3.5)
	require.NoError(t, err)
	assert.Equal(t, errband.Pair{High: 1, Low: 1}, got)

	got, err = errband.Combine(nil, errband.Value, 3.5)
	require.NoError(t, err)
	assert.Equal(t, errband.Pair{High: 3.5, Low: 3.5}, got)
}

// TestCombine_ZeroContributesNothing checks that a (0,0) term leaves the total unchanged.
func TestCombine_ZeroContributesNothing(t *testing.T) {
	got, err := errband.Combine([]errband.Pair{{High: 10, Low: 10}, {}}, errband.Percent, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10, got.High, eps)
	assert.InDelta(t, 10, got.Low, eps)
}

// TestCombine_Quadrature checks a 3-4-5 triangle on each side independently.
func TestCombine_Quadrature(t *testing.T) {
	errs := []errband.Pair{{High: 3, Low: 6}, {High: 4, Low: 8}}

	pct, err := errband.Combine(errs, errband.Percent, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5, pct.High, eps)
	assert.InDelta(t, 10, pct.Low, eps)

	fac, err := errband.Combine(errs, errband.Factor, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.05, fac.High, eps)
	assert.InDelta(t, 0.90, fac.Low, eps)

	val, err := errband.Combine(errs, errband.Value, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.10, val.High, eps)
	assert.InDelta(t, 1.80, val.Low, eps)
}

// TestCombine_SingleIsIdentity verifies that one input reproduces the Band projections.
func TestCombine_SingleIsIdentity(t *testing.T) {
	b := errband.NewBand(19.27, 14.7, 14.7)
	for _, rep := range []errband.Representation{errband.Value, errband.Percent, errband.Factor} {
		want, err := b.In(rep)
		require.NoError(t, err)
		got, err := errband.Combine([]errband.Pair{b.Percent()}, rep, b.Center)
		require.NoError(t, err)
		assert.InDelta(t, want.High, got.High, 1e-9, rep.String())
		assert.InDelta(t, want.Low, got.Low, 1e-9, rep.String())
	}
}

// TestCombine_OrderIndependent checks the sum is symmetric in its inputs.
func TestCombine_OrderIndependent(t *testing.T) {
	a := []errband.Pair{{High: 7.2, Low: 7.8}, {High: 7.5, Low: 6.9}, {High: 3.2, Low: 3.3}}
	b := []errband.Pair{a[2], a[0], a[1]}

	ga, err := errband.Combine(a, errband.Percent, 0)
	require.NoError(t, err)
	gb, err := errband.Combine(b, errband.Percent, 0)
	require.NoError(t, err)
	assert.InDelta(t, ga.High, gb.High, eps)
	assert.InDelta(t, ga.Low, gb.Low, eps)
	assert.InDelta(t, math.Sqrt(7.2*7.2+7.5*7.5+3.2*3.2), ga.High, 1e-9)
}

// TestCombine_BadRepresentation rejects unknown projections.
func TestCombine_BadRepresentation(t *testing.T) {
	_, err := errband.Combine(nil, errband.Representation(9), 1)
	assert.ErrorIs(t, err, errband.ErrBadRepresentation)
}
