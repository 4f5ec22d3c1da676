// Package densemat_test contains unit tests for Map and row iteration.
package densemat_test

import (
	"testing"

	"github.com/katalvlaran/densemat"
	"github.com/stretchr/testify/require"
)

// TestMapShapePreservation ensures Map keeps (rows, cols) intact.
func TestMapShapePreservation(t *testing.T) {
	m, err := densemat.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	doubled := densemat.Map(m, func(v int) int { return v * 2 })
	require.Equal(t, m.Rows(), doubled.Rows())
	require.Equal(t, m.Cols(), doubled.Cols())
	require.Equal(t, 12, doubled.AtOrDefault(1, 2))
}

// TestMapTypeConversion verifies the element type may change across Map.
func TestMapTypeConversion(t *testing.T) {
	m, err := densemat.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	halved := densemat.Map(m, func(v int) float64 { return float64(v) / 2 })
	require.Equal(t, 2, halved.Rows())
	require.Equal(t, 2, halved.Cols())
	require.Equal(t, 0.5, halved.AtOrDefault(0, 0))
	require.Equal(t, 2.0, halved.AtOrDefault(1, 1))
}

// TestMapDoesNotMutate pins the purity contract of Map.
func TestMapDoesNotMutate(t *testing.T) {
	m, err := densemat.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_ = densemat.Map(m, func(v int) int { return v + 100 })

	require.Equal(t, 1, m.AtOrDefault(0, 0))
	require.Equal(t, 4, m.AtOrDefault(1, 1))
}

// TestMapUnfilled verifies an unfilled input maps to an unfilled output
// of the same declared shape.
func TestMapUnfilled(t *testing.T) {
	m, err := densemat.New[int](2, 2)
	require.NoError(t, err)

	out := densemat.Map(m, func(v int) int { return v + 1 })
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 2, out.Cols())

	_, err = out.At(0, 0) // still no backing storage
	require.ErrorIs(t, err, densemat.ErrOutOfRange)
}

// TestRowIterDeterminism verifies two passes yield identical sequences:
// exactly Rows() slices, each of length Cols().
func TestRowIterDeterminism(t *testing.T) {
	m, err := densemat.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	collect := func() [][]int {
		var rows [][]int
		for row := range m.RowIter() {
			rows = append(rows, row)
		}
		return rows
	}

	first := collect()
	second := collect()

	require.Len(t, first, m.Rows())
	for _, row := range first {
		require.Len(t, row, m.Cols())
	}
	require.Equal(t, first, second)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, first)
}

// TestRowIterRestartable ensures a single Seq value can be ranged twice.
func TestRowIterRestartable(t *testing.T) {
	m, err := densemat.FromRows([][]int{{1}, {2}, {3}})
	require.NoError(t, err)

	seq := m.RowIter()
	count := 0
	for range seq {
		count++
	}
	for range seq {
		count++
	}
	require.Equal(t, 6, count)
}

// TestRowAt verifies indexed row access and its bounds behavior.
func TestRowAt(t *testing.T) {
	m, err := densemat.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.RowAt(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, row)

	_, err = m.RowAt(2)
	require.ErrorIs(t, err, densemat.ErrOutOfRange)

	_, err = m.RowAt(-1)
	require.ErrorIs(t, err, densemat.ErrOutOfRange)
}

// TestRowAtUnfilled ensures row access fails on a matrix with no storage.
func TestRowAtUnfilled(t *testing.T) {
	m, err := densemat.New[int](2, 2)
	require.NoError(t, err)

	_, err = m.RowAt(0)
	require.ErrorIs(t, err, densemat.ErrOutOfRange)
}
