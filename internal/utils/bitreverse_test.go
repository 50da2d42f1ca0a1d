package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverseBits(t *testing.T) {
	require.Equal(t, uint64(0), ReverseBits(0, 8))
	require.Equal(t, uint64(4), ReverseBits(1, 8))
	require.Equal(t, uint64(2), ReverseBits(2, 8))
	require.Equal(t, uint64(6), ReverseBits(3, 8))
	require.Equal(t, uint64(1), ReverseBits(4, 8))

	require.Panics(t, func() {
		ReverseBits(3, 6)
	})
}

func TestBitReverseIsInvolution(t *testing.T) {
	list := make([]int, 64)
	for i := range list {
		list[i] = i
	}
	expected := make([]int, len(list))
	copy(expected, list)

	BitReverse(list)
	require.NotEqual(t, expected, list)
	BitReverse(list)
	require.Equal(t, expected, list)
}

func TestBitReverseMatchesIndexFormula(t *testing.T) {
	const n = 32
	list := make([]uint64, n)
	for i := range list {
		list[i] = uint64(i)
	}

	BitReverse(list)
	for i := uint64(0); i < n; i++ {
		require.Equal(t, ReverseBits(i, n), list[i])
	}
}

func TestBitReverseNonPowerOfTwoPanics(t *testing.T) {
	require.Panics(t, func() {
		BitReverse(make([]int, 6))
	})
}
