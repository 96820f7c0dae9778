package algorithm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinarySearch(t *testing.T) {
	t.Parallel()

	ints := []int{0, 2, 3, 5, 8}
	for i, v := range ints {
		target := v
		got := BinarySearch(ints, func(_ int, element int) int {
			return target - element
		})
		require.Equal(t, i, got)
	}

	for _, target := range []int{-1, 1, 4, 9} {
		target := target
		got := BinarySearch(ints, func(_ int, element int) int {
			return target - element
		})
		require.Equal(t, -1, got, "target %d", target)
	}

	require.Equal(t, -1, BinarySearch([]int{}, func(int, int) int { return 0 }))

	words := []string{"apple", "banana", "cherry", "date", "elderberry"}
	got := BinarySearch(words, func(_ int, element string) int {
		return strings.Compare("cherry", element)
	})
	require.Equal(t, 2, got)
}
