package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{3, 1, 1}, 1))
	require.Equal(t, -1, FindIndex([]int{3}, 9))
}

func TestRemoveFirst(t *testing.T) {
	got, ok := RemoveFirst([]int{3, 1, 1}, 1)
	require.True(t, ok)
	require.Equal(t, []int{3, 1}, got, "Only the first occurrence is removed")

	got, ok = RemoveFirst([]int{3}, 9)
	require.False(t, ok)
	require.Equal(t, []int{3}, got)
}

func TestSubtractAll(t *testing.T) {
	got, ok := SubtractAll([]int{3, 1, 1, 2}, []int{1, 2})
	require.True(t, ok)
	require.Equal(t, []int{3, 1}, got)

	_, ok = SubtractAll([]int{3}, []int{3, 3})
	require.False(t, ok, "Missing any item fails the whole subtraction")
}
