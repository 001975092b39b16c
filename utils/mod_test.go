package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]float64{-1, 1, 1}, 1), "First match wins")
	require.Equal(t, -1, FindIndex([]string{"a", "b"}, "c"))
	require.Equal(t, -1, FindIndex([]int{}, 0))
}
