package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParentChildRoundTrip(t *testing.T) {
	for i := int32(0); i < 1000; i++ {
		require.Equal(t, i, Parent(Left(i)), "parent of left child")
		require.Equal(t, i, Parent(Right(i)), "parent of right child")
	}
}

func TestBuddy(t *testing.T) {
	require.Equal(t, int32(0), Buddy(0), "root is its own buddy sentinel")
	require.Equal(t, int32(2), Buddy(1))
	require.Equal(t, int32(1), Buddy(2))
	require.Equal(t, int32(4), Buddy(3))
	require.Equal(t, int32(3), Buddy(4))

	// Buddies always share a parent.
	for i := int32(1); i < 1000; i++ {
		require.Equal(t, Parent(i), Parent(Buddy(i)), "buddy of %d", i)
		require.NotEqual(t, i, Buddy(i))
	}
}

func TestIsLeftChild(t *testing.T) {
	require.False(t, IsLeftChild(0))
	require.True(t, IsLeftChild(1))
	require.False(t, IsLeftChild(2))
	for i := int32(0); i < 100; i++ {
		require.True(t, IsLeftChild(Left(i)))
		require.False(t, IsLeftChild(Right(i)))
	}
}

func TestNodeCountDepth(t *testing.T) {
	cases := []struct {
		pages, nodes, depth int
	}{
		{1, 1, 1},
		{2, 3, 2},
		{8, 15, 4},
		{16384, 32767, 15},
	}
	for _, c := range cases {
		require.Equal(t, c.nodes, NodeCount(c.pages), "NodeCount(%d)", c.pages)
		require.Equal(t, c.depth, Depth(c.pages), "Depth(%d)", c.pages)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 256, 16384} {
		require.True(t, IsPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int{0, -1, -4, 3, 6, 100, 16383} {
		require.False(t, IsPowerOfTwo(n), "%d", n)
	}
}

func TestLog2(t *testing.T) {
	require.Equal(t, 0, Log2(1))
	require.Equal(t, 1, Log2(2))
	require.Equal(t, 9, Log2(512))
	require.Equal(t, 14, Log2(16384))
	require.Equal(t, 0, Log2(0))
}
