package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkStack(t *testing.T) {
	a, b, c := &Node{depth: 0}, &Node{depth: 1}, &Node{depth: 2}
	stack := &workStack{}
	require.True(t, stack.isEmpty())

	stack.push(a)
	stack.push(b)
	stack.push(c)
	require.False(t, stack.isEmpty())

	require.Same(t, c, stack.pop())
	require.Same(t, b, stack.pop())
	stack.push(c)
	require.Same(t, c, stack.pop())
	require.Same(t, a, stack.pop())
	require.True(t, stack.isEmpty())
}
