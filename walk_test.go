package centipede

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_Order(t *testing.T) {
	root, _, err := Build(2)
	require.NoError(t, err)

	var visited []string
	err = Walk(root, func(node *Node) error {
		visited = append(visited, node.ID())
		return nil
	})
	require.NoError(t, err)

	expected := []string{"S", "SD", "SR", "SRD", "SRR", "SRRD", "SRRR"}
	assert.Equal(t, expected, visited)
}

func TestWalk_StopsOnError(t *testing.T) {
	root, _, err := Build(4)
	require.NoError(t, err)

	errStop := errors.New("stop")
	n := 0
	err = Walk(root, func(node *Node) error {
		n++
		if n == 3 {
			return errStop
		}
		return nil
	})
	assert.Equal(t, errStop, err)
	assert.Equal(t, 3, n)
}

func TestWalk_Nil(t *testing.T) {
	called := false
	err := Walk(nil, func(node *Node) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestCountNodes(t *testing.T) {
	for k := 1; k <= 10; k++ {
		root, _, err := Build(k)
		require.NoError(t, err)
		assert.Equal(t, 4*k-1, CountNodes(root), "k=%d", k)
	}
}

func TestCountNodes_Deep(t *testing.T) {
	root, _, err := Build(50000)
	require.NoError(t, err)
	assert.Equal(t, 4*50000-1, CountNodes(root))
}
