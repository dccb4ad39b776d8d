package centipede

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"
)

func TestGameNode_Visit(t *testing.T) {
	root, _ := mustResolve(t, 2)

	var visited []string
	var types []cfr.NodeType
	tree.Visit(GameNode{root}, func(node cfr.GameTreeNode) {
		gn := node.(GameNode)
		visited = append(visited, gn.ID())
		types = append(types, gn.Type())
	})

	expected := []string{"S", "SD", "SR", "SRD", "SRR", "SRRD", "SRRR"}
	assert.Equal(t, expected, visited)
	for i, id := range visited {
		if len(id) > 1 && id[len(id)-1] == 'D' || id == "SRRR" {
			assert.Equal(t, cfr.TerminalNodeType, types[i], id)
		} else {
			assert.Equal(t, cfr.PlayerNodeType, types[i], id)
		}
	}
}

func TestGameNode_Players(t *testing.T) {
	root, _, err := Build(2)
	require.NoError(t, err)

	gn := GameNode{root}
	assert.Equal(t, 0, gn.Player())
	assert.Equal(t, 1, GameNode{root.Continue()}.Player())
	assert.Equal(t, -1, GameNode{root.Stop()}.Player())
}

func TestGameNode_Children(t *testing.T) {
	root, _, err := Build(2)
	require.NoError(t, err)

	gn := GameNode{root}
	require.Equal(t, 2, gn.NumChildren())
	assert.Same(t, root.Stop(), gn.GetChild(0).(GameNode).Node)
	assert.Same(t, root.Continue(), gn.GetChild(1).(GameNode).Node)
	assert.Equal(t, gn, gn.GetChild(1).Parent())
	assert.Nil(t, gn.Parent())
	assert.Equal(t, 0, GameNode{root.Stop()}.NumChildren())
	assert.Panics(t, func() { gn.GetChild(2) })

	onlyContinue := NewDecision("X", Actor{PlayerA, 1}, nil, NewLeaf("XR", Payoff{1, 1}))
	gn = GameNode{onlyContinue}
	require.Equal(t, 1, gn.NumChildren())
	assert.Equal(t, "XR", gn.GetChild(0).(GameNode).ID())
}

func TestGameNode_Utility(t *testing.T) {
	root, deepest, err := Build(3)
	require.NoError(t, err)

	optimum := GameNode{deepest.Continue()}
	assert.Equal(t, 3.0, optimum.Utility(0))
	assert.Equal(t, 3.0, optimum.Utility(1))

	a1Stop := GameNode{root.Stop()}
	assert.Equal(t, 1.0, a1Stop.Utility(0))
	assert.Equal(t, 0.0, a1Stop.Utility(1))

	assert.Panics(t, func() { GameNode{root}.Utility(0) })
	assert.Panics(t, func() { optimum.Utility(2) })
}

func TestGameNode_NoChance(t *testing.T) {
	root, _, err := Build(1)
	require.NoError(t, err)

	gn := GameNode{root}
	assert.Panics(t, func() { gn.GetChildProbability(0) })
	assert.Panics(t, func() { gn.SampleChild() })
}

func TestGameNode_InfoSet(t *testing.T) {
	root, _, err := Build(2)
	require.NoError(t, err)

	is := GameNode{root.Continue()}.InfoSet(1)
	assert.Equal(t, "SR", is.Key())

	buf, err := is.(*InfoSet).MarshalBinary()
	require.NoError(t, err)
	var decoded InfoSet
	require.NoError(t, decoded.UnmarshalBinary(buf))
	assert.Equal(t, "SR", decoded.Key())

	keys := make(map[string]struct{})
	tree.Visit(GameNode{root}, func(node cfr.GameTreeNode) {
		if node.Type() == cfr.PlayerNodeType {
			keys[node.InfoSet(node.Player()).Key()] = struct{}{}
		}
	})
	assert.Len(t, keys, CountDecisions(root))
}

func TestGameNode_CloseCountsVisits(t *testing.T) {
	root, _, err := Build(3)
	require.NoError(t, err)

	before := nodesVisited.Value()
	beforeLeaves := leafNodesVisited.Value()
	tree.Visit(GameNode{root}, func(node cfr.GameTreeNode) {})
	assert.Equal(t, int64(11), nodesVisited.Value()-before)
	assert.Equal(t, int64(6), leafNodesVisited.Value()-beforeLeaves)
}
