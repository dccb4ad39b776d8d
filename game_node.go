package centipede

import (
	"expvar"
	"fmt"

	"github.com/timpalpant/go-cfr"
)

var (
	nodesVisited         = expvar.NewInt("nodes_visited")
	decisionNodesVisited = expvar.NewInt("nodes_visited/decision")
	leafNodesVisited     = expvar.NewInt("nodes_visited/leaf")
)

// GameNode exposes a Node as a cfr.GameTreeNode so the tree can be
// traversed with go-cfr's tree tools. Child 0 is the stop branch and
// child 1 the continue branch. The centipede game has no chance nodes.
type GameNode struct {
	*Node
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = GameNode{}

// Type implements cfr.GameTreeNode.
func (gn GameNode) Type() cfr.NodeType {
	if gn.IsLeaf() {
		return cfr.TerminalNodeType
	}

	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode. Player A is 0 and player B is 1.
// Leaves have no player to move and return -1.
func (gn GameNode) Player() int {
	if !gn.actor.Player.IsValid() {
		return -1
	}

	return int(gn.actor.Player - PlayerA)
}

// InfoSet implements cfr.GameTreeNode. Both players see the whole history,
// so every node is its own information set.
func (gn GameNode) InfoSet(player int) cfr.InfoSet {
	return &InfoSet{NodeID: gn.id}
}

// Utility implements cfr.GameTreeNode.
func (gn GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	if player != 0 && player != 1 {
		panic(fmt.Errorf("no utility for player %d", player))
	}

	return float64(gn.payoff[player])
}

// NumChildren implements cfr.GameTreeNode.
func (gn GameNode) NumChildren() int {
	n := 0
	if gn.stop != nil {
		n++
	}
	if gn.cont != nil {
		n++
	}

	return n
}

// GetChild implements cfr.GameTreeNode.
func (gn GameNode) GetChild(i int) cfr.GameTreeNode {
	if gn.stop == nil {
		i++
	}

	var child *Node
	switch i {
	case 0:
		child = gn.stop
	case 1:
		child = gn.cont
	}

	if child == nil {
		panic(fmt.Errorf("node %v has no child %d", gn.id, i))
	}

	return GameNode{child}
}

// Parent implements cfr.GameTreeNode.
func (gn GameNode) Parent() cfr.GameTreeNode {
	if gn.parent == nil {
		return nil
	}

	return GameNode{gn.parent}
}

// GetChildProbability implements cfr.GameTreeNode.
func (gn GameNode) GetChildProbability(i int) float64 {
	panic("cannot get the probability of a non-chance node")
}

// SampleChild implements cfr.GameTreeNode.
func (gn GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	panic("cannot sample a child of a non-chance node")
}

// Close implements cfr.GameTreeNode.
func (gn GameNode) Close() {
	nodesVisited.Add(1)
	switch gn.Type() {
	case cfr.TerminalNodeType:
		leafNodesVisited.Add(1)
	case cfr.PlayerNodeType:
		decisionNodesVisited.Add(1)
	}
}

// InfoSet identifies a node for go-cfr. The node id is the full
// path from the root, so it is unique within a tree.
type InfoSet struct {
	NodeID string
}

// Key implements cfr.InfoSet.
func (is *InfoSet) Key() string {
	return is.NodeID
}

func (is *InfoSet) MarshalBinary() ([]byte, error) {
	return []byte(is.NodeID), nil
}

func (is *InfoSet) UnmarshalBinary(buf []byte) error {
	is.NodeID = string(buf)
	return nil
}
