package centipede

import (
	"expvar"
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	nodesBuilt         = expvar.NewInt("nodes_built")
	decisionNodesBuilt = expvar.NewInt("nodes_built/decision")
	leafNodesBuilt     = expvar.NewInt("nodes_built/leaf")
)

// rootID is the identifier of the root node. Descendants append "R" for
// the continue branch and "D" for the stop branch.
const rootID = "S"

// nodeKind distinguishes decision nodes from payoff leaves.
type nodeKind uint8

const (
	_ nodeKind = iota
	leafNode
	decisionNode
)

// Action is a choice available at a decision node.
type Action uint8

const (
	NoAction Action = iota
	Stop
	Continue
)

var actionStr = [...]string{
	"None",
	"Stop",
	"Continue",
}

func (a Action) String() string {
	return actionStr[a]
}

// Payoff is the pair of payoffs to player A (index 0) and player B (index 1).
type Payoff [2]int

// Sum is the total payoff to both players.
func (p Payoff) Sum() int {
	return p[0] + p[1]
}

// Of returns the payoff to the given player.
func (p Payoff) Of(player Player) int {
	if !player.IsValid() {
		panic(fmt.Sprintf("no payoff for player %v", player))
	}

	return p[player-PlayerA]
}

// AtMost reports whether every component of p is <= the same component of q.
func (p Payoff) AtMost(q Payoff) bool {
	return p[0] <= q[0] && p[1] <= q[1]
}

// String implements fmt.Stringer.
func (p Payoff) String() string {
	return fmt.Sprintf("(%d, %d)", p[0], p[1])
}

// Node is a node in the centipede game tree. It is either a leaf with a
// fixed payoff, or a decision node where Actor chooses between stopping
// (always a leaf) and continuing.
//
// A decision node's payoff is unresolved until the solver evaluates it.
type Node struct {
	id   string
	kind nodeKind

	actor    Actor
	payoff   Payoff
	resolved bool
	// choice is the action selected when the node was last evaluated.
	choice Action

	// parent is nil only at the root.
	parent *Node
	stop   *Node
	cont   *Node
}

// NewLeaf returns a terminal node with the given payoff.
func NewLeaf(id string, payoff Payoff) *Node {
	nodesBuilt.Add(1)
	leafNodesBuilt.Add(1)
	return &Node{
		id:       id,
		kind:     leafNode,
		payoff:   payoff,
		resolved: true,
	}
}

// NewDecision returns an unresolved decision node for actor with the given
// children, and sets the children's parent to the new node. The arguments
// are not validated; the solver reports malformed nodes when it reaches them.
func NewDecision(id string, actor Actor, stop, cont *Node) *Node {
	nodesBuilt.Add(1)
	decisionNodesBuilt.Add(1)
	node := &Node{
		id:    id,
		kind:  decisionNode,
		actor: actor,
		stop:  stop,
		cont:  cont,
	}

	if stop != nil {
		stop.parent = node
	}
	if cont != nil {
		cont.parent = node
	}

	return node
}

// ID is the node's path label from the root, e.g. "SRRD".
func (n *Node) ID() string {
	return n.id
}

// Actor returns the player and round deciding at this node.
// It is the zero Actor for leaves.
func (n *Node) Actor() Actor {
	return n.actor
}

// Payoff returns the node's payoff pair, and false if the node is a
// decision node that has not been resolved yet.
func (n *Node) Payoff() (Payoff, bool) {
	return n.payoff, n.resolved
}

// IsLeaf reports whether the node is terminal.
func (n *Node) IsLeaf() bool {
	return n.kind == leafNode
}

// IsResolved reports whether the node's payoff is known.
func (n *Node) IsResolved() bool {
	return n.resolved
}

// Choice returns the action taken at this decision node in the
// subgame-perfect equilibrium, or NoAction if the node is a leaf or has
// not been evaluated.
func (n *Node) Choice() Action {
	return n.choice
}

// Parent returns the node one level up, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Stop returns the leaf reached by stopping the game at this node.
func (n *Node) Stop() *Node {
	return n.stop
}

// Continue returns the child reached by continuing the game at this node.
func (n *Node) Continue() *Node {
	return n.cont
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n.kind == leafNode {
		return fmt.Sprintf("%s: leaf %v", n.id, n.payoff)
	}

	if !n.resolved {
		return fmt.Sprintf("%s: %v to move (unresolved)", n.id, n.actor)
	}

	return fmt.Sprintf("%s: %v to move, chooses %v for %v", n.id, n.actor, n.choice, n.payoff)
}

// Build constructs the game tree for the given number of rounds.
//
// Each round except the last adds a decision node for player A and one for
// player B, each with a stop leaf. In the last round player A's continue
// child is the terminal leaf (rounds, rounds), the social optimum.
//
// Build returns the root and the deepest decision node, whose continue child
// is that terminal leaf. Backward induction starts from the deepest node.
func Build(rounds int) (root, deepest *Node, err error) {
	if rounds < 1 {
		return nil, nil, errors.Wrapf(ErrInvalidArgument,
			"number of rounds must be positive, got %d", rounds)
	}

	root = NewDecision(rootID, Actor{Player: PlayerA, Round: 1}, nil, nil)
	pointer := root
	for round := 1; round <= rounds; round++ {
		attachStop(pointer)

		if round == rounds {
			optimum := Payoff{rounds, rounds}
			attachContinue(pointer, NewLeaf(pointer.id+"R", optimum))
			break
		}

		// The opponent gets a chance to stop in the same round...
		next := Actor{Player: pointer.actor.Player.Opponent(), Round: round}
		attachContinue(pointer, NewDecision(pointer.id+"R", next, nil, nil))
		pointer = pointer.cont
		attachStop(pointer)

		// ...then play returns to the first mover in the next round.
		next = Actor{Player: pointer.actor.Player.Opponent(), Round: round + 1}
		attachContinue(pointer, NewDecision(pointer.id+"R", next, nil, nil))
		pointer = pointer.cont
	}

	glog.V(1).Infof("Built game tree with %d rounds, deepest decision node %v",
		rounds, pointer.id)
	return root, pointer, nil
}

func attachStop(node *Node) {
	leaf := NewLeaf(node.id+"D", stopPayoff(node.actor))
	leaf.parent = node
	node.stop = leaf
}

func attachContinue(node, child *Node) {
	child.parent = node
	node.cont = child
}

// stopPayoff is the payoff when actor stops the game. Stopping always gives
// the stopper slightly more than the opponent.
func stopPayoff(actor Actor) Payoff {
	round := actor.Round
	other := max(round-1, 0)
	switch actor.Player {
	case PlayerA:
		stopper := round + 1
		if round == 1 {
			stopper = round
		}
		return Payoff{stopper, other}
	case PlayerB:
		return Payoff{other, round + 1}
	default:
		panic(fmt.Errorf("cannot compute stop payoff for actor %v", actor))
	}
}
