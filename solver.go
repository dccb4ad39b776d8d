package centipede

import (
	"expvar"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var nodesEvaluated = expvar.NewInt("nodes_evaluated")

// Evaluate resolves a single decision node whose children are already
// resolved, and returns it.
//
// The acting player compares their own component of the stop and continue
// payoffs. Stop is chosen only if it is strictly better; on a tie the
// player continues. The node takes the full payoff pair of the chosen child.
// Leaves are already resolved, and evaluating one is an ErrStructuralViolation.
func Evaluate(node *Node) (*Node, error) {
	if node == nil {
		return nil, errors.Wrap(ErrStructuralViolation, "cannot evaluate nil node")
	}

	if node.kind != decisionNode {
		return nil, errors.Wrapf(ErrStructuralViolation, "node %v is not a decision node", node.id)
	}

	if !node.actor.IsValid() {
		return nil, errors.Wrapf(ErrUnknownActor, "evaluating node %v with actor %q", node.id, node.actor)
	}

	if node.stop == nil || node.cont == nil {
		return nil, errors.Wrapf(ErrStructuralViolation, "node %v is missing a child", node.id)
	}

	stop, ok := node.stop.Payoff()
	if !ok {
		return nil, errors.Wrapf(ErrStructuralViolation, "stop child %v of node %v is unresolved",
			node.stop.id, node.id)
	}

	cont, ok := node.cont.Payoff()
	if !ok {
		return nil, errors.Wrapf(ErrStructuralViolation, "continue child %v of node %v is unresolved",
			node.cont.id, node.id)
	}

	player := node.actor.Player
	if stop.Of(player) > cont.Of(player) {
		node.payoff = stop
		node.choice = Stop
	} else {
		node.payoff = cont
		node.choice = Continue
	}

	node.resolved = true
	nodesEvaluated.Add(1)
	glog.V(2).Infof("%v at %v: stop %v, continue %v => %v",
		node.actor, node.id, stop, cont, node.choice)
	return node, nil
}

// Resolve performs backward induction from start (normally the deepest
// decision node returned by Build) up through its ancestors to the root.
// Each node on the way is evaluated exactly once. It returns the root,
// whose payoff is the subgame-perfect equilibrium of the whole game.
// Starting from a leaf, which has no actor, returns ErrStructuralViolation
// rather than ErrUnknownActor.
func Resolve(start *Node) (*Node, error) {
	if start == nil {
		return nil, errors.Wrap(ErrStructuralViolation, "cannot resolve from nil node")
	}

	node := start
	nEvaluated := 0
	for {
		if _, err := Evaluate(node); err != nil {
			return nil, errors.Wrapf(err, "backward induction stopped after %d nodes", nEvaluated)
		}
		nEvaluated++

		if node.parent == nil {
			break
		}
		node = node.parent
	}

	glog.V(1).Infof("Resolved %d decision nodes, SPE payoff %v", nEvaluated, node.payoff)
	return node, nil
}

// PriceOfAnarchy is the ratio of the social optimum, the total payoff of
// the terminal leaf below deepest, to the total payoff of the resolved
// equilibrium root.
func PriceOfAnarchy(deepest, spe *Node) (float64, error) {
	if deepest == nil || deepest.cont == nil {
		return 0, errors.Wrap(ErrStructuralViolation, "deepest decision node has no continue child")
	}

	optimum, ok := deepest.cont.Payoff()
	if !ok {
		return 0, errors.Wrapf(ErrStructuralViolation, "social optimum %v is unresolved", deepest.cont.id)
	}

	if spe == nil {
		return 0, errors.Wrap(ErrStructuralViolation, "equilibrium node is nil")
	}

	equilibrium, ok := spe.Payoff()
	if !ok {
		return 0, errors.Wrapf(ErrStructuralViolation, "equilibrium node %v is unresolved", spe.id)
	}

	if equilibrium.Sum() == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "equilibrium payoff %v sums to zero", equilibrium)
	}

	return float64(optimum.Sum()) / float64(equilibrium.Sum()), nil
}

// EquilibriumPath follows the equilibrium choices from a resolved node down
// to the leaf where play ends. The returned path starts at node and ends at
// that leaf, whose payoff equals node's payoff.
func EquilibriumPath(node *Node) ([]*Node, error) {
	if node == nil {
		return nil, errors.Wrap(ErrStructuralViolation, "cannot follow path from nil node")
	}

	var path []*Node
	for {
		path = append(path, node)
		if node.IsLeaf() {
			return path, nil
		}

		switch node.choice {
		case Stop:
			node = node.stop
		case Continue:
			node = node.cont
		default:
			return nil, errors.Wrapf(ErrStructuralViolation, "node %v is unresolved", node.id)
		}

		if node == nil {
			return nil, errors.Wrapf(ErrStructuralViolation, "chosen child of %v is missing",
				path[len(path)-1].id)
		}
	}
}
