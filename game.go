package centipede

import (
	"fmt"

	"github.com/golang/glog"
)

// Game is a built centipede game of a fixed number of rounds.
type Game struct {
	rounds  int
	root    *Node
	deepest *Node
}

// Solution summarizes the subgame-perfect equilibrium of a Game.
type Solution struct {
	Rounds int
	// SPE is the payoff pair reached under the subgame-perfect equilibrium.
	SPE Payoff
	// SocialOptimum is the payoff of mutual continuation to the end.
	SocialOptimum  Payoff
	PriceOfAnarchy float64
	// Root is the resolved root of the game tree.
	Root *Node
	// Path is the sequence of nodes actually played, ending at a leaf.
	Path []*Node
}

// NewGame builds the game tree for the given number of rounds.
func NewGame(rounds int) (*Game, error) {
	root, deepest, err := Build(rounds)
	if err != nil {
		return nil, err
	}

	return &Game{
		rounds:  rounds,
		root:    root,
		deepest: deepest,
	}, nil
}

func (g *Game) Rounds() int {
	return g.rounds
}

// Root returns the root decision node (player A, round 1).
func (g *Game) Root() *Node {
	return g.root
}

// Deepest returns the last decision node, whose continue child is the
// social optimum.
func (g *Game) Deepest() *Node {
	return g.deepest
}

// Solve runs backward induction and computes the price of anarchy.
// Solving again recomputes the same values.
func (g *Game) Solve() (*Solution, error) {
	root, err := Resolve(g.deepest)
	if err != nil {
		return nil, err
	}

	poa, err := PriceOfAnarchy(g.deepest, root)
	if err != nil {
		return nil, err
	}

	path, err := EquilibriumPath(root)
	if err != nil {
		return nil, err
	}

	spe, _ := root.Payoff()
	optimum, _ := g.deepest.cont.Payoff()
	glog.V(1).Infof("Solved %d-round game: SPE %v, optimum %v, PoA %v",
		g.rounds, spe, optimum, poa)
	return &Solution{
		Rounds:         g.rounds,
		SPE:            spe,
		SocialOptimum:  optimum,
		PriceOfAnarchy: poa,
		Root:           root,
		Path:           path,
	}, nil
}

// String implements fmt.Stringer.
func (s *Solution) String() string {
	return fmt.Sprintf("%d rounds: SPE %v, optimum %v, PoA %v (play ends at %v)",
		s.Rounds, s.SPE, s.SocialOptimum, s.PriceOfAnarchy, s.Path[len(s.Path)-1].ID())
}
