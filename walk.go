package centipede

import (
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"
)

// Walk visits root and every node below it in pre-order: a decision node,
// then its stop leaf, then its continue subtree. It stops at the first error
// returned by visit. Walk is iterative, so very deep trees are fine.
func Walk(root *Node, visit func(node *Node) error) error {
	stack := []*Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}

		if err := visit(node); err != nil {
			return err
		}

		// Pushed in reverse so the stop leaf is visited first.
		stack = append(stack, node.cont, node.stop)
	}

	return nil
}

func CountNodes(root *Node) int {
	if root == nil {
		return 0
	}

	total := 0
	tree.Visit(GameNode{root}, func(node cfr.GameTreeNode) { total++ })
	return total
}

func CountLeaves(root *Node) int {
	if root == nil {
		return 0
	}

	total := 0
	tree.Visit(GameNode{root}, func(node cfr.GameTreeNode) {
		if node.Type() == cfr.TerminalNodeType {
			total++
		}
	})

	return total
}

func CountDecisions(root *Node) int {
	return CountNodes(root) - CountLeaves(root)
}
