// Package render draws centipede game trees as Graphviz diagrams.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/timpalpant/centipede"
)

// Options configures DOT output.
type Options struct {
	// Name of the digraph. Default: "G"
	Name string
	// HighlightColor is the fill color of nodes whose payoff equals the
	// equilibrium payoff. Default: "red"
	HighlightColor string
	// Direction is the graph rankdir (TB, LR, BT, RL). Default: "TB"
	Direction string
}

func DefaultOptions() Options {
	return Options{
		Name:           "G",
		HighlightColor: "red",
		Direction:      "TB",
	}
}

// WriteDOT writes the tree below root as a Graphviz digraph. Decision nodes
// are labelled with their actor and leaves with their payoff. Every resolved
// node whose payoff equals spe is filled with the highlight color.
// Edges are labelled "D" for stop and "R" for continue.
func WriteDOT(w io.Writer, root *centipede.Node, spe centipede.Payoff, opts Options) error {
	if root == nil {
		return errors.New("cannot render nil tree")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", opts.Name)
	if opts.Direction != "" {
		fmt.Fprintf(&buf, "    rankdir=%s;\n", opts.Direction)
	}

	var edges bytes.Buffer
	nHighlighted := 0
	tree.Visit(centipede.GameNode{Node: root}, func(gn cfr.GameTreeNode) {
		node := gn.(centipede.GameNode).Node
		var attrs string
		if node.IsLeaf() {
			payoff, _ := node.Payoff()
			attrs = fmt.Sprintf("label=%q, shape=box", payoff.String())
		} else {
			attrs = fmt.Sprintf("label=%q", node.Actor().String())
		}

		if payoff, ok := node.Payoff(); ok && payoff == spe {
			attrs += fmt.Sprintf(", style=filled, fillcolor=%q", opts.HighlightColor)
			nHighlighted++
		}
		fmt.Fprintf(&buf, "    %q [%s];\n", node.ID(), attrs)

		if stop := node.Stop(); stop != nil {
			fmt.Fprintf(&edges, "    %q -> %q [label=\"D\"];\n", node.ID(), stop.ID())
		}
		if cont := node.Continue(); cont != nil {
			fmt.Fprintf(&edges, "    %q -> %q [label=\"R\"];\n", node.ID(), cont.ID())
		}
	})

	buf.WriteString("\n")
	buf.Write(edges.Bytes())
	buf.WriteString("}\n")

	glog.V(1).Infof("Rendered tree rooted at %v with %d highlighted nodes", root.ID(), nHighlighted)
	_, err := w.Write(buf.Bytes())
	return err
}

// ExportDOT writes the DOT rendering of the tree to filename.
func ExportDOT(filename string, root *centipede.Node, spe centipede.Payoff, opts Options) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating DOT file")
	}

	if err := WriteDOT(f, root, spe, opts); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %v", filename)
	}

	return f.Close()
}
