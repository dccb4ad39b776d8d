// Solve centipede games over a range of round counts and print how the
// equilibrium and the price of anarchy change with the length of the game.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/centipede"
)

var (
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	headerStyle = cellStyle.Bold(true)
)

type row struct {
	solution *centipede.Solution
	nodes    int
}

func main() {
	minRounds := flag.Int("min_rounds", 1, "Smallest number of cycles to solve")
	maxRounds := flag.Int("max_rounds", 20, "Largest number of cycles to solve")
	flag.Parse()

	start := time.Now()
	rows, err := sweep(*minRounds, *maxRounds)
	if err != nil {
		glog.Exit(err)
	}

	if err := printTable(os.Stdout, rows); err != nil {
		glog.Fatal(err)
	}
	glog.Infof("Solved %d games (took %v)", len(rows), time.Since(start))
}

func sweep(minRounds, maxRounds int) ([]row, error) {
	if maxRounds < minRounds {
		return nil, errors.Errorf("max_rounds (%d) must be at least min_rounds (%d)", maxRounds, minRounds)
	}

	rows := make([]row, 0, maxRounds-minRounds+1)
	for k := minRounds; k <= maxRounds; k++ {
		game, err := centipede.NewGame(k)
		if err != nil {
			return nil, err
		}

		solution, err := game.Solve()
		if err != nil {
			return nil, errors.Wrapf(err, "solving %d-round game", k)
		}

		glog.V(1).Info(solution)
		rows = append(rows, row{solution: solution, nodes: centipede.CountNodes(game.Root())})
	}

	return rows, nil
}

func printTable(w io.Writer, rows []row) error {
	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers("Rounds", "Nodes", "SPE", "Optimum", "PoA").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		s := r.solution
		t.Row(strconv.Itoa(s.Rounds), strconv.Itoa(r.nodes), s.SPE.String(),
			s.SocialOptimum.String(), strconv.FormatFloat(s.PriceOfAnarchy, 'g', -1, 64))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
