// Solve a centipede game by backward induction, report the subgame-perfect
// equilibrium and the price of anarchy, and optionally render the tree.
package main

import (
	"bufio"
	"expvar"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang/glog"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/timpalpant/centipede"
	"github.com/timpalpant/centipede/internal/config"
	"github.com/timpalpant/centipede/render"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	configFile := flag.String("config", "", "Optional config file (yaml, json or toml)")
	rounds := flag.Int("rounds", 0, "Number of cycles to play. Prompts if unset")
	dotOutput := flag.String("dot_output", "", "Write the game tree as Graphviz DOT to this file")
	format := flag.String("format", "", "Also render the DOT file with Graphviz (png, svg or pdf)")
	debugAddr := flag.String("debug_addr", "", "Serve expvar and pprof on this address, e.g. localhost:4123")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		glog.Fatal(err)
	}

	// Flags set on the command line take precedence over the config.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.Rounds = *rounds
		case "dot_output":
			cfg.DotOutput = *dotOutput
		case "format":
			cfg.Format = *format
		case "debug_addr":
			cfg.DebugAddr = *debugAddr
		}
	})
	if err := cfg.Validate(); err != nil {
		glog.Fatal(err)
	}

	if cfg.DebugAddr != "" {
		go http.ListenAndServe(cfg.DebugAddr, nil)
	}

	if cfg.Rounds == 0 {
		cfg.Rounds, err = promptRounds(os.Stdin)
		if err != nil {
			glog.Exit(err)
		}
	}

	game, err := centipede.NewGame(cfg.Rounds)
	if err != nil {
		glog.Exit(err)
	}

	glog.Infof("Solving %d-round centipede game", cfg.Rounds)
	solution, err := game.Solve()
	if err != nil {
		glog.Fatal(err)
	}

	printSolution(os.Stdout, solution)
	glog.Infof("Built %v nodes, evaluated %v", expvar.Get("nodes_built"), expvar.Get("nodes_evaluated"))

	if cfg.DotOutput == "" {
		return
	}

	glog.Infof("Saving game tree to: %v", cfg.DotOutput)
	if err := render.ExportDOT(cfg.DotOutput, solution.Root, solution.SPE, cfg.RenderOptions()); err != nil {
		glog.Fatal(err)
	}

	if cfg.Format != "" {
		output, err := render.Graphviz(cfg.DotOutput, cfg.Format)
		if err != nil {
			glog.Fatal(err)
		}
		glog.Infof("Rendered game tree to: %v", output)
	}
}

func printSolution(w io.Writer, solution *centipede.Solution) {
	fmt.Fprintln(w, labelStyle.Render("The SPE payoff will be"), valueStyle.Render(solution.SPE.String()))
	fmt.Fprintln(w, labelStyle.Render("The PoA is"), valueStyle.Render(strconv.FormatFloat(solution.PriceOfAnarchy, 'g', -1, 64)))
}

// promptRounds asks for the number of cycles. On a terminal it shows an
// interactive form, otherwise it reads one line from r.
func promptRounds(r *os.File) (int, error) {
	if !isatty.IsTerminal(r.Fd()) && !isatty.IsCygwinTerminal(r.Fd()) {
		return readRounds(r)
	}

	var input string
	field := huh.NewInput().
		Title("Number of cycles").
		Value(&input).
		Validate(func(s string) error {
			_, err := parseRounds(s)
			return err
		})
	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return 0, errors.Wrap(err, "prompting for number of cycles")
	}

	return parseRounds(input)
}

func readRounds(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, errors.Wrap(err, "reading number of cycles")
		}
		return 0, errors.New("no number of cycles given")
	}

	return parseRounds(scanner.Text())
}

func parseRounds(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Errorf("number of cycles must be an integer, got %q", s)
	}

	if n < 1 {
		return 0, errors.Wrapf(centipede.ErrInvalidArgument, "number of cycles must be positive, got %d", n)
	}

	return n, nil
}
