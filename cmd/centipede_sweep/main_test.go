package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/centipede"
)

func TestSweep(t *testing.T) {
	rows, err := sweep(1, 6)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	for i, r := range rows {
		k := i + 1
		assert.Equal(t, k, r.solution.Rounds)
		assert.Equal(t, 4*k-1, r.nodes)
		if k == 1 {
			assert.Equal(t, centipede.Payoff{1, 1}, r.solution.SPE)
			assert.Equal(t, 1.0, r.solution.PriceOfAnarchy)
		} else {
			assert.Equal(t, centipede.Payoff{1, 0}, r.solution.SPE)
			assert.Equal(t, float64(2*k), r.solution.PriceOfAnarchy)
		}
	}
}

func TestSweep_Invalid(t *testing.T) {
	_, err := sweep(5, 2)
	assert.Error(t, err)

	_, err = sweep(0, 2)
	assert.ErrorIs(t, err, centipede.ErrInvalidArgument)
}

func TestPrintTable(t *testing.T) {
	rows, err := sweep(2, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, rows))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"2", "7", "(1,", "0)", "(2,", "2)", "4"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"3", "11", "(1,", "0)", "(3,", "3)", "6"}, strings.Fields(lines[2]))
}

func TestPrintTable_AlignedWithANSI(t *testing.T) {
	profile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	defer lipgloss.SetColorProfile(profile)

	rows, err := sweep(2, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, rows))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "\x1b[", "header should be styled")

	header := ansi.Strip(lines[0])
	cells := map[string]string{
		"Rounds":  "2",
		"Nodes":   "7",
		"SPE":     "(1, 0)",
		"Optimum": "(2, 2)",
		"PoA":     "4",
	}
	for label, value := range cells {
		col := strings.Index(header, label)
		require.GreaterOrEqual(t, col, 0, label)
		assert.Equal(t, col, strings.Index(lines[1], value), label)
	}

	for _, line := range lines[1:] {
		assert.Equal(t, ansi.StringWidth(lines[0]), ansi.StringWidth(line))
	}
}
