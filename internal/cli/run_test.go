package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mipdive/dive"
	"github.com/katalvlaran/mipdive/gen"
)

// execute runs the root command with args and returns its printed output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(&out, io.Discard, LogDebug)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRunCommand_Modes(t *testing.T) {
	for _, mode := range []string{"fractional", "guided", "portfolio"} {
		t.Run(mode, func(t *testing.T) {
			out, err := execute(t, "run", "--kind", "knapsack", "--size", "12", "--seed", "3", "--rule", mode)
			require.NoError(t, err)
			require.Contains(t, out, "knapsack")
			require.Contains(t, out, "objective")
			require.Contains(t, out, mode)
		})
	}
}

func TestRunCommand_Errors(t *testing.T) {
	_, err := execute(t, "run", "--kind", "tsp")
	require.ErrorIs(t, err, gen.ErrUnknownKind)

	_, err = execute(t, "run", "--rule", "random")
	require.ErrorContains(t, err, "unknown rule")

	_, err = execute(t, "run", "--size", "0")
	require.ErrorIs(t, err, gen.ErrBadSize)

	_, err = execute(t, "run", "extra")
	require.Error(t, err)
}

func TestRun_ConfigSuppliesRule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.toml")
	require.NoError(t, os.WriteFile(path, []byte("rule = \"guided\"\nmax_iterations = 20\n"), 0o600))

	c := New(io.Discard, io.Discard, LogInfo)
	rep, err := c.run(context.Background(), runOptions{kind: "gap", size: 8, seed: 2, config: path})
	require.NoError(t, err)
	require.Equal(t, modeGuided, rep.mode)
	require.Len(t, rep.stages, 2)
	require.Equal(t, 16, rep.cols)
	if rep.solution != nil {
		require.True(t, rep.best.Improved)
		require.Len(t, rep.solution, rep.cols)
	}
}

func TestRun_PortfolioStages(t *testing.T) {
	c := New(io.Discard, io.Discard, LogInfo)
	rep, err := c.run(context.Background(), runOptions{kind: "setcover", size: 10, seed: 5, rule: "portfolio"})
	require.NoError(t, err)
	require.Len(t, rep.stages, 3)
	require.NotNil(t, rep.solution)
	for _, s := range rep.stages {
		require.Equal(t, dive.OutcomeImproved, s.result.Outcome, s.label)
	}
}

func TestKindsCommand(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	for _, k := range gen.Kinds() {
		require.Contains(t, out, string(k))
	}
}
