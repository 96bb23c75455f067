package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gradopt "+version+"\n", out)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "gd, momentum, nesterov, adagrad, rmsprop, adam")
	assert.Contains(t, out, "beale, rosenbrock, sphere")
}

func TestRun_GradientDescentScalarTrajectory(t *testing.T) {
	out, err := execute(t, "run", "--optimizer", "gd", "--stepsize", "0.1",
		"--x0", "1", "--steps", "2", "--every", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "optimizer=gd objective=sphere stepsize=0.1")
	assert.Contains(t, lines[2], "x=[0.8]")
	assert.Contains(t, lines[3], "x=[0.6")
}

func TestRun_ZeroMomentumIsGradientDescent(t *testing.T) {
	args := []string{"--stepsize", "0.1", "--x0", "1,-2", "--steps", "5", "--every", "1"}

	gd, err := execute(t, append([]string{"run", "--optimizer", "gd"}, args...)...)
	require.NoError(t, err)
	mom, err := execute(t, append([]string{"run", "--optimizer", "momentum", "--momentum", "0"}, args...)...)
	require.NoError(t, err)

	// Same objective values at every printed step.
	assert.Len(t, objectiveColumn(gd), 6)
	assert.Equal(t, objectiveColumn(gd), objectiveColumn(mom))
}

func objectiveColumn(out string) []string {
	var values []string
	for _, line := range strings.Split(out, "\n") {
		for _, field := range strings.Fields(line) {
			if strings.HasPrefix(field, "f=") {
				values = append(values, field)
			}
		}
	}
	return values
}

func TestRun_AllOptimizers(t *testing.T) {
	for _, name := range kindNames() {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "run", "--optimizer", name, "--objective", "rosenbrock",
				"--stepsize", "0.0001", "--steps", "20", "--numeric")
			assert.NoError(t, err)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "--optimizer", "lbfgs")
	assert.Error(t, err)

	_, err = execute(t, "run", "--objective", "nope")
	assert.Error(t, err)

	_, err = execute(t, "run", "--objective", "beale", "--dim", "3", "--x0", "1,1,1")
	assert.Error(t, err)

	_, err = execute(t, "run", "--optimizer", "momentum", "--momentum", "1.5")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "--objective", "sphere", "--stepsize", "0.1",
		"--steps", "50", "--workers", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "OPTIMIZER"))
	for i, name := range kindNames() {
		assert.True(t, strings.HasPrefix(lines[i+1], name+" "), "line %q", lines[i+1])
	}
}

func TestCompare_UnsupportedDim(t *testing.T) {
	_, err := execute(t, "compare", "--objective", "beale", "--dim", "4")
	assert.Error(t, err)
}
