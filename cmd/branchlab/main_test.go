package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchlab/internal/app"
)

func defaultConfig() *app.Config {
	return &app.Config{Epsilon: 1e-12, RootTolerance: 1e-9, LogFormat: "text", LogLevel: "error"}
}

func execute(t *testing.T, cfg *app.Config, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_PrintsSuite(t *testing.T) {
	out, _, err := execute(t, defaultConfig(), "run")
	require.NoError(t, err, "FAIL lines do not change the exit status")
	assert.Contains(t, out, "=== Biquad ===")
	assert.Equal(t, 5, strings.Count(out, "[FAIL]"))
	assert.Equal(t, 20, strings.Count(out, "[PASS]"))
}

func TestRun_Strict(t *testing.T) {
	_, _, err := execute(t, defaultConfig(), "run", "--strict")
	assert.ErrorIs(t, err, errChecksFailed)
}

func TestRun_LogsSummary(t *testing.T) {
	cfg := defaultConfig()
	_, logs, err := execute(t, cfg, "--log-level", "info", "run")
	require.NoError(t, err)
	assert.Contains(t, logs, "suite finished")
	assert.Contains(t, logs, "failed=5")
}

func TestSolve(t *testing.T) {
	out, _, err := execute(t, defaultConfig(), "solve", "1", "-5", "4")
	require.NoError(t, err)
	assert.Equal(t, "kind=roots case=quadratic count=4 roots=[2 -2 1 -1]\n", out)

	out, _, err = execute(t, defaultConfig(), "solve", "0", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "kind=infinite case=identity count=-1 roots=[]\n", out)

	out, _, err = execute(t, defaultConfig(), "solve", "--", "-1", "0", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "count=2")
}

func TestSolve_EpsilonFlag(t *testing.T) {
	out, _, err := execute(t, defaultConfig(), "--epsilon", "1e-3", "solve", "1e-6", "1", "-4")
	require.NoError(t, err)
	assert.Contains(t, out, "case=linear")
}

func TestSolve_BadInput(t *testing.T) {
	_, _, err := execute(t, defaultConfig(), "solve", "1", "x", "4")
	assert.Error(t, err)

	_, _, err = execute(t, defaultConfig(), "solve", "NaN", "0", "4")
	assert.Error(t, err)

	_, _, err = execute(t, defaultConfig(), "solve", "1", "2")
	assert.Error(t, err)

	_, _, err = execute(t, defaultConfig(), "--epsilon", "-1", "solve", "1", "2", "3")
	assert.ErrorIs(t, err, app.ErrInvalidConfig)
}
