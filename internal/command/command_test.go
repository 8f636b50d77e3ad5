package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bornholm/effortcalc/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestEstimateCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "estimate",
		"--complexity", "high",
		"--risk", "medium",
		"--base", "8",
		"--focus", "5",
		"--start", "2024-01-01",
		"--format", "json",
	)
	require.NoError(t, err)

	var output format.Output
	require.NoError(t, json.Unmarshal([]byte(out), &output))

	assert.Equal(t, 3.04, output.Result.WorkingDaysNeeded)
	require.NotNil(t, output.Result.EndDate)
	assert.Equal(t, "2024-01-05", output.Result.EndDate.String())
}

func TestEstimateCommandRejectsUnknownOption(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "estimate", "--tech-novelty", "bleeding-edge")
	assert.Error(t, err)
}

func TestFactorsCommand(t *testing.T) {
	out, err := execute(t, "factors")
	require.NoError(t, err)

	assert.Contains(t, out, "Factors:")
	assert.Contains(t, out, "Risk buffers:")
}

func TestNewAndViewCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t, "new", "Checkout Flow", "--developer-level", "senior", "--role", "developer")
	require.NoError(t, err)
	assert.Contains(t, out, "checkout-flow.estimate.yml")
	assert.FileExists(t, filepath.Join(dir, "checkout-flow.estimate.yml"))

	_, err = execute(t, "new", "Checkout Flow")
	assert.Error(t, err)

	out, err = execute(t, "view", "checkout-flow.estimate.yml", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Checkout Flow")
	assert.Contains(t, out, "Senior")

	out, err = execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "checkout-flow.estimate.yml")
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "config", "init", "--persona", "Developer")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".effortcalc.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "persona: Developer")

	_, err = execute(t, "config", "init")
	assert.Error(t, err)

	t.Setenv("EFFORTCALC_POLICY", "degrade")

	out, err := execute(t, "config", "view", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"nonPositivePolicy": "degrade"`)
	assert.Contains(t, out, `"persona": "Developer"`)
}
