package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphcost/costlang/internal/eval"
)

func writeVars(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEvalCost(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		filepath.Join("testdata", "model.cost"),
		"--statement", "0",
		"--vars", writeVars(t, "skip: 5000\n"),
	})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "50100\n", buf.String())
}

func TestEvalCostJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		filepath.Join("testdata", "model.cost"),
		"--vars", writeVars(t, "skip: 5000\n"),
	})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["matched"])
	assert.Equal(t, "50100", data["cost"])
}

func TestEvalGuardFalse(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		filepath.Join("testdata", "model.cost"),
		"--vars", writeVars(t, "skip: 10\n"),
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "guard is false")
}

func TestEvalUnknownVariable(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{filepath.Join("testdata", "model.cost")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "UNKNOWN_VARIABLE")
}

func TestEvalStatementWithoutGuard(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		filepath.Join("testdata", "model.cost"),
		"--statement", "1",
	})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "5\n", buf.String())
}

func TestEvalStatementOutOfRange(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		filepath.Join("testdata", "model.cost"),
		"--statement", "5",
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEvalArbitraryPrecisionVars(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewEvalCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		filepath.Join("testdata", "model.cost"),
		"--vars", writeVars(t, "skip: 123456789012345678901234567890\n"),
	})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456789012345679000\n", buf.String())
}

func TestLoadVarsRejectsUnsupportedKinds(t *testing.T) {
	_, err := LoadVars(writeVars(t, "name: bob\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value")

	_, err = LoadVars(writeVars(t, "rate: 1.5\n"))
	require.Error(t, err)

	_, err = LoadVars(writeVars(t, "nested:\n  a: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scalar")
}

func TestLoadVars(t *testing.T) {
	vars, err := LoadVars(writeVars(t, "skip: 5000\npremium: true\n"))
	require.NoError(t, err)
	require.Len(t, vars, 2)
}

func TestLoadVarsBeyondUint64(t *testing.T) {
	// yaml.v3 hands integers past uint64 over as plain strings; they
	// must still load as integers.
	vars, err := LoadVars(writeVars(t, "skip: 123456789012345678901234567890\nneg: -123456789012345678901234567890\n"))
	require.NoError(t, err)
	require.Len(t, vars, 2)

	n, ok := vars["skip"].(eval.Int)
	require.True(t, ok)
	assert.Equal(t, "123456789012345678901234567890", n.N.String())
}

func TestLoadVarsRejectsQuotedIntegers(t *testing.T) {
	_, err := LoadVars(writeVars(t, "skip: \"123\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value")
}
