package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCommandMissingArgs(t *testing.T) {
	_, _, err := execute(t, "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentScenariosDir(t *testing.T) {
	_, _, err := execute(t, "test", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
}

func TestTestCommandEmptyScenariosDir(t *testing.T) {
	out, _, err := execute(t, "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestTestCommandHarnessScenarios(t *testing.T) {
	out, _, err := execute(t, "test", "../harness/testdata/scenarios")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ equals")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandFilter(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "test", "../harness/testdata/scenarios", "--filter", "schema_*")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, resp.Data.Total)
	assert.Equal(t, 3, resp.Data.Passed)
}

func TestTestCommandFailingScenario(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scenarios")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(`
name: wrong
description: "expects the wrong predicate"
query: "age>18"
expect:
  age: { lt: 18 }
`), 0644))

	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong")
	assert.Contains(t, out, "output mismatch")
}

func TestTestCommandUpdateWritesGolden(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "scenarios")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eq.yaml"), []byte(`
name: eq
description: "equality"
query: "name==John"
expect:
  name: { equals: John }
`), 0644))

	_, _, err := execute(t, "test", dir, "--update")
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join(root, "golden", "eq.golden"))
	require.NoError(t, err)
	assert.Equal(t,
		`{"output":{"name":{"equals":"John"}},"query":"name==John","record_id":"eq-0001","scenario_name":"eq"}`,
		string(golden))

	// A stale golden file fails the run.
	require.NoError(t, os.WriteFile(filepath.Join(root, "golden", "eq.golden"), []byte("{}"), 0644))
	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Contains(t, out, "snapshot does not match golden file")
}
