package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/rsqlwhere/internal/where"
)

// Snapshot captures the observable outcome of a scenario run.
type Snapshot struct {
	ScenarioName string `json:"scenario_name"`
	Query        string `json:"query"`
	Output       any    `json:"output,omitempty"`
	ErrorCode    string `json:"error_code,omitempty"`
	RecordID     string `json:"record_id"`
}

// toCanonicalMap converts a Snapshot to a map for canonical JSON
// serialization.
func (s *Snapshot) toCanonicalMap() map[string]any {
	result := map[string]any{
		"scenario_name": s.ScenarioName,
		"query":         s.Query,
		"record_id":     s.RecordID,
	}
	if s.Output != nil {
		result["output"] = s.Output
	}
	if s.ErrorCode != "" {
		result["error_code"] = s.ErrorCode
	}
	return result
}

// SnapshotJSON renders the snapshot of a result as canonical JSON.
func SnapshotJSON(scenarioName, query string, result *Result) ([]byte, error) {
	snapshot := Snapshot{
		ScenarioName: scenarioName,
		Query:        query,
		Output:       result.filter,
		ErrorCode:    result.ErrorCode,
		RecordID:     result.Record.ID,
	}
	return where.MarshalCanonical(snapshot.toCanonicalMap())
}

// RunWithGolden executes a scenario and compares its snapshot against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario.Name, scenario.Query, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName, query string, result *Result) error {
	t.Helper()

	snapshotJSON, err := SnapshotJSON(scenarioName, query, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, snapshotJSON)

	return nil
}
