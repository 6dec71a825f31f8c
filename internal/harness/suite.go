package harness

import (
	"fmt"
	"path/filepath"
	"sort"
)

// LoadSuite loads every *.yaml scenario in dir, sorted by file name.
// Scenario names must be unique within a suite since they name golden files.
func LoadSuite(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	sort.Strings(paths)

	seen := make(map[string]string, len(paths))
	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if prev, dup := seen[scenario.Name]; dup {
			return nil, fmt.Errorf("%s: scenario name %q already used by %s", path, scenario.Name, prev)
		}
		seen[scenario.Name] = path
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}
