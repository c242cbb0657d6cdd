// Package testutil provides shared test infrastructure for the paging simulator.
// It holds the golden fixture types and helpers used by sim/policy and
// sim/experiment tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one hand-traced reference string with the exact fault
// count each policy must produce on it.
type GoldenTestCase struct {
	Name       string         `json:"name"`
	References []int          `json:"references"`
	Frames     int            `json:"frames"`
	Lookahead  int            `json:"lookahead"`
	Faults     map[string]int `json:"faults"` // policy name → expected faults
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}

	return &dataset
}

// Case returns the named golden case, failing the test if it is missing.
func (d *GoldenDataset) Case(t *testing.T, name string) GoldenTestCase {
	t.Helper()
	for _, tc := range d.Tests {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("golden case %q not found", name)
	return GoldenTestCase{}
}
