package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// moduleRoot walks up from the test's working directory to the directory
// holding go.mod, where the golden files live.
func moduleRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("go.mod not found above the test directory")
		}
		dir = parent
	}
}

func TestRunDefaultsMatchGolden(t *testing.T) {
	golden := filepath.Join(moduleRoot(t), "testdata", "golden", "employee.out")
	want, err := os.ReadFile(golden)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(&out, 7, "Alice", 50000.5); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if out.String() != string(want) {
		t.Errorf("run() output = %q, want golden %q", out.String(), want)
	}
}
