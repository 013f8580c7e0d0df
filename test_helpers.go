package fixturego

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupTestCorpus writes a miniature corpus tree into dir and returns the
// corpus registering it. The layout mirrors the shipped corpus: sources
// under testdata/corpus/<name>/main.go, golden output under
// testdata/golden/<name>.out.
func setupTestCorpus(t *testing.T, dir string) *Corpus {
	t.Helper()

	files := map[string]string{
		"testdata/corpus/greeter/main.go": `package main

import "fmt"

// Greeter carries a fixed greeting target.
type Greeter struct {
	Target string
}

func newGreeter(target string) *Greeter {
	return &Greeter{Target: target}
}

func main() {
	g := newGreeter("corpus")
	fmt.Printf("Hello, %s!\n", g.Target)
}
`,
		"testdata/golden/greeter.out": "Hello, corpus!\n",
	}

	writeTestFiles(t, dir, files)

	return NewCorpus(Fixture{
		Name: "greeter",
		Path: "testdata/corpus/greeter/main.go",
		Desc: "greeting sample used by verifier tests",
		Symbols: []Symbol{
			{Name: "Greeter", Kind: SymbolKindType, Exported: true},
			{Name: "newGreeter", Kind: SymbolKindFunc, Exported: false},
			{Name: "main", Kind: SymbolKindFunc, Exported: false},
		},
		Golden: "testdata/golden/greeter.out",
	})
}

// writeTestFiles writes the given path/content pairs under dir, creating
// parent directories as needed
func writeTestFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for path, content := range files {
		fullPath := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0750); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0600); err != nil {
			t.Fatalf("Failed to write file %s: %v", path, err)
		}
	}
}

// setupTestModule creates a go.mod so that fixtures in dir can be loaded
// through go/packages during type-check tests
func setupTestModule(t *testing.T, dir string) {
	t.Helper()

	content := `module testcorpus

go 1.21
`
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write go.mod: %v", err)
	}
}

// requireGoTool skips the test when no Go toolchain is available, which the
// type-check path needs
func requireGoTool(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not found on PATH")
	}
}
