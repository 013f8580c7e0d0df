package fixturego

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCorpus(t *testing.T) {
	corpus := DefaultCorpus()
	require.Equal(t, 2, corpus.Len())

	fixtures := corpus.Fixtures()
	assert.Equal(t, "employee", fixtures[0].Name)
	assert.Equal(t, "factorial", fixtures[1].Name)

	// Every registered source and golden file must ship with the module
	for _, fx := range fixtures {
		assert.FileExists(t, filepath.FromSlash(fx.Path), "fixture %s", fx.Name)
		assert.FileExists(t, filepath.FromSlash(fx.Golden), "golden for %s", fx.Name)
	}
}

func TestCorpusLookup(t *testing.T) {
	corpus := DefaultCorpus()

	fx, err := corpus.Lookup("factorial")
	require.NoError(t, err)
	assert.Equal(t, "testdata/corpus/factorial/main.go", fx.Path)

	_, err = corpus.Lookup("no-such-fixture")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCorpusDuplicateNames(t *testing.T) {
	corpus := NewCorpus(
		Fixture{Name: "dup", Desc: "first"},
		Fixture{Name: "dup", Desc: "second"},
	)

	require.Equal(t, 2, corpus.Len())

	fx, err := corpus.Lookup("dup")
	require.NoError(t, err)
	assert.Equal(t, "second", fx.Desc)
}

// The golden files pin the byte-exact output of the fixture programs; the
// library implementations must produce the same bytes.
func TestGoldenFilesMatchLibraryOutput(t *testing.T) {
	t.Run("employee", func(t *testing.T) {
		want, err := os.ReadFile(filepath.FromSlash("testdata/golden/employee.out"))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, NewEmployee(7, "Alice", 50000.5).Fprint(&buf))
		assert.Equal(t, string(want), buf.String())
	})

	t.Run("factorial", func(t *testing.T) {
		want, err := os.ReadFile(filepath.FromSlash("testdata/golden/factorial.out"))
		require.NoError(t, err)

		got := fmt.Sprintf("Factorial of %d is %d\n", 5, Factorial(5))
		assert.Equal(t, string(want), got)
	})
}
