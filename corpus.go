// Package fixturego ships a small corpus of deterministic Go sample programs
// for exercising code-analysis and indexing tools, together with reference
// implementations of each sample and a verifier that keeps the shipped
// sources, their manifest, and their golden outputs in agreement.
package fixturego

import "fmt"

// Locations of the shipped corpus, relative to the module root.
const (
	corpusRoot = "testdata/corpus"
	goldenRoot = "testdata/golden"
)

// Corpus is an ordered registry of fixtures. The zero value is empty; use
// NewCorpus or DefaultCorpus.
type Corpus struct {
	fixtures []Fixture
	byName   map[string]int
}

// NewCorpus builds a corpus from the given fixtures, preserving their
// order. When two fixtures share a name, the later registration wins for
// lookups.
func NewCorpus(fixtures ...Fixture) *Corpus {
	c := &Corpus{
		fixtures: make([]Fixture, len(fixtures)),
		byName:   make(map[string]int, len(fixtures)),
	}
	copy(c.fixtures, fixtures)
	for i, fx := range c.fixtures {
		c.byName[fx.Name] = i
	}
	return c
}

// DefaultCorpus returns the corpus shipped with this module: the employee
// record sample and the recursive factorial sample.
func DefaultCorpus() *Corpus {
	return NewCorpus(employeeFixture, factorialFixture)
}

// Fixtures returns the registered fixtures in registration order.
func (c *Corpus) Fixtures() []Fixture {
	out := make([]Fixture, len(c.fixtures))
	copy(out, c.fixtures)
	return out
}

// Len returns the number of registered fixtures.
func (c *Corpus) Len() int {
	return len(c.fixtures)
}

// Lookup returns the fixture registered under name. Unknown names fail with
// a wrapped ErrNotFound.
func (c *Corpus) Lookup(name string) (Fixture, error) {
	if i, ok := c.byName[name]; ok {
		return c.fixtures[i], nil
	}
	return Fixture{}, fmt.Errorf("fixture %q: %w", name, ErrNotFound)
}

// employeeFixture is the record-construction sample: a fixed-shape struct,
// a constructor that truncates the name to a fixed bound, and a three-line
// printer.
var employeeFixture = Fixture{
	Name: "employee",
	Path: corpusRoot + "/employee/main.go",
	Desc: "record construction with a bounded name and fixed-format printing",
	Symbols: []Symbol{
		{Name: "Employee", Kind: SymbolKindType, Exported: true},
		{Name: "newEmployee", Kind: SymbolKindFunc, Exported: false},
		{Name: "printEmployee", Kind: SymbolKindFunc, Exported: false},
		{Name: "main", Kind: SymbolKindFunc, Exported: false},
	},
	Golden: goldenRoot + "/employee.out",
}

// factorialFixture is the numeric sample: a recursive factorial applied to a
// fixed input.
var factorialFixture = Fixture{
	Name: "factorial",
	Path: corpusRoot + "/factorial/main.go",
	Desc: "recursive factorial of a fixed input",
	Symbols: []Symbol{
		{Name: "factorial", Kind: SymbolKindFunc, Exported: false},
		{Name: "main", Kind: SymbolKindFunc, Exported: false},
	},
	Golden: goldenRoot + "/factorial.out",
}
