package fixturego

import (
	"time"
)

// SymbolKind represents the kind of declaration expected in a fixture
type SymbolKind string

const (
	// SymbolKindType marks type declarations (structs, interfaces, aliases)
	SymbolKindType SymbolKind = "type"
	// SymbolKindFunc marks function and method declarations
	SymbolKindFunc SymbolKind = "func"
)

// Symbol identifies one declaration an indexing tool is expected to extract
// from a fixture source file
type Symbol struct {
	Name     string     `json:"name"`
	Kind     SymbolKind `json:"kind"`
	Exported bool       `json:"exported"`
}

// Fixture describes a single corpus program: where its source lives, the
// symbols it must declare, and the output its run must produce
type Fixture struct {
	Name    string   `json:"name"`
	Path    string   `json:"path"`
	Desc    string   `json:"desc,omitempty"`
	Symbols []Symbol `json:"symbols,omitempty"`
	Golden  string   `json:"golden,omitempty"`
}

// SourceScan represents the manifest-independent outcome of parsing one
// fixture source file
type SourceScan struct {
	Path      string   `json:"path"`
	Symbols   []Symbol `json:"symbols,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Generated bool     `json:"generated,omitempty"`
}

// VerifyWarning represents a warning during fixture verification
type VerifyWarning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// VerifyResult represents the result of verifying one fixture against the
// corpus manifest
type VerifyResult struct {
	Name       string          `json:"name"`
	Path       string          `json:"path"`
	StartTime  string          `json:"start_time"`
	VerifiedAt time.Time       `json:"verified_at"`
	Found      []Symbol        `json:"found,omitempty"`
	Missing    []Symbol        `json:"missing,omitempty"`
	Errors     []string        `json:"errors,omitempty"`
	Warnings   []VerifyWarning `json:"warnings,omitempty"`
}

// OK reports whether the fixture passed verification. Warnings do not fail
// a fixture; missing symbols and errors do.
func (r *VerifyResult) OK() bool {
	return r != nil && len(r.Missing) == 0 && len(r.Errors) == 0
}
