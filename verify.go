package fixturego

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

// DefaultVerifier implements the Verifier interface against an on-disk
// corpus rooted at a working directory.
type DefaultVerifier struct {
	workDir string
	cache   *Cache
	opts    *VerifierOptions
}

var _ Verifier = (*DefaultVerifier)(nil)

// NewVerifier creates a new verifier instance with the given options
func NewVerifier(opts ...Option) *DefaultVerifier {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	verifier := &DefaultVerifier{
		workDir: options.WorkDir,
		opts:    options,
	}

	if options.CacheTTL > 0 {
		verifier.cache = NewCache(options.CacheTTL, options.MaxCacheSize)
	}

	return verifier
}

// resolvePath resolves a fixture or golden path against the working
// directory and returns an absolute path
func (v *DefaultVerifier) resolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("resolve path: %w", ErrInvalidInput)
	}

	// If the path is already absolute, use it as is
	if filepath.IsAbs(path) {
		return path, nil
	}

	absPath, err := filepath.Abs(filepath.Join(v.workDir, path))
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	return absPath, nil
}

// ScanFixture parses one fixture source file and reports its top-level
// declarations. Syntax problems do not fail the scan; they are collected in
// the result so that a broken fixture is reported, not swallowed. Scans are
// cached by path and modification time when caching is enabled.
func (v *DefaultVerifier) ScanFixture(ctx context.Context, path string) (result *SourceScan, err error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if path == "" {
		return nil, &VerifyError{Op: "scan fixture", Wrapped: ErrInvalidInput}
	}

	absPath, err := v.resolvePath(path)
	if err != nil {
		return nil, &VerifyError{Op: "scan fixture", Fixture: path, Wrapped: err}
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, &VerifyError{Op: "stat fixture", Fixture: path, Wrapped: err}
	}
	if info.IsDir() {
		return nil, &VerifyError{Op: "scan fixture", Fixture: path, Wrapped: fmt.Errorf("is a directory: %w", ErrInvalidInput)}
	}
	if info.Size() > maxFixtureSize {
		return nil, &VerifyError{Op: "scan fixture", Fixture: path, Wrapped: fmt.Errorf("file too large: %w", ErrInvalidInput)}
	}
	if !isAllowedExtension(filepath.Ext(absPath)) {
		return nil, &VerifyError{Op: "scan fixture", Fixture: path, Wrapped: fmt.Errorf("not a Go source file: %w", ErrInvalidInput)}
	}

	if v.cache != nil {
		key := ScanCacheKey{
			Path:    absPath,
			ModTime: info.ModTime(),
		}
		if cached, ok := v.cache.GetScan(key); ok {
			return cached, nil
		}
		defer func() {
			if err == nil && result != nil {
				v.cache.SetScan(key, result)
			}
		}()
	}

	src, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &VerifyError{Op: "read fixture", Fixture: path, Wrapped: err}
	}
	if !utf8.Valid(src) {
		return nil, &VerifyError{Op: "read fixture", Fixture: path, Wrapped: fmt.Errorf("invalid UTF-8: %w", ErrInvalidInput)}
	}

	result = &SourceScan{
		Path:      path,
		Generated: isGeneratedFile(src),
	}

	fset := token.NewFileSet()
	file, parseErr := parser.ParseFile(fset, absPath, src, parser.ParseComments)
	if parseErr != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("parse error: %v", parseErr))
		return result, nil
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			result.Symbols = append(result.Symbols, Symbol{
				Name:     d.Name.Name,
				Kind:     SymbolKindFunc,
				Exported: d.Name.IsExported(),
			})
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				result.Symbols = append(result.Symbols, Symbol{
					Name:     ts.Name.Name,
					Kind:     SymbolKindType,
					Exported: ts.Name.IsExported(),
				})
			}
		}
	}

	return result, nil
}

// VerifyFixture checks one fixture source against its manifest entry.
// Manifest symbols that the source does not declare land in Missing;
// exported declarations the manifest does not register, visibility
// mismatches, and generated-file markers produce warnings. The returned
// error covers only hard failures (unreadable or non-fixture files); a
// failing fixture is reported through the result.
func (v *DefaultVerifier) VerifyFixture(ctx context.Context, fx Fixture) (*VerifyResult, error) {
	scan, err := v.ScanFixture(ctx, fx.Path)
	if err != nil {
		return nil, &VerifyError{Op: "verify fixture", Fixture: fx.Name, Wrapped: err}
	}

	result := &VerifyResult{
		Name:       fx.Name,
		Path:       fx.Path,
		StartTime:  time.Now().Format(time.RFC3339),
		VerifiedAt: time.Now(),
		Found:      scan.Symbols,
	}
	result.Errors = append(result.Errors, scan.Errors...)

	if scan.Generated {
		result.Warnings = append(result.Warnings, VerifyWarning{
			Type:    "generated_fixture",
			Message: "fixture source carries a code-generation marker",
			File:    fx.Path,
		})
	}

	for _, want := range fx.Symbols {
		found, ok := findSymbol(scan.Symbols, want.Name, want.Kind)
		if !ok {
			result.Missing = append(result.Missing, want)
			continue
		}
		if found.Exported != want.Exported {
			result.Warnings = append(result.Warnings, VerifyWarning{
				Type: "visibility_mismatch",
				Message: fmt.Sprintf("symbol %s: manifest says exported=%t, source says exported=%t",
					want.Name, want.Exported, found.Exported),
				File: fx.Path,
			})
		}
	}

	// Exported declarations missing from the manifest are drift: tools
	// consuming the corpus would index symbols nothing asserts on.
	for _, got := range scan.Symbols {
		if !got.Exported {
			continue
		}
		if _, ok := findSymbol(fx.Symbols, got.Name, got.Kind); !ok {
			result.Warnings = append(result.Warnings, VerifyWarning{
				Type:    "unregistered_symbol",
				Message: fmt.Sprintf("exported %s %s is not registered in the manifest", got.Kind, got.Name),
				File:    fx.Path,
			})
		}
	}

	if v.opts.TypeCheck && len(result.Errors) == 0 {
		if err := v.typeCheck(ctx, fx, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// findSymbol looks up a symbol by name and kind
func findSymbol(symbols []Symbol, name string, kind SymbolKind) (Symbol, bool) {
	for _, s := range symbols {
		if s.Name == name && s.Kind == kind {
			return s, true
		}
	}
	return Symbol{}, false
}

// typeCheck loads the fixture through go/packages and surfaces type errors
// into the result. It needs a Go toolchain on PATH.
func (v *DefaultVerifier) typeCheck(ctx context.Context, fx Fixture, result *VerifyResult) error {
	absPath, err := v.resolvePath(fx.Path)
	if err != nil {
		return &VerifyError{Op: "type check", Fixture: fx.Name, Wrapped: err}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedSyntax |
			packages.NeedTypes |
			packages.NeedTypesInfo,
		Context: ctx,
		Dir:     filepath.Dir(absPath),
	}

	pkgs, err := packages.Load(cfg, "file="+absPath)
	if err != nil {
		return &LoadError{
			Path:    fx.Path,
			Op:      "load",
			Wrapped: err,
		}
	}

	if len(pkgs) == 0 {
		return &LoadError{
			Path:    fx.Path,
			Op:      "load",
			Wrapped: ErrNotFound,
		}
	}

	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			result.Errors = append(result.Errors, fmt.Sprintf("type error: %v", pkgErr))
		}
	}

	return nil
}

// VerifyCorpus verifies every fixture in the corpus with bounded
// concurrency. Results come back in registration order regardless of
// completion order.
func (v *DefaultVerifier) VerifyCorpus(ctx context.Context, c *Corpus) ([]*VerifyResult, error) {
	fixtures := c.Fixtures()
	results := make([]*VerifyResult, len(fixtures))

	limit := v.opts.MaxConcurrentVerify
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, fx := range fixtures {
		i, fx := i, fx
		g.Go(func() error {
			result, err := v.VerifyFixture(ctx, fx)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// VerifyOutput compares bytes a consumer produced for the fixture against
// its golden file. A mismatch comes back as a *VerifyError whose message
// carries a line diff.
func (v *DefaultVerifier) VerifyOutput(fx Fixture, got []byte) error {
	if fx.Golden == "" {
		return &VerifyError{Op: "read golden", Fixture: fx.Name, Wrapped: fmt.Errorf("no golden file registered: %w", ErrInvalidInput)}
	}

	absPath, err := v.resolvePath(fx.Golden)
	if err != nil {
		return &VerifyError{Op: "read golden", Fixture: fx.Name, Wrapped: err}
	}

	want, err := os.ReadFile(absPath)
	if err != nil {
		return &VerifyError{Op: "read golden", Fixture: fx.Name, Wrapped: err}
	}

	if !bytes.Equal(want, got) {
		diff := cmp.Diff(string(want), string(got))
		return &VerifyError{
			Op:      "compare output",
			Fixture: fx.Name,
			Wrapped: fmt.Errorf("output does not match golden file (-want +got):\n%s", diff),
		}
	}

	return nil
}

// DiscoverUnregistered walks the corpus root under the working directory
// and reports fixture sources the corpus does not register. Paths come back
// slash-separated and relative to the working directory, in walk order.
func (v *DefaultVerifier) DiscoverUnregistered(ctx context.Context, c *Corpus) ([]string, error) {
	registered := make(map[string]bool, c.Len())
	for _, fx := range c.Fixtures() {
		registered[filepath.ToSlash(fx.Path)] = true
	}

	root := filepath.Join(v.workDir, filepath.FromSlash(corpusRoot))
	var extras []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if strings.HasPrefix(filepath.Base(path), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}

		relPath, err := filepath.Rel(v.workDir, path)
		if err != nil {
			return err
		}

		if rel := filepath.ToSlash(relPath); !registered[rel] {
			extras = append(extras, rel)
		}
		return nil
	})
	if err != nil {
		return nil, &VerifyError{Op: "discover fixtures", Wrapped: err}
	}

	return extras, nil
}

// GetCacheStats returns scan cache statistics if caching is enabled
func (v *DefaultVerifier) GetCacheStats() map[string]interface{} {
	if v.cache == nil {
		return map[string]interface{}{
			"enabled": false,
		}
	}
	stats := v.cache.Stats()
	stats["enabled"] = true
	return stats
}
