package fixturego

import "time"

// VerifierOptions configures the behavior of the verifier
type VerifierOptions struct {
	// WorkDir is the directory fixture and golden paths are resolved against
	WorkDir string

	// CacheTTL is the time-to-live for cached source scans
	// If zero, caching is disabled
	CacheTTL time.Duration

	// MaxCacheSize is the maximum number of cached source scans
	// If zero, no limit is applied
	MaxCacheSize int

	// TypeCheck enables loading fixtures through go/packages so that type
	// errors are reported in addition to syntax errors. It requires a Go
	// toolchain on PATH.
	TypeCheck bool

	// MaxConcurrentVerify is the maximum number of fixtures verified at once
	// If zero, defaults to runtime.NumCPU()
	MaxConcurrentVerify int
}

// DefaultOptions returns the default verifier options
func DefaultOptions() *VerifierOptions {
	return &VerifierOptions{
		WorkDir:             ".",
		CacheTTL:            5 * time.Minute,
		MaxCacheSize:        1000,
		TypeCheck:           false,
		MaxConcurrentVerify: 0, // Will use runtime.NumCPU()
	}
}

// Option is a function that configures VerifierOptions
type Option func(*VerifierOptions)

// WithWorkDir sets the directory paths are resolved against
func WithWorkDir(dir string) Option {
	return func(o *VerifierOptions) {
		o.WorkDir = dir
	}
}

// WithCacheTTL sets the source scan cache TTL
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *VerifierOptions) {
		o.CacheTTL = ttl
	}
}

// WithMaxCacheSize sets the maximum number of cached source scans
func WithMaxCacheSize(size int) Option {
	return func(o *VerifierOptions) {
		o.MaxCacheSize = size
	}
}

// WithTypeCheck enables or disables type checking of fixtures
func WithTypeCheck(enable bool) Option {
	return func(o *VerifierOptions) {
		o.TypeCheck = enable
	}
}

// WithMaxConcurrentVerify sets the maximum number of concurrent verifications
func WithMaxConcurrentVerify(max int) Option {
	return func(o *VerifierOptions) {
		o.MaxConcurrentVerify = max
	}
}
