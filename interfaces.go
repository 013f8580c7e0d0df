package fixturego

import "context"

// Verifier checks fixture sources and consumer output against a corpus
// manifest. DefaultVerifier is the standard implementation; the interface
// exists so that tools embedding a corpus can substitute their own.
type Verifier interface {
	// ScanFixture parses one fixture source file and reports its
	// top-level declarations, independent of any manifest
	ScanFixture(ctx context.Context, path string) (*SourceScan, error)

	// VerifyFixture checks one fixture source against its manifest entry
	VerifyFixture(ctx context.Context, fx Fixture) (*VerifyResult, error)

	// VerifyCorpus verifies every fixture in the corpus
	VerifyCorpus(ctx context.Context, c *Corpus) ([]*VerifyResult, error)

	// VerifyOutput compares consumer-produced output with the fixture's
	// golden file
	VerifyOutput(fx Fixture, got []byte) error

	// DiscoverUnregistered reports fixture sources on disk that the
	// corpus does not register
	DiscoverUnregistered(ctx context.Context, c *Corpus) ([]string, error)
}
