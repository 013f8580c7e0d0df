// Command fixturevet checks the shipped fixture corpus in a working
// directory: every registered fixture must exist, parse, and declare the
// symbols its manifest entry promises. Unregistered fixture sources on disk
// are reported as warnings. The exit status is non-zero when any fixture
// fails.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/iamlongalong/fixturego"
)

func main() {
	workDir := flag.String("dir", ".", "directory fixture and golden paths are resolved against")
	list := flag.Bool("list", false, "list registered fixtures and exit")
	jsonOut := flag.Bool("json", false, "emit verification results as JSON")
	typeCheck := flag.Bool("type-check", false, "also type-check fixtures (needs a Go toolchain on PATH)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		log.Fatalf("Unknown log level: %s", *logLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, logger, *workDir, *list, *jsonOut, *typeCheck); err != nil {
		logger.Error("verification failed", "error", err)
		os.Exit(1)
	}
}

func run(out io.Writer, logger *slog.Logger, workDir string, list, jsonOut, typeCheck bool) error {
	corpus := fixturego.DefaultCorpus()

	if list {
		for _, fx := range corpus.Fixtures() {
			fmt.Fprintf(out, "%s\t%s\t%s\n", fx.Name, fx.Path, fx.Desc)
		}
		return nil
	}

	verifier := fixturego.NewVerifier(
		fixturego.WithWorkDir(workDir),
		fixturego.WithTypeCheck(typeCheck),
	)

	ctx := context.Background()
	logger.Debug("verifying corpus", "dir", workDir, "fixtures", corpus.Len())

	results, err := verifier.VerifyCorpus(ctx, corpus)
	if err != nil {
		return err
	}

	extras, err := verifier.DiscoverUnregistered(ctx, corpus)
	if err != nil {
		return err
	}
	for _, path := range extras {
		logger.Warn("fixture source is not registered in the corpus", "path", path)
	}

	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if r.OK() {
			if !jsonOut {
				fmt.Fprintf(out, "ok\t%s\n", r.Name)
			}
			continue
		}

		failed++
		if jsonOut {
			continue
		}
		fmt.Fprintf(out, "FAIL\t%s\n", r.Name)
		for _, s := range r.Missing {
			fmt.Fprintf(out, "\tmissing %s %s\n", s.Kind, s.Name)
		}
		for _, msg := range r.Errors {
			fmt.Fprintf(out, "\t%s\n", msg)
		}
	}

	for _, r := range results {
		for _, w := range r.Warnings {
			logger.Warn(w.Message, "fixture", r.Name, "type", w.Type)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed", failed, len(results))
	}
	return nil
}
