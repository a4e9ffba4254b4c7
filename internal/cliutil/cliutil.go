// Package cliutil holds the small pieces of plumbing shared by every
// cmd/ binary: verbosity flag wiring into clilog, a cancellable context
// tied to process signals, and graph input resolution (stdin or a named
// file, decoded as plaintext).
package cliutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/internal/clilog"
	"github.com/gonality-tools/dgon/plaintext"
)

// VerbosityFlags registers -v (repeatable) on fs and returns a function
// that resolves the count into a clilog.Logger writing to stderr. Call the
// returned function after fs.Parse.
func VerbosityFlags(fs *pflag.FlagSet) func() *clilog.Logger {
	count := fs.CountP("verbose", "v", "increase log verbosity (-v, -vv)")

	return func() *clilog.Logger {
		return clilog.New(clilog.LevelFromVerbosity(*count), os.Stderr)
	}
}

// SignalContext returns a context canceled on SIGINT or SIGTERM, along
// with a stop function that must be called to release the signal
// notification (typically via defer).
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// OpenGraphInput resolves path to a readable input: "-" or "" means
// stdin, anything else is opened as a file. The caller must close the
// returned io.ReadCloser.
func OpenGraphInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cliutil: open %q: %w", path, err)
	}

	return f, nil
}

// ReadPlaintextGraph opens path (stdin if "-" or empty) and decodes it as
// a plaintext graph, validating it with opts.
func ReadPlaintextGraph(path string, opts ...core.ValidateOption) (*plaintext.Graph, error) {
	r, err := OpenGraphInput(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pg, err := plaintext.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("cliutil: decode: %w", err)
	}
	if err := pg.Graph.Validate(opts...); err != nil {
		return nil, fmt.Errorf("cliutil: validate: %w", err)
	}

	return pg, nil
}

// Fail prints a formatted error to stderr prefixed with the program name
// and exits with status 1. cmd/ main functions call this from their
// top-level error path instead of log.Fatal, keeping output free of a
// timestamp for user-facing CLI errors.
func Fail(prog string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
	os.Exit(1)
}
