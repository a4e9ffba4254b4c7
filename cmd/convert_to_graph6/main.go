// Command convert_to_graph6 reads a plaintext graph from stdin and writes
// its graph6 encoding to stdout, optionally subdividing it k-fold first.
//
// Usage: convert_to_graph6 [k]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/gonality-tools/dgon/graph6"
	"github.com/gonality-tools/dgon/internal/cliutil"
	"github.com/gonality-tools/dgon/internal/fatal"
	"github.com/gonality-tools/dgon/subdivide"
)

const prog = "convert_to_graph6"

func main() {
	fs := pflag.NewFlagSet(prog, pflag.ExitOnError)
	fs.Parse(os.Args[1:])

	k, err := parseOptionalK(fs.Args())
	if err != nil {
		cliutil.Fail(prog, err)
	}

	if err := run(k); err != nil {
		cliutil.Fail(prog, err)
	}
}

func run(k int) (err error) {
	defer fatal.Recover(&err)

	pg, err := cliutil.ReadPlaintextGraph("-")
	if err != nil {
		return err
	}
	g := pg.Graph

	if k > 0 {
		g, err = subdivide.KRegular(g, k)
		if err != nil {
			return fmt.Errorf("subdivide: %w", err)
		}
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if !g.IsSimple() {
		return fmt.Errorf("%s: %w", prog, graph6.ErrNotSimple)
	}

	s, err := graph6.Encode(g)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	fmt.Println(s)

	return nil
}

func parseOptionalK(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("%s: unexpected arguments: %v", prog, args[1:])
	}

	k, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: k must be an integer: %w", prog, err)
	}

	return k, nil
}
