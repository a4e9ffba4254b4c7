// Command find_gonality computes the divisorial gonality of a graph read
// from stdin, optionally after k-regular subdivision.
//
// Usage: find_gonality [-g] [-a] [-v[v]] [k]
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/divisor"
	"github.com/gonality-tools/dgon/graph6"
	"github.com/gonality-tools/dgon/internal/clilog"
	"github.com/gonality-tools/dgon/internal/cliutil"
	"github.com/gonality-tools/dgon/internal/fatal"
	"github.com/gonality-tools/dgon/search"
	"github.com/gonality-tools/dgon/subdivide"
)

const prog = "find_gonality"

func main() {
	fs := pflag.NewFlagSet(prog, pflag.ExitOnError)
	useGraph6 := fs.BoolP("graph6", "g", false, "read graph6 from stdin instead of plain text")
	enumerateAll := fs.BoolP("all", "a", false, "also enumerate every positive-rank v0-reduced divisor of the optimal degree")
	resolveLevel := cliutil.VerbosityFlags(fs)
	fs.Parse(os.Args[1:])
	log := resolveLevel()

	k, err := parseOptionalK(fs.Args())
	if err != nil {
		cliutil.Fail(prog, err)
	}

	if err := run(*useGraph6, *enumerateAll, k, log); err != nil {
		cliutil.Fail(prog, err)
	}
}

func run(useGraph6, enumerateAll bool, k int, log *clilog.Logger) (err error) {
	defer fatal.Recover(&err)

	g, err := loadGraph(useGraph6)
	if err != nil {
		return err
	}
	log.Info("loaded graph: n=%d m=%d", g.N(), g.EdgeCount())

	if k > 0 {
		g, err = subdivide.KRegular(g, k)
		if err != nil {
			return fmt.Errorf("subdivide: %w", err)
		}
		if err := g.Validate(core.RequireConnected()); err != nil {
			return fmt.Errorf("subdivide: %w", err)
		}
		log.Info("subdivided %d-fold: n=%d m=%d", k, g.N(), g.EdgeCount())
	}

	ctx := search.NewContext(g.N())
	d, witness := ctx.FindGonality(g)
	fmt.Printf("gonality: %d\n", d)
	fmt.Printf("witness: %v\n", []int(witness))

	if !enumerateAll {
		return nil
	}

	count := 0
	walkErr := ctx.FindAllPositiveRankV0ReducedDivisors(g, d, func(div divisor.Divisor) error {
		count++
		fmt.Printf("divisor[%d]: %v\n", count, []int(div))

		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("enumerate: %w", walkErr)
	}
	log.Info("enumerated %d divisor(s) of degree %d", count, d)

	return nil
}

// loadGraph reads a graph from stdin, as graph6 when useGraph6 is set and
// as the plaintext format otherwise, requiring it to be connected.
func loadGraph(useGraph6 bool) (*core.Graph, error) {
	if !useGraph6 {
		pg, err := cliutil.ReadPlaintextGraph("-", core.RequireConnected())
		if err != nil {
			return nil, err
		}

		return pg.Graph, nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return nil, fmt.Errorf("find_gonality: empty graph6 input")
	}
	g, err := graph6.Decode(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("find_gonality: %w", err)
	}
	if err := g.Validate(core.RequireConnected()); err != nil {
		return nil, fmt.Errorf("find_gonality: %w", err)
	}

	return g, nil
}

// parseOptionalK parses the single optional positional subdivision
// factor; absent, it means "no subdivision" (k == 0).
func parseOptionalK(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("find_gonality: unexpected arguments: %v", args[1:])
	}

	k, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("find_gonality: k must be an integer: %w", err)
	}

	return k, nil
}
