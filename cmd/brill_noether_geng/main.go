// Command brill_noether_geng pipes the external nauty geng generator
// through a cheap independent-set-based gonality upper bound (and,
// unless -q, the full brute-force search), comparing it against the
// Brill-Noether bound floor((g+3)/2).
//
// Usage: brill_noether_geng [-Cmqv[v]] n [res/mod]
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/gonality-tools/dgon/indepset"
	"github.com/gonality-tools/dgon/internal/cliutil"
)

const prog = "Brill_Noether_geng"

const workerCount = 4

func main() {
	fs := pflag.NewFlagSet(prog, pflag.ExitOnError)
	connectedOnly := fs.BoolP("connected", "C", false, "pass -c to geng: generate connected graphs only")
	mismatchOnly := fs.BoolP("mismatch", "m", false, "print only graphs where the bound and the Brill-Noether value disagree")
	quiet := fs.BoolP("quiet", "q", false, "skip the full search; report only the cheap certificate bound")
	resolveLevel := cliutil.VerbosityFlags(fs)
	fs.Parse(os.Args[1:])
	log := resolveLevel()

	n, resMod, err := parseArgs(fs.Args())
	if err != nil {
		cliutil.Fail(prog, err)
	}

	gengPath, err := exec.LookPath("geng")
	if err != nil {
		cliutil.Fail(prog, ErrGengNotFound)
	}

	ctx, stop := cliutil.SignalContext()
	defer stop()

	gengArgs := []string{}
	if *connectedOnly {
		gengArgs = append(gengArgs, "-c")
	}
	gengArgs = append(gengArgs, strconv.Itoa(n))
	if resMod != "" {
		gengArgs = append(gengArgs, resMod)
	}

	cmd := exec.CommandContext(ctx, gengPath, gengArgs...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cliutil.Fail(prog, fmt.Errorf("%s: geng stdout pipe: %w", prog, err))
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		cliutil.Fail(prog, fmt.Errorf("%s: start geng: %w", prog, err))
	}
	log.Info("running geng %v", gengArgs)

	jobs := make(chan job, workerCount*2)
	results := make(chan result, workerCount*2)
	baseRNG := indepset.RNGFromSeed(1)

	go runPool(ctx, workerCount, n, baseRNG, *connectedOnly, *quiet, jobs, results)

	go func() {
		defer close(jobs)
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 1<<20), 1<<20)
		idx := 0
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{idx: idx, line: scanner.Text()}:
				idx++
			}
		}
	}()

	total, mismatches := 0, 0
	for r := range results {
		if r.err != nil {
			log.Warn("%v", r.err)

			continue
		}
		total++
		if r.mismatch {
			mismatches++
		}
		if *mismatchOnly && !r.mismatch {
			continue
		}
		printResult(r)
	}

	waitErr := cmd.Wait()
	log.Info("processed %d graph(s), %d mismatch(es)", total, mismatches)

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(130)
	}
	if waitErr != nil {
		cliutil.Fail(prog, fmt.Errorf("%s: geng: %w", prog, waitErr))
	}
}

func printResult(r result) {
	if r.trueGonality >= 0 {
		fmt.Printf("n=%d m=%d cert<=%d dgon=%d bn=%d mismatch=%v\n", r.n, r.m, r.certBound, r.trueGonality, r.bnBound, r.mismatch)
	} else {
		fmt.Printf("n=%d m=%d cert<=%d bn=%d mismatch=%v\n", r.n, r.m, r.certBound, r.bnBound, r.mismatch)
	}
}

func parseArgs(args []string) (n int, resMod string, err error) {
	if len(args) < 1 || len(args) > 2 {
		return 0, "", fmt.Errorf("%s: usage: %s [-Cmqv[v]] n [res/mod]", prog, prog)
	}

	n, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, "", fmt.Errorf("%s: n must be an integer: %w", prog, err)
	}
	if len(args) == 2 {
		resMod = args[1]
	}

	return n, resMod, nil
}
