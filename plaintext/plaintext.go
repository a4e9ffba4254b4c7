// Package plaintext implements the human-readable graph ingestion format:
// a name line, an "n m" line, and m edge lines of two vertex indices.
package plaintext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/internal/limits"
)

// Graph bundles a decoded core.Graph with the name line that preceded it.
type Graph struct {
	Name  string
	Graph *core.Graph
}

// Decode reads the plain format from r: a name line, then "n m", then m
// lines of "i j" vertex-index pairs. The graph is returned unvalidated;
// callers choose their own core.ValidateOption set (e.g. RequireConnected)
// before calling Validate themselves, since that policy is a property of
// the caller (the CLI layer), not of the format.
func Decode(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	name, err := readLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("plaintext: reading name line: %w", err)
	}

	header, err := readLine(scanner)
	if err != nil {
		return nil, fmt.Errorf("plaintext: reading n/m line: %w", err)
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("plaintext: expected \"n m\", got %q", header)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("plaintext: bad vertex count %q: %w", fields[0], err)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("plaintext: bad edge count %q: %w", fields[1], err)
	}
	if n > limits.MaxVertices {
		return nil, fmt.Errorf("plaintext: %d vertices exceeds the limit of %d", n, limits.MaxVertices)
	}
	if m > limits.MaxEdges {
		return nil, fmt.Errorf("plaintext: %d edges exceeds the limit of %d", m, limits.MaxEdges)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("plaintext: %w", err)
	}

	for e := 0; e < m; e++ {
		line, err := readLine(scanner)
		if err != nil {
			return nil, fmt.Errorf("plaintext: reading edge %d: %w", e, err)
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("plaintext: expected \"i j\", got %q", line)
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("plaintext: bad endpoint %q: %w", fields[0], err)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("plaintext: bad endpoint %q: %w", fields[1], err)
		}
		if err := g.AddEdge(i, j); err != nil {
			return nil, fmt.Errorf("plaintext: edge %d (%d,%d): %w", e, i, j, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("plaintext: %w", err)
	}

	return &Graph{Name: name, Graph: g}, nil
}

// readLine returns the next non-blank line, skipping blank lines so a file
// with trailing or leading whitespace lines still parses.
func readLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", io.ErrUnexpectedEOF
}

// Encode writes g in the plain format: name line, "n m" line, then m edge
// lines, ordered by lower endpoint and, within one vertex, by its neighbor
// list.
func Encode(w io.Writer, name string, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.N(), g.EdgeCount()); err != nil {
		return err
	}

	for i := 0; i < g.N(); i++ {
		for _, j := range g.Neighbors(i) {
			if j < i {
				continue // each undirected edge printed once, from its lower endpoint
			}
			if _, err := fmt.Fprintf(bw, "%d %d\n", i, j); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
