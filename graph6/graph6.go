package graph6

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gonality-tools/dgon/core"
	"github.com/gonality-tools/dgon/internal/limits"
)

// ErrNotSimple is returned by Encode when the graph has a parallel edge;
// graph6 has no way to represent edge multiplicity.
var ErrNotSimple = errors.New("graph6: graph is not simple")

// ErrMalformed is returned by Decode for input that is not valid graph6.
var ErrMalformed = errors.New("graph6: malformed input")

// ErrTooLarge is returned for vertex counts beyond what this codec's
// 18-bit extended-N form supports (262143 vertices); the nauty suite's
// further 36-bit form is not implemented, since no configured
// limits.MaxVertices comes close to needing it.
var ErrTooLarge = errors.New("graph6: vertex count too large for this codec")

const maxExtendedN = 1<<18 - 1

// Encode renders g (which must be Validate'd and simple) as a single
// graph6 line, without a trailing newline.
func Encode(g *core.Graph) (string, error) {
	if !g.IsSimple() {
		return "", ErrNotSimple
	}

	n := g.N()
	var b strings.Builder
	if err := writeN(&b, n); err != nil {
		return "", err
	}

	mat := g.AdjacencyMatrix()
	w := newBitWriter(&b)
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			w.writeBit(mat[i][j] != 0)
		}
	}
	w.flush()

	return b.String(), nil
}

// Decode parses a single graph6 line into a validated, simple Graph.
func Decode(s string) (*core.Graph, error) {
	s = strings.TrimRight(s, "\r\n")
	data := []byte(s)

	n, rest, err := readN(data)
	if err != nil {
		return nil, err
	}
	if n > limits.MaxVertices {
		return nil, fmt.Errorf("graph6: %d vertices exceeds the limit of %d", n, limits.MaxVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("graph6: %w", err)
	}

	r := newBitReader(rest)
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			bit, ok := r.readBit()
			if !ok {
				return nil, ErrMalformed
			}
			if bit {
				if err := g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("graph6: %w", err)
				}
			}
		}
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("graph6: %w", err)
	}

	return g, nil
}

func writeN(b *strings.Builder, n int) error {
	switch {
	case n <= 62:
		b.WriteByte(byte(n + 63))
	case n <= maxExtendedN:
		b.WriteByte(126)
		b.WriteByte(byte((n>>12)&0x3f) + 63)
		b.WriteByte(byte((n>>6)&0x3f) + 63)
		b.WriteByte(byte(n&0x3f) + 63)
	default:
		return ErrTooLarge
	}

	return nil
}

func readN(data []byte) (n int, rest []byte, err error) {
	if len(data) == 0 {
		return 0, nil, ErrMalformed
	}
	if data[0] != 126 {
		return int(data[0]) - 63, data[1:], nil
	}
	if len(data) < 4 {
		return 0, nil, ErrMalformed
	}
	if data[1] == 126 {
		return 0, nil, ErrTooLarge
	}
	n = (int(data[1]-63) << 12) | (int(data[2]-63) << 6) | int(data[3]-63)

	return n, data[4:], nil
}

// bitWriter packs bits six at a time into bytes offset by 63, padding the
// final group with zero bits as graph6 requires.
type bitWriter struct {
	b     *strings.Builder
	cur   byte
	count int
}

func newBitWriter(b *strings.Builder) *bitWriter {
	return &bitWriter{b: b}
}

func (w *bitWriter) writeBit(set bool) {
	w.cur <<= 1
	if set {
		w.cur |= 1
	}
	w.count++
	if w.count == 6 {
		w.b.WriteByte(w.cur + 63)
		w.cur = 0
		w.count = 0
	}
}

func (w *bitWriter) flush() {
	if w.count == 0 {
		return
	}
	w.cur <<= byte(6 - w.count)
	w.b.WriteByte(w.cur + 63)
	w.cur = 0
	w.count = 0
}

// bitReader is the inverse of bitWriter.
type bitReader struct {
	data  []byte
	pos   int // byte index
	cur   byte
	count int // bits remaining in cur
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

func (r *bitReader) readBit() (bool, bool) {
	if r.count == 0 {
		if r.pos >= len(r.data) {
			return false, false
		}
		r.cur = r.data[r.pos] - 63
		r.pos++
		r.count = 6
	}
	r.count--
	bit := (r.cur>>r.count)&1 == 1

	return bit, true
}
