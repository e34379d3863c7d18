package topology

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Unbounded is the sentinel saturation value meaning a link has no
// per-node entanglement cap (spec.md §3: "Absent ⇒ default sentinel
// meaning unbounded").
const Unbounded = -1

// Epsilon is the threshold below which a creation probability is treated
// as "no edge" by cr (spec.md §4.2: "topo.p[x-1][y-1] < 1e-8").
const Epsilon = 1e-8

// Topology is the immutable description of a fixed quantum network:
// node count N, symmetric edge-generation probabilities P, per-node
// swap-success probabilities Q, and per-node saturation caps S
// (spec.md §3).
type Topology struct {
	N int
	M int
	P *Dense
	Q []float64
	S []int64
}

// Load parses the whitespace-delimited topology format of spec.md §6:
//
//	line 1:        n m
//	next m lines:  u v p
//	next line:     n reals (q)
//	optional line: n integers (s), else every s[i] = Unbounded
//
// and validates the invariants of spec.md §3: p is symmetric with zero
// diagonal, every probability lies in [0,1].
func Load(r io.Reader) (*Topology, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	toks := &tokenStream{sc: sc}

	n, err := toks.int()
	if err != nil {
		return nil, fmt.Errorf("topology: read n: %w", err)
	}
	m, err := toks.int()
	if err != nil {
		return nil, fmt.Errorf("topology: read m: %w", err)
	}
	if n <= 0 || m < 0 {
		return nil, ErrBadShape
	}

	p, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		u, err := toks.int()
		if err != nil {
			return nil, fmt.Errorf("topology: edge %d: read u: %w", i, err)
		}
		v, err := toks.int()
		if err != nil {
			return nil, fmt.Errorf("topology: edge %d: read v: %w", i, err)
		}
		prob, err := toks.float()
		if err != nil {
			return nil, fmt.Errorf("topology: edge %d: read p: %w", i, err)
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("topology: edge %d: %w", i, ErrOutOfRange)
		}
		if prob < 0 || prob > 1 {
			return nil, fmt.Errorf("topology: edge %d: %w", i, ErrProbabilityRange)
		}
		_ = p.Set(u-1, v-1, prob)
		_ = p.Set(v-1, u-1, prob)
	}

	q := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := toks.float()
		if err != nil {
			return nil, fmt.Errorf("topology: read q[%d]: %w", i, err)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("topology: q[%d]: %w", i, ErrProbabilityRange)
		}
		q[i] = v
	}

	s := make([]int64, n)
	for i := range s {
		s[i] = Unbounded
	}
	if toks.hasMore() {
		for i := 0; i < n; i++ {
			v, err := toks.int()
			if err != nil {
				return nil, fmt.Errorf("topology: read s[%d]: %w", i, err)
			}
			s[i] = int64(v)
		}
	}

	t := &Topology{N: n, M: m, P: p, Q: q, S: s}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate is a supplemental check beyond what original_source/frontend/qnv/topology.py
// performs: it trusted the file blindly. Here symmetry and zero-diagonal
// are verified explicitly, matching matrix/errors.go's "structural
// violations" error class.
func (t *Topology) validate() error {
	for i := 0; i < t.N; i++ {
		diag, _ := t.P.At(i, i)
		if diag != 0 {
			return fmt.Errorf("topology: diagonal p[%d][%d] must be zero: %w", i, i, ErrMalformed)
		}
		for j := i + 1; j < t.N; j++ {
			a, _ := t.P.At(i, j)
			b, _ := t.P.At(j, i)
			if a != b {
				return fmt.Errorf("topology: p[%d][%d]=%g != p[%d][%d]=%g: %w", i, j, a, j, i, b, ErrAsymmetry)
			}
		}
	}
	return nil
}

// String renders the banner original_source/main.py prints under
// "======Quantum Network Topology======" before running the interpreter
// (SPEC_FULL.md §4 "Topology pretty-print banner").
func (t *Topology) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", t.N)
	fmt.Fprintf(&b, "%d\n", t.M)
	b.WriteString(t.P.String())
	fmt.Fprintf(&b, "%v\n", t.Q)
	return b.String()
}

// tokenStream reads whitespace-delimited tokens across newlines, which
// is all the topology format needs (spec.md §6 specifies no per-line
// structure beyond "whitespace-delimited").
type tokenStream struct {
	sc     *bufio.Scanner
	fields []string
	idx    int
}

func (t *tokenStream) fill() bool {
	for t.idx >= len(t.fields) {
		if !t.sc.Scan() {
			return false
		}
		t.fields = strings.Fields(t.sc.Text())
		t.idx = 0
	}
	return true
}

func (t *tokenStream) hasMore() bool { return t.fill() }

func (t *tokenStream) next() (string, error) {
	if !t.fill() {
		return "", fmt.Errorf("%w: unexpected end of input", ErrMalformed)
	}
	tok := t.fields[t.idx]
	t.idx++
	return tok, nil
}

func (t *tokenStream) int() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformed, tok)
	}
	return v, nil
}

func (t *tokenStream) float() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformed, tok)
	}
	return v, nil
}
