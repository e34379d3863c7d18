package topology

// Reachable runs breadth-first search over the topology's link graph —
// nodes u,v adjacent whenever P.At(u,v) exceeds Epsilon — and reports
// which nodes are reachable from start. Indices are 0-based.
//
// This is a diagnostic, not part of the interpreter: the interpreter
// operates on the full entanglement matrix regardless of P's structure,
// but an operator loading a topology benefits from knowing up front
// whether it is even connected enough for the program to do anything
// (SPEC_FULL.md §4, "supplemented features").
func (t *Topology) Reachable(start int) ([]bool, error) {
	if start < 0 || start >= t.N {
		return nil, ErrOutOfRange
	}

	visited := make([]bool, t.N)
	queue := make([]int, 0, t.N)

	visited[start] = true
	queue = append(queue, start)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for v := 0; v < t.N; v++ {
			if v == u || visited[v] {
				continue
			}
			p, err := t.P.At(u, v)
			if err != nil {
				return nil, err
			}
			if p > Epsilon {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return visited, nil
}

// Connected reports whether every node is reachable from node 0, i.e.
// whether the topology's link graph is a single connected component.
func (t *Topology) Connected() (bool, error) {
	visited, err := t.Reachable(0)
	if err != nil {
		return false, err
	}
	for _, ok := range visited {
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
