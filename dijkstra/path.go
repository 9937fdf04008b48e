package dijkstra

import "fmt"

// ConstructPath rebuilds the shortest route from the source to dest using
// the predecessor links of the final frontier table.
//
// Returns:
//
//   - path: nodes from source to dest and the parallel weight sequence
//     (see Path for the leading-entry convention).
//   - ok:   false when dest is unreachable; this is a result, not an error.
//   - err:  ErrUnknownNode for a name outside the node list,
//     ErrNotRun when Run has not completed yet.
//
// Complexity: O(P²) for a path of P nodes (front insertion), P ≤ N.
func (e *Engine) ConstructPath(dest string) (Path, bool, error) {
	// 1) Validate the destination
	d, ok := e.index[dest]
	if !ok {
		return Path{}, false, fmt.Errorf("%w: %q", ErrUnknownNode, dest)
	}

	// 2) Precondition: predecessor links exist only after Run
	if !e.ran {
		return Path{}, false, ErrNotRun
	}

	// 3) The source reaches itself without traversing an edge
	if d == e.source {
		return Path{Nodes: []int{d}, Weights: []float64{0}}, true, nil
	}

	// 4) No predecessor: dest was never reached
	prev := e.table[d].Predecessor
	if prev == NoPredecessor {
		return Path{}, false, nil
	}

	// 5) Walk backwards, prepending each node and the edge just traversed
	nodes := []int{d}
	w, _ := e.weights.At(prev, d)
	weights := []float64{w}
	var cur int
	for prev != e.source {
		cur = prev
		nodes = append([]int{cur}, nodes...)
		prev = e.table[cur].Predecessor
		w, _ = e.weights.At(prev, cur)
		weights = append([]float64{w}, weights...)
	}

	// 6) Prepend the source and its leading placeholder
	nodes = append([]int{e.source}, nodes...)
	weights = append([]float64{0}, weights...)

	return Path{Nodes: nodes, Weights: weights}, true, nil
}
