package soup

// TraceState is one entry of a counter-example trace: a state of the
// checked graph and whether that state is the target of an accepting
// transition.
type TraceState[S comparable] struct {
	State     S
	Accepting bool
}

// Lasso is a counter-example for a violated liveness property: a finite
// prefix from an initial state followed by a cyclic suffix whose last state
// equals its first. Concatenating prefix, suffix, suffix, ... is a valid
// infinite execution visiting an accepting state infinitely often. A Lasso
// is built once by the detector and immutable thereafter.
type Lasso[S comparable] struct {
	Prefix []TraceState[S]
	Cycle  []TraceState[S]
}

// DetectAcceptingCycle decides Büchi acceptance on a finite rooted graph:
// whether some state that is the target of an accepting edge lies on a
// non-trivial cycle reachable from a root. The accept predicate classifies
// edges by their action.
//
// It returns a Lasso witnessing the first accepting cycle found, or nil
// when no accepting cycle exists and the property holds.
//
// The witness is deterministic: candidate states are tried in BFS discovery
// order and the first admitting a return path wins; the return path itself
// is the shortest found by an inner breadth-first search. Which valid
// witness is reported is an implementation detail; the verdict depends only
// on existence.
func DetectAcceptingCycle[S comparable, A any](g RootedGraph[S, A], accept func(A) bool) (*Lasso[S], error) {
	exp, err := Explore(g)
	if err != nil {
		return nil, err
	}
	return detectOnExploration(g, exp, accept)
}

// detectOnExploration runs steps two and three of the nested search on an
// already completed BFS pass.
func detectOnExploration[S comparable, A any](g RootedGraph[S, A], exp *Exploration[S, A], accept func(A) bool) (*Lasso[S], error) {
	// States entered by at least one accepting edge anywhere in the
	// reachable graph, not only along the BFS tree.
	targets := make(stateSet[S])
	for _, s := range exp.order {
		edges, err := g.Successors(s)
		if err != nil {
			return nil, err
		}
		for _, edge := range edges {
			if accept(edge.Action) {
				targets.insert(edge.Target)
			}
		}
	}

	for _, t := range exp.order {
		if !targets.member(t) {
			continue
		}
		cycle, err := returnPath(g, t)
		if err != nil {
			return nil, err
		}
		if cycle == nil {
			continue
		}
		prefix, err := exp.Path(t)
		if err != nil {
			return nil, err
		}
		return &Lasso[S]{
			Prefix: annotate(prefix, targets),
			Cycle:  annotate(cycle, targets),
		}, nil
	}
	return nil, nil
}

// returnPath searches for a path of length >= 1 from start back to itself,
// breadth-first over the start state's successors. The reachable set is
// closed under successors, so the search never leaves it. Returns the
// closed cycle (start first and last) or nil.
func returnPath[S comparable, A any](g RootedGraph[S, A], start S) ([]S, error) {
	parents := make(map[S]S)
	queue := make([]S, 0)

	edges, err := g.Successors(start)
	if err != nil {
		return nil, err
	}
	for _, edge := range edges {
		if edge.Target == start {
			return []S{start, start}, nil
		}
		if _, seen := parents[edge.Target]; seen {
			continue
		}
		parents[edge.Target] = edge.Target
		queue = append(queue, edge.Target)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		edges, err := g.Successors(current)
		if err != nil {
			return nil, err
		}
		for _, edge := range edges {
			if edge.Target == start {
				cycle := []S{current}
				for parents[current] != current {
					current = parents[current]
					cycle = append(cycle, current)
				}
				cycle = append(cycle, start)
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return append(cycle, start), nil
			}
			if _, seen := parents[edge.Target]; seen {
				continue
			}
			parents[edge.Target] = current
			queue = append(queue, edge.Target)
		}
	}
	return nil, nil
}

func annotate[S comparable](states []S, targets stateSet[S]) []TraceState[S] {
	out := make([]TraceState[S], len(states))
	for i, s := range states {
		out[i] = TraceState[S]{State: s, Accepting: targets.member(s)}
	}
	return out
}
