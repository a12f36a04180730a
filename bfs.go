package soup

import "fmt"

type stateSet[S comparable] map[S]struct{}

func (ss stateSet[S]) member(s S) bool {
	_, ok := ss[s]
	return ok
}

func (ss stateSet[S]) insert(s S) {
	ss[s] = struct{}{}
}

// Exploration is the result of a breadth-first traversal of a rooted
// graph: the set of all reachable states, their discovery order, one
// first-discovery parent pointer per state and the number of edges
// traversed. Each Exploration is local to the Explore call that produced
// it; the traversed graph is never mutated.
type Exploration[S comparable, A any] struct {
	visited     stateSet[S]
	order       []S
	parents     map[S]S // parents[root] == root
	transitions int
}

// Explore runs a multi-source breadth-first search from the graph's roots.
// Every reachable state is visited exactly once; the first discovery of a
// state fixes its parent pointer, ties broken by root and successor
// enumeration order. Termination is guaranteed for finite state spaces.
//
// Example:
//
//	exp, err := soup.Explore(soup.GraphOf[State, soup.Piece[State]](sys))
func Explore[S comparable, A any](g RootedGraph[S, A]) (*Exploration[S, A], error) {
	e := &Exploration[S, A]{
		visited: make(stateSet[S]),
		parents: make(map[S]S),
	}

	roots, err := g.Roots()
	if err != nil {
		return nil, err
	}
	queue := make([]S, 0, len(roots))
	for _, r := range roots {
		if e.visited.member(r) {
			continue
		}
		e.visited.insert(r)
		e.parents[r] = r
		e.order = append(e.order, r)
		queue = append(queue, r)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		edges, err := g.Successors(current)
		if err != nil {
			return nil, err
		}
		for _, edge := range edges {
			e.transitions++
			if e.visited.member(edge.Target) {
				continue
			}
			e.visited.insert(edge.Target)
			e.parents[edge.Target] = current
			e.order = append(e.order, edge.Target)
			queue = append(queue, edge.Target)
		}
	}

	return e, nil
}

// States returns every visited state in discovery order.
func (e *Exploration[S, A]) States() []S {
	out := make([]S, len(e.order))
	copy(out, e.order)
	return out
}

// Contains reports whether the state was visited.
func (e *Exploration[S, A]) Contains(s S) bool {
	return e.visited.member(s)
}

// Len returns the number of visited states.
func (e *Exploration[S, A]) Len() int {
	return len(e.order)
}

// Transitions returns the number of edges traversed during exploration.
func (e *Exploration[S, A]) Transitions() int {
	return e.transitions
}

// Path returns the shortest path from a root to the target, both ends
// included, by walking parent pointers iteratively. The path length in
// edges is minimal over all paths in the graph. It fails with
// ErrStateUnreachable when the target was never visited.
func (e *Exploration[S, A]) Path(target S) ([]S, error) {
	if !e.visited.member(target) {
		return nil, fmt.Errorf("no path to state %v: %w", target, ErrStateUnreachable)
	}
	path := []S{target}
	cur := target
	for e.parents[cur] != cur {
		cur = e.parents[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
