package soup

// Edge is one outgoing transition of a rooted graph: the action taken and
// the state it leads to.
type Edge[S comparable, A any] struct {
	Action A
	Target S
}

// RootedGraph presents a state space as a rooted graph for the exploration
// algorithms, decoupling them from the shape of the transition-system
// interface. Implementations never materialize states beyond those
// reachable from the roots.
type RootedGraph[S comparable, A any] interface {
	Roots() ([]S, error)
	Successors(s S) ([]Edge[S, A], error)
}

type semanticsGraph[S comparable, A any] struct {
	sem Semantics[S, A]
}

// GraphOf adapts any transition system to a rooted graph: the roots are the
// initial states and the successors of s are the pairs (a, Execute(s, a))
// for every enabled action a. The adapter is pure forwarding; it caches
// nothing and owns no state identity.
func GraphOf[S comparable, A any](sem Semantics[S, A]) RootedGraph[S, A] {
	return semanticsGraph[S, A]{sem: sem}
}

func (g semanticsGraph[S, A]) Roots() ([]S, error) {
	return g.sem.Initials()
}

func (g semanticsGraph[S, A]) Successors(s S) ([]Edge[S, A], error) {
	acts, err := g.sem.Actions(s)
	if err != nil {
		return nil, err
	}
	edges := make([]Edge[S, A], 0, len(acts))
	for _, a := range acts {
		next, err := g.sem.Execute(s, a)
		if err != nil {
			return nil, err
		}
		edges = append(edges, Edge[S, A]{Action: a, Target: next})
	}
	return edges, nil
}
