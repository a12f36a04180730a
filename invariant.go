package soup

// Invariant is a named condition that must hold in every reachable state.
// Implementations must return true when the invariant holds for the given
// state, and false otherwise.
type Invariant[S comparable] interface {
	Name() string
	Evaluate(s S) bool
}

type invariantFunc[S comparable] struct {
	name string
	fn   func(s S) bool
}

func (f invariantFunc[S]) Name() string      { return f.name }
func (f invariantFunc[S]) Evaluate(s S) bool { return f.fn(s) }

// BoolInvariant creates an invariant from a constant boolean value. This is
// useful for invariants that always pass (true) or always fail (false),
// typically as placeholders in tests.
//
// Parameters:
//   - name: The invariant name used in violation reports
//   - b: The boolean value this invariant always returns
func BoolInvariant[S comparable](name string, b bool) Invariant[S] {
	return invariantFunc[S]{name: name, fn: func(S) bool { return b }}
}

// NewInvariant creates a named invariant from a state predicate.
//
// Parameters:
//   - name: The invariant name used in violation reports
//   - check: Predicate returning true when the invariant holds
//
// Example:
//
//	exclusion := soup.NewInvariant("mutual-exclusion", func(s State) bool {
//	    return !(s.Alice == Crit && s.Bob == Crit)
//	})
func NewInvariant[S comparable](name string, check func(s S) bool) Invariant[S] {
	return invariantFunc[S]{name: name, fn: check}
}

// Violation records one reachable state breaking an invariant, together
// with a shortest path witnessing how the state is reached.
type Violation[S comparable] struct {
	Invariant string
	State     S
	Path      []S
}

// CheckInvariants explores the graph and evaluates every invariant on every
// reachable state. All violations are collected, in discovery order, each
// with a shortest witness path; an empty result means every invariant holds
// across the whole reachable state space.
func CheckInvariants[S comparable, A any](g RootedGraph[S, A], invs ...Invariant[S]) ([]Violation[S], error) {
	exp, err := Explore(g)
	if err != nil {
		return nil, err
	}

	violations := make([]Violation[S], 0)
	for _, s := range exp.order {
		for _, inv := range invs {
			if inv.Evaluate(s) {
				continue
			}
			path, err := exp.Path(s)
			if err != nil {
				return nil, err
			}
			violations = append(violations, Violation[S]{
				Invariant: inv.Name(),
				State:     s,
				Path:      path,
			})
		}
	}
	return violations, nil
}

// Deadlocks returns every reachable state with no enabled action, in
// discovery order.
func Deadlocks[S comparable, A any](g RootedGraph[S, A]) ([]S, error) {
	exp, err := Explore(g)
	if err != nil {
		return nil, err
	}

	deadlocked := make([]S, 0)
	for _, s := range exp.order {
		edges, err := g.Successors(s)
		if err != nil {
			return nil, err
		}
		if len(edges) == 0 {
			deadlocked = append(deadlocked, s)
		}
	}
	return deadlocked, nil
}
