package soup

import "fmt"

// Observation is what a property automaton sees of the system on each
// synchronization step: the system state just produced and whether that
// state has no enabled actions.
type Observation[S comparable] struct {
	State      S
	Deadlocked bool
}

// ObservationGuard decides whether an automaton transition can consume an
// observation. Guards must be total and side-effect-free.
type ObservationGuard[S comparable] func(o Observation[S]) bool

// Transition is a single guarded move of a property automaton: it consumes
// an observation of the system and advances the control label, optionally
// marking the step as accepting. Acceptance is a function of the transition
// taken only, never of history beyond the control label.
type Transition[S comparable, Q comparable] struct {
	from   Q
	to     Q
	guard  ObservationGuard[S]
	accept int
}

// From returns the source control label.
func (t Transition[S, Q]) From() Q { return t.from }

// To returns the target control label.
func (t Transition[S, Q]) To() Q { return t.to }

// Accept returns the transition's acceptance level. Level 0 means the
// transition is not accepting; properties with independent liveness
// obligations distinguish them with distinct positive levels.
func (t Transition[S, Q]) Accept() int { return t.accept }

// Accepting reports whether the transition belongs to any accepting set.
func (t Transition[S, Q]) Accepting() bool { return t.accept > 0 }

func (t Transition[S, Q]) String() string {
	if t.accept > 0 {
		return fmt.Sprintf("%v->%v(acc=%d)", t.from, t.to, t.accept)
	}
	return fmt.Sprintf("%v->%v", t.from, t.to)
}

// Automaton is a Büchi-style property automaton over control labels Q,
// driven by observations of a system with state type S. It is authored by
// hand, transition by transition, and consumed by the synchronous product.
//
// An Automaton is itself a transition system over its control labels and
// implements Semantics[Q, Transition[S, Q]]; the per-observation guard
// filtering used during product construction goes through Enabled.
type Automaton[S comparable, Q comparable] struct {
	initial Q
	trans   map[Q][]Transition[S, Q]
}

// NewAutomaton creates an automaton with the given initial control label.
//
// Example:
//
//	p := soup.NewAutomaton[State]("watching").
//	    Transition("watching", "watching", func(o soup.Observation[State]) bool { return !bad(o.State) }).
//	    AcceptingTransition("watching", "violated", 1, func(o soup.Observation[State]) bool { return bad(o.State) }).
//	    AcceptingTransition("violated", "violated", 1, func(soup.Observation[State]) bool { return true })
func NewAutomaton[S comparable, Q comparable](initial Q) *Automaton[S, Q] {
	return &Automaton[S, Q]{
		initial: initial,
		trans:   make(map[Q][]Transition[S, Q]),
	}
}

// Transition declares a non-accepting transition from one control label to
// another, guarded by the given observation predicate. It returns the
// automaton for chaining.
func (a *Automaton[S, Q]) Transition(from, to Q, guard ObservationGuard[S]) *Automaton[S, Q] {
	a.trans[from] = append(a.trans[from], Transition[S, Q]{from: from, to: to, guard: guard})
	return a
}

// AcceptingTransition declares a transition carrying the given acceptance
// level (level >= 1). It returns the automaton for chaining.
func (a *Automaton[S, Q]) AcceptingTransition(from, to Q, level int, guard ObservationGuard[S]) *Automaton[S, Q] {
	a.trans[from] = append(a.trans[from], Transition[S, Q]{from: from, to: to, guard: guard, accept: level})
	return a
}

// Initial returns the initial control label.
func (a *Automaton[S, Q]) Initial() Q { return a.initial }

// Defined reports whether any transition at all is declared at the given
// control label. A label with no declared transitions makes the automaton
// incomplete over the observation alphabet.
func (a *Automaton[S, Q]) Defined(q Q) bool {
	return len(a.trans[q]) > 0
}

// Enabled returns the transitions from q whose guard holds for the given
// observation, in declaration order.
func (a *Automaton[S, Q]) Enabled(q Q, o Observation[S]) []Transition[S, Q] {
	enabled := make([]Transition[S, Q], 0)
	for _, t := range a.trans[q] {
		if t.guard(o) {
			enabled = append(enabled, t)
		}
	}
	return enabled
}

// Initials returns the initial control label as a singleton set.
func (a *Automaton[S, Q]) Initials() ([]Q, error) {
	return []Q{a.initial}, nil
}

// Actions returns every transition declared at q, in declaration order.
func (a *Automaton[S, Q]) Actions(q Q) ([]Transition[S, Q], error) {
	out := make([]Transition[S, Q], len(a.trans[q]))
	copy(out, a.trans[q])
	return out, nil
}

// Execute advances the automaton along the given transition. It fails with
// ErrActionNotEnabled when the transition does not start at q.
func (a *Automaton[S, Q]) Execute(q Q, t Transition[S, Q]) (Q, error) {
	if t.from != q {
		var zero Q
		return zero, fmt.Errorf("transition %v at label %v: %w", t, q, ErrActionNotEnabled)
	}
	return t.to, nil
}
