package soup

import "fmt"

// ProductState pairs a system state with a property control label. It is
// reachable only when both components are reached by the same
// synchronization steps.
type ProductState[S comparable, Q comparable] struct {
	Sys  S
	Prop Q
}

func (ps ProductState[S, Q]) String() string {
	return fmt.Sprintf("%v | %v", ps.Sys, ps.Prop)
}

// Step is one synchronized move of a product: a system action together with
// the property transition consuming its observation. Encoding the property
// branch into the action keeps Execute deterministic while the property
// automaton itself may branch on a single observation.
//
// When the system is deadlocked Stutter is set, Action is the zero value
// and only the property component advances; the system state is repeated.
type Step[S comparable, A any, Q comparable] struct {
	Action  A
	Stutter bool
	Watch   Transition[S, Q]
}

func (st Step[S, A, Q]) String() string {
	if st.Stutter {
		return fmt.Sprintf("(stutter, %v)", st.Watch)
	}
	return fmt.Sprintf("(%v, %v)", st.Action, st.Watch)
}

// Product is the synchronous composition of a system transition system and
// a property automaton. Both components advance in lock-step on every step:
// the system executes an action and the property consumes the observation
// of the successor state. It implements Semantics over ProductState.
type Product[S comparable, A any, Q comparable] struct {
	sys  Semantics[S, A]
	prop *Automaton[S, Q]
}

// NewProduct composes a system with a property automaton.
//
// Example:
//
//	prod := soup.NewProduct[State, soup.Piece[State], Label](sys, prop)
func NewProduct[S comparable, A any, Q comparable](sys Semantics[S, A], prop *Automaton[S, Q]) *Product[S, A, Q] {
	return &Product[S, A, Q]{sys: sys, prop: prop}
}

func (p *Product[S, A, Q]) observe(s S) (Observation[S], error) {
	acts, err := p.sys.Actions(s)
	if err != nil {
		return Observation[S]{}, err
	}
	return Observation[S]{State: s, Deadlocked: len(acts) == 0}, nil
}

// Initials returns the product's initial states: for each initial system
// state, the pairs whose property label is the target of a transition the
// initial control label enables on observing that state. Initial states
// whose observation no transition consumes are simply absent.
func (p *Product[S, A, Q]) Initials() ([]ProductState[S, Q], error) {
	sysInits, err := p.sys.Initials()
	if err != nil {
		return nil, err
	}
	inits := make([]ProductState[S, Q], 0)
	for _, s0 := range sysInits {
		obs, err := p.observe(s0)
		if err != nil {
			return nil, err
		}
		for _, t := range p.prop.Enabled(p.prop.Initial(), obs) {
			inits = append(inits, ProductState[S, Q]{Sys: s0, Prop: t.to})
		}
	}
	return inits, nil
}

// Actions returns the synchronized steps enabled at the product state: one
// step per (system action, enabled property transition) pair, in system
// action order then property declaration order. A deadlocked system state
// yields the stutter steps the property enables under a deadlock
// observation, so deadlock-detecting properties can observe "no successor";
// for all other properties a deadlock terminates the run.
//
// It fails with ErrIncompatibleSync when the system enables an action while
// the current control label has no transitions declared at all.
func (p *Product[S, A, Q]) Actions(ps ProductState[S, Q]) ([]Step[S, A, Q], error) {
	sysActs, err := p.sys.Actions(ps.Sys)
	if err != nil {
		return nil, err
	}

	steps := make([]Step[S, A, Q], 0)
	if len(sysActs) == 0 {
		obs := Observation[S]{State: ps.Sys, Deadlocked: true}
		for _, t := range p.prop.Enabled(ps.Prop, obs) {
			steps = append(steps, Step[S, A, Q]{Stutter: true, Watch: t})
		}
		return steps, nil
	}

	if !p.prop.Defined(ps.Prop) {
		return nil, fmt.Errorf("control label %v has no declared transitions: %w", ps.Prop, ErrIncompatibleSync)
	}

	for _, a := range sysActs {
		next, err := p.sys.Execute(ps.Sys, a)
		if err != nil {
			return nil, err
		}
		obs, err := p.observe(next)
		if err != nil {
			return nil, err
		}
		for _, t := range p.prop.Enabled(ps.Prop, obs) {
			steps = append(steps, Step[S, A, Q]{Action: a, Watch: t})
		}
	}
	return steps, nil
}

// Execute advances both components by one synchronized step and returns the
// paired successor. It fails with ErrActionNotEnabled when the step's
// property transition does not start at the current control label or, for
// stutter steps, when the system is not actually deadlocked.
func (p *Product[S, A, Q]) Execute(ps ProductState[S, Q], st Step[S, A, Q]) (ProductState[S, Q], error) {
	var zero ProductState[S, Q]
	if st.Watch.from != ps.Prop {
		return zero, fmt.Errorf("step %v at product state %v: %w", st, ps, ErrActionNotEnabled)
	}

	if st.Stutter {
		obs, err := p.observe(ps.Sys)
		if err != nil {
			return zero, err
		}
		if !obs.Deadlocked || !st.Watch.guard(obs) {
			return zero, fmt.Errorf("stutter step %v at product state %v: %w", st, ps, ErrActionNotEnabled)
		}
		return ProductState[S, Q]{Sys: ps.Sys, Prop: st.Watch.to}, nil
	}

	next, err := p.sys.Execute(ps.Sys, st.Action)
	if err != nil {
		return zero, err
	}
	obs, err := p.observe(next)
	if err != nil {
		return zero, err
	}
	if !st.Watch.guard(obs) {
		return zero, fmt.Errorf("step %v at product state %v: %w", st, ps, ErrActionNotEnabled)
	}
	return ProductState[S, Q]{Sys: next, Prop: st.Watch.to}, nil
}
