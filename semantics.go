package soup

// Semantics is the contract every explorable transition system satisfies:
// concrete systems built with the guarded-transition DSL, hand-authored
// property automata and synchronous products all implement it, and the
// exploration algorithms depend on nothing else.
//
// S is the state type. States are immutable values compared with ==; two
// states are equal iff all their fields are equal. A is the action type.
//
// Implementations must be pure: repeated calls with the same arguments
// return the same results, and no call mutates the receiver.
type Semantics[S comparable, A any] interface {
	// Initials returns the initial state set. It is never empty for a
	// well-formed system.
	Initials() ([]S, error)

	// Actions returns the actions enabled at s, in a deterministic order.
	// An empty result means s is a terminal (deadlocked) state.
	Actions(s S) ([]A, error)

	// Execute returns the unique successor reached by taking a at s.
	// Executing an action that is not enabled at s is a usage error and
	// fails with ErrActionNotEnabled.
	Execute(s S, a A) (S, error)
}
