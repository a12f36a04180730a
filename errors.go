package soup

import "errors"

var (
	// ErrActionNotEnabled is returned by Execute when the requested action's
	// guard does not hold at the given state. Exploration only executes
	// actions it first obtained from Actions, so hitting this error always
	// indicates a caller bug.
	ErrActionNotEnabled = errors.New("action not enabled")

	// ErrStateUnreachable is returned by Path when the requested target was
	// never visited during exploration.
	ErrStateUnreachable = errors.New("state unreachable")

	// ErrEmptyInitialSet is returned at construction time for a soup or
	// automaton with no initial state.
	ErrEmptyInitialSet = errors.New("empty initial state set")

	// ErrDuplicatePiece is returned at construction time when two pieces of
	// the same soup share a name.
	ErrDuplicatePiece = errors.New("duplicate piece name")

	// ErrIncompatibleSync is returned during product exploration when the
	// system enables an action while the property automaton's current
	// control label has no outgoing transitions declared at all. The
	// property encoding is incomplete over the system's observation
	// alphabet and verification of that pair is meaningless.
	ErrIncompatibleSync = errors.New("property automaton cannot consume system action")
)
