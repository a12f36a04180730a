package soup

import "fmt"

// Guard is a total, side-effect-free predicate deciding whether a piece is
// enabled at a state.
type Guard[S comparable] func(s S) bool

// Effect is a deterministic state transformation applied when an enabled
// piece executes. It must be defined for every state on which the piece's
// guard holds.
type Effect[S comparable] func(s S) S

// Piece is a named guarded-transition rule: a guard deciding when the piece
// is enabled and an effect producing the successor state.
type Piece[S comparable] struct {
	name   string
	guard  Guard[S]
	effect Effect[S]
}

// NewPiece creates a named piece from a guard and an effect.
//
// Parameters:
//   - name: The piece name, unique within its soup
//   - guard: Predicate deciding when the piece is enabled
//   - effect: Transformation applied when the piece executes
//
// Example:
//
//	enter := soup.NewPiece("enter",
//	    func(s Counter) bool { return s.N < 3 },
//	    func(s Counter) Counter { return Counter{N: s.N + 1} },
//	)
func NewPiece[S comparable](name string, guard Guard[S], effect Effect[S]) Piece[S] {
	return Piece[S]{name: name, guard: guard, effect: effect}
}

// Name returns the piece name.
func (p Piece[S]) Name() string { return p.name }

func (p Piece[S]) String() string { return p.name }

// Soup is a finite set of pieces together with a non-empty initial state
// set. It is the DSL's unit of system definition and implements Semantics
// with the pieces themselves as actions: Actions filters the pieces whose
// guard holds, Execute applies the piece's effect.
//
// A Soup retains no hidden state between calls; every call is a pure
// function of the soup, the state and the piece.
type Soup[S comparable] struct {
	pieces   []Piece[S]
	initials []S
}

// NewSoup creates a soup from an initial state set and a piece set.
//
// Parameters:
//   - initials: The initial states; must be non-empty
//   - pieces: The guarded-transition rules; names must be unique
//
// Returns the soup, or ErrEmptyInitialSet / ErrDuplicatePiece when the
// data-model invariants are violated.
//
// Example:
//
//	sys, err := soup.NewSoup([]Counter{{N: 0}}, inc, dec)
func NewSoup[S comparable](initials []S, pieces ...Piece[S]) (*Soup[S], error) {
	if len(initials) == 0 {
		return nil, fmt.Errorf("soup needs at least one initial state: %w", ErrEmptyInitialSet)
	}
	seen := make(map[string]bool, len(pieces))
	for _, p := range pieces {
		if seen[p.name] {
			return nil, fmt.Errorf("piece %q declared twice: %w", p.name, ErrDuplicatePiece)
		}
		seen[p.name] = true
	}
	return &Soup[S]{pieces: pieces, initials: initials}, nil
}

// Initials returns the soup's initial state set unchanged.
func (sp *Soup[S]) Initials() ([]S, error) {
	out := make([]S, len(sp.initials))
	copy(out, sp.initials)
	return out, nil
}

// Actions returns exactly the pieces whose guard holds at s, in declaration
// order. An empty result is the system's notion of a deadlocked state.
func (sp *Soup[S]) Actions(s S) ([]Piece[S], error) {
	enabled := make([]Piece[S], 0)
	for _, p := range sp.pieces {
		if p.guard(s) {
			enabled = append(enabled, p)
		}
	}
	return enabled, nil
}

// Execute applies the piece's effect to s. It fails with
// ErrActionNotEnabled when the piece's guard does not hold at s.
func (sp *Soup[S]) Execute(s S, p Piece[S]) (S, error) {
	if !p.guard(s) {
		var zero S
		return zero, fmt.Errorf("piece %q at state %v: %w", p.name, s, ErrActionNotEnabled)
	}
	return p.effect(s), nil
}
