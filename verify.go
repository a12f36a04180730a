package soup

import "time"

type config struct {
	acceptLevel int
}

// Option configures a verification run.
type Option func(*config)

// WithAcceptLevel restricts cycle detection to transitions carrying exactly
// the given acceptance level, checking a single obligation of a property
// whose transitions use distinct levels. The default considers every
// positive level accepting.
func WithAcceptLevel(level int) Option {
	return func(c *config) {
		c.acceptLevel = level
	}
}

// Result is the outcome of verifying one (system, property) pair. Holds
// reports the automaton-theoretic verdict: true when the product admits no
// accepting cycle. The properties in this repository are encoded so that an
// accepting run denotes a violation of the intended system property, so
// Holds == true means the property is satisfied.
type Result[S comparable, Q comparable] struct {
	Holds          bool
	CounterExample *Lasso[ProductState[S, Q]]

	States          int
	Transitions     int
	ExecutionTimeMs int64
}

// Verify composes the system with the property automaton, explores the
// product state space and decides whether an accepting lasso exists. On
// violation the result carries a counter-example; on a malformed soup or
// property encoding it returns the configuration error and the pair's
// verdict is meaningless.
//
// Example:
//
//	res, err := soup.Verify[State, soup.Piece[State], Label](sys, prop)
//	if err != nil {
//	    return err
//	}
//	if !res.Holds {
//	    fmt.Println("violated:", res.CounterExample)
//	}
func Verify[S comparable, A any, Q comparable](sys Semantics[S, A], prop *Automaton[S, Q], opts ...Option) (Result[S, Q], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	prod := NewProduct(sys, prop)
	g := GraphOf[ProductState[S, Q], Step[S, A, Q]](prod)

	start := time.Now()
	exp, err := Explore(g)
	if err != nil {
		return Result[S, Q]{}, err
	}
	lasso, err := detectOnExploration(g, exp, func(st Step[S, A, Q]) bool {
		if cfg.acceptLevel > 0 {
			return st.Watch.Accept() == cfg.acceptLevel
		}
		return st.Watch.Accepting()
	})
	if err != nil {
		return Result[S, Q]{}, err
	}

	return Result[S, Q]{
		Holds:           lasso == nil,
		CounterExample:  lasso,
		States:          exp.Len(),
		Transitions:     exp.Transitions(),
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}, nil
}
