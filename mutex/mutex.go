// Package mutex provides the Alice & Bob mutual-exclusion protocol family
// AB1-AB5 encoded with the soup DSL, together with the property automata
// P1-P5 checked against them. The encodings are pure data; the checking
// engine consumes them only through the transition-system interface.
package mutex

import (
	"fmt"

	"github.com/soupx/soup"
)

// Location is a process control location.
type Location string

const (
	Idle    Location = "I"
	Waiting Location = "W"
	Crit    Location = "CS"
	Retreat Location = "R"
)

// Flag is the interest flag a process raises before entering its critical
// section.
type Flag string

const (
	Down Flag = "DOWN"
	Up   Flag = "UP"
)

// Actor identifies one of the two processes; AB5 uses it as the value of
// the turn variable.
type Actor string

const (
	Alice Actor = "Alice"
	Bob   Actor = "Bob"
)

// State is the shared protocol state. Every AB model uses the same record;
// models without flags or a turn variable simply never touch those fields.
type State struct {
	Alice     Location
	Bob       Location
	FlagAlice Flag
	FlagBob   Flag
	Turn      Actor
}

func (s State) String() string {
	return fmt.Sprintf("A:%s B:%s fA:%s fB:%s turn:%s",
		s.Alice, s.Bob, s.FlagAlice, s.FlagBob, s.Turn)
}

func initialState() State {
	return State{
		Alice:     Idle,
		Bob:       Idle,
		FlagAlice: Down,
		FlagBob:   Down,
		Turn:      Alice,
	}
}

// AB1 is the naive protocol: each process moves freely between idle and
// the critical section. It violates mutual exclusion.
func AB1() (*soup.Soup[State], error) {
	return soup.NewSoup([]State{initialState()},
		soup.NewPiece("a1",
			func(s State) bool { return s.Alice == Idle },
			func(s State) State { s.Alice = Crit; return s }),
		soup.NewPiece("a2",
			func(s State) bool { return s.Alice == Crit },
			func(s State) State { s.Alice = Idle; return s }),
		soup.NewPiece("b1",
			func(s State) bool { return s.Bob == Idle },
			func(s State) State { s.Bob = Crit; return s }),
		soup.NewPiece("b2",
			func(s State) bool { return s.Bob == Crit },
			func(s State) State { s.Bob = Idle; return s }),
	)
}

// AB2 adds interest flags: a process raises its flag, then waits for the
// other flag to drop before entering. It guarantees exclusion but can
// deadlock when both flags are up.
func AB2() (*soup.Soup[State], error) {
	return soup.NewSoup([]State{initialState()},
		soup.NewPiece("a1",
			func(s State) bool { return s.Alice == Idle },
			func(s State) State { s.Alice = Waiting; s.FlagAlice = Up; return s }),
		soup.NewPiece("a2",
			func(s State) bool { return s.Alice == Waiting && s.FlagBob == Down },
			func(s State) State { s.Alice = Crit; return s }),
		soup.NewPiece("a3",
			func(s State) bool { return s.Alice == Crit },
			func(s State) State { s.Alice = Idle; s.FlagAlice = Down; return s }),
		soup.NewPiece("b1",
			func(s State) bool { return s.Bob == Idle },
			func(s State) State { s.Bob = Waiting; s.FlagBob = Up; return s }),
		soup.NewPiece("b2",
			func(s State) bool { return s.Bob == Waiting && s.FlagAlice == Down },
			func(s State) State { s.Bob = Crit; return s }),
		soup.NewPiece("b3",
			func(s State) bool { return s.Bob == Crit },
			func(s State) State { s.Bob = Idle; s.FlagBob = Down; return s }),
	)
}

// AB3 makes Bob polite: while waiting with Alice's flag up he lowers his
// own flag, raising it again once hers drops.
func AB3() (*soup.Soup[State], error) {
	return soup.NewSoup([]State{initialState()},
		soup.NewPiece("a1",
			func(s State) bool { return s.Alice == Idle },
			func(s State) State { s.Alice = Waiting; s.FlagAlice = Up; return s }),
		soup.NewPiece("a2",
			func(s State) bool { return s.Alice == Waiting && s.FlagBob == Down },
			func(s State) State { s.Alice = Crit; return s }),
		soup.NewPiece("a3",
			func(s State) bool { return s.Alice == Crit },
			func(s State) State { s.Alice = Idle; s.FlagAlice = Down; return s }),
		soup.NewPiece("b1",
			func(s State) bool { return s.Bob == Idle },
			func(s State) State { s.Bob = Waiting; s.FlagBob = Up; return s }),
		soup.NewPiece("b2",
			func(s State) bool { return s.Bob == Waiting && s.FlagBob == Up && s.FlagAlice == Down },
			func(s State) State { s.Bob = Crit; return s }),
		soup.NewPiece("b3",
			func(s State) bool { return s.Bob == Crit },
			func(s State) State { s.Bob = Idle; s.FlagBob = Down; return s }),
		soup.NewPiece("b4",
			func(s State) bool { return s.Bob == Waiting && s.FlagBob == Up && s.FlagAlice == Up },
			func(s State) State { s.FlagBob = Down; return s }),
		soup.NewPiece("b5",
			func(s State) bool { return s.Bob == Waiting && s.FlagBob == Down },
			func(s State) State { s.FlagBob = Up; return s }),
	)
}

// AB4 is AB3 with an explicit retreat location: Bob backs off to R with his
// flag down and retries from there.
func AB4() (*soup.Soup[State], error) {
	return soup.NewSoup([]State{initialState()},
		soup.NewPiece("a1",
			func(s State) bool { return s.Alice == Idle },
			func(s State) State { s.Alice = Waiting; s.FlagAlice = Up; return s }),
		soup.NewPiece("a2",
			func(s State) bool { return s.Alice == Waiting && s.FlagBob == Down },
			func(s State) State { s.Alice = Crit; return s }),
		soup.NewPiece("a3",
			func(s State) bool { return s.Alice == Crit },
			func(s State) State { s.Alice = Idle; s.FlagAlice = Down; return s }),
		soup.NewPiece("b1",
			func(s State) bool { return s.Bob == Idle },
			func(s State) State { s.Bob = Waiting; s.FlagBob = Up; return s }),
		soup.NewPiece("b2",
			func(s State) bool { return s.Bob == Waiting && s.FlagBob == Up && s.FlagAlice == Down },
			func(s State) State { s.Bob = Crit; return s }),
		soup.NewPiece("b3",
			func(s State) bool { return s.Bob == Crit },
			func(s State) State { s.Bob = Idle; s.FlagBob = Down; return s }),
		soup.NewPiece("b4",
			func(s State) bool { return s.Bob == Waiting && s.FlagBob == Up && s.FlagAlice == Up },
			func(s State) State { s.Bob = Retreat; s.FlagBob = Down; return s }),
		soup.NewPiece("b5",
			func(s State) bool { return s.Bob == Retreat && s.FlagAlice == Down },
			func(s State) State { s.Bob = Waiting; s.FlagBob = Up; return s }),
	)
}

// AB5 is Peterson's algorithm: flags plus a turn variable yielding
// exclusion, deadlock freedom and starvation freedom.
func AB5() (*soup.Soup[State], error) {
	return soup.NewSoup([]State{initialState()},
		soup.NewPiece("a1",
			func(s State) bool { return s.Alice == Idle },
			func(s State) State { s.Alice = Waiting; s.FlagAlice = Up; s.Turn = Bob; return s }),
		soup.NewPiece("a2",
			func(s State) bool { return s.Alice == Waiting && (s.Turn == Alice || s.FlagBob == Down) },
			func(s State) State { s.Alice = Crit; return s }),
		soup.NewPiece("a3",
			func(s State) bool { return s.Alice == Crit },
			func(s State) State { s.Alice = Idle; s.FlagAlice = Down; return s }),
		soup.NewPiece("b1",
			func(s State) bool { return s.Bob == Idle },
			func(s State) State { s.Bob = Waiting; s.FlagBob = Up; s.Turn = Alice; return s }),
		soup.NewPiece("b2",
			func(s State) bool { return s.Bob == Waiting && (s.Turn == Bob || s.FlagAlice == Down) },
			func(s State) State { s.Bob = Crit; return s }),
		soup.NewPiece("b3",
			func(s State) bool { return s.Bob == Crit },
			func(s State) State { s.Bob = Idle; s.FlagBob = Down; return s }),
	)
}

// Systems returns the protocol builders keyed by name.
func Systems() map[string]func() (*soup.Soup[State], error) {
	return map[string]func() (*soup.Soup[State], error){
		"AB1": AB1,
		"AB2": AB2,
		"AB3": AB3,
		"AB4": AB4,
		"AB5": AB5,
	}
}
