package mutex

import "github.com/soupx/soup"

// Label is a property automaton control label.
type Label string

// Control labels shared by the property automata. Each property uses a
// small closed subset.
const (
	Watching     Label = "watching"
	Violated     Label = "violated"
	Deadlocked   Label = "deadlocked"
	Starved      Label = "starved"
	AliceWaiting Label = "alice-waiting"
	BobWaiting   Label = "bob-waiting"
	AliceAlone   Label = "alice-alone"
	BobAlone     Label = "bob-alone"
)

// Acceptance levels for the two-sided liveness properties P4 and P5.
const (
	acceptAlice = 1
	acceptBob   = 2
)

type obs = soup.Observation[State]

func aliceInCS(o obs) bool { return o.State.Alice == Crit }
func bobInCS(o obs) bool   { return o.State.Bob == Crit }
func bothInCS(o obs) bool  { return aliceInCS(o) && bobInCS(o) }
func someInCS(o obs) bool  { return aliceInCS(o) || bobInCS(o) }

// P1 is mutual exclusion: never both processes in the critical section. The
// automaton accepts exactly the runs where both were in the critical
// section at some point, trapping in the violated label.
func P1() *soup.Automaton[State, Label] {
	return soup.NewAutomaton[State](Watching).
		Transition(Watching, Watching, func(o obs) bool { return !bothInCS(o) }).
		AcceptingTransition(Watching, Violated, 1, bothInCS).
		AcceptingTransition(Violated, Violated, 1, func(obs) bool { return true })
}

// P2 is deadlock freedom. The automaton accepts the runs that reach a
// system state with no enabled action, observed through the deadlock flag;
// the deadlocked trap then stutters with the stuck system forever.
func P2() *soup.Automaton[State, Label] {
	return soup.NewAutomaton[State](Watching).
		Transition(Watching, Watching, func(o obs) bool { return !o.Deadlocked }).
		AcceptingTransition(Watching, Deadlocked, 1, func(o obs) bool { return o.Deadlocked }).
		AcceptingTransition(Deadlocked, Deadlocked, 1, func(obs) bool { return true })
}

// P3 is the liveness property "someone eventually enters the critical
// section, again and again": it accepts the runs with an infinite suffix in
// which nobody is ever in the critical section.
func P3() *soup.Automaton[State, Label] {
	return soup.NewAutomaton[State](Watching).
		Transition(Watching, Watching, func(obs) bool { return true }).
		AcceptingTransition(Watching, Starved, 1, func(o obs) bool { return !someInCS(o) }).
		AcceptingTransition(Starved, Starved, 1, func(o obs) bool { return !someInCS(o) })
}

// P4 is "whoever raises a flag eventually enters the critical section": it
// accepts the runs where a process keeps its flag up without ever entering.
// The two obligations carry distinct acceptance levels.
func P4() *soup.Automaton[State, Label] {
	return soup.NewAutomaton[State](Watching).
		Transition(Watching, Watching, func(obs) bool { return true }).
		AcceptingTransition(Watching, AliceWaiting, acceptAlice, func(o obs) bool {
			return o.State.FlagAlice == Up && !aliceInCS(o)
		}).
		AcceptingTransition(Watching, BobWaiting, acceptBob, func(o obs) bool {
			return o.State.FlagBob == Up && !bobInCS(o)
		}).
		AcceptingTransition(AliceWaiting, AliceWaiting, acceptAlice, func(o obs) bool {
			return !aliceInCS(o)
		}).
		AcceptingTransition(BobWaiting, BobWaiting, acceptBob, func(o obs) bool {
			return !bobInCS(o)
		})
}

// P5 is uncontested progress: a process waiting while the other stays idle
// must eventually enter the critical section. It accepts the runs where one
// side waits alone forever.
func P5() *soup.Automaton[State, Label] {
	return soup.NewAutomaton[State](Watching).
		Transition(Watching, Watching, func(obs) bool { return true }).
		AcceptingTransition(Watching, AliceAlone, acceptAlice, func(o obs) bool {
			return o.State.Alice == Waiting && o.State.Bob == Idle
		}).
		AcceptingTransition(Watching, BobAlone, acceptBob, func(o obs) bool {
			return o.State.Bob == Waiting && o.State.Alice == Idle
		}).
		AcceptingTransition(AliceAlone, AliceAlone, acceptAlice, func(o obs) bool {
			return !aliceInCS(o)
		}).
		AcceptingTransition(BobAlone, BobAlone, acceptBob, func(o obs) bool {
			return !bobInCS(o)
		})
}

// Properties returns the property builders keyed by name.
func Properties() map[string]func() *soup.Automaton[State, Label] {
	return map[string]func() *soup.Automaton[State, Label]{
		"P1": P1,
		"P2": P2,
		"P3": P3,
		"P4": P4,
		"P5": P5,
	}
}
