package mutex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soupx/soup"
)

func mustSystem(t *testing.T, name string) *soup.Soup[State] {
	t.Helper()
	build, ok := Systems()[name]
	if !ok {
		t.Fatalf("unknown system %q", name)
	}
	sys, err := build()
	if err != nil {
		t.Fatalf("building %s: %v", name, err)
	}
	return sys
}

func mustProperty(t *testing.T, name string) *soup.Automaton[State, Label] {
	t.Helper()
	build, ok := Properties()[name]
	if !ok {
		t.Fatalf("unknown property %q", name)
	}
	return build()
}

func TestVerdicts(t *testing.T) {
	tests := []struct {
		system   string
		property string
		holds    bool
	}{
		{system: "AB1", property: "P1", holds: false},
		{system: "AB1", property: "P2", holds: true},
		{system: "AB2", property: "P1", holds: true},
		{system: "AB2", property: "P2", holds: false},
		{system: "AB3", property: "P1", holds: true},
		{system: "AB3", property: "P2", holds: true},
		{system: "AB3", property: "P3", holds: false},
		{system: "AB4", property: "P1", holds: true},
		{system: "AB4", property: "P2", holds: true},
		{system: "AB5", property: "P1", holds: true},
		{system: "AB5", property: "P2", holds: true},
		{system: "AB5", property: "P3", holds: true},
		{system: "AB5", property: "P4", holds: true},
		{system: "AB5", property: "P5", holds: true},
	}

	for _, tt := range tests {
		t.Run(tt.system+"x"+tt.property, func(t *testing.T) {
			sys := mustSystem(t, tt.system)
			prop := mustProperty(t, tt.property)

			res, err := soup.Verify[State, soup.Piece[State], Label](sys, prop)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if res.Holds != tt.holds {
				t.Errorf("Holds = %v, want %v (counter-example: %+v)",
					res.Holds, tt.holds, res.CounterExample)
			}
			if res.Holds && res.CounterExample != nil {
				t.Errorf("holding verdict carries counter-example %+v", res.CounterExample)
			}
			if !res.Holds && res.CounterExample == nil {
				t.Error("violated verdict carries no counter-example")
			}
		})
	}
}

func TestExclusionCounterExample(t *testing.T) {
	sys := mustSystem(t, "AB1")
	res, err := soup.Verify[State, soup.Piece[State], Label](sys, mustProperty(t, "P1"))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if res.Holds {
		t.Fatal("Holds = true, want false")
	}

	prefix := res.CounterExample.Prefix
	if len(prefix) != 3 {
		t.Fatalf("prefix has %d entries, want 3 (two steps to the violation)", len(prefix))
	}
	last := prefix[len(prefix)-1]
	if !last.Accepting {
		t.Errorf("violation state %v is not marked accepting", last.State)
	}
	if last.State.Prop != Violated {
		t.Errorf("violation label = %v, want %v", last.State.Prop, Violated)
	}
	if got := last.State.Sys; got.Alice != Crit || got.Bob != Crit {
		t.Errorf("violation system state = %v, want both processes in the critical section", got)
	}
}

func TestDeadlockCounterExample(t *testing.T) {
	sys := mustSystem(t, "AB2")
	res, err := soup.Verify[State, soup.Piece[State], Label](sys, mustProperty(t, "P2"))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if res.Holds {
		t.Fatal("Holds = true, want false")
	}

	cycle := res.CounterExample.Cycle
	if len(cycle) != 2 {
		t.Fatalf("cyclic suffix has %d entries, want 2 (a single stutter step)", len(cycle))
	}
	if cycle[0].State != cycle[len(cycle)-1].State {
		t.Errorf("cycle is not closed: %v != %v", cycle[0].State, cycle[len(cycle)-1].State)
	}
	stuck := cycle[0].State
	if stuck.Prop != Deadlocked {
		t.Errorf("cycle label = %v, want %v", stuck.Prop, Deadlocked)
	}
	want := State{Alice: Waiting, Bob: Waiting, FlagAlice: Up, FlagBob: Up, Turn: Alice}
	if diff := cmp.Diff(want, stuck.Sys); diff != "" {
		t.Errorf("stuck system state mismatch (-want +got):\n%s", diff)
	}
}

// replaySteps checks that each consecutive pair of a trace is connected by
// an enabled product step ending in the expected successor.
func replaySteps(t *testing.T, prod *soup.Product[State, soup.Piece[State], Label], trace []soup.TraceState[soup.ProductState[State, Label]]) {
	t.Helper()
	for i := 0; i+1 < len(trace); i++ {
		from, to := trace[i].State, trace[i+1].State
		steps, err := prod.Actions(from)
		if err != nil {
			t.Fatalf("Actions(%v): %v", from, err)
		}
		found := false
		for _, st := range steps {
			next, err := prod.Execute(from, st)
			if err != nil {
				t.Fatalf("Execute(%v, %v): %v", from, st, err)
			}
			if next == to {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no enabled step from %v to %v", from, to)
		}
	}
}

func TestCounterExampleIsReplayable(t *testing.T) {
	tests := []struct {
		system   string
		property string
	}{
		{system: "AB1", property: "P1"},
		{system: "AB2", property: "P2"},
		{system: "AB3", property: "P3"},
	}

	for _, tt := range tests {
		t.Run(tt.system+"x"+tt.property, func(t *testing.T) {
			sys := mustSystem(t, tt.system)
			prop := mustProperty(t, tt.property)

			res, err := soup.Verify[State, soup.Piece[State], Label](sys, prop)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if res.Holds {
				t.Fatal("Holds = true, want false")
			}

			lasso := res.CounterExample
			if first, last := lasso.Cycle[0].State, lasso.Cycle[len(lasso.Cycle)-1].State; first != last {
				t.Fatalf("cycle is not closed: %v != %v", first, last)
			}
			if pend, cstart := lasso.Prefix[len(lasso.Prefix)-1].State, lasso.Cycle[0].State; pend != cstart {
				t.Fatalf("prefix ends at %v, cycle starts at %v", pend, cstart)
			}

			prod := soup.NewProduct[State, soup.Piece[State], Label](sys, prop)
			inits, err := prod.Initials()
			if err != nil {
				t.Fatalf("Initials() error = %v", err)
			}
			root := false
			for _, in := range inits {
				if in == lasso.Prefix[0].State {
					root = true
					break
				}
			}
			if !root {
				t.Errorf("prefix starts at %v, not an initial product state", lasso.Prefix[0].State)
			}
			replaySteps(t, prod, lasso.Prefix)
			replaySteps(t, prod, lasso.Cycle)
		})
	}
}

func TestExclusionInvariant(t *testing.T) {
	exclusion := soup.NewInvariant("mutual-exclusion", func(s State) bool {
		return !(s.Alice == Crit && s.Bob == Crit)
	})

	tests := []struct {
		system     string
		violations int
	}{
		{system: "AB1", violations: 1},
		{system: "AB2", violations: 0},
		{system: "AB3", violations: 0},
		{system: "AB4", violations: 0},
		{system: "AB5", violations: 0},
	}

	for _, tt := range tests {
		t.Run(tt.system, func(t *testing.T) {
			sys := mustSystem(t, tt.system)
			got, err := soup.CheckInvariants(soup.GraphOf[State, soup.Piece[State]](sys), exclusion)
			if err != nil {
				t.Fatalf("CheckInvariants() error = %v", err)
			}
			if len(got) != tt.violations {
				t.Fatalf("got %d violations, want %d: %+v", len(got), tt.violations, got)
			}
			for _, v := range got {
				if v.State.Alice != Crit || v.State.Bob != Crit {
					t.Errorf("violation state = %v, want both processes in the critical section", v.State)
				}
				if len(v.Path) != 3 {
					t.Errorf("witness path has %d states, want 3", len(v.Path))
				}
			}
		})
	}
}

func TestDeadlockSearch(t *testing.T) {
	tests := []struct {
		system string
		want   []State
	}{
		{system: "AB1", want: []State{}},
		{
			system: "AB2",
			want: []State{
				{Alice: Waiting, Bob: Waiting, FlagAlice: Up, FlagBob: Up, Turn: Alice},
			},
		},
		{system: "AB3", want: []State{}},
		{system: "AB4", want: []State{}},
		{system: "AB5", want: []State{}},
	}

	for _, tt := range tests {
		t.Run(tt.system, func(t *testing.T) {
			sys := mustSystem(t, tt.system)
			got, err := soup.Deadlocks(soup.GraphOf[State, soup.Piece[State]](sys))
			if err != nil {
				t.Fatalf("Deadlocks() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Deadlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStateSpaceSize(t *testing.T) {
	sys := mustSystem(t, "AB1")
	exp, err := soup.Explore(soup.GraphOf[State, soup.Piece[State]](sys))
	if err != nil {
		t.Fatalf("Explore() error = %v", err)
	}
	if got, want := exp.Len(), 4; got != want {
		t.Errorf("AB1 reaches %d states, want %d", got, want)
	}
}
