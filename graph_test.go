package soup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGraphOf(t *testing.T) {
	sys := newCounterSoup(t, 2)
	g := GraphOf[counter, Piece[counter]](sys)

	roots, err := g.Roots()
	if err != nil {
		t.Fatalf("Roots() error = %v", err)
	}
	if diff := cmp.Diff([]counter{{N: 0}}, roots); diff != "" {
		t.Errorf("Roots() mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name  string
		state counter
		want  []counter
	}{
		{name: "lower bound", state: counter{N: 0}, want: []counter{{N: 1}}},
		{name: "interior", state: counter{N: 1}, want: []counter{{N: 2}, {N: 0}}},
		{name: "upper bound", state: counter{N: 2}, want: []counter{{N: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, err := g.Successors(tt.state)
			if err != nil {
				t.Fatalf("Successors() error = %v", err)
			}
			targets := make([]counter, len(edges))
			for i, e := range edges {
				targets[i] = e.Target
			}
			if diff := cmp.Diff(tt.want, targets); diff != "" {
				t.Errorf("Successors() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGraphOf_ExploresFullStateSpace(t *testing.T) {
	sys := newCounterSoup(t, 3)
	exp, err := Explore(GraphOf[counter, Piece[counter]](sys))
	if err != nil {
		t.Fatalf("Explore() error = %v", err)
	}
	if got, want := exp.Len(), 4; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	for n := 0; n <= 3; n++ {
		if !exp.Contains(counter{N: n}) {
			t.Errorf("Contains(%d) = false, want true", n)
		}
	}
}
