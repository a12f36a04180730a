package soup

import "testing"

// adjGraph is a hand-built rooted graph over int vertices with string edge
// labels, used to exercise the exploration algorithms independently of any
// transition system.
type adjGraph struct {
	roots []int
	edges map[int][]Edge[int, string]
}

func (g adjGraph) Roots() ([]int, error) {
	return g.roots, nil
}

func (g adjGraph) Successors(v int) ([]Edge[int, string], error) {
	return g.edges[v], nil
}

// counter is the state of the bounded-counter test soup.
type counter struct {
	N int
}

// newCounterSoup builds a soup counting between 0 and max with inc and dec
// pieces.
func newCounterSoup(t *testing.T, max int) *Soup[counter] {
	t.Helper()
	sp, err := NewSoup([]counter{{N: 0}},
		NewPiece("inc",
			func(c counter) bool { return c.N < max },
			func(c counter) counter { return counter{N: c.N + 1} }),
		NewPiece("dec",
			func(c counter) bool { return c.N > 0 },
			func(c counter) counter { return counter{N: c.N - 1} }),
	)
	if err != nil {
		t.Fatalf("newCounterSoup: %v", err)
	}
	return sp
}

func pieceNames(ps []Piece[counter]) []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name()
	}
	return names
}
