package main

import (
	"fmt"
	"log"

	"github.com/soupx/soup"
)

// Rods is a Towers-of-Hanoi configuration. Each rod lists its disks bottom
// to top; '3' is the largest disk.
type Rods struct {
	A, B, C string
}

func (r Rods) String() string {
	return fmt.Sprintf("A:%-3s B:%-3s C:%-3s", r.A, r.B, r.C)
}

func top(rod string) byte { return rod[len(rod)-1] }

func canMove(from, to string) bool {
	return len(from) > 0 && (len(to) == 0 || top(to) > top(from))
}

// move builds the piece transferring the top disk between two rods, using
// getters/setters so one helper covers all six moves.
func move(name string, get func(Rods) (string, string), set func(Rods, string, string) Rods) soup.Piece[Rods] {
	return soup.NewPiece(name,
		func(r Rods) bool {
			from, to := get(r)
			return canMove(from, to)
		},
		func(r Rods) Rods {
			from, to := get(r)
			return set(r, from[:len(from)-1], to+string(top(from)))
		})
}

func hanoi() (*soup.Soup[Rods], error) {
	return soup.NewSoup([]Rods{{A: "321"}},
		move("A->B",
			func(r Rods) (string, string) { return r.A, r.B },
			func(r Rods, from, to string) Rods { r.A, r.B = from, to; return r }),
		move("A->C",
			func(r Rods) (string, string) { return r.A, r.C },
			func(r Rods, from, to string) Rods { r.A, r.C = from, to; return r }),
		move("B->A",
			func(r Rods) (string, string) { return r.B, r.A },
			func(r Rods, from, to string) Rods { r.B, r.A = from, to; return r }),
		move("B->C",
			func(r Rods) (string, string) { return r.B, r.C },
			func(r Rods, from, to string) Rods { r.B, r.C = from, to; return r }),
		move("C->A",
			func(r Rods) (string, string) { return r.C, r.A },
			func(r Rods, from, to string) Rods { r.C, r.A = from, to; return r }),
		move("C->B",
			func(r Rods) (string, string) { return r.C, r.B },
			func(r Rods, from, to string) Rods { r.C, r.B = from, to; return r }),
	)
}

func solve() ([]Rods, error) {
	sys, err := hanoi()
	if err != nil {
		return nil, err
	}
	exp, err := soup.Explore(soup.GraphOf[Rods, soup.Piece[Rods]](sys))
	if err != nil {
		return nil, err
	}
	return exp.Path(Rods{C: "321"})
}

func main() {
	path, err := solve()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("solved in %d moves\n", len(path)-1)
	for i, r := range path {
		fmt.Printf("  [%d] %v\n", i, r)
	}
}
