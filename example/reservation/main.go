// Command reservation contrasts two encodings of a room-booking protocol:
// a racy one where each client checks availability and books in two
// separate steps, and an atomic one where check and booking are a single
// piece. The racy encoding double-books the room on an interleaving the
// invariant check finds together with a shortest witness run.
package main

import (
	"fmt"
	"os"

	"github.com/soupx/soup"
)

// Phase is one client's progress through the booking protocol.
type Phase string

const (
	Idle    Phase = "idle"
	SawFree Phase = "saw-free"
	Done    Phase = "done"
)

// Rooms is the protocol state: both client phases and the number of
// bookings recorded for the single room.
type Rooms struct {
	Alice  Phase
	Bob    Phase
	Booked int
}

func (r Rooms) String() string {
	return fmt.Sprintf("A:%s B:%s booked:%d", r.Alice, r.Bob, r.Booked)
}

// racy books in two steps: observing the room free and writing the booking
// are separate pieces, so both clients can observe the room free before
// either books it.
func racy() (*soup.Soup[Rooms], error) {
	return soup.NewSoup([]Rooms{{Alice: Idle, Bob: Idle}},
		soup.NewPiece("alice-check",
			func(r Rooms) bool { return r.Alice == Idle && r.Booked == 0 },
			func(r Rooms) Rooms { r.Alice = SawFree; return r }),
		soup.NewPiece("alice-book",
			func(r Rooms) bool { return r.Alice == SawFree },
			func(r Rooms) Rooms { r.Alice = Done; r.Booked++; return r }),
		soup.NewPiece("bob-check",
			func(r Rooms) bool { return r.Bob == Idle && r.Booked == 0 },
			func(r Rooms) Rooms { r.Bob = SawFree; return r }),
		soup.NewPiece("bob-book",
			func(r Rooms) bool { return r.Bob == SawFree },
			func(r Rooms) Rooms { r.Bob = Done; r.Booked++; return r }),
	)
}

// atomic books in one step guarded on the room still being free.
func atomic() (*soup.Soup[Rooms], error) {
	return soup.NewSoup([]Rooms{{Alice: Idle, Bob: Idle}},
		soup.NewPiece("alice-reserve",
			func(r Rooms) bool { return r.Alice == Idle && r.Booked == 0 },
			func(r Rooms) Rooms { r.Alice = Done; r.Booked++; return r }),
		soup.NewPiece("bob-reserve",
			func(r Rooms) bool { return r.Bob == Idle && r.Booked == 0 },
			func(r Rooms) Rooms { r.Bob = Done; r.Booked++; return r }),
	)
}

var atMostOneBooking = soup.NewInvariant("at-most-one-booking", func(r Rooms) bool {
	return r.Booked <= 1
})

func check(name string, build func() (*soup.Soup[Rooms], error)) error {
	sys, err := build()
	if err != nil {
		return err
	}
	violations, err := soup.CheckInvariants(soup.GraphOf[Rooms, soup.Piece[Rooms]](sys), atMostOneBooking)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d violation(s)\n", name, len(violations))
	for _, v := range violations {
		fmt.Printf("  %s broken in %v\n", v.Invariant, v.State)
		for i, s := range v.Path {
			fmt.Printf("    [%d] %v\n", i, s)
		}
	}
	return nil
}

func main() {
	if err := check("racy", racy); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := check("atomic", atomic); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
