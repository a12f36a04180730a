package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soupx/soup"
)

func TestRacyDoubleBooks(t *testing.T) {
	sys, err := racy()
	if err != nil {
		t.Fatalf("racy() error = %v", err)
	}
	g := soup.GraphOf[Rooms, soup.Piece[Rooms]](sys)

	violations, err := soup.CheckInvariants(g, atMostOneBooking)
	if err != nil {
		t.Fatalf("CheckInvariants() error = %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1: %+v", len(violations), violations)
	}

	v := violations[0]
	want := Rooms{Alice: Done, Bob: Done, Booked: 2}
	if diff := cmp.Diff(want, v.State); diff != "" {
		t.Errorf("violation state mismatch (-want +got):\n%s", diff)
	}
	if got, want := len(v.Path), 5; got != want {
		t.Errorf("witness path has %d states, want %d", got, want)
	}
}

func TestAtomicIsSafe(t *testing.T) {
	sys, err := atomic()
	if err != nil {
		t.Fatalf("atomic() error = %v", err)
	}
	violations, err := soup.CheckInvariants(soup.GraphOf[Rooms, soup.Piece[Rooms]](sys), atMostOneBooking)
	if err != nil {
		t.Fatalf("CheckInvariants() error = %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("got %d violations, want none: %+v", len(violations), violations)
	}
}

func TestStateSpaceSizes(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*soup.Soup[Rooms], error)
		want  int
	}{
		{name: "racy", build: racy, want: 9},
		{name: "atomic", build: atomic, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, err := tt.build()
			if err != nil {
				t.Fatalf("building soup: %v", err)
			}
			exp, err := soup.Explore(soup.GraphOf[Rooms, soup.Piece[Rooms]](sys))
			if err != nil {
				t.Fatalf("Explore() error = %v", err)
			}
			if exp.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", exp.Len(), tt.want)
			}
		})
	}
}
