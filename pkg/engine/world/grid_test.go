// Package world tests room parsing and neighbour arithmetic on the 5x5 grid.
package world

import (
	"errors"
	"testing"
)

func TestParseRoom_RoundTrip(t *testing.T) {
	count := 0
	ForEachRoom(func(r Room) {
		count++
		parsed, err := ParseRoom(r.String())
		if err != nil {
			t.Fatalf("ParseRoom(%q) error: %v", r.String(), err)
		}
		if parsed != r {
			t.Errorf("ParseRoom(%q) = %v, want %v", r.String(), parsed, r)
		}
	})
	if count != 25 {
		t.Errorf("ForEachRoom visited %d rooms, want 25", count)
	}
}

func TestParseRoom_Invalid(t *testing.T) {
	for _, s := range []string{"", "C", "F1", "A0", "A6", "c3", "C33", "X"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseRoom(s)
			if !errors.Is(err, ErrInvalidRoom) {
				t.Errorf("ParseRoom(%q) error = %v, want ErrInvalidRoom", s, err)
			}
		})
	}
}

func TestNeighbor_Examples(t *testing.T) {
	cases := []struct {
		room string
		dir  Direction
		want string
		ok   bool
	}{
		{"C3", North, "B3", true},
		{"C3", South, "D3", true},
		{"C3", West, "C2", true},
		{"C3", East, "C4", true},
		{"A1", North, "", false},
		{"A1", West, "", false},
		{"E5", East, "", false},
		{"E5", South, "", false},
		{"A2", West, "A1", true},
	}
	for _, c := range cases {
		t.Run(c.room+"_"+c.dir.String(), func(t *testing.T) {
			got, ok := Neighbor(MustParseRoom(c.room), c.dir)
			if ok != c.ok {
				t.Fatalf("Neighbor(%s, %s) ok = %v, want %v", c.room, c.dir, ok, c.ok)
			}
			if ok && got.String() != c.want {
				t.Errorf("Neighbor(%s, %s) = %s, want %s", c.room, c.dir, got, c.want)
			}
		})
	}
}

// opposite finds the direction whose delta cancels dir's
func opposite(dir Direction) Direction {
	dr, dc := dir.Delta()
	for _, o := range AllDirections() {
		or, oc := o.Delta()
		if or == -dr && oc == -dc {
			return o
		}
	}
	return dir
}

func TestNeighbor_AlwaysAdjacentOrWall(t *testing.T) {
	ForEachRoom(func(r Room) {
		for _, dir := range AllDirections() {
			n, ok := Neighbor(r, dir)
			if !ok {
				continue
			}
			if !n.IsValid() {
				t.Errorf("Neighbor(%s, %s) = %v, not on grid", r, dir, n)
			}
			if r.Distance(n) != 1 {
				t.Errorf("Neighbor(%s, %s) = %s, distance %d, want 1", r, dir, n, r.Distance(n))
			}
			back, ok := Neighbor(n, opposite(dir))
			if !ok || back != r {
				t.Errorf("Neighbor(%s, %s) = %v, want %s", n, opposite(dir), back, r)
			}
		}
	})
}

func TestNeighbors_Counts(t *testing.T) {
	cases := map[string]int{"C3": 4, "A1": 2, "E5": 2, "A3": 3, "C1": 3}
	for name, want := range cases {
		if got := len(Neighbors(MustParseRoom(name))); got != want {
			t.Errorf("len(Neighbors(%s)) = %d, want %d", name, got, want)
		}
	}
}

func TestCorners(t *testing.T) {
	want := []string{"A1", "A5", "E1", "E5"}
	got := Corners()
	if len(got) != len(want) {
		t.Fatalf("len(Corners()) = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.String() != want[i] {
			t.Errorf("Corners()[%d] = %s, want %s", i, c, want[i])
		}
		if !IsCorner(c) {
			t.Errorf("IsCorner(%s) = false, want true", c)
		}
	}
	if IsCorner(MustParseRoom("C3")) {
		t.Error("IsCorner(C3) = true, want false")
	}
}

func TestDirection_String(t *testing.T) {
	want := []string{"north", "east", "south", "west"}
	for i, dir := range AllDirections() {
		if dir.String() != want[i] {
			t.Errorf("AllDirections()[%d] = %q, want %q", i, dir, want[i])
		}
	}
	if Direction(9).String() != "unknown" {
		t.Errorf("Direction(9).String() = %q", Direction(9).String())
	}
}
