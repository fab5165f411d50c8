package world

import (
	"github.com/zyedidia/generic/mapset"
)

// RoomSet is a set of rooms
type RoomSet = mapset.Set[Room]

// NewRoomSet creates an empty room set
func NewRoomSet() RoomSet {
	return mapset.New[Room]()
}

var corners = []Room{
	{Row: 0, Col: 1},
	{Row: 0, Col: Cols},
	{Row: Rows - 1, Col: 1},
	{Row: Rows - 1, Col: Cols},
}

var cornerSet = func() RoomSet {
	s := NewRoomSet()
	for _, c := range corners {
		s.Put(c)
	}
	return s
}()

// Neighbor returns the room adjacent to r in the given direction.
// The second result is false when the move would leave the grid (a wall).
func Neighbor(r Room, dir Direction) (Room, bool) {
	if !r.IsValid() || !dir.IsValid() {
		return Room{}, false
	}
	rowRel, colRel := dir.Delta()
	return NewRoom(r.Row+rowRel, r.Col+colRel)
}

// Neighbors returns every on-grid neighbour of r keyed by direction
func Neighbors(r Room) map[Direction]Room {
	ret := make(map[Direction]Room, 4)
	for _, dir := range AllDirections() {
		if n, ok := Neighbor(r, dir); ok {
			ret[dir] = n
		}
	}
	return ret
}

// Corners returns the four corner rooms in A1, A5, E1, E5 order
func Corners() []Room {
	ret := make([]Room, len(corners))
	copy(ret, corners)
	return ret
}

// IsCorner returns true if r is one of the four corner rooms
func IsCorner(r Room) bool {
	return cornerSet.Has(r)
}

// ForEachRoom iterates over all rooms in row-major order
func ForEachRoom(fn func(r Room)) {
	for row := 0; row < Rows; row++ {
		for col := 1; col <= Cols; col++ {
			fn(Room{Row: row, Col: col})
		}
	}
}
