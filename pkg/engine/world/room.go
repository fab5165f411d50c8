// Package world provides the room grid the game is played on: room
// coordinates, cardinal directions and the neighbour arithmetic between them.
package world

import (
	"errors"
	"fmt"
	"strconv"
)

// Grid dimensions. Rows are lettered A-E, columns numbered 1-5.
const (
	Rows = 5
	Cols = 5
)

const rowLetters = "ABCDE"

// ErrInvalidRoom is returned when a room identifier does not name a room on the grid.
var ErrInvalidRoom = errors.New("invalid room")

// Room identifies one cell of the grid.
// Row is 0-based (A=0 .. E=4), Col is 1-based (1 .. 5) to match the printed name.
type Room struct {
	Row int
	Col int
}

// NewRoom returns the room at the given row index and column, and false if off-grid.
func NewRoom(row, col int) (Room, bool) {
	r := Room{Row: row, Col: col}
	if !r.IsValid() {
		return Room{}, false
	}
	return r, true
}

// MustParseRoom is like ParseRoom but panics on error. Intended for constants.
func MustParseRoom(s string) Room {
	r, err := ParseRoom(s)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRoom parses an identifier such as "C3".
func ParseRoom(s string) (Room, error) {
	if len(s) != 2 {
		return Room{}, fmt.Errorf("%w: %q", ErrInvalidRoom, s)
	}
	row := -1
	for i := 0; i < len(rowLetters); i++ {
		if rowLetters[i] == s[0] {
			row = i
			break
		}
	}
	col, err := strconv.Atoi(s[1:])
	if err != nil || row < 0 {
		return Room{}, fmt.Errorf("%w: %q", ErrInvalidRoom, s)
	}
	r, ok := NewRoom(row, col)
	if !ok {
		return Room{}, fmt.Errorf("%w: %q", ErrInvalidRoom, s)
	}
	return r, nil
}

// IsValid reports whether the room lies on the grid
func (r Room) IsValid() bool {
	return r.Row >= 0 && r.Row < Rows && r.Col >= 1 && r.Col <= Cols
}

// String returns the room identifier, e.g. "C3"
func (r Room) String() string {
	if !r.IsValid() {
		return "X"
	}
	return string(rowLetters[r.Row]) + strconv.Itoa(r.Col)
}

// Distance returns the Manhattan distance between two rooms
func (r Room) Distance(other Room) int {
	rowDist := r.Row - other.Row
	colDist := r.Col - other.Col
	if rowDist < 0 {
		rowDist = -rowDist
	}
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist + colDist
}
