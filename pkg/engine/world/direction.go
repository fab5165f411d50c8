package world

// Direction is one of the four doors out of a room
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// doorOrder is the order doors are offered and drawn in
var doorOrder = []Direction{North, East, South, West}

var directionNames = [...]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

// deltas are (row, col) offsets. Rows grow towards E, columns towards 5.
var deltas = [...][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// AllDirections returns the directions in door order (north, east, south, west)
func AllDirections() []Direction {
	ret := make([]Direction, len(doorOrder))
	copy(ret, doorOrder)
	return ret
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "unknown"
	}
	return directionNames[d]
}

// IsValid reports whether d is one of the four doors
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Delta returns the row and column offsets of the room behind this door
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}
