package hex

import "fmt"

// Coordinate is a position on the hex grid in cube coordinates. The third
// axis is derived from the other two, so x+y+z == 0 always holds.
type Coordinate struct {
	x, y, z int
}

// Origin is the center of every board
var Origin = Coordinate{}

// Directions holds the six unit steps to adjacent cells
var Directions = []Coordinate{
	New(1, -1),
	New(1, 0),
	New(0, 1),
	New(-1, 1),
	New(-1, 0),
	New(0, -1),
}

func New(x, y int) Coordinate {
	return Coordinate{x: x, y: y, z: -x - y}
}

func (c Coordinate) X() int {
	return c.x
}

func (c Coordinate) Y() int {
	return c.y
}

func (c Coordinate) Z() int {
	return c.z
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.x, c.y, c.z)
}

func (c Coordinate) IsValid() bool {
	return c.x+c.y+c.z == 0
}

// Distance returns the number of single steps between two cells
func (c Coordinate) Distance(other Coordinate) int {
	sum := abs(c.x-other.x) + abs(c.y-other.y) + abs(c.z-other.z)
	if sum%2 != 0 {
		panic(fmt.Sprintf("hex: odd delta sum between %v and %v", c, other))
	}
	return sum / 2
}

// Equal reports whether both coordinates address the same cell
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Distance(other) == 0
}

// Less orders coordinates by x, then y
func (c Coordinate) Less(other Coordinate) bool {
	if c.x != other.x {
		return c.x < other.x
	}
	return c.y < other.y
}

func (c Coordinate) Add(other Coordinate) Coordinate {
	return New(c.x+other.x, c.y+other.y)
}

func (c Coordinate) Scale(k int) Coordinate {
	return New(c.x*k, c.y*k)
}

func (c Coordinate) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, len(Directions))
	for i, dir := range Directions {
		neighbors[i] = c.Add(dir)
	}
	return neighbors
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
