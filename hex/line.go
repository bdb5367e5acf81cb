package hex

import "fmt"

// Between returns the cells strictly between start and end, ordered from
// start towards end. Both ends must lie on one straight hex line.
func Between(start, end Coordinate) []Coordinate {
	if start.x != end.x && start.y != end.y && start.z != end.z {
		panic(fmt.Sprintf("hex: %v and %v are not on a straight line", start, end))
	}

	between := make([]Coordinate, 0)
	if start.Distance(end) <= 1 {
		return between
	}

	stepX, stepY := step(start.x, end.x), step(start.y, end.y)
	x, y := start.x, start.y
	for {
		x += stepX
		y += stepY

		next := New(x, y)
		if next.Equal(end) {
			break
		}
		between = append(between, next)
	}
	return between
}

func step(from, to int) int {
	switch {
	case from < to:
		return 1
	case from > to:
		return -1
	default:
		return 0
	}
}
