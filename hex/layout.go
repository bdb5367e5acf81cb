package hex

import (
	"math"

	"github.com/faiface/pixel"
)

// Layout projects coordinates onto a flat-top hex grid in pixel space.
// FieldSize is the distance from a field's center to any of its corners.
type Layout struct {
	FieldSize float64
	Origin    pixel.Vec
}

// FitLayout returns the largest layout which fits a board of the given number
// of rings into bounds, centered on them
func FitLayout(size int, bounds pixel.Rect) Layout {
	radius := float64(size - 1)
	if radius < 0 {
		radius = 0
	}

	byWidth := bounds.W() / (3*radius + 2)
	byHeight := bounds.H() / (math.Sqrt(3) * (2*radius + 1))

	return Layout{
		FieldSize: math.Min(byWidth, byHeight),
		Origin:    bounds.Center(),
	}
}

func (layout Layout) FieldWidth() float64 {
	return 2 * layout.FieldSize
}

func (layout Layout) FieldHeight() float64 {
	return math.Sqrt(3) * layout.FieldSize
}

func (layout Layout) ToPixel(c Coordinate) pixel.Vec {
	return layout.Origin.Add(pixel.V(
		float64(c.x)*layout.FieldWidth()*0.75,
		float64(c.y-c.z)/2*layout.FieldHeight(),
	))
}

// FromPixel returns the coordinate of the field containing pos
func (layout Layout) FromPixel(pos pixel.Vec) Coordinate {
	local := pos.Sub(layout.Origin)
	x := local.X / (layout.FieldWidth() * 0.75)
	y := local.Y/layout.FieldHeight() - x/2
	return Round(x, y)
}

// Corners returns the six polygon vertices of the field at c
func (layout Layout) Corners(c Coordinate) []pixel.Vec {
	center := layout.ToPixel(c)
	corners := make([]pixel.Vec, 6)
	for i := range corners {
		angle := math.Pi / 3 * float64(i)
		corners[i] = center.Add(pixel.V(math.Cos(angle), math.Sin(angle)).Scaled(layout.FieldSize))
	}
	return corners
}

// Round snaps fractional cube coordinates to the nearest cell
func Round(x, y float64) Coordinate {
	z := -x - y
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	}
	return New(int(rx), int(ry))
}
