package hex

import (
	"math"
	"testing"

	"github.com/faiface/pixel"
)

const epsilon = 1e-9

func TestToPixelFlatTop(t *testing.T) {
	layout := Layout{FieldSize: 10, Origin: pixel.V(100, 50)}

	for _, c := range []Coordinate{New(0, 0), New(1, 0), New(-2, 1), New(3, -3)} {
		pos := layout.ToPixel(c)
		expectedX := 100 + float64(c.X())*20*0.75
		expectedY := 50 + float64(c.Y()-c.Z())/2*math.Sqrt(3)*10

		if math.Abs(pos.X-expectedX) > epsilon || math.Abs(pos.Y-expectedY) > epsilon {
			t.Errorf("ToPixel(%v) = %v, expected (%v, %v)", c, pos, expectedX, expectedY)
		}
	}
}

func TestFromPixelRoundTrip(t *testing.T) {
	layout := Layout{FieldSize: 17, Origin: pixel.V(320, 240)}

	for x := -4; x <= 4; x++ {
		for y := -4; y <= 4; y++ {
			c := New(x, y)
			if got := layout.FromPixel(layout.ToPixel(c)); got != c {
				t.Errorf("FromPixel(ToPixel(%v)) = %v", c, got)
			}
		}
	}
}

func TestFromPixelInsideField(t *testing.T) {
	layout := Layout{FieldSize: 20}
	c := New(2, -1)
	nudged := layout.ToPixel(c).Add(pixel.V(layout.FieldSize*0.5, layout.FieldHeight()*0.2))

	if got := layout.FromPixel(nudged); got != c {
		t.Fatalf("expected %v, got %v", c, got)
	}
}

func TestCorners(t *testing.T) {
	layout := Layout{FieldSize: 12}
	c := New(-1, 2)
	center := layout.ToPixel(c)

	corners := layout.Corners(c)
	if len(corners) != 6 {
		t.Fatalf("expected 6 corners, got %d", len(corners))
	}
	for _, corner := range corners {
		if d := corner.Sub(center).Len(); math.Abs(d-12) > epsilon {
			t.Errorf("corner %v is %v away from the center", corner, d)
		}
	}
	// flat-top: the first corner lies straight right of the center
	if math.Abs(corners[0].Y-center.Y) > epsilon {
		t.Errorf("expected a flat-top field, first corner at %v", corners[0])
	}
}

func TestFitLayout(t *testing.T) {
	bounds := pixel.R(0, 0, 640, 480)
	layout := FitLayout(5, bounds)

	if layout.Origin != bounds.Center() {
		t.Errorf("expected origin %v, got %v", bounds.Center(), layout.Origin)
	}

	for _, c := range []Coordinate{New(-4, 0), New(4, 0), New(0, -4), New(0, 4), New(4, -4), New(-4, 4)} {
		for _, corner := range layout.Corners(c) {
			if !bounds.Contains(corner) && !nearEdge(bounds, corner) {
				t.Errorf("corner %v of %v lies outside %v", corner, c, bounds)
			}
		}
	}
}

func nearEdge(bounds pixel.Rect, v pixel.Vec) bool {
	return v.X >= bounds.Min.X-epsilon && v.X <= bounds.Max.X+epsilon &&
		v.Y >= bounds.Min.Y-epsilon && v.Y <= bounds.Max.Y+epsilon
}
