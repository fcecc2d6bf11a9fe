package backdrop

import (
	"math"
	"testing"
)

func TestStarPointsGeometry(t *testing.T) {
	const cx, cy, outer, inner = 100.0, 50.0, 10.0, 4.0
	pts := starPoints(cx, cy, outer, inner, 5)
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}

	// First point straight up at the outer radius.
	assertNear(t, "pts[0].X", pts[0].X, cx)
	assertNear(t, "pts[0].Y", pts[0].Y, cy-outer)

	// Radii alternate outer, inner.
	for i, pt := range pts {
		r := math.Hypot(pt.X-cx, pt.Y-cy)
		want := outer
		if i%2 == 1 {
			want = inner
		}
		assertNear(t, "radius", r, want)
	}
}

func TestQuadCornersAxisAligned(t *testing.T) {
	c := quadCorners(10, 20, 4, 6, 0)
	assertNear(t, "c0.X", c[0].X, 8)
	assertNear(t, "c0.Y", c[0].Y, 17)
	assertNear(t, "c2.X", c[2].X, 12)
	assertNear(t, "c2.Y", c[2].Y, 23)
}

func TestQuadCornersRotated(t *testing.T) {
	// A quarter turn swaps the rectangle's extents.
	c := quadCorners(0, 0, 4, 6, math.Pi/2)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pt := range c {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	assertNear(t, "width", maxX-minX, 6)
	assertNear(t, "height", maxY-minY, 4)
}

func TestQuadCornersPreserveCenter(t *testing.T) {
	c := quadCorners(33, -7, 5, 8, 1.2345)
	var sx, sy float64
	for _, pt := range c {
		sx += pt.X
		sy += pt.Y
	}
	assertNear(t, "center X", sx/4, 33)
	assertNear(t, "center Y", sy/4, -7)
}

func TestFillPolygonRejectsDegenerate(t *testing.T) {
	// Fewer than three points must bail out before touching the
	// destination; a nil destination proves it structurally.
	fillPolygon(nil, nil, ColorWhite, 1)
	fillPolygon(nil, []Vec2{{0, 0}, {1, 1}}, ColorWhite, 1)
}
