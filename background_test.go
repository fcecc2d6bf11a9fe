package backdrop

import "testing"

func TestGradientCornerColorsHorizontal(t *testing.T) {
	c0 := Color{0, 0, 0, 1}
	c1 := Color{1, 1, 1, 1}
	// Angle 0 points right: left edge = c0, right edge = c1.
	corners := gradientCornerColors(800, 600, 0, c0, c1)
	assertNear(t, "TL.R", corners[0].R, 0)
	assertNear(t, "TR.R", corners[1].R, 1)
	assertNear(t, "BR.R", corners[2].R, 1)
	assertNear(t, "BL.R", corners[3].R, 0)
}

func TestGradientCornerColorsVertical(t *testing.T) {
	c0 := Color{0, 0, 0, 1}
	c1 := Color{1, 1, 1, 1}
	// Angle 90 points down: top edge = c0, bottom edge = c1.
	corners := gradientCornerColors(800, 600, 90, c0, c1)
	assertNear(t, "TL.R", corners[0].R, 0)
	assertNear(t, "TR.R", corners[1].R, 0)
	assertNear(t, "BR.R", corners[2].R, 1)
	assertNear(t, "BL.R", corners[3].R, 1)
}

func TestGradientCornerColorsReversed(t *testing.T) {
	c0 := Color{0, 0, 0, 1}
	c1 := Color{1, 1, 1, 1}
	// Angle 180 points left: right edge = c0, left edge = c1.
	corners := gradientCornerColors(800, 600, 180, c0, c1)
	assertNear(t, "TL.R", corners[0].R, 1)
	assertNear(t, "TR.R", corners[1].R, 0)
}

func TestGradientCornerColorsDiagonal(t *testing.T) {
	c0 := Color{0, 0, 0, 1}
	c1 := Color{1, 1, 1, 1}
	// Angle 45 runs TL -> BR on a square; the off-axis corners sit halfway.
	corners := gradientCornerColors(500, 500, 45, c0, c1)
	assertNear(t, "TL.R", corners[0].R, 0)
	assertNear(t, "BR.R", corners[2].R, 1)
	assertNear(t, "TR.R", corners[1].R, 0.5)
	assertNear(t, "BL.R", corners[3].R, 0.5)
}

func TestFourCornerColorsRotation(t *testing.T) {
	stops := [4]Color{
		{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 0, 1},
	}

	identity := fourCornerColors(stops, 0)
	if identity != stops {
		t.Error("angle 0 should keep the corner order")
	}

	quarter := fourCornerColors(stops, 90)
	want := [4]Color{stops[1], stops[2], stops[3], stops[0]}
	if quarter != want {
		t.Errorf("angle 90 = %v, want shift by one corner", quarter)
	}

	if fourCornerColors(stops, 360) != stops {
		t.Error("angle 360 should wrap to identity")
	}
	if fourCornerColors(stops, -90) != fourCornerColors(stops, 270) {
		t.Error("negative angles should wrap like positive ones")
	}
}

func TestOrBlack(t *testing.T) {
	if got := orBlack(Color{}); got != (Color{A: 1}) {
		t.Errorf("orBlack(zero) = %v, want opaque black", got)
	}
	set := Color{0.2, 0.3, 0.4, 1}
	if orBlack(set) != set {
		t.Error("orBlack must keep explicit colors")
	}
}
