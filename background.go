package backdrop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// paintBackground fills dst per the config's background description. This is
// a paint pass only; the particle simulation never reads it.
func paintBackground(dst *ebiten.Image, bg Background) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	var stops [4]Color
	for i, c := range bg.Colors {
		stops[i] = orBlack(c)
	}
	switch bg.Type {
	case BackgroundGradient2:
		corners := gradientCornerColors(float64(w), float64(h), bg.Angle, stops[0], stops[1])
		fillGradientQuad(dst, float64(w), float64(h), corners)
	case BackgroundGradient4:
		corners := fourCornerColors(stops, bg.Angle)
		fillGradientQuad(dst, float64(w), float64(h), corners)
	default:
		dst.Fill(stops[0].rgbaScaled(1))
	}
}

// orBlack substitutes opaque black for an unset color stop.
func orBlack(c Color) Color {
	if c.IsZero() {
		return Color{A: 1}
	}
	return c
}

// gradientCornerColors computes the color at each corner (TL, TR, BR, BL) of
// a w×h rectangle for a 2-stop linear gradient along angleDeg. 0° points
// right, 90° down. Corner projections onto the gradient axis are normalized
// to [0, 1] and interpolated between c0 and c1; GPU vertex interpolation
// then reproduces the linear ramp across the quad.
func gradientCornerColors(w, h, angleDeg float64, c0, c1 Color) [4]Color {
	dx, dy := math.Sincos(angleDeg * math.Pi / 180)
	dx, dy = dy, dx // Sincos returns (sin, cos); axis is (cos, sin)

	corners := [4]Vec2{{0, 0}, {w, 0}, {w, h}, {0, h}}
	var proj [4]float64
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, c := range corners {
		proj[i] = c.X*dx + c.Y*dy
		lo = math.Min(lo, proj[i])
		hi = math.Max(hi, proj[i])
	}

	var out [4]Color
	span := hi - lo
	for i := range corners {
		t := 0.0
		if span > 0 {
			t = (proj[i] - lo) / span
		}
		out[i] = c0.Blend(c1, t)
	}
	return out
}

// fourCornerColors assigns the four stops to the quad corners (TL, TR, BR,
// BL), rotated by 90° steps of angleDeg.
func fourCornerColors(colors [4]Color, angleDeg float64) [4]Color {
	shift := int(math.Round(angleDeg/90)) % 4
	if shift < 0 {
		shift += 4
	}
	var out [4]Color
	for i := range out {
		out[i] = colors[(i+shift)%4]
	}
	return out
}

// fillGradientQuad fills the whole dst with a quad whose corners carry the
// given colors (TL, TR, BR, BL).
func fillGradientQuad(dst *ebiten.Image, w, h float64, corners [4]Color) {
	pos := [4]Vec2{{0, 0}, {w, 0}, {w, h}, {0, h}}
	var verts [4]ebiten.Vertex
	for i := range verts {
		c := corners[i]
		verts[i] = ebiten.Vertex{
			DstX: float32(pos[i].X), DstY: float32(pos[i].Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(clamp01(c.R)),
			ColorG: float32(clamp01(c.G)),
			ColorB: float32(clamp01(c.B)),
			ColorA: float32(clamp01(c.A)),
		}
	}
	inds := []uint16{0, 1, 2, 0, 2, 3}
	dst.DrawTriangles(verts[:], inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}
