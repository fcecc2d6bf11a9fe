package backdrop

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Paint routines translate one particle into draw calls. Every routine
// builds its draw state (colors, vertices, options) fresh per call; nothing
// ambient survives from one particle to the next. Global opacity and the
// blend mode are applied once per frame when the engine composites the
// particle layer, so alpha here is the per-particle value only.

// Glow radii in pixels added around the core, standing in for canvas-style
// shadow blur.
const (
	starGlow    = 8.0
	meteorGlow  = 10.0
	fireflyGlow = 15.0
)

// paintCircle is the default technique: a filled circle of the particle's
// size. Used by float, snow, sparkle, and dust.
func paintCircle(dst *ebiten.Image, p *particle) {
	vector.DrawFilledCircle(dst,
		float32(p.x), float32(p.y), float32(p.size),
		p.col.rgbaScaled(p.opacity), true)
}

// paintRain draws the particle as a short streak along its velocity.
func paintRain(dst *ebiten.Image, p *particle) {
	width := float32(math.Max(1, p.size*0.4))
	vector.StrokeLine(dst,
		float32(p.x), float32(p.y),
		float32(p.x-p.vx*2), float32(p.y-p.vy*0.5),
		width, p.col.rgbaScaled(p.opacity), true)
}

// paintBubble draws a stroked ring with a small highlight dot offset toward
// the upper-left.
func paintBubble(dst *ebiten.Image, p *particle) {
	stroke := float32(math.Max(1, p.size*0.15))
	vector.StrokeCircle(dst,
		float32(p.x), float32(p.y), float32(p.size),
		stroke, p.col.rgbaScaled(p.opacity), true)
	hx := p.x - p.size*0.35
	hy := p.y - p.size*0.35
	vector.DrawFilledCircle(dst,
		float32(hx), float32(hy), float32(p.size*0.25),
		ColorWhite.rgbaScaled(p.opacity*0.8), true)
}

// paintConfetti fills a size × 1.5·size rectangle rotated to the particle's
// current rotation.
func paintConfetti(dst *ebiten.Image, p *particle) {
	corners := quadCorners(p.x, p.y, p.size, p.size*1.5, p.rotation)
	fillPolygon(dst, corners[:], p.col, p.opacity)
}

// paintFirefly draws a glowing dot; the halo stands in for shadow blur.
func paintFirefly(dst *ebiten.Image, p *particle) {
	paintHalo(dst, p.x, p.y, p.size, fireflyGlow, p.col, p.opacity)
	vector.DrawFilledCircle(dst,
		float32(p.x), float32(p.y), float32(p.size),
		p.col.rgbaScaled(p.opacity), true)
}

// paintStar draws a five-point star polygon (inner radius 0.4× outer) with
// a soft glow behind it.
func paintStar(dst *ebiten.Image, p *particle) {
	paintHalo(dst, p.x, p.y, p.size, starGlow, p.col, p.opacity)
	pts := starPoints(p.x, p.y, p.size, p.size*0.4, 5)
	fillPolygon(dst, pts, p.col, p.opacity)
}

// paintMeteor strokes the fading trail first, then the glowing head, so the
// head always reads on top.
func paintMeteor(dst *ebiten.Image, p *particle) {
	n := len(p.trail)
	width := float32(math.Max(1, p.size))
	for i := n - 1; i >= 1; i-- {
		// Trail is most-recent-first: higher i is older, so fade with i.
		fade := 1 - float64(i)/float64(n)
		a, b := p.trail[i], p.trail[i-1]
		vector.StrokeLine(dst,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			width, p.col.rgbaScaled(p.opacity*fade), true)
	}
	paintHalo(dst, p.x, p.y, p.size, meteorGlow, p.col, p.opacity)
	vector.DrawFilledCircle(dst,
		float32(p.x), float32(p.y), float32(p.size),
		p.col.rgbaScaled(p.opacity), true)
}

// paintHalo layers translucent circles out to radius+glow, the Ebitengine
// idiom for a canvas shadow-blur glow.
func paintHalo(dst *ebiten.Image, x, y, radius, glow float64, col Color, alpha float64) {
	vector.DrawFilledCircle(dst,
		float32(x), float32(y), float32(radius+glow),
		col.rgbaScaled(alpha*0.10), true)
	vector.DrawFilledCircle(dst,
		float32(x), float32(y), float32(radius+glow*0.5),
		col.rgbaScaled(alpha*0.20), true)
}

// quadCorners returns the corners of a w×h rectangle centered at (cx, cy)
// rotated by rot radians, in winding order.
func quadCorners(cx, cy, w, h, rot float64) [4]Vec2 {
	sin, cos := math.Sincos(rot)
	hw, hh := w/2, h/2
	rotate := func(x, y float64) Vec2 {
		return Vec2{
			X: cx + x*cos - y*sin,
			Y: cy + x*sin + y*cos,
		}
	}
	return [4]Vec2{
		rotate(-hw, -hh),
		rotate(hw, -hh),
		rotate(hw, hh),
		rotate(-hw, hh),
	}
}

// starPoints returns the 2·points vertices of a star polygon centered at
// (cx, cy), alternating outer and inner radius, first point straight up.
func starPoints(cx, cy, outer, inner float64, points int) []Vec2 {
	pts := make([]Vec2, 0, 2*points)
	step := math.Pi / float64(points)
	for i := 0; i < 2*points; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + float64(i)*step
		sin, cos := math.Sincos(angle)
		pts = append(pts, Vec2{X: cx + r*cos, Y: cy + r*sin})
	}
	return pts
}

// fillPolygon fills a convex-fan polygon via DrawTriangles over the shared
// white pixel, fanning from the vertex centroid so star polygons fill
// correctly.
func fillPolygon(dst *ebiten.Image, pts []Vec2, col Color, alpha float64) {
	if len(pts) < 3 {
		return
	}
	var cx, cy float64
	for _, pt := range pts {
		cx += pt.X
		cy += pt.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	a := float32(clamp01(col.A * clamp01(alpha)))
	r := float32(clamp01(col.R))
	g := float32(clamp01(col.G))
	b := float32(clamp01(col.B))

	verts := make([]ebiten.Vertex, 0, len(pts)+1)
	verts = append(verts, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: r, ColorG: g, ColorB: b, ColorA: a,
	})
	for _, pt := range pts {
		verts = append(verts, ebiten.Vertex{
			DstX: float32(pt.X), DstY: float32(pt.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}

	inds := make([]uint16, 0, 3*len(pts))
	for i := 1; i <= len(pts); i++ {
		next := i + 1
		if next > len(pts) {
			next = 1
		}
		inds = append(inds, 0, uint16(i), uint16(next))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), op)
}
