package backdrop

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a color is converted for submission.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// IsZero reports whether the color is the zero value, which config handling
// treats as "unset".
func (c Color) IsZero() bool {
	return c == Color{}
}

// ParseHex parses a "#rrggbb" or "#rgb" hex string into an opaque Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: cf.R, G: cf.G, B: cf.B, A: 1}, nil
}

// Hex formats the color as a "#rrggbb" string, dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hex()
}

// Blend linearly interpolates toward other by t in RGB space. Alpha is
// interpolated linearly as well.
func (c Color) Blend(other Color, t float64) Color {
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: other.R, G: other.G, B: other.B}
	m := a.BlendRgb(b, t)
	return Color{R: m.R, G: m.G, B: m.B, A: lerp(c.A, other.A, t)}
}

// rgbaScaled converts to a premultiplied color.RGBA with the color's alpha
// multiplied by scale. scale is clamped to [0, 1] so out-of-range opacity
// inputs can never produce an out-of-range rendered alpha.
func (c Color) rgbaScaled(scale float64) color.RGBA {
	a := clamp01(c.A * clamp01(scale))
	return color.RGBA{
		R: uint8(clamp01(c.R) * a * 255),
		G: uint8(clamp01(c.G) * a * 255),
		B: uint8(clamp01(c.B) * a * 255),
		A: uint8(a * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and directions.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range used by spawn rules.
type Range struct {
	Min, Max float64
}

// random returns a value in [Min, Max] drawn from rng.
func (r Range) random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// BlendMode selects the compositing operation used when the particle layer
// is composited onto the destination surface.
type BlendMode uint8

const (
	BlendNormal     BlendMode = iota // source-over (standard alpha blending)
	BlendMultiply                    // multiply (source * destination; only darkens)
	BlendScreen                      // screen (1 - (1-src)*(1-dst); only brightens)
	BlendOverlay                     // overlay; no factor-combo equivalent, degrades to source-over
	BlendSoftLight                   // soft-light; degrades to source-over
	BlendHardLight                   // hard-light; degrades to source-over
	BlendColorDodge                  // color-dodge; approximated as additive
	BlendColorBurn                   // color-burn; approximated as multiply
)

var blendNames = map[string]BlendMode{
	"normal":      BlendNormal,
	"multiply":    BlendMultiply,
	"screen":      BlendScreen,
	"overlay":     BlendOverlay,
	"soft-light":  BlendSoftLight,
	"hard-light":  BlendHardLight,
	"color-dodge": BlendColorDodge,
	"color-burn":  BlendColorBurn,
}

// ParseBlendMode maps a CSS-style blend mode name to a BlendMode.
// Unknown names return BlendNormal.
func ParseBlendMode(s string) BlendMode {
	if m, ok := blendNames[s]; ok {
		return m
	}
	return BlendNormal
}

// String returns the CSS-style name of the blend mode.
func (b BlendMode) String() string {
	for name, m := range blendNames {
		if m == b {
			return name
		}
	}
	return "normal"
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
//
// Overlay, soft-light, and hard-light read the destination color
// non-linearly and cannot be expressed as blend factor combinations; they
// fall back to source-over. Color-dodge approximates as additive and
// color-burn as multiply, which preserve the brighten/darken character of
// the originals.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendMultiply, BlendColorBurn:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendColorDodge:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp clamps v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// whitePixel is a 1x1 white image used for solid-color triangle fills.
var whitePixel *ebiten.Image

// ensureWhitePixel lazily creates the shared white pixel. Lazy so that pure
// simulation code paths (and their tests) never touch the graphics backend.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}
