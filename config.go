package backdrop

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config defaults, applied by withDefaults for zero-valued fields.
const (
	DefaultSpeed         = 1.0
	DefaultParticleCount = 50
	DefaultOpacity       = 100.0
	DefaultParticleSize  = 4.0
)

// BackgroundType selects the fill painted beneath the particles.
type BackgroundType uint8

const (
	BackgroundSolid     BackgroundType = iota // flat fill with Colors[0]
	BackgroundGradient2                       // linear gradient Colors[0] -> Colors[1] along Angle
	BackgroundGradient4                       // four-corner gradient; Angle rotates the corner assignment in 90° steps
)

// Background describes the fill painted beneath the particles each frame.
// It is a paint pass only; the simulation never reads it.
type Background struct {
	// Type selects solid, 2-stop, or 4-corner fill.
	Type BackgroundType `yaml:"type"`
	// Colors are the fill stops. Solid uses Colors[0]; gradient2 uses
	// Colors[0..1]; gradient4 uses all four. Unset colors default to black.
	Colors [4]Color `yaml:"colors,flow"`
	// Angle is the gradient direction in degrees. 0 points right, 90 down.
	Angle float64 `yaml:"angle"`
}

// Config controls a render session. All fields are optional; zero values
// take the documented defaults. The engine treats a Config as read-only.
type Config struct {
	// Speed is the global velocity multiplier. Defaults to 1.
	Speed float64 `yaml:"speed"`
	// ParticleCount is the pool size, fixed for the session. Defaults to 50.
	ParticleCount int `yaml:"particleCount"`
	// Color1 and Color2 form the spawn palette; spawn rules pick between
	// them uniformly at random. Effects with a signature hue (fireflies,
	// sparkle, stars, meteor) use that hue when both are left unset, and
	// confetti always uses its own fixed palette.
	Color1 Color `yaml:"color1"`
	Color2 Color `yaml:"color2"`
	// Opacity is the global alpha multiplier in [0, 100], applied on top of
	// per-particle opacity. Defaults to 100. Out-of-range values are clamped.
	Opacity float64 `yaml:"opacity"`
	// ParticleSize is the base particle size in pixels. Each spawn rule
	// scales or perturbs it. Defaults to 4.
	ParticleSize float64 `yaml:"particleSize"`
	// Blend is the compositing mode used when the particle layer is drawn
	// onto the destination surface.
	Blend BlendMode `yaml:"blend"`
	// Background is the fill painted beneath the particles.
	Background Background `yaml:"background"`
}

// LoadConfig decodes a YAML configuration blob. Colors are hex strings
// ("#rrggbb"), blend modes their CSS names. Missing fields keep their
// defaults; unknown fields are ignored.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse backdrop config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults returns a copy with zero-valued fields replaced by defaults
// and out-of-range fields clamped.
func (c Config) withDefaults() Config {
	if c.Speed <= 0 {
		c.Speed = DefaultSpeed
	}
	if c.ParticleCount <= 0 {
		c.ParticleCount = DefaultParticleCount
	}
	if c.Opacity <= 0 {
		c.Opacity = DefaultOpacity
	}
	c.Opacity = clamp(c.Opacity, 0, 100)
	if c.ParticleSize <= 0 {
		c.ParticleSize = DefaultParticleSize
	}
	return c
}

// alphaScale returns the global alpha multiplier in [0, 1].
func (c *Config) alphaScale() float64 {
	return clamp01(c.Opacity / 100)
}

// paletteSet reports whether the host set an explicit palette.
func (c *Config) paletteSet() bool {
	return !c.Color1.IsZero() || !c.Color2.IsZero()
}

// pickColor chooses uniformly between the two palette colors. Falls back to
// white when the palette is unset; fixed-hue effects override before this
// is consulted.
func (c *Config) pickColor(coin bool) Color {
	c1, c2 := c.Color1, c.Color2
	if c1.IsZero() {
		c1 = ColorWhite
	}
	if c2.IsZero() {
		c2 = c1
	}
	if coin {
		return c1
	}
	return c2
}

// UnmarshalYAML decodes a color from a "#rrggbb" hex string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the color as a "#rrggbb" hex string.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// UnmarshalYAML decodes a blend mode from its CSS name.
func (b *BlendMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*b = ParseBlendMode(s)
	return nil
}

// MarshalYAML encodes the blend mode as its CSS name.
func (b BlendMode) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML decodes a background type from "solid", "gradient2", or
// "gradient4". Unknown names decode as solid.
func (t *BackgroundType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "gradient2":
		*t = BackgroundGradient2
	case "gradient4":
		*t = BackgroundGradient4
	default:
		*t = BackgroundSolid
	}
	return nil
}
