package backdrop

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// EffectType identifies one particle effect. The set is closed; unknown
// identifiers resolve to EffectDust.
type EffectType string

const (
	EffectFloat     EffectType = "float"     // slow upward-drifting motes
	EffectSnow      EffectType = "snow"      // falling flakes with horizontal jitter
	EffectRain      EffectType = "rain"      // fast streaks, slight rightward lean
	EffectBubbles   EffectType = "bubbles"   // rising stroked rings with a highlight
	EffectConfetti  EffectType = "confetti"  // tumbling rectangles under gravity
	EffectFireflies EffectType = "fireflies" // wandering glow dots that breathe
	EffectSparkle   EffectType = "sparkle"   // short-lived twinkles
	EffectStars     EffectType = "stars"     // static five-point stars that pulse
	EffectMeteor    EffectType = "meteor"    // streaking heads with fading trails
	EffectDust      EffectType = "dust"      // slow ambient drift (the fallback)
)

// ParseEffectType maps an identifier to an EffectType. Unknown identifiers
// return EffectDust so a misconfigured host still renders something
// plausible.
func ParseEffectType(s string) EffectType {
	t := EffectType(s)
	if _, ok := profiles[t]; ok {
		return t
	}
	return EffectDust
}

// profile bundles the spawn rule, per-frame motion rule, and paint routine
// for one effect type. spawn and step draw randomness only from the rng they
// are handed, so a seeded pool simulates deterministically.
type profile struct {
	// seedAcrossHeight marks effects whose initial pool is spread across the
	// full surface height, so the screen is populated from frame 1 instead
	// of draining in from off-screen.
	seedAcrossHeight bool
	// spawn initializes p in place. initialY >= 0 overrides the rule's usual
	// vertical placement (used only for the initial fill).
	spawn func(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64)
	// step applies the effect's per-frame specialization after the generic
	// integration. May be nil for effects with no special behavior.
	step func(p *particle, cfg *Config, rng *rand.Rand)
	// paint draws the particle.
	paint func(dst *ebiten.Image, p *particle)
}

// profileFor returns the profile for t, falling back to dust for unknown
// types. Total; there is no error case.
func profileFor(t EffectType) profile {
	if p, ok := profiles[t]; ok {
		return p
	}
	return profiles[EffectDust]
}

var profiles = map[EffectType]profile{
	EffectFloat:     {seedAcrossHeight: true, spawn: spawnFloat, paint: paintCircle},
	EffectSnow:      {seedAcrossHeight: true, spawn: spawnSnow, paint: paintCircle},
	EffectRain:      {seedAcrossHeight: true, spawn: spawnRain, paint: paintRain},
	EffectBubbles:   {seedAcrossHeight: true, spawn: spawnBubbles, paint: paintBubble},
	EffectConfetti:  {spawn: spawnConfetti, step: stepConfetti, paint: paintConfetti},
	EffectFireflies: {spawn: spawnFireflies, step: stepFireflies, paint: paintFirefly},
	EffectSparkle:   {spawn: spawnSparkle, step: stepSparkle, paint: paintCircle},
	EffectStars:     {spawn: spawnStars, step: stepStars, paint: paintStar},
	EffectMeteor:    {spawn: spawnMeteor, step: stepMeteor, paint: paintMeteor},
	EffectDust:      {spawn: spawnDust, paint: paintCircle},
}

// Motion constants. Velocities are in pixels per frame before the config's
// speed multiplier.
const (
	confettiGravity   = 0.05 // vertical acceleration per frame
	confettiDamping   = 0.99 // horizontal velocity retained per frame
	wanderJitter      = 0.4  // per-frame velocity jitter for wandering effects
	wanderMaxVelocity = 2.0  // wander velocity clamp, either axis

	firefliesBreathRate = 0.08
	sparkleBreathRate   = 0.15
	starsBreathRate     = 0.04
)

// Signature hues for effects that ignore the default palette unless the
// host sets one explicitly.
var (
	firefliesHue = mustHex("#ffeb3b")
	sparkleHue   = mustHex("#fff9c4")
	starsHue     = ColorWhite
	meteorHue    = mustHex("#cfe8ff")

	// confettiPalette is fixed; confetti never consults the config palette.
	confettiPalette = [8]Color{
		mustHex("#ff5252"),
		mustHex("#ff9800"),
		mustHex("#ffeb3b"),
		mustHex("#4caf50"),
		mustHex("#2196f3"),
		mustHex("#9c27b0"),
		mustHex("#e91e63"),
		mustHex("#00bcd4"),
	}
)

func mustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// signatureColor picks from the config palette when one was set, and the
// effect's fixed hue otherwise.
func signatureColor(cfg *Config, rng *rand.Rand, hue Color) Color {
	if cfg.paletteSet() {
		return cfg.pickColor(rng.Float64() < 0.5)
	}
	return hue
}

// --- Spawn rules -----------------------------------------------------------

func spawnFloat(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	p.x = rng.Float64() * w
	if initialY >= 0 {
		p.y = initialY
	} else {
		p.y = h + 10 + rng.Float64()*40
	}
	p.vx = (rng.Float64() - 0.5) * 0.5 * cfg.Speed
	p.vy = -(0.3 + rng.Float64()*0.7) * cfg.Speed
	p.size = cfg.ParticleSize * (0.5 + rng.Float64()*0.8)
	p.opacity = 0.3 + rng.Float64()*0.5
	p.col = cfg.pickColor(rng.Float64() < 0.5)
	p.maxAge = unboundedAge
}

func spawnSnow(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	p.x = rng.Float64() * w
	if initialY >= 0 {
		p.y = initialY
	} else {
		p.y = -10 - rng.Float64()*40
	}
	p.vx = (rng.Float64() - 0.5) * 0.6 * cfg.Speed
	p.vy = (0.5 + rng.Float64()) * cfg.Speed
	p.size = cfg.ParticleSize * (0.4 + rng.Float64()*0.8)
	p.opacity = 0.4 + rng.Float64()*0.6
	p.col = cfg.pickColor(rng.Float64() < 0.5)
	p.maxAge = unboundedAge
}

func spawnRain(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	p.x = rng.Float64() * w
	if initialY >= 0 {
		p.y = initialY
	} else {
		p.y = -10 - rng.Float64()*80
	}
	p.vx = (0.3 + rng.Float64()*0.4) * cfg.Speed
	p.vy = (6 + rng.Float64()*4) * cfg.Speed
	p.size = cfg.ParticleSize * (0.3 + rng.Float64()*0.3)
	p.opacity = 0.2 + rng.Float64()*0.4
	p.col = cfg.pickColor(rng.Float64() < 0.5)
	p.maxAge = unboundedAge
}

func spawnBubbles(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	p.x = rng.Float64() * w
	if initialY >= 0 {
		p.y = initialY
	} else {
		p.y = h + 10 + rng.Float64()*40
	}
	p.vx = (rng.Float64() - 0.5) * 0.4 * cfg.Speed
	p.vy = -(0.5 + rng.Float64()) * cfg.Speed
	p.size = cfg.ParticleSize * (0.5 + rng.Float64())
	p.opacity = 0.3 + rng.Float64()*0.4
	p.col = cfg.pickColor(rng.Float64() < 0.5)
	p.maxAge = unboundedAge
}

func spawnConfetti(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	// Confetti always enters from just above the surface, including the
	// initial fill; a sky full of pre-scattered confetti reads as a glitch.
	p.x = rng.Float64() * w
	p.y = -10
	p.vx = (rng.Float64() - 0.5) * 2 * cfg.Speed
	p.vy = (1 + rng.Float64()*2) * cfg.Speed
	p.size = cfg.ParticleSize * (0.5 + rng.Float64()*0.5)
	p.opacity = 0.8 + rng.Float64()*0.2
	p.col = confettiPalette[rng.IntN(len(confettiPalette))]
	p.rotation = rng.Float64() * 2 * math.Pi
	p.rotationSpeed = (rng.Float64() - 0.5) * 0.2
	p.maxAge = unboundedAge
}

func spawnFireflies(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	p.x = rng.Float64() * w
	p.y = rng.Float64() * h
	p.vx = (rng.Float64() - 0.5) * cfg.Speed
	p.vy = (rng.Float64() - 0.5) * cfg.Speed
	p.size = cfg.ParticleSize * (0.4 + rng.Float64()*0.5)
	p.col = signatureColor(cfg, rng, firefliesHue)
	// Random starting age desynchronizes the breathing across the pool.
	p.age = rng.IntN(100)
	p.maxAge = int(Range{150, 250}.random(rng))
	p.opacity = breathe(p.age, firefliesBreathRate)
}

func spawnSparkle(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	p.x = rng.Float64() * w
	p.y = rng.Float64() * h
	p.vx = (rng.Float64() - 0.5) * 0.6 * cfg.Speed
	p.vy = (rng.Float64() - 0.5) * 0.6 * cfg.Speed
	p.size = cfg.ParticleSize * (0.3 + rng.Float64()*0.5)
	p.col = signatureColor(cfg, rng, sparkleHue)
	p.age = rng.IntN(40)
	p.maxAge = int(Range{80, 160}.random(rng))
	p.opacity = sparkleBreathe(p.age)
}

func spawnStars(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	p.x = rng.Float64() * w
	p.y = rng.Float64() * h
	p.size = cfg.ParticleSize * (0.3 + rng.Float64()*0.6)
	p.col = signatureColor(cfg, rng, starsHue)
	p.age = rng.IntN(157)
	p.maxAge = 250
	p.opacity = breathe(p.age, starsBreathRate)
}

func spawnMeteor(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	// Enter from the upper-right half so the lower-left dive crosses the
	// surface before the bounds predicate reclaims it.
	p.x = w*0.5 + rng.Float64()*w*0.5
	p.y = -50 + rng.Float64()*h*0.5
	p.vx = -4 * cfg.Speed
	p.vy = 4 * cfg.Speed
	p.size = cfg.ParticleSize * (0.3 + rng.Float64()*0.4)
	p.opacity = 0.6 + rng.Float64()*0.4
	p.col = signatureColor(cfg, rng, meteorHue)
	p.maxAge = int(Range{80, 120}.random(rng))
	p.trail = p.trail[:0]
}

func spawnDust(p *particle, w, h float64, cfg *Config, rng *rand.Rand, initialY float64) {
	p.x = rng.Float64() * w
	p.y = rng.Float64() * h
	p.vx = (rng.Float64() - 0.5) * 0.4 * cfg.Speed
	p.vy = (rng.Float64() - 0.5) * 0.4 * cfg.Speed
	p.size = cfg.ParticleSize * (0.3 + rng.Float64()*0.6)
	p.opacity = 0.2 + rng.Float64()*0.3
	p.col = cfg.pickColor(rng.Float64() < 0.5)
	p.maxAge = unboundedAge
}

// --- Per-frame specializations ---------------------------------------------

func stepConfetti(p *particle, cfg *Config, rng *rand.Rand) {
	p.vy += confettiGravity * cfg.Speed
	p.vx *= confettiDamping
	p.rotation += p.rotationSpeed
}

func stepFireflies(p *particle, cfg *Config, rng *rand.Rand) {
	p.vx = clamp(p.vx+(rng.Float64()-0.5)*wanderJitter, -wanderMaxVelocity, wanderMaxVelocity)
	p.vy = clamp(p.vy+(rng.Float64()-0.5)*wanderJitter, -wanderMaxVelocity, wanderMaxVelocity)
	p.opacity = breathe(p.age, firefliesBreathRate)
}

func stepSparkle(p *particle, cfg *Config, rng *rand.Rand) {
	p.vx = clamp(p.vx+(rng.Float64()-0.5)*wanderJitter, -wanderMaxVelocity, wanderMaxVelocity)
	p.vy = clamp(p.vy+(rng.Float64()-0.5)*wanderJitter, -wanderMaxVelocity, wanderMaxVelocity)
	p.opacity = sparkleBreathe(p.age)
}

func stepStars(p *particle, cfg *Config, rng *rand.Rand) {
	p.opacity = breathe(p.age, starsBreathRate)
}

func stepMeteor(p *particle, cfg *Config, rng *rand.Rand) {
	p.pushTrail(p.x, p.y)
}

// breathe is the shared opacity oscillation: sin normalized to [0, 1].
// A pure function of age, so seeded simulations reproduce exactly.
func breathe(age int, rate float64) float64 {
	return 0.5 + 0.5*math.Sin(float64(age)*rate)
}

// sparkleBreathe biases the oscillation toward visible: 0.6·sin(0.15·age)+0.4,
// clamped at zero where the raw curve would dip negative.
func sparkleBreathe(age int) float64 {
	return clamp01(0.6*math.Sin(float64(age)*sparkleBreathRate) + 0.4)
}
