package backdrop

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Expiry bounds. A particle is reclaimed once it leaves the padded surface
// rectangle or outlives its maxAge; the two conditions are independent and
// both are checked every frame.
const (
	boundsPadBottom = 50.0
	boundsPadTop    = 100.0
	boundsPadSide   = 100.0

	// unboundedAge makes the age check a no-op for effects whose particles
	// live until the bounds predicate reclaims them.
	unboundedAge = 10000

	// maxTrailPoints caps a meteor's position history.
	maxTrailPoints = 15
)

// particle holds per-particle simulation state. Unexported; owned
// exclusively by Pool. Slots are overwritten in place on expiry, so no
// identity survives a respawn — callers must not hold cross-frame
// references.
type particle struct {
	x, y    float64
	vx, vy  float64 // pixels per frame
	size    float64
	opacity float64 // per-particle alpha in [0, 1]
	col     Color
	age     int // frames since spawn
	maxAge  int
	// Confetti only.
	rotation      float64
	rotationSpeed float64
	// Meteor only. Most-recent-first, ≤ maxTrailPoints. The backing array
	// is kept across respawns so steady-state stepping does not allocate.
	trail []Vec2
}

// pushTrail records the particle's position at the front of its trail,
// evicting the oldest point once the cap is reached.
func (p *particle) pushTrail(x, y float64) {
	if len(p.trail) < maxTrailPoints {
		p.trail = append(p.trail, Vec2{})
	}
	copy(p.trail[1:], p.trail)
	p.trail[0] = Vec2{X: x, Y: y}
}

// Pool owns a fixed set of particles for one effect. The slot count equals
// Config.ParticleCount at all times: expired particles are respawned in
// place the same frame, never removed. Construct with NewPool or, for
// deterministic simulation, NewPoolSeeded.
type Pool struct {
	effect EffectType
	prof   profile
	cfg    Config
	w, h   float64
	rng    *rand.Rand
	slots  []particle
	frame  int
}

// NewPool creates a pool of cfg.ParticleCount live particles (after
// defaults) sized to a w×h surface, seeded from the global random source.
func NewPool(effect EffectType, cfg Config, w, h float64) *Pool {
	return NewPoolSeeded(effect, cfg, w, h, rand.Uint64())
}

// NewPoolSeeded is NewPool with an explicit seed. Two pools created with the
// same arguments simulate identically.
func NewPoolSeeded(effect EffectType, cfg Config, w, h float64, seed uint64) *Pool {
	cfg = cfg.withDefaults()
	pl := &Pool{
		effect: ParseEffectType(string(effect)),
		prof:   profileFor(effect),
		cfg:    cfg,
		w:      w,
		h:      h,
		rng:    rand.New(rand.NewPCG(seed, seed)),
		slots:  make([]particle, cfg.ParticleCount),
	}
	for i := range pl.slots {
		initialY := -1.0
		if pl.prof.seedAcrossHeight {
			// Spread the initial fill across the visible height so falling
			// effects are populated from frame 1 instead of draining in.
			initialY = pl.rng.Float64() * h
		}
		pl.respawn(&pl.slots[i], initialY)
	}
	return pl
}

// Effect returns the resolved effect type (after the dust fallback).
func (pl *Pool) Effect() EffectType {
	return pl.effect
}

// Len returns the live particle count. It equals the configured particle
// count for the lifetime of the pool.
func (pl *Pool) Len() int {
	return len(pl.slots)
}

// Frame returns the number of completed simulation steps.
func (pl *Pool) Frame() int {
	return pl.frame
}

// Resize updates the bounds particles simulate against. The live pool is
// kept; particles keep flying relative to the new bounds.
func (pl *Pool) Resize(w, h float64) {
	pl.w = w
	pl.h = h
}

// Step advances the simulation one frame: generic integration, the effect's
// per-frame specialization, then the expiry check with in-place respawn.
func (pl *Pool) Step() {
	for i := range pl.slots {
		p := &pl.slots[i]
		p.x += p.vx
		p.y += p.vy
		p.age++
		if pl.prof.step != nil {
			pl.prof.step(p, &pl.cfg, pl.rng)
		}
		if pl.expired(p) {
			pl.respawn(p, -1)
		}
	}
	pl.frame++
}

// Draw paints every particle onto dst using the effect's paint routine.
// Global opacity and blend are applied by the engine at composite time, not
// here, so per-particle paint state never accumulates across particles.
func (pl *Pool) Draw(dst *ebiten.Image) {
	for i := range pl.slots {
		pl.prof.paint(dst, &pl.slots[i])
	}
}

// expired reports whether p should be reclaimed. Bounds and age are
// independent conditions; a type with unboundedAge still expires by bounds,
// and a short-lived type still expires by age while on screen.
func (pl *Pool) expired(p *particle) bool {
	if p.y > pl.h+boundsPadBottom || p.y < -boundsPadTop ||
		p.x < -boundsPadSide || p.x > pl.w+boundsPadSide {
		return true
	}
	return p.age > p.maxAge
}

// respawn overwrites the slot with a fresh particle. The trail backing array
// is the only state carried over, to keep steady-state respawns
// allocation-free.
func (pl *Pool) respawn(p *particle, initialY float64) {
	trail := p.trail[:0]
	*p = particle{trail: trail}
	pl.prof.spawn(p, pl.w, pl.h, &pl.cfg, pl.rng, initialY)
}
