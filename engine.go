package backdrop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// engineState tracks the driver's lifecycle. Transitions only move forward
// except sizing <-> running, and nothing leaves stateTornDown.
type engineState uint8

const (
	stateUninitialized engineState = iota // no surface attached yet
	stateSizing                           // surface attached but zero-area; simulation deferred
	stateRunning                          // pool live, stepping and painting every frame
	stateTornDown                         // terminal; all further calls are no-ops
)

const (
	// DefaultFadeIn is the duration in seconds of the start fade-in.
	DefaultFadeIn = 1.0

	// Fallback surface size used when the host reports a zero-sized window.
	fallbackWidth  = 640
	fallbackHeight = 480
)

// Engine drives one effect session: it owns the pool, the particle layer,
// and the update→draw cycle. It implements [ebiten.Game], so it can be run
// standalone via [Run] or embedded in a host game.
//
// The engine defers all simulation until it has a positive-area surface.
// While deferred, Update and Draw are no-ops; the first Resize (or Layout)
// reporting positive dimensions constructs the pool and starts the session.
type Engine struct {
	// FadeIn is the duration in seconds over which particles fade in after
	// the session starts. Set to 0 before the first frame to disable.
	FadeIn float64

	effect EffectType
	cfg    Config
	state  engineState
	w, h   int

	pool  *Pool
	layer *ebiten.Image // particles render here, then composite with blend+opacity

	fade      *gween.Tween
	fadeAlpha float64

	seed   uint64
	seeded bool
}

// New creates an engine for the given effect and config. Unknown effect
// identifiers fall back to dust; config zero values take their defaults.
// The engine does not simulate until a surface size is known.
func New(effect EffectType, cfg Config) *Engine {
	return &Engine{
		FadeIn: DefaultFadeIn,
		effect: ParseEffectType(string(effect)),
		cfg:    cfg.withDefaults(),
	}
}

// Seed fixes the random seed used when the pool is (re)constructed, making
// the whole session deterministic. Call before the first Resize.
func (e *Engine) Seed(seed uint64) {
	e.seed = seed
	e.seeded = true
}

// Running reports whether the engine is live: sized, pool constructed, and
// not torn down.
func (e *Engine) Running() bool {
	return e.state == stateRunning
}

// TornDown reports whether Teardown has been called.
func (e *Engine) TornDown() bool {
	return e.state == stateTornDown
}

// Size returns the current surface dimensions.
func (e *Engine) Size() (int, int) {
	return e.w, e.h
}

// Resize updates the surface dimensions. A zero-area size defers the
// session (no pool, no painting) until a later resize reports positive
// dimensions. Resizing a running engine keeps the live pool; particles keep
// flying relative to the new bounds. No-op after teardown.
func (e *Engine) Resize(w, h int) {
	if e.state == stateTornDown {
		return
	}
	if w <= 0 || h <= 0 {
		if e.state == stateUninitialized {
			e.state = stateSizing
		}
		return
	}
	e.w, e.h = w, h
	switch e.state {
	case stateUninitialized, stateSizing:
		e.start()
	case stateRunning:
		e.pool.Resize(float64(w), float64(h))
		e.remakeLayer()
	}
}

// start constructs the pool and begins the session. Only called with a
// positive-area surface.
func (e *Engine) start() {
	e.pool = e.newPool()
	e.remakeLayer()
	e.fadeAlpha = 1
	e.fade = nil
	if e.FadeIn > 0 {
		e.fade = gween.New(0, 1, float32(e.FadeIn), ease.OutQuad)
		e.fadeAlpha = 0
	}
	e.state = stateRunning
}

func (e *Engine) newPool() *Pool {
	if e.seeded {
		return NewPoolSeeded(e.effect, e.cfg, float64(e.w), float64(e.h), e.seed)
	}
	return NewPool(e.effect, e.cfg, float64(e.w), float64(e.h))
}

func (e *Engine) remakeLayer() {
	if e.layer != nil {
		e.layer.Deallocate()
	}
	e.layer = ebiten.NewImage(e.w, e.h)
}

// Update advances the simulation by one frame. Implements [ebiten.Game].
// A no-op unless the engine is running.
func (e *Engine) Update() error {
	if e.state != stateRunning {
		return nil
	}
	if e.fade != nil {
		v, done := e.fade.Update(float32(1.0 / float64(ebiten.TPS())))
		e.fadeAlpha = float64(v)
		if done {
			e.fade = nil
		}
	}
	e.pool.Step()
	return nil
}

// Draw paints the background fill and the particle layer onto dst.
// Implements [ebiten.Game]. A no-op unless the engine is running.
//
// Particles are rendered to an intermediate layer and composited in one
// draw, so the config's blend mode and global opacity apply uniformly to
// the whole frame and the composite alpha stays within [0, 1].
func (e *Engine) Draw(dst *ebiten.Image) {
	if e.state != stateRunning {
		return
	}
	paintBackground(dst, e.cfg.Background)

	e.layer.Clear()
	e.pool.Draw(e.layer)

	op := &ebiten.DrawImageOptions{}
	op.Blend = e.cfg.Blend.EbitenBlend()
	op.ColorScale.ScaleAlpha(float32(clamp01(e.cfg.alphaScale() * e.fadeAlpha)))
	dst.DrawImage(e.layer, op)
}

// Layout implements [ebiten.Game]. A zero-sized outside region falls back
// to a default surface size, since a zero-area surface cannot be painted.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if w <= 0 || h <= 0 {
		w, h = fallbackWidth, fallbackHeight
	}
	if w != e.w || h != e.h {
		e.Resize(w, h)
	}
	return w, h
}

// Teardown ends the session: the pool is dropped, the layer is deallocated,
// and every subsequent Update, Draw, or Resize is a no-op. Idempotent.
func (e *Engine) Teardown() {
	if e.state == stateTornDown {
		return
	}
	e.state = stateTornDown
	e.pool = nil
	e.fade = nil
	if e.layer != nil {
		e.layer.Deallocate()
		e.layer = nil
	}
}

// SetEffect switches the effect type. The pool is fully reset; particle
// identity never survives an effect change. No-op after teardown.
func (e *Engine) SetEffect(t EffectType) {
	if e.state == stateTornDown {
		return
	}
	t = ParseEffectType(string(t))
	if t == e.effect {
		return
	}
	e.effect = t
	if e.state == stateRunning {
		e.pool = e.newPool()
		e.fadeAlpha = 1
		e.fade = nil
	}
}

// Effect returns the engine's resolved effect type.
func (e *Engine) Effect() EffectType {
	return e.effect
}

// SetConfig replaces the configuration. Changing the particle count resets
// the pool; other knobs apply live. No-op after teardown.
func (e *Engine) SetConfig(cfg Config) {
	if e.state == stateTornDown {
		return
	}
	cfg = cfg.withDefaults()
	reset := cfg.ParticleCount != e.cfg.ParticleCount
	e.cfg = cfg
	if reset && e.state == stateRunning {
		e.pool = e.newPool()
	} else if e.pool != nil {
		e.pool.cfg = cfg
	}
}

// RunConfig configures the window created by [Run].
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens a resizable window and drives the engine until the window
// closes. The engine is torn down on return.
func Run(e *Engine, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = fallbackWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = fallbackHeight
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer e.Teardown()
	return ebiten.RunGame(e)
}
