package backdrop

import "testing"

func newTestEngine(effect EffectType, cfg Config) *Engine {
	e := New(effect, cfg)
	e.FadeIn = 0
	e.Seed(42)
	return e
}

func TestEngineStartsUninitialized(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{})
	if e.Running() || e.TornDown() {
		t.Error("new engine should be neither running nor torn down")
	}
	if err := e.Update(); err != nil {
		t.Errorf("Update before sizing: %v", err)
	}
	// Draw must not touch the destination before the engine is running;
	// a nil destination proves it structurally.
	e.Draw(nil)
}

func TestEngineZeroSizeDefers(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{ParticleCount: 30})
	e.Resize(0, 0)
	if e.Running() {
		t.Fatal("engine must not run against a zero-area surface")
	}
	if e.pool != nil {
		t.Fatal("no pool may be created for a degenerate surface")
	}
	e.Draw(nil) // no paint calls while deferred

	// A later resize with positive dimensions starts the session.
	e.Resize(800, 600)
	if !e.Running() {
		t.Fatal("engine should run once dimensions are positive")
	}
	if e.pool == nil || e.pool.Len() != 30 {
		t.Fatal("pool should be constructed at the configured count")
	}
}

func TestEngineUpdateAdvancesSimulation(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{ParticleCount: 10})
	e.Resize(800, 600)
	for i := 0; i < 5; i++ {
		if err := e.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if got := e.pool.Frame(); got != 5 {
		t.Errorf("pool frame = %d, want 5", got)
	}
}

func TestEngineTeardownIdempotent(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{})
	e.Resize(800, 600)
	if !e.Running() {
		t.Fatal("engine should be running")
	}

	e.Teardown()
	e.Teardown() // second call must be a no-op
	if !e.TornDown() {
		t.Fatal("engine should be torn down")
	}
	if e.pool != nil || e.layer != nil {
		t.Error("teardown must drop the pool and the layer")
	}

	// No further stepping, painting, or restarting.
	if err := e.Update(); err != nil {
		t.Errorf("Update after teardown: %v", err)
	}
	e.Draw(nil)
	e.Resize(1024, 768)
	if e.Running() || e.pool != nil {
		t.Error("resize after teardown must not restart the engine")
	}
	e.SetEffect(EffectRain)
	e.SetConfig(Config{ParticleCount: 99})
	if e.pool != nil {
		t.Error("config changes after teardown must not recreate the pool")
	}
}

func TestEngineSeededDeterministic(t *testing.T) {
	mk := func() *Engine {
		e := newTestEngine(EffectConfetti, Config{ParticleCount: 20})
		e.Resize(800, 600)
		return e
	}
	a, b := mk(), mk()
	for i := 0; i < 100; i++ {
		a.Update()
		b.Update()
	}
	for i := range a.pool.slots {
		pa, pb := &a.pool.slots[i], &b.pool.slots[i]
		if pa.x != pb.x || pa.y != pb.y {
			t.Fatalf("slot %d diverged: (%f,%f) vs (%f,%f)", i, pa.x, pa.y, pb.x, pb.y)
		}
	}
}

func TestEngineSetEffectResetsPool(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{ParticleCount: 25})
	e.Resize(800, 600)
	for i := 0; i < 30; i++ {
		e.Update()
	}

	e.SetEffect(EffectConfetti)
	if e.Effect() != EffectConfetti {
		t.Errorf("Effect() = %q, want confetti", e.Effect())
	}
	if e.pool.Effect() != EffectConfetti {
		t.Error("pool should be rebuilt for the new effect")
	}
	if e.pool.Frame() != 0 {
		t.Error("pool reset should restart the frame counter")
	}
	if e.pool.Len() != 25 {
		t.Errorf("Len() = %d after effect switch, want 25", e.pool.Len())
	}
}

func TestEngineSetEffectSameKeepsPool(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{})
	e.Resize(800, 600)
	before := e.pool
	e.SetEffect(EffectSnow)
	if e.pool != before {
		t.Error("setting the same effect must not reset the pool")
	}
}

func TestEngineSetEffectUnknownFallsBackToDust(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{})
	e.Resize(800, 600)
	e.SetEffect(EffectType("warp-field"))
	if e.Effect() != EffectDust {
		t.Errorf("Effect() = %q, want dust", e.Effect())
	}
}

func TestEngineSetConfigLiveTuning(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{ParticleCount: 40, Speed: 1})
	e.Resize(800, 600)
	before := e.pool

	// Same particle count: knobs apply live, pool survives.
	e.SetConfig(Config{ParticleCount: 40, Speed: 3})
	if e.pool != before {
		t.Error("same-count config change must keep the pool")
	}
	assertNear(t, "pool speed", e.pool.cfg.Speed, 3)

	// Count change: full reset.
	e.SetConfig(Config{ParticleCount: 80})
	if e.pool == before {
		t.Error("count change must rebuild the pool")
	}
	if e.pool.Len() != 80 {
		t.Errorf("Len() = %d, want 80", e.pool.Len())
	}
}

func TestEngineResizeKeepsRunningPool(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{ParticleCount: 15})
	e.Resize(800, 600)
	before := e.pool
	for i := 0; i < 10; i++ {
		e.Update()
	}

	e.Resize(1280, 720)
	if e.pool != before {
		t.Error("resize while running must not reset the pool")
	}
	w, h := e.Size()
	if w != 1280 || h != 720 {
		t.Errorf("Size() = (%d, %d), want (1280, 720)", w, h)
	}
	assertNear(t, "pool width", e.pool.w, 1280)
	assertNear(t, "pool height", e.pool.h, 720)
}

func TestEngineLayoutFallsBackOnZeroSize(t *testing.T) {
	e := newTestEngine(EffectSnow, Config{})
	w, h := e.Layout(0, 0)
	if w != fallbackWidth || h != fallbackHeight {
		t.Errorf("Layout(0,0) = (%d, %d), want fallback (%d, %d)", w, h, fallbackWidth, fallbackHeight)
	}
	if !e.Running() {
		t.Error("engine should run at the fallback size")
	}
}

func TestEngineFadeIn(t *testing.T) {
	e := New(EffectSnow, Config{ParticleCount: 5})
	e.Seed(1)
	e.Resize(800, 600)
	assertNear(t, "initial fadeAlpha", e.fadeAlpha, 0)

	// One second of frames at the default TPS completes the tween.
	for i := 0; i < 61; i++ {
		e.Update()
	}
	assertNear(t, "final fadeAlpha", e.fadeAlpha, 1)
	if e.fade != nil {
		t.Error("tween should be released once complete")
	}
}

func TestEngineUnknownEffectFallsBackToDust(t *testing.T) {
	e := New(EffectType("warp-field"), Config{})
	if e.Effect() != EffectDust {
		t.Errorf("Effect() = %q, want dust", e.Effect())
	}
}
