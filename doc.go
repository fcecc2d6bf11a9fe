// Package backdrop renders animated particle backgrounds for [Ebitengine].
//
// Backdrop simulates a fixed-size pool of decorative particles — snow, rain,
// confetti, fireflies, meteors, stars, bubbles, sparkle, dust, and floating
// motes — and paints them behind your UI every frame. It is designed for
// menu panels, title screens, and other surfaces that want ambient motion
// without owning a full particle framework.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	engine := backdrop.New(backdrop.EffectSnow, backdrop.Config{})
//	backdrop.Run(engine, backdrop.RunConfig{
//		Title: "Snow", Width: 800, Height: 600,
//	})
//
// For full control, embed the [Engine] in your own [ebiten.Game] and call
// [Engine.Update] and [Engine.Draw] directly:
//
//	type Game struct{ bg *backdrop.Engine }
//
//	func (g *Game) Update() error        { return g.bg.Update() }
//	func (g *Game) Draw(s *ebiten.Image) { g.bg.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return g.bg.Layout(w, h) }
//
// # Effects and configuration
//
// Each [EffectType] pairs a spawn rule, a per-frame motion rule, and a paint
// technique. A [Config] supplies the knobs shared by all effects: speed,
// particle count, a two-color palette, opacity, particle size, blend mode,
// and the background fill painted beneath the particles. All fields are
// optional; zero values take documented defaults. Configs can also be
// decoded from YAML via [LoadConfig], so a host application can hand the
// engine an opaque configuration blob.
//
// Unknown effect identifiers fall back to [EffectDust] rather than failing —
// a misconfigured host renders a plausible default instead of erroring.
//
// # Lifecycle
//
// The engine defers all simulation until it has a surface with positive
// area; resizing keeps the live pool (particles keep flying relative to the
// new bounds). [Engine.Teardown] is idempotent and guarantees no further
// painting or stepping afterwards.
//
// [Ebitengine]: https://ebitengine.org
package backdrop
