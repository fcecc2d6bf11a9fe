package backdrop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay draws a small FPS/TPS readout, refreshed about twice a second.
// Intended for examples and debugging; call its Draw after Engine.Draw.
type FPSOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

// NewFPSOverlay creates an overlay widget.
func NewFPSOverlay() *FPSOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &FPSOverlay{img: ebiten.NewImage(100, 32), lastUpdate: 1}
}

// Draw paints the overlay in the top-left corner of dst.
func (f *FPSOverlay) Draw(dst *ebiten.Image) {
	f.lastUpdate += 1.0 / float64(ebiten.TPS())
	if f.lastUpdate >= 0.5 {
		f.lastUpdate = 0
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	dst.DrawImage(f.img, &ebiten.DrawImageOptions{})
}
