// Package ebiten draws the emulator's framebuffer with Ebiten.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/wsparallax/assets"
	"github.com/user-none/wsparallax/emu"
	"github.com/user-none/wsparallax/parallax"
)

// Emulator adds Ebiten rendering to emu.Emulator.
type Emulator struct {
	*emu.Emulator

	offscreen *ebiten.Image
	drawOpts  ebiten.DrawImageOptions
}

// NewEmulator boots scene with table.
func NewEmulator(scene assets.Scene, table parallax.Table, region emu.Region) (*Emulator, error) {
	e, err := emu.NewEmulator(scene, table, region)
	if err != nil {
		return nil, err
	}
	return &Emulator{Emulator: e}, nil
}

// Layout implements ebiten.Game.
func (e *Emulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// DrawFrame scales a frame from the shared framebuffer to fit screen,
// keeping the LCD's aspect ratio.
func (e *Emulator) DrawFrame(screen *ebiten.Image, pixels []byte, stride, height int) {
	if height == 0 || stride != emu.ScreenWidth*4 || len(pixels) < stride*height {
		return
	}
	if e.offscreen == nil || e.offscreen.Bounds().Dy() != height {
		e.offscreen = ebiten.NewImage(emu.ScreenWidth, height)
	}
	e.offscreen.WritePixels(pixels[:stride*height])

	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	nw, nh := float64(emu.ScreenWidth), float64(height)
	scale := min(sw/nw, sh/nh)

	e.drawOpts = ebiten.DrawImageOptions{}
	e.drawOpts.GeoM.Scale(scale, scale)
	e.drawOpts.GeoM.Translate((sw-nw*scale)/2, (sh-nh*scale)/2)
	e.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(e.offscreen, &e.drawOpts)
}
