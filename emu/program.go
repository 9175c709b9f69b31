package emu

import (
	"errors"
	"fmt"

	"github.com/user-none/wsparallax/assets"
	"github.com/user-none/wsparallax/parallax"
)

// IRAM placement of the display tables.
const (
	screen1Base = 0x1000
	screen2Base = 0x1800
	spriteBase  = 0x2E00

	initialScrollX = 16
)

var ErrLineOutOfRange = errors.New("split line outside the visible area")

func scr1BaseBits(addr uint16) uint8 { return uint8(addr >> 11) }
func scr2BaseBits(addr uint16) uint8 { return uint8(addr>>11) << 4 }
func sprBaseBits(addr uint16) uint8  { return uint8(addr >> 9) }

// checkTable applies the layout rules plus the display's line range.
func checkTable(t parallax.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for i, d := range t[:len(t)-1] {
		if int(d.Line) >= ScreenHeight {
			return fmt.Errorf("band %d (line %d): %w", i, d.Line, ErrLineOutOfRange)
		}
	}
	return nil
}

// boot runs the program's one-shot setup and leaves the CPU halted with
// the vertical blank and line interrupts enabled.
func (e *Emulator) boot(scene assets.Scene) error {
	e.disableInterrupts()

	e.io.WritePort(PortSystemCtrl2, ModeColor4BPP)

	// display off while loading
	e.io.WritePortWord(PortDisplayCtrl, 0)

	e.io.WritePort(PortScrBase, scr1BaseBits(screen1Base)|scr2BaseBits(screen2Base))
	e.io.WritePort(PortSprBase, sprBaseBits(spriteBase))

	e.io.WritePort(PortScr1ScrollX, initialScrollX)
	e.io.WritePort(PortScr1ScrollY, 0)
	e.io.WritePort(PortScr2ScrollX, 0)
	e.io.WritePort(PortScr2ScrollY, 0)

	e.io.WritePort(PortSprCount, 0)

	if err := e.mem.CopyWords(paletteBase, scene.Palette); err != nil {
		return fmt.Errorf("load palette: %w", err)
	}
	if err := e.mem.CopyWords(tileBank0Base, scene.Tiles); err != nil {
		return fmt.Errorf("load tiles: %w", err)
	}
	if err := e.mem.CopyWords(screen1Base, scene.Map); err != nil {
		return fmt.Errorf("load tile map: %w", err)
	}
	e.io.WritePort(PortBackColor, scene.BackColor)

	e.io.WritePortWord(PortDisplayCtrl, DisplayScr1Enable)

	e.scroller.Reset(e.table)
	e.idle.SetTic(0)
	e.sync.Set(false)

	e.enableInterrupts()
	return nil
}

func (e *Emulator) disableInterrupts() {
	e.ic.SetIRQ(false)
	e.io.WritePort(PortHwintEnable, 0)
}

func (e *Emulator) enableInterrupts() {
	e.io.WritePort(PortHwintAck, HwintAllSources)

	e.ic.SetHandler(HwintVBlank, e.scroller.VBlank)
	e.ic.SetHandler(HwintLine, e.scroller.Line)

	e.io.WritePort(PortHwintEnable, e.io.ReadPort(PortHwintEnable)|HwintVBlankBit|HwintLineBit)

	// a line that is never reached until the first vblank arms a real one
	e.io.WritePort(PortLCDInterrupt, parallax.TerminatorLine)

	e.ic.SetIRQ(true)
}
