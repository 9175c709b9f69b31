package emu

import (
	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/wsparallax/assets"
	"github.com/user-none/wsparallax/parallax"
)

// Compile-time interface checks.
var _ emucore.Emulator = (*Emulator)(nil)
var _ emucore.SaveStater = (*Emulator)(nil)
var _ emucore.MemoryInspector = (*Emulator)(nil)
var _ emucore.MemoryMapper = (*Emulator)(nil)

const (
	Name    = "wsparallax"
	Version = "0.1.0"
)

// Emulator is a WonderSwan Color display running the split-scroll
// parallax program.
type Emulator struct {
	mem     *Memory
	ic      *InterruptController
	io      *IO
	display *Display

	table    parallax.Table
	sync     *parallax.FrameSync
	scroller *parallax.Scroller
	idle     *parallax.IdleLoop

	region  Region
	overlay bool

	// CRC32 of the loaded scene, stored in save states
	sceneCRC uint32

	audioBuffer []int16
}

// NewEmulator validates table, loads scene and boots the program. A table
// error is returned before any interrupt is enabled.
func NewEmulator(scene assets.Scene, table parallax.Table, region Region) (*Emulator, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	ic := NewInterruptController()
	io := NewIO(ic)
	mem := NewMemory()
	sync := &parallax.FrameSync{}

	e := &Emulator{
		mem:         mem,
		ic:          ic,
		io:          io,
		display:     NewDisplay(mem, io),
		table:       table,
		sync:        sync,
		scroller:    parallax.NewScroller(table, NewPortSink(io), sync),
		idle:        parallax.NewIdleLoop(sync),
		region:      region,
		sceneCRC:    scene.CRC32(),
		audioBuffer: make([]int16, 0, samplesPerFrame*2),
	}
	if err := e.boot(scene); err != nil {
		return nil, err
	}
	return e, nil
}

// RunFrame executes one frame: every scanline latches its interrupt
// requests, services them, then renders with the resulting registers.
func (e *Emulator) RunFrame() {
	for line := 0; line < TotalScanlines; line++ {
		e.io.SetLine(line)

		if uint8(line) == e.io.lineCompare() {
			e.ic.Raise(HwintLineBit)
		}
		if line == VBlankLine {
			e.ic.Raise(HwintVBlankBit)
		}
		split := e.ic.Pending()&HwintLineBit != 0

		// The halted CPU wakes for each serviced interrupt.
		if e.ic.Service() > 0 {
			e.idle.Wake()
		}

		if line < ScreenHeight {
			e.display.RenderScanline(line)
			if e.overlay && split {
				e.display.MarkLine(line)
			}
		}
	}
	e.fillAudio()
}

// SetInput maps the frontend button mask onto the keypad. The X pad is
// the d-pad; Y1-Y4 use button IDs 8-11.
func (e *Emulator) SetInput(player int, buttons uint32) {
	if player != 0 {
		return
	}
	var keys uint16
	mapping := []struct {
		bit uint32
		key uint16
	}{
		{1 << emucore.ButtonUp, KeyX1},
		{1 << emucore.ButtonRight, KeyX2},
		{1 << emucore.ButtonDown, KeyX3},
		{1 << emucore.ButtonLeft, KeyX4},
		{1 << 4, KeyA},
		{1 << 5, KeyB},
		{1 << 7, KeyStart},
		{1 << 8, KeyY1},
		{1 << 9, KeyY2},
		{1 << 10, KeyY3},
		{1 << 11, KeyY4},
	}
	for _, m := range mapping {
		if buttons&m.bit != 0 {
			keys |= m.key
		}
	}
	e.io.SetKeys(keys)
}

// GetFramebuffer returns raw RGBA pixel data for current frame.
func (e *Emulator) GetFramebuffer() []byte {
	return e.display.Framebuffer().Pix
}

// GetFramebufferStride returns the stride (bytes per row) of the framebuffer.
func (e *Emulator) GetFramebufferStride() int {
	return e.display.Framebuffer().Stride
}

// GetActiveHeight returns the visible display height.
func (e *Emulator) GetActiveHeight() int {
	return ScreenHeight
}

// GetRegion returns the emulator's region setting.
func (e *Emulator) GetRegion() Region {
	return e.region
}

// SetRegion records the region. The handheld has one timing for all regions.
func (e *Emulator) SetRegion(region Region) {
	e.region = region
}

// GetTiming returns FPS and scanline count.
func (e *Emulator) GetTiming() emucore.Timing {
	return emucore.Timing{
		FPS:       FPS,
		Scanlines: TotalScanlines,
	}
}

// SetOption applies a core option change identified by key.
func (e *Emulator) SetOption(key string, value string) {
	switch key {
	case OptionOverlay:
		e.overlay = value == "true"
	}
}

// Close releases any resources held by the emulator.
func (e *Emulator) Close() {}

// Tic returns the idle loop's frame counter.
func (e *Emulator) Tic() uint16 {
	return e.idle.Tic()
}

// Scroller exposes the split-scroll state.
func (e *Emulator) Scroller() *parallax.Scroller {
	return e.scroller
}

// LineScrollX returns the horizontal scroll visible line was drawn with
// in the last frame.
func (e *Emulator) LineScrollX(line int) uint8 {
	return e.display.LineScrollX(line)
}

// ReadPort reads an I/O port.
func (e *Emulator) ReadPort(port uint8) uint8 {
	return e.io.ReadPort(port)
}

// ReadMemory reads IRAM from addr into buf and returns the number of
// bytes read.
func (e *Emulator) ReadMemory(addr uint32, buf []byte) uint32 {
	var count uint32
	for i := range buf {
		cur := addr + uint32(i)
		if cur >= iramSize {
			return count
		}
		buf[i] = e.mem.Read8(uint16(cur))
		count++
	}
	return count
}

// MemoryMap returns the available memory regions.
func (e *Emulator) MemoryMap() []emucore.MemoryRegion {
	return []emucore.MemoryRegion{
		{Type: emucore.MemorySystemRAM, Size: iramSize},
	}
}

// ReadRegion returns a copy of the specified memory region.
func (e *Emulator) ReadRegion(regionType int) []byte {
	if regionType == emucore.MemorySystemRAM {
		return e.mem.Bytes()
	}
	return nil
}

// WriteRegion writes data to the specified memory region.
func (e *Emulator) WriteRegion(regionType int, data []byte) {
	if regionType == emucore.MemorySystemRAM {
		e.mem.Load(data)
	}
}
