package emu

import (
	"errors"
	"testing"

	"github.com/user-none/wsparallax/assets"
	"github.com/user-none/wsparallax/parallax"
)

// makeTestEmulator boots the generated scene with table.
func makeTestEmulator(t *testing.T, table parallax.Table) *Emulator {
	t.Helper()
	e, err := NewEmulator(assets.Generate(), table, RegionNTSC)
	if err != nil {
		t.Fatalf("NewEmulator: %v", err)
	}
	return e
}

// staticTable has distinct scroll values per band and no motion.
func staticTable() parallax.Table {
	return parallax.Table{
		{X: 10, Line: 0},
		{X: 20, Line: 35},
		{X: 30, Line: 100},
		{Line: parallax.TerminatorLine},
	}
}

func TestNewEmulator_BootState(t *testing.T) {
	e := makeTestEmulator(t, parallax.DefaultTable())

	checks := []struct {
		name string
		port uint8
		want uint8
	}{
		{"mode", PortSystemCtrl2, ModeColor4BPP},
		{"display", PortDisplayCtrl, DisplayScr1Enable},
		{"screen base", PortScrBase, 0x32},
		{"sprite base", PortSprBase, 0x17},
		{"scroll x", PortScr1ScrollX, 16},
		{"sprite count", PortSprCount, 0},
		{"line compare", PortLCDInterrupt, 255},
		{"enable", PortHwintEnable, HwintVBlankBit | HwintLineBit},
		{"status", PortHwintStatus, 0},
	}
	for _, c := range checks {
		if got := e.ReadPort(c.port); got != c.want {
			t.Errorf("%s: expected 0x%02X, got 0x%02X", c.name, c.want, got)
		}
	}
	if !e.ic.IRQ() {
		t.Error("expected CPU interrupts enabled after boot")
	}
	if e.Tic() != 0 {
		t.Errorf("expected tic 0, got %d", e.Tic())
	}
}

func TestNewEmulator_RejectsBadTable(t *testing.T) {
	bad := parallax.Table{{Line: 0}, {Line: 80}, {Line: 40}, {Line: parallax.TerminatorLine}}
	if _, err := NewEmulator(assets.Generate(), bad, RegionNTSC); !errors.Is(err, parallax.ErrNotAscending) {
		t.Errorf("expected ErrNotAscending, got %v", err)
	}

	offscreen := parallax.Table{{Line: 0}, {Line: 150}, {Line: parallax.TerminatorLine}}
	if _, err := NewEmulator(assets.Generate(), offscreen, RegionNTSC); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("expected ErrLineOutOfRange, got %v", err)
	}
}

func TestRunFrame_FirstFrameUsesBootScroll(t *testing.T) {
	e := makeTestEmulator(t, staticTable())
	e.RunFrame()
	for line := 0; line < ScreenHeight; line++ {
		if got := e.LineScrollX(line); got != initialScrollX {
			t.Fatalf("line %d: expected boot scroll %d, got %d", line, initialScrollX, got)
		}
	}
	if e.Tic() != 1 {
		t.Errorf("expected tic 1 after first vblank, got %d", e.Tic())
	}
}

func TestRunFrame_SplitsPerScanline(t *testing.T) {
	e := makeTestEmulator(t, staticTable())
	e.RunFrame()
	e.RunFrame()

	for line := 0; line < ScreenHeight; line++ {
		want := uint8(10)
		switch {
		case line >= 100:
			want = 30
		case line >= 35:
			want = 20
		}
		if got := e.LineScrollX(line); got != want {
			t.Errorf("line %d: expected scroll %d, got %d", line, want, got)
		}
	}
}

func TestRunFrame_DefaultTableBands(t *testing.T) {
	table := parallax.DefaultTable()
	e := makeTestEmulator(t, table)

	const frames = 300
	for i := 0; i < frames; i++ {
		e.RunFrame()
	}
	if e.Tic() != frames {
		t.Errorf("expected tic %d, got %d", frames, e.Tic())
	}

	// Line N shows the value latched at the previous vblank, i.e. after
	// frames-1 reconciler runs.
	for band := 0; band < len(table)-1; band++ {
		d := table[band]
		ticks := (frames - 1) / (int(d.TimerMax) + 1)
		want := uint8(int(d.X) + int(d.Speed)*ticks)
		if got := e.LineScrollX(int(d.Line)); got != want {
			t.Errorf("band %d at line %d: expected %d, got %d", band, d.Line, want, got)
		}
		// the whole band shows the same scroll
		end := ScreenHeight
		if next := table[band+1].Line; int(next) < end {
			end = int(next)
		}
		for line := int(d.Line); line < end; line++ {
			if e.LineScrollX(line) != want {
				t.Errorf("band %d line %d: expected %d, got %d", band, line, want, e.LineScrollX(line))
				break
			}
		}
	}
}

func TestRunFrame_CursorAfterVBlank(t *testing.T) {
	e := makeTestEmulator(t, parallax.DefaultTable())
	e.RunFrame()
	if e.Scroller().Cursor() != 1 {
		t.Errorf("expected cursor 1 after vblank, got %d", e.Scroller().Cursor())
	}
	if got := e.ReadPort(PortLCDInterrupt); got != 35 {
		t.Errorf("expected line 35 armed, got %d", got)
	}
	if e.ic.Pending() != 0 {
		t.Errorf("expected no pending interrupts, got 0x%02X", e.ic.Pending())
	}
	if e.ic.Unacknowledged() != 0 {
		t.Errorf("expected every handler to acknowledge, got %d misses", e.ic.Unacknowledged())
	}
}

func TestRunFrame_Overlay(t *testing.T) {
	e := makeTestEmulator(t, staticTable())
	e.SetOption(OptionOverlay, "true")
	e.RunFrame()
	e.RunFrame()

	fb := e.GetFramebuffer()
	stride := e.GetFramebufferStride()
	if fb[35*stride] != 0xFF || fb[35*stride+1] != 0xFF || fb[35*stride+2] != 0xFF {
		t.Error("expected marker on split line 35")
	}
	if fb[100*stride] != 0xFF || fb[100*stride+1] != 0xFF || fb[100*stride+2] != 0xFF {
		t.Error("expected marker on split line 100")
	}
}

func TestRunFrame_ScrollMovesPixels(t *testing.T) {
	// A band scrolled by 8 pixels shows the same pixels shifted left.
	table := parallax.Table{
		{X: 0, Line: 0},
		{X: 8, Line: 50},
		{Line: parallax.TerminatorLine},
	}
	e := makeTestEmulator(t, table)
	e.RunFrame()
	e.RunFrame()
	fb := e.GetFramebuffer()
	stride := e.GetFramebufferStride()
	snapshot := make([]byte, len(fb))
	copy(snapshot, fb)

	table[1].X = 0
	ref := makeTestEmulator(t, table)
	ref.RunFrame()
	ref.RunFrame()
	rfb := ref.GetFramebuffer()

	line := 60
	for x := 0; x < ScreenWidth-8; x++ {
		got := snapshot[line*stride+x*4 : line*stride+x*4+4]
		want := rfb[line*stride+(x+8)*4 : line*stride+(x+8)*4+4]
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("x=%d: expected %v, got %v", x, want, got)
			}
		}
	}
}

func TestSetInput(t *testing.T) {
	e := makeTestEmulator(t, parallax.DefaultTable())
	e.SetInput(0, 1<<4|1<<7|1<<8)
	want := uint16(KeyA | KeyStart | KeyY1)
	if got := e.io.KeypadState(); got != want {
		t.Errorf("expected keys 0x%03X, got 0x%03X", want, got)
	}
	e.SetInput(1, 0xFFFF)
	if got := e.io.KeypadState(); got != want {
		t.Errorf("player 2 input changed keys to 0x%03X", got)
	}
}

func TestGetAudioSamples_SilentFrame(t *testing.T) {
	e := makeTestEmulator(t, parallax.DefaultTable())
	e.RunFrame()
	samples := e.GetAudioSamples()
	if len(samples) != samplesPerFrame*2 {
		t.Fatalf("expected %d samples, got %d", samplesPerFrame*2, len(samples))
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d: expected silence, got %d", i, s)
		}
	}
}

func TestGetTiming(t *testing.T) {
	e := makeTestEmulator(t, parallax.DefaultTable())
	timing := e.GetTiming()
	if timing.FPS != FPS || timing.Scanlines != TotalScanlines {
		t.Errorf("unexpected timing %+v", timing)
	}
}

func TestReadMemory(t *testing.T) {
	e := makeTestEmulator(t, parallax.DefaultTable())
	buf := make([]byte, 4)
	if n := e.ReadMemory(paletteBase, buf); n != 4 {
		t.Fatalf("expected 4 bytes, got %d", n)
	}
	scene := assets.Generate()
	for i := range buf {
		if buf[i] != scene.Palette[i] {
			t.Errorf("byte %d: expected 0x%02X, got 0x%02X", i, scene.Palette[i], buf[i])
		}
	}
	if n := e.ReadMemory(iramSize-2, buf); n != 2 {
		t.Errorf("expected read to stop at end of RAM, got %d", n)
	}
}
