package emu

import "testing"

func makeTestIO() *IO {
	return NewIO(NewInterruptController())
}

func TestIO_PlainPorts(t *testing.T) {
	io := makeTestIO()
	io.WritePort(PortScr1ScrollX, 0x42)
	if got := io.ReadPort(PortScr1ScrollX); got != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", got)
	}
	if io.scr1ScrollX() != 0x42 {
		t.Errorf("expected scroll helper 0x42, got 0x%02X", io.scr1ScrollX())
	}
}

func TestIO_WritePortWord(t *testing.T) {
	io := makeTestIO()
	io.WritePortWord(PortDisplayCtrl, 0x0301)
	if io.ReadPort(PortDisplayCtrl) != 0x01 || io.ReadPort(PortBackColor) != 0x03 {
		t.Errorf("expected low byte 0x01 and high byte 0x03, got 0x%02X 0x%02X",
			io.ReadPort(PortDisplayCtrl), io.ReadPort(PortBackColor))
	}
	if !io.scr1Enabled() {
		t.Error("expected screen 1 enabled")
	}
}

func TestIO_LineIsReadOnly(t *testing.T) {
	io := makeTestIO()
	io.SetLine(77)
	io.WritePort(PortLCDLine, 3)
	if got := io.ReadPort(PortLCDLine); got != 77 {
		t.Errorf("expected 77, got %d", got)
	}
	if io.Line() != 77 {
		t.Errorf("expected Line() 77, got %d", io.Line())
	}
}

func TestIO_ScreenBase(t *testing.T) {
	io := makeTestIO()
	io.WritePort(PortScrBase, scr1BaseBits(screen1Base)|scr2BaseBits(screen2Base))
	if got := io.scr1MapBase(); got != screen1Base {
		t.Errorf("expected map base 0x%04X, got 0x%04X", screen1Base, got)
	}
}

func TestIO_Modes(t *testing.T) {
	io := makeTestIO()
	if io.colorMode() {
		t.Error("expected mono mode at reset")
	}
	io.WritePort(PortSystemCtrl2, ModeColor4BPP)
	if !io.colorMode() || io.packedTiles() {
		t.Error("expected planar colour mode")
	}
	io.WritePort(PortSystemCtrl2, ModeColor4BPPP)
	if !io.packedTiles() {
		t.Error("expected packed colour mode")
	}
}

func TestIO_Keypad(t *testing.T) {
	io := makeTestIO()
	io.SetKeys(KeyY2 | KeyX1 | KeyX4 | KeyA)

	tests := []struct {
		sel  uint8
		want uint8
	}{
		{keypadSelectY, keypadSelectY | 0x02},
		{keypadSelectX, keypadSelectX | 0x09},
		{keypadSelectButtons, keypadSelectButtons | 0x04},
		{0, 0},
	}
	for _, tt := range tests {
		io.WritePort(PortKeypad, tt.sel)
		if got := io.ReadPort(PortKeypad); got != tt.want {
			t.Errorf("select 0x%02X: expected 0x%02X, got 0x%02X", tt.sel, tt.want, got)
		}
	}
}

func TestIO_SerializeRoundTrip(t *testing.T) {
	io := makeTestIO()
	io.WritePort(PortScr1ScrollX, 0x99)
	io.WritePort(PortKeypad, keypadSelectX)
	io.SetKeys(KeyStart)
	io.SetLine(12)

	buf := make([]byte, IOSerializeSize)
	if err := io.Serialize(buf); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	other := makeTestIO()
	if err := other.Deserialize(buf); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if other.scr1ScrollX() != 0x99 || other.KeypadState() != KeyStart || other.Line() != 12 || other.keySel != keypadSelectX {
		t.Error("IO state not restored")
	}
	if err := other.Deserialize(buf[:10]); err == nil {
		t.Error("expected error for short buffer")
	}
}
