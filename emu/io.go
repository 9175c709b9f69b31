package emu

// I/O port addresses.
const (
	PortDisplayCtrl  = 0x00
	PortBackColor    = 0x01
	PortLCDLine      = 0x02 // read-only current scanline
	PortLCDInterrupt = 0x03 // line compare for the line interrupt
	PortSprBase      = 0x04
	PortSprFirst     = 0x05
	PortSprCount     = 0x06
	PortScrBase      = 0x07
	PortScr1ScrollX  = 0x10
	PortScr1ScrollY  = 0x11
	PortScr2ScrollX  = 0x12
	PortScr2ScrollY  = 0x13
	PortSystemCtrl2  = 0x60 // display mode
	PortHwintVector  = 0xB0
	PortHwintEnable  = 0xB2
	PortHwintStatus  = 0xB4 // read-only pending interrupts
	PortKeypad       = 0xB5
	PortHwintAck     = 0xB6 // write 1 to clear
)

// DISPLAY_CTRL bits.
const (
	DisplayScr1Enable = 0x01
	DisplayScr2Enable = 0x02
	DisplaySprEnable  = 0x04
)

// SYSTEM_CTRL2 display modes.
const (
	ModeMono       = 0x00
	ModeColor      = 0x80
	ModeColor4BPP  = 0xC0 // 16 colour planar tiles
	ModeColor4BPPP = 0xE0 // 16 colour packed tiles
)

// Keypad bits of the word passed to SetKeys. Reads of PortKeypad return
// one group per selected nibble.
const (
	KeyY1 = 1 << iota
	KeyY2
	KeyY3
	KeyY4
	KeyX1
	KeyX2
	KeyX3
	KeyX4
	_
	KeyStart
	KeyA
	KeyB
)

// Keypad group select bits written to PortKeypad.
const (
	keypadSelectY       = 0x10
	keypadSelectX       = 0x20
	keypadSelectButtons = 0x40
)

// IO is the I/O port register file. Ports without side effects are
// plain storage; the interrupt ports are routed to the controller.
type IO struct {
	ports  [256]uint8
	ic     *InterruptController
	keys   uint16
	keySel uint8
	line   uint8
}

// NewIO creates a port file wired to the interrupt controller.
func NewIO(ic *InterruptController) *IO {
	return &IO{ic: ic}
}

// WritePort writes an I/O port.
func (io *IO) WritePort(port uint8, val uint8) {
	switch port {
	case PortLCDLine, PortHwintStatus:
		// read-only
	case PortHwintEnable:
		io.ports[port] = val
		io.ic.SetEnabled(val)
	case PortHwintAck:
		io.ic.Acknowledge(val)
	case PortKeypad:
		io.keySel = val & 0x70
	default:
		io.ports[port] = val
	}
}

// WritePortWord writes a little-endian word to port and port+1.
func (io *IO) WritePortWord(port uint8, val uint16) {
	io.WritePort(port, uint8(val))
	io.WritePort(port+1, uint8(val>>8))
}

// ReadPort reads an I/O port.
func (io *IO) ReadPort(port uint8) uint8 {
	switch port {
	case PortLCDLine:
		return io.line
	case PortHwintStatus:
		return io.ic.Pending()
	case PortHwintEnable:
		return io.ic.Enabled()
	case PortKeypad:
		return io.readKeypad()
	case PortHwintAck:
		return 0
	default:
		return io.ports[port]
	}
}

func (io *IO) readKeypad() uint8 {
	out := io.keySel
	if io.keySel&keypadSelectY != 0 {
		out |= uint8(io.keys & 0x0F)
	}
	if io.keySel&keypadSelectX != 0 {
		out |= uint8(io.keys>>4) & 0x0F
	}
	if io.keySel&keypadSelectButtons != 0 {
		out |= uint8(io.keys>>8) & 0x0E
	}
	return out
}

// SetLine updates the current scanline reported by PortLCDLine.
func (io *IO) SetLine(line int) {
	io.line = uint8(line)
}

// Line returns the current scanline.
func (io *IO) Line() int {
	return int(io.line)
}

// SetKeys latches the keypad state.
func (io *IO) SetKeys(keys uint16) {
	io.keys = keys
}

// KeypadState returns the latched keypad word.
func (io *IO) KeypadState() uint16 {
	return io.keys
}

// --- Display register helpers ---

func (io *IO) scr1Enabled() bool {
	return io.ports[PortDisplayCtrl]&DisplayScr1Enable != 0
}

func (io *IO) scr1ScrollX() uint8 {
	return io.ports[PortScr1ScrollX]
}

func (io *IO) scr1ScrollY() uint8 {
	return io.ports[PortScr1ScrollY]
}

// scr1MapBase returns the IRAM address of screen 1's tile map.
func (io *IO) scr1MapBase() uint16 {
	return uint16(io.ports[PortScrBase]&0x0F) << 11
}

func (io *IO) lineCompare() uint8 {
	return io.ports[PortLCDInterrupt]
}

func (io *IO) backColor() uint8 {
	return io.ports[PortBackColor]
}

func (io *IO) packedTiles() bool {
	return io.ports[PortSystemCtrl2]&0x20 != 0
}

// colorMode reports whether a colour mode is selected.
func (io *IO) colorMode() bool {
	return io.ports[PortSystemCtrl2]&ModeColor != 0
}
