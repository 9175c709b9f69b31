package emu

import "github.com/user-none/wsparallax/parallax"

// Compile-time interface check.
var _ parallax.Sink = (*PortSink)(nil)

// PortSink drives the split-scroll scheduler's register writes through
// the I/O ports.
type PortSink struct {
	io *IO
}

// NewPortSink returns a sink writing to io.
func NewPortSink(io *IO) *PortSink {
	return &PortSink{io: io}
}

// SetScrollOffset writes SCR1_SCRL_X.
func (s *PortSink) SetScrollOffset(value uint8) {
	s.io.WritePort(PortScr1ScrollX, value)
}

// ArmLineTrigger writes LCD_INTERRUPT.
func (s *PortSink) ArmLineTrigger(line uint8) {
	s.io.WritePort(PortLCDInterrupt, line)
}

// Acknowledge writes the source's bit to HWINT_ACK.
func (s *PortSink) Acknowledge(src parallax.Source) {
	s.io.WritePort(PortHwintAck, uint8(src))
}
