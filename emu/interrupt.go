package emu

import "github.com/user-none/wsparallax/parallax"

// Hardware interrupt indexes. The bit for index i is 1<<i.
const (
	HwintSerialTX   = 0
	HwintKey        = 1
	HwintCartridge  = 2
	HwintSerialRX   = 3
	HwintLine       = 4
	HwintVBlankTmr  = 5
	HwintVBlank     = 6
	HwintHBlankTmr  = 7
	hwintSources    = 8
	HwintLineBit    = uint8(parallax.SourceLine)
	HwintVBlankBit  = uint8(parallax.SourceVBlank)
	HwintAllSources = 0xFF
)

// Handler is an interrupt service routine.
type Handler func()

// InterruptController latches hardware interrupt requests and delivers
// them to installed handlers. Delivery is suppressed while a handler runs
// and while the CPU has interrupts masked, so handlers never nest.
type InterruptController struct {
	handlers  [hwintSources]Handler
	enabled   uint8
	pending   uint8
	irq       bool // CPU interrupt flag
	inHandler bool

	// unacked counts dispatches whose handler returned without clearing
	// its pending bit.
	unacked int
}

// NewInterruptController returns a controller with everything disabled.
func NewInterruptController() *InterruptController {
	return &InterruptController{}
}

// SetHandler installs h for interrupt index idx.
func (ic *InterruptController) SetHandler(idx int, h Handler) {
	ic.handlers[idx] = h
}

// SetEnabled sets the hardware interrupt enable mask.
func (ic *InterruptController) SetEnabled(mask uint8) {
	ic.enabled = mask
}

// Enable enables the sources in mask.
func (ic *InterruptController) Enable(mask uint8) {
	ic.enabled |= mask
}

// Disable disables the sources in mask.
func (ic *InterruptController) Disable(mask uint8) {
	ic.enabled &^= mask
}

// Enabled returns the enable mask.
func (ic *InterruptController) Enabled() uint8 {
	return ic.enabled
}

// SetIRQ sets the CPU interrupt flag (sti/cli).
func (ic *InterruptController) SetIRQ(on bool) {
	ic.irq = on
}

// IRQ returns the CPU interrupt flag.
func (ic *InterruptController) IRQ() bool {
	return ic.irq
}

// Raise latches a request for the sources in mask. Disabled sources are
// dropped.
func (ic *InterruptController) Raise(mask uint8) {
	ic.pending |= mask & ic.enabled
}

// Acknowledge clears the pending bits in mask.
func (ic *InterruptController) Acknowledge(mask uint8) {
	ic.pending &^= mask
}

// Pending returns the pending mask.
func (ic *InterruptController) Pending() uint8 {
	return ic.pending
}

// Unacknowledged returns how many handlers returned without acknowledging.
func (ic *InterruptController) Unacknowledged() int {
	return ic.unacked
}

// Service delivers pending, enabled interrupts highest index first. Each
// source is delivered at most once per call. It returns the number of
// handlers run.
func (ic *InterruptController) Service() int {
	if !ic.irq || ic.inHandler {
		return 0
	}
	var served uint8
	count := 0
	for {
		ready := ic.pending & ic.enabled &^ served
		if ready == 0 {
			return count
		}
		idx := highestBit(ready)
		bit := uint8(1) << idx
		served |= bit

		h := ic.handlers[idx]
		if h == nil {
			continue
		}
		ic.inHandler = true
		h()
		ic.inHandler = false
		count++

		if ic.pending&bit != 0 {
			ic.unacked++
		}
	}
}

func highestBit(v uint8) int {
	for i := 7; i >= 0; i-- {
		if v&(1<<i) != 0 {
			return i
		}
	}
	return -1
}

// interruptState is the serializable part of the controller.
type interruptState struct {
	enabled uint8
	pending uint8
	irq     bool
}

func (ic *InterruptController) state() interruptState {
	return interruptState{enabled: ic.enabled, pending: ic.pending, irq: ic.irq}
}

func (ic *InterruptController) restore(s interruptState) {
	ic.enabled = s.enabled
	ic.pending = s.pending
	ic.irq = s.irq
}
