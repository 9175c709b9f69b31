package ui

import (
	"sync"
	"time"

	"github.com/user-none/wsparallax/emu"
)

// SharedInput holds the button mask written by the Ebiten thread and
// read by the emulation goroutine. Bits follow emu.Emulator.SetInput.
type SharedInput struct {
	mu      sync.Mutex
	buttons uint32
	overlay bool
}

// Set stores the current button mask and overlay toggle.
func (si *SharedInput) Set(buttons uint32, overlay bool) {
	si.mu.Lock()
	si.buttons = buttons
	si.overlay = overlay
	si.mu.Unlock()
}

// Read returns the current button mask and overlay toggle.
func (si *SharedInput) Read() (buttons uint32, overlay bool) {
	si.mu.Lock()
	buttons, overlay = si.buttons, si.overlay
	si.mu.Unlock()
	return
}

// SharedFramebuffer holds pixel data written by the emulation goroutine
// and read by Ebiten's Draw. The write side is copied into a separate
// read buffer under the lock so Draw never sees a half-written frame.
type SharedFramebuffer struct {
	mu          sync.Mutex
	writePixels []byte
	readPixels  []byte
	stride      int
	height      int
	frame       uint64
}

// NewSharedFramebuffer creates a framebuffer sized for the LCD.
func NewSharedFramebuffer() *SharedFramebuffer {
	size := emu.ScreenWidth * emu.ScreenHeight * 4
	return &SharedFramebuffer{
		writePixels: make([]byte, size),
		readPixels:  make([]byte, size),
	}
}

// Update copies a completed frame from the emulation goroutine.
func (sf *SharedFramebuffer) Update(pixels []byte, stride, height int) {
	sf.mu.Lock()
	n := min(stride*height, len(sf.writePixels), len(pixels))
	copy(sf.writePixels[:n], pixels[:n])
	sf.stride = stride
	sf.height = height
	sf.frame++
	sf.mu.Unlock()
}

// Read returns a snapshot of the latest frame.
func (sf *SharedFramebuffer) Read() (pixels []byte, stride, height int) {
	sf.mu.Lock()
	stride, height = sf.stride, sf.height
	if n := min(stride*height, len(sf.writePixels)); n > 0 {
		copy(sf.readPixels[:n], sf.writePixels[:n])
	}
	pixels = sf.readPixels
	sf.mu.Unlock()
	return
}

// Frames returns how many frames have been published.
func (sf *SharedFramebuffer) Frames() uint64 {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	return sf.frame
}

// EmuControl coordinates pausing and stopping the emulation goroutine
// from the Ebiten thread.
type EmuControl struct {
	mu      sync.Mutex
	paused  bool
	stopped bool
	wake    chan struct{}
}

// NewEmuControl creates a running control.
func NewEmuControl() *EmuControl {
	return &EmuControl{wake: make(chan struct{}, 1)}
}

// SetPaused pauses or resumes the emulation goroutine.
func (ec *EmuControl) SetPaused(paused bool) {
	ec.mu.Lock()
	ec.paused = paused
	ec.mu.Unlock()
	ec.signal()
}

// TogglePause flips the paused state and returns the new state.
func (ec *EmuControl) TogglePause() bool {
	ec.mu.Lock()
	ec.paused = !ec.paused
	p := ec.paused
	ec.mu.Unlock()
	ec.signal()
	return p
}

// IsPaused reports whether a pause is in effect.
func (ec *EmuControl) IsPaused() bool {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.paused
}

// Stop tells the emulation goroutine to exit.
func (ec *EmuControl) Stop() {
	ec.mu.Lock()
	ec.stopped = true
	ec.mu.Unlock()
	ec.signal()
}

// Wait is called by the emulation goroutine between frames. It blocks
// while paused and returns false once the goroutine should exit.
func (ec *EmuControl) Wait() bool {
	for {
		ec.mu.Lock()
		stopped, paused := ec.stopped, ec.paused
		ec.mu.Unlock()
		if stopped {
			return false
		}
		if !paused {
			return true
		}
		select {
		case <-ec.wake:
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (ec *EmuControl) signal() {
	select {
	case ec.wake <- struct{}{}:
	default:
	}
}
