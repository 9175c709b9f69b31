// Package cli runs the emulator in a bare window without the full UI.
package cli

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	emucore "github.com/user-none/eblitui/api"
	emubridge "github.com/user-none/wsparallax/bridge/ebiten"
	"github.com/user-none/wsparallax/emu"
	"github.com/user-none/wsparallax/ui"
)

// Audio buffer bounds in bytes used to nudge frame pacing.
const (
	pacingLowWater  = 9600
	pacingHighWater = 19200
)

// Button IDs beyond the d-pad, matching emu.Emulator.SetInput.
const (
	buttonA     = 4
	buttonB     = 5
	buttonStart = 7
	buttonY1    = 8
	buttonY2    = 9
	buttonY3    = 10
	buttonY4    = 11
)

// keyBinding maps a button ID to keyboard keys and a standard gamepad
// button.
type keyBinding struct {
	id   uint
	keys []ebiten.Key
	pad  ebiten.StandardGamepadButton
}

var bindings = []keyBinding{
	{uint(emucore.ButtonUp), []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, ebiten.StandardGamepadButtonLeftTop},
	{uint(emucore.ButtonDown), []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, ebiten.StandardGamepadButtonLeftBottom},
	{uint(emucore.ButtonLeft), []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, ebiten.StandardGamepadButtonLeftLeft},
	{uint(emucore.ButtonRight), []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, ebiten.StandardGamepadButtonLeftRight},
	{buttonA, []ebiten.Key{ebiten.KeyJ}, ebiten.StandardGamepadButtonRightBottom},
	{buttonB, []ebiten.Key{ebiten.KeyK}, ebiten.StandardGamepadButtonRightRight},
	{buttonStart, []ebiten.Key{ebiten.KeyEnter}, ebiten.StandardGamepadButtonCenterRight},
	{buttonY1, []ebiten.Key{ebiten.KeyI}, ebiten.StandardGamepadButtonRightTop},
	{buttonY2, []ebiten.Key{ebiten.KeyL}, ebiten.StandardGamepadButtonFrontTopRight},
	{buttonY3, []ebiten.Key{ebiten.KeyM}, ebiten.StandardGamepadButtonRightLeft},
	{buttonY4, []ebiten.Key{ebiten.KeyH}, ebiten.StandardGamepadButtonFrontTopLeft},
}

// Runner drives an emulator from a dedicated goroutine paced by the audio
// buffer. The Ebiten thread only polls input and draws the latest frame.
type Runner struct {
	emulator    *emubridge.Emulator
	audioPlayer *ui.AudioPlayer

	control     *ui.EmuControl
	input       *ui.SharedInput
	framebuffer *ui.SharedFramebuffer
	done        chan struct{}

	overlay bool
}

// NewRunner starts emulating e. Without audio the runner falls back to
// wall-clock pacing.
func NewRunner(e *emubridge.Emulator, overlay bool) *Runner {
	player, err := ui.NewAudioPlayer(1.0)
	if err != nil {
		log.Printf("Warning: audio initialization failed: %v", err)
	}

	r := &Runner{
		emulator:    e,
		audioPlayer: player,
		control:     ui.NewEmuControl(),
		input:       &ui.SharedInput{},
		framebuffer: ui.NewSharedFramebuffer(),
		done:        make(chan struct{}),
		overlay:     overlay,
	}
	r.input.Set(0, overlay)

	go r.emulationLoop()

	return r
}

// Close stops the emulation goroutine and audio.
func (r *Runner) Close() {
	r.control.Stop()
	<-r.done

	if r.audioPlayer != nil {
		r.audioPlayer.Close()
		r.audioPlayer = nil
	}
}

func (r *Runner) emulationLoop() {
	defer close(r.done)

	frameTime := time.Duration(float64(time.Second) / emu.RefreshRateHz)
	last := time.Now()
	overlay := !r.overlay

	for r.control.Wait() {
		buttons, ov := r.input.Read()
		if ov != overlay {
			overlay = ov
			r.emulator.SetOption(emu.OptionOverlay, boolString(ov))
		}
		r.emulator.SetInput(0, buttons)

		r.emulator.RunFrame()

		if r.audioPlayer != nil {
			r.audioPlayer.QueueSamples(r.emulator.GetAudioSamples())
		}
		r.framebuffer.Update(
			r.emulator.GetFramebuffer(),
			r.emulator.GetFramebufferStride(),
			r.emulator.GetActiveHeight(),
		)

		sleep := frameTime - time.Since(last)
		if r.audioPlayer != nil {
			switch level := r.audioPlayer.BufferLevel(); {
			case level < pacingLowWater:
				sleep = sleep * 9 / 10
			case level > pacingHighWater:
				sleep = sleep * 11 / 10
			}
		}
		if sleep > time.Millisecond {
			time.Sleep(sleep)
		}
		last = time.Now()
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	if !ebiten.IsFocused() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if r.control.TogglePause() {
			log.Printf("paused after %d frames", r.framebuffer.Frames())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		r.overlay = !r.overlay
	}

	r.input.Set(pollButtons(), r.overlay)
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	pixels, stride, height := r.framebuffer.Read()
	r.emulator.DrawFrame(screen, pixels, stride, height)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.emulator.Layout(outsideWidth, outsideHeight)
}

// pollButtons reads the keyboard and every standard-layout gamepad.
func pollButtons() uint32 {
	var buttons uint32
	pads := ebiten.AppendGamepadIDs(nil)
	for _, b := range bindings {
		pressed := false
		for _, k := range b.keys {
			pressed = pressed || ebiten.IsKeyPressed(k)
		}
		for _, id := range pads {
			if ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, b.pad) {
				pressed = true
			}
		}
		if pressed {
			buttons |= 1 << b.id
		}
	}

	// left stick doubles as the X pad
	const deadzone = 0.5
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		ax := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ay := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if ax < -deadzone {
			buttons |= 1 << emucore.ButtonLeft
		}
		if ax > deadzone {
			buttons |= 1 << emucore.ButtonRight
		}
		if ay < -deadzone {
			buttons |= 1 << emucore.ButtonUp
		}
		if ay > deadzone {
			buttons |= 1 << emucore.ButtonDown
		}
	}
	return buttons
}
