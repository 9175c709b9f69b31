package parallax

import (
	"errors"
	"fmt"
)

// ErrBandCount is returned when restored state does not fit the table.
var ErrBandCount = errors.New("band count mismatch")

// Band is the runtime state of one descriptor.
type Band struct {
	X        uint8
	Line     uint8
	Timer    uint8
	TimerMax uint8
	Speed    uint8
}

// advance counts down one frame and applies Speed when the timer has
// expired. X wraps modulo 256.
func (b *Band) advance() {
	if b.Timer == 0 {
		b.Timer = b.TimerMax
		b.X += b.Speed
		return
	}
	b.Timer--
}

// Scroller is the device context shared by the vertical blank and line
// interrupt handlers. Both handlers run to completion and never preempt
// each other, so no locking is done here.
type Scroller struct {
	bands  []Band
	cursor int
	sync   *FrameSync
	sink   Sink
}

// NewScroller copies t into fresh runtime state with every timer loaded
// from TimerMax. The table must already be valid.
func NewScroller(t Table, sink Sink, sync *FrameSync) *Scroller {
	s := &Scroller{
		bands: make([]Band, len(t)),
		sync:  sync,
		sink:  sink,
	}
	s.Reset(t)
	return s
}

// Reset reloads runtime state from t.
func (s *Scroller) Reset(t Table) {
	if len(s.bands) != len(t) {
		s.bands = make([]Band, len(t))
	}
	for i, d := range t {
		s.bands[i] = Band{
			X:        d.X,
			Line:     d.Line,
			Timer:    d.TimerMax,
			TimerMax: d.TimerMax,
			Speed:    d.Speed,
		}
	}
	s.cursor = 0
}

// VBlank is the frame reconciler. It runs once per frame from the
// vertical blank interrupt.
func (s *Scroller) VBlank() {
	s.sync.Signal()

	s.cursor = 0
	for i := range s.bands {
		s.bands[i].advance()
	}
	s.cursor = 0

	// The first band starts at line 0, before any line interrupt could
	// fire, so it is latched here.
	s.sink.SetScrollOffset(s.bands[s.cursor].X)
	s.cursor++

	s.sink.ArmLineTrigger(s.bands[s.cursor].Line)
	s.sink.Acknowledge(SourceVBlank)
}

// Line is the line trigger scheduler. It runs when the raster reaches
// the armed scanline.
func (s *Scroller) Line() {
	s.sink.SetScrollOffset(s.bands[s.cursor].X)

	// The terminator's line is never reached, so the cursor should not sit
	// on the last entry here; stay put if it does.
	if s.cursor < len(s.bands)-1 {
		s.cursor++
		// Only band 0 has line 0, so this test never fails in a valid table.
		if next := s.bands[s.cursor].Line; next != 0 {
			s.sink.ArmLineTrigger(next)
		}
	}

	s.sink.Acknowledge(SourceLine)
}

// Cursor returns the index of the next band whose trigger has not fired.
func (s *Scroller) Cursor() int {
	return s.cursor
}

// Bands returns a copy of the runtime state.
func (s *Scroller) Bands() []Band {
	out := make([]Band, len(s.bands))
	copy(out, s.bands)
	return out
}

// Band returns the runtime state of band i.
func (s *Scroller) Band(i int) Band {
	return s.bands[i]
}

// Restore overwrites the mutable runtime state (X and Timer of each band
// and the cursor), used by save states. Line, TimerMax and Speed stay as
// loaded from the table.
func (s *Scroller) Restore(bands []Band, cursor int) error {
	if len(bands) != len(s.bands) {
		return fmt.Errorf("restore %d bands into %d: %w", len(bands), len(s.bands), ErrBandCount)
	}
	if cursor < 0 || cursor >= len(bands) {
		return fmt.Errorf("cursor %d: %w", cursor, ErrBandCount)
	}
	for i := range s.bands {
		s.bands[i].X = bands[i].X
		s.bands[i].Timer = bands[i].Timer
	}
	s.cursor = cursor
	return nil
}
