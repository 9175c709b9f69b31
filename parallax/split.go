// Package parallax implements a raster split-scroll scheduler. A single
// background layer is re-latched with a new horizontal scroll value at
// configured scanlines, and each band advances its scroll at its own
// cadence once per frame.
package parallax

import (
	"errors"
	"fmt"
)

// TerminatorLine marks the final descriptor of a table. It lies past the
// last scanline so its trigger never fires.
const TerminatorLine = 255

var (
	ErrEmptyTable        = errors.New("split table needs at least one band and a terminator")
	ErrFirstLine         = errors.New("first band must start at line 0")
	ErrNotAscending      = errors.New("split lines must be strictly ascending")
	ErrMissingTerminator = errors.New("split table must end with line 255, speed 0")
)

// Descriptor is the authored configuration of one band.
type Descriptor struct {
	X        uint8 // initial scroll offset
	Line     uint8 // scanline at which this band's scroll is latched
	TimerMax uint8 // band advances every TimerMax+1 frames
	Speed    uint8 // added to X on each cadence tick
}

// Table is an ordered list of descriptors ending with a terminator.
type Table []Descriptor

// DefaultTable returns the eight band coastal scene.
func DefaultTable() Table {
	return Table{
		{X: 0, Line: 0, TimerMax: 255, Speed: 0},  // sky
		{X: 0, Line: 35, TimerMax: 32, Speed: 1},  // pale mountains
		{X: 0, Line: 47, TimerMax: 12, Speed: 1},  // hills
		{X: 0, Line: 63, TimerMax: 4, Speed: 1},   // forest
		{X: 0, Line: 83, TimerMax: 3, Speed: 1},   // track
		{X: 0, Line: 92, TimerMax: 2, Speed: 1},   // coast
		{X: 0, Line: 103, TimerMax: 1, Speed: 2},  // trees
		{X: 0, Line: TerminatorLine, TimerMax: 0}, // terminator
	}
}

// Validate checks the layout rules the scheduler relies on.
func (t Table) Validate() error {
	if len(t) < 2 {
		return ErrEmptyTable
	}
	if t[0].Line != 0 {
		return fmt.Errorf("band 0: %w", ErrFirstLine)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Line <= t[i-1].Line {
			return fmt.Errorf("band %d (line %d after %d): %w", i, t[i].Line, t[i-1].Line, ErrNotAscending)
		}
	}
	last := t[len(t)-1]
	if last.Line != TerminatorLine || last.Speed != 0 {
		return fmt.Errorf("band %d: %w", len(t)-1, ErrMissingTerminator)
	}
	return nil
}

// Bands returns the number of visible bands, excluding the terminator.
func (t Table) Bands() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}
