package parallax

// Source identifies a hardware interrupt source.
type Source uint8

const (
	SourceLine   Source = 1 << 4
	SourceVBlank Source = 1 << 6
)

// String returns the name of the source.
func (s Source) String() string {
	switch s {
	case SourceLine:
		return "LINE"
	case SourceVBlank:
		return "VBLANK"
	default:
		return "UNKNOWN"
	}
}

// Sink is the register surface the scheduler writes to.
type Sink interface {
	// SetScrollOffset writes the background layer's horizontal scroll.
	SetScrollOffset(value uint8)
	// ArmLineTrigger programs the scanline of the next line interrupt.
	ArmLineTrigger(line uint8)
	// Acknowledge clears the pending condition of src.
	Acknowledge(src Source)
}
