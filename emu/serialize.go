package emu

import (
	"encoding/binary"
	"errors"
	"hash/crc32"

	"github.com/user-none/wsparallax/parallax"
)

// Save state format constants
const (
	stateVersion    = 1
	stateMagic      = "WSPXState\x00\x00\x00"
	stateHeaderSize = 22 // magic(12) + version(2) + sceneCRC(4) + dataCRC(4)
)

// maxBands bounds the band slots in a save state: one band per visible
// line plus the terminator.
const maxBands = ScreenHeight + 1

// Fixed serialization sizes for inline components
const (
	memSerializeSize       = iramSize
	interruptSerializeSize = 3              // enabled + pending + irq
	scrollerSerializeSize  = 5 + maxBands*2 // bandCount(1) + cursor(1) + sync(1) + tic(2) + x/timer per band
)

// boolByte converts a bool to a uint8 (0 or 1).
func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// SerializeSize returns the total size in bytes needed for a save state.
func SerializeSize() int {
	return stateHeaderSize +
		memSerializeSize +
		IOSerializeSize +
		interruptSerializeSize +
		scrollerSerializeSize
}

// Serialize creates a save state and returns it as a byte slice.
func (e *Emulator) Serialize() ([]byte, error) {
	data := make([]byte, SerializeSize())

	// Write header
	copy(data[0:12], stateMagic)
	binary.LittleEndian.PutUint16(data[12:14], stateVersion)
	binary.LittleEndian.PutUint32(data[14:18], e.sceneCRC)

	offset := stateHeaderSize

	// IRAM
	copy(data[offset:], e.mem.iram[:])
	offset += memSerializeSize

	// IO
	if err := e.io.Serialize(data[offset:]); err != nil {
		return nil, err
	}
	offset += IOSerializeSize

	// Interrupt controller
	offset = e.serializeInterrupts(data, offset)

	// Split scroller and idle loop
	if err := e.serializeScroller(data, offset); err != nil {
		return nil, err
	}

	// Calculate and write data CRC32 (over everything after header)
	dataCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	binary.LittleEndian.PutUint32(data[18:22], dataCRC)

	return data, nil
}

// Deserialize restores emulator state from a save state byte slice.
func (e *Emulator) Deserialize(data []byte) error {
	if err := e.VerifyState(data); err != nil {
		return err
	}

	offset := stateHeaderSize + memSerializeSize + IOSerializeSize + interruptSerializeSize

	// Restore the scroller first; it is the only part that can reject
	// a state that passed the CRC check.
	if err := e.deserializeScroller(data, offset); err != nil {
		return err
	}

	offset = stateHeaderSize
	copy(e.mem.iram[:], data[offset:offset+memSerializeSize])
	offset += memSerializeSize

	if err := e.io.Deserialize(data[offset:]); err != nil {
		return err
	}
	offset += IOSerializeSize

	e.deserializeInterrupts(data, offset)

	return nil
}

// VerifyState checks if a save state is valid without loading it.
func (e *Emulator) VerifyState(data []byte) error {
	if len(data) < SerializeSize() {
		return errors.New("save state too short")
	}

	if string(data[0:12]) != stateMagic {
		return errors.New("invalid save state magic")
	}

	version := binary.LittleEndian.Uint16(data[12:14])
	if version > stateVersion {
		return errors.New("unsupported save state version")
	}

	sceneCRC := binary.LittleEndian.Uint32(data[14:18])
	if sceneCRC != e.sceneCRC {
		return errors.New("save state is for a different scene")
	}

	expectedCRC := binary.LittleEndian.Uint32(data[18:22])
	actualCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	if expectedCRC != actualCRC {
		return errors.New("save state data is corrupted")
	}

	return nil
}

func (e *Emulator) serializeInterrupts(data []byte, offset int) int {
	s := e.ic.state()
	data[offset] = s.enabled
	data[offset+1] = s.pending
	data[offset+2] = boolByte(s.irq)
	return offset + interruptSerializeSize
}

func (e *Emulator) deserializeInterrupts(data []byte, offset int) int {
	e.ic.restore(interruptState{
		enabled: data[offset],
		pending: data[offset+1],
		irq:     data[offset+2] != 0,
	})
	return offset + interruptSerializeSize
}

func (e *Emulator) serializeScroller(data []byte, offset int) error {
	bands := e.scroller.Bands()
	if len(bands) > maxBands {
		return errors.New("too many bands for save state")
	}
	data[offset] = uint8(len(bands))
	data[offset+1] = uint8(e.scroller.Cursor())
	data[offset+2] = boolByte(e.sync.Pending())
	binary.LittleEndian.PutUint16(data[offset+3:], e.idle.Tic())
	offset += 5

	for _, b := range bands {
		data[offset] = b.X
		data[offset+1] = b.Timer
		offset += 2
	}
	return nil
}

func (e *Emulator) deserializeScroller(data []byte, offset int) error {
	count := int(data[offset])
	cursor := int(data[offset+1])
	pending := data[offset+2] != 0
	tic := binary.LittleEndian.Uint16(data[offset+3:])
	offset += 5

	if count > maxBands {
		return errors.New("save state band count out of range")
	}
	bands := make([]parallax.Band, count)
	for i := range bands {
		bands[i].X = data[offset]
		bands[i].Timer = data[offset+1]
		offset += 2
	}
	if err := e.scroller.Restore(bands, cursor); err != nil {
		return err
	}
	e.sync.Set(pending)
	e.idle.SetTic(tic)
	return nil
}
