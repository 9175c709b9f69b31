package emu

import "errors"

// Internal RAM layout used by the display.
const (
	iramSize = 0x10000

	tileBank0Base = 0x4000 // 4bpp tiles 0-511
	tileBank1Base = 0x8000 // 4bpp tiles 512-1023
	tileSize4BPP  = 32
	paletteBase   = 0xFE00 // 16 palettes x 16 colours x 2 bytes
	paletteSize   = 0x200
	mapEntries    = 32 * 32
	mapSize       = mapEntries * 2
)

var ErrDMARange = errors.New("DMA copy exceeds internal RAM")

// Memory is the 64KB internal RAM shared by the CPU and display.
type Memory struct {
	iram [iramSize]uint8
}

// NewMemory returns zeroed internal RAM.
func NewMemory() *Memory {
	return &Memory{}
}

// Read8 reads one byte.
func (m *Memory) Read8(addr uint16) uint8 {
	return m.iram[addr]
}

// Write8 writes one byte.
func (m *Memory) Write8(addr uint16, val uint8) {
	m.iram[addr] = val
}

// Read16 reads a little-endian word.
func (m *Memory) Read16(addr uint16) uint16 {
	return uint16(m.iram[addr]) | uint16(m.iram[addr+1])<<8
}

// Write16 writes a little-endian word.
func (m *Memory) Write16(addr uint16, val uint16) {
	m.iram[addr] = uint8(val)
	m.iram[addr+1] = uint8(val >> 8)
}

// CopyWords performs a word DMA from src into RAM at dst. An odd trailing
// byte is copied as part of a final word.
func (m *Memory) CopyWords(dst uint16, src []byte) error {
	n := len(src)
	if n&1 != 0 {
		n++
	}
	if int(dst)+n > iramSize {
		return ErrDMARange
	}
	copy(m.iram[dst:], src)
	return nil
}

// Bytes returns a copy of RAM.
func (m *Memory) Bytes() []byte {
	out := make([]byte, iramSize)
	copy(out, m.iram[:])
	return out
}

// Load overwrites RAM with data.
func (m *Memory) Load(data []byte) {
	copy(m.iram[:], data)
}
