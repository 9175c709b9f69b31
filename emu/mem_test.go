package emu

import (
	"errors"
	"testing"
)

func TestMemory_WordsLittleEndian(t *testing.T) {
	m := NewMemory()
	m.Write16(0x2000, 0x1234)
	if m.Read8(0x2000) != 0x34 || m.Read8(0x2001) != 0x12 {
		t.Errorf("expected 34 12, got %02X %02X", m.Read8(0x2000), m.Read8(0x2001))
	}
	if got := m.Read16(0x2000); got != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", got)
	}
}

func TestMemory_CopyWords(t *testing.T) {
	m := NewMemory()
	if err := m.CopyWords(0x4000, []byte{1, 2, 3}); err != nil {
		t.Fatalf("CopyWords: %v", err)
	}
	if m.Read8(0x4000) != 1 || m.Read8(0x4002) != 3 || m.Read8(0x4003) != 0 {
		t.Error("unexpected copied bytes")
	}
}

func TestMemory_CopyWordsOutOfRange(t *testing.T) {
	m := NewMemory()
	err := m.CopyWords(0xFFFE, []byte{1, 2, 3, 4})
	if !errors.Is(err, ErrDMARange) {
		t.Errorf("expected ErrDMARange, got %v", err)
	}
	if m.Read8(0xFFFE) != 0 {
		t.Error("failed copy must not write")
	}
}

func TestMemory_BytesIsCopy(t *testing.T) {
	m := NewMemory()
	m.Write8(5, 0x77)
	b := m.Bytes()
	b[5] = 0
	if m.Read8(5) != 0x77 {
		t.Error("Bytes must return a copy")
	}
	m.Load([]byte{9, 8})
	if m.Read8(0) != 9 || m.Read8(1) != 8 || m.Read8(5) != 0x77 {
		t.Error("Load must overwrite only the given prefix")
	}
}
