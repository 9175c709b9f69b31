package emu

import (
	"encoding/binary"
	"errors"
)

const (
	ioSerializeVersion = 1
	// IOSerializeSize is the total bytes needed for IO serialization.
	// version(1) + ports(256) + keys(2) + keySel(1) + line(1)
	IOSerializeSize = 261
)

// Serialize writes IO state to buf. buf must be at least IOSerializeSize bytes.
func (io *IO) Serialize(buf []byte) error {
	if len(buf) < IOSerializeSize {
		return errors.New("IO serialize buffer too small")
	}

	offset := 0
	buf[offset] = ioSerializeVersion
	offset++

	copy(buf[offset:], io.ports[:])
	offset += len(io.ports)

	binary.LittleEndian.PutUint16(buf[offset:], io.keys)
	offset += 2
	buf[offset] = io.keySel
	offset++
	buf[offset] = io.line

	return nil
}

// Deserialize reads IO state from buf. Interrupt enables are restored
// separately with the interrupt controller.
func (io *IO) Deserialize(buf []byte) error {
	if len(buf) < IOSerializeSize {
		return errors.New("IO deserialize buffer too small")
	}

	offset := 0
	if buf[offset] != ioSerializeVersion {
		return errors.New("unsupported IO serialize version")
	}
	offset++

	copy(io.ports[:], buf[offset:offset+len(io.ports)])
	offset += len(io.ports)

	io.keys = binary.LittleEndian.Uint16(buf[offset:])
	offset += 2
	io.keySel = buf[offset]
	offset++
	io.line = buf[offset]

	return nil
}
