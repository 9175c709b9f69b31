// Package assets produces the background graphics loaded before the
// parallax program starts: a 16 colour palette, 4bpp planar tiles and a
// 32x32 tile map.
package assets

import "hash/crc32"

const (
	MapWidth    = 256 // pixels; one full horizontal wrap of the scroll register
	MapHeight   = 256
	TileSize    = 8
	MapCells    = MapWidth / TileSize
	MaxTiles    = MapCells * MapCells // every cell can have its own tile
	bytesPerRow = 4
	tileBytes   = TileSize * bytesPerRow
	Colors      = 16
)

// Tile map entry flags.
const (
	entryBank  = 0x2000
	entryHFlip = 0x4000
	entryVFlip = 0x8000
)

// Scene is the raw data copied into display memory.
type Scene struct {
	Palette   []byte // little-endian 0x0RGB words
	Tiles     []byte // 32 bytes per tile
	Map       []byte // 32x32 little-endian entries
	BackColor uint8  // palette entry shown for colour index 0
}

// TileCount returns the number of tiles in the scene.
func (s Scene) TileCount() int {
	return len(s.Tiles) / tileBytes
}

// CRC32 identifies the scene contents.
func (s Scene) CRC32() uint32 {
	h := crc32.NewIEEE()
	h.Write(s.Palette)
	h.Write(s.Tiles)
	h.Write(s.Map)
	h.Write([]byte{s.BackColor})
	return h.Sum32()
}
