package assets

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

type cell [TileSize * TileSize]uint8

func (c cell) flipH() cell {
	var out cell
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			out[y*TileSize+x] = c[y*TileSize+TileSize-1-x]
		}
	}
	return out
}

func (c cell) flipV() cell {
	var out cell
	for y := 0; y < TileSize; y++ {
		copy(out[y*TileSize:(y+1)*TileSize], c[(TileSize-1-y)*TileSize:(TileSize-y)*TileSize])
	}
	return out
}

// planar packs a cell as four bitplanes per row, leftmost pixel in bit 7.
func (c cell) planar() [tileBytes]byte {
	var out [tileBytes]byte
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			idx := c[y*TileSize+x]
			for plane := 0; plane < bytesPerRow; plane++ {
				if idx&(1<<plane) != 0 {
					out[y*bytesPerRow+plane] |= 0x80 >> x
				}
			}
		}
	}
	return out
}

// Encode converts a paletted image into a scene. The image is placed at
// the top left of the 256x256 map; uncovered cells use colour index 0.
// Identical cells, including mirrored ones, share a tile.
func Encode(img *image.Paletted) (Scene, error) {
	b := img.Bounds()
	if b.Dx() > MapWidth || b.Dy() > MapHeight {
		return Scene{}, fmt.Errorf("image %dx%d exceeds %dx%d map", b.Dx(), b.Dy(), MapWidth, MapHeight)
	}
	if len(img.Palette) > Colors {
		return Scene{}, fmt.Errorf("image has %d colours, max %d", len(img.Palette), Colors)
	}

	type ref struct {
		tile  int
		flags uint16
	}
	seen := make(map[cell]ref)
	var tiles []byte
	tileMap := make([]byte, MapCells*MapCells*2)

	for cy := 0; cy < MapCells; cy++ {
		for cx := 0; cx < MapCells; cx++ {
			var c cell
			for y := 0; y < TileSize; y++ {
				for x := 0; x < TileSize; x++ {
					px := b.Min.X + cx*TileSize + x
					py := b.Min.Y + cy*TileSize + y
					if px < b.Max.X && py < b.Max.Y {
						c[y*TileSize+x] = img.ColorIndexAt(px, py) & 0x0F
					}
				}
			}

			r, ok := seen[c]
			if !ok {
				n := len(tiles) / tileBytes
				packed := c.planar()
				tiles = append(tiles, packed[:]...)
				r = ref{tile: n}
				seen[c] = r
				h := c.flipH()
				v := c.flipV()
				hv := h.flipV()
				for _, alt := range []struct {
					c     cell
					flags uint16
				}{{h, entryHFlip}, {v, entryVFlip}, {hv, entryHFlip | entryVFlip}} {
					if _, dup := seen[alt.c]; !dup {
						seen[alt.c] = ref{tile: n, flags: alt.flags}
					}
				}
			}

			entry := r.flags
			if r.tile >= 512 {
				entry |= entryBank | uint16(r.tile-512)
			} else {
				entry |= uint16(r.tile)
			}
			binary.LittleEndian.PutUint16(tileMap[(cy*MapCells+cx)*2:], entry)
		}
	}

	return Scene{
		Palette: encodePalette(img.Palette),
		Tiles:   tiles,
		Map:     tileMap,
	}, nil
}

// encodePalette converts colours to 12-bit 0x0RGB words for palette 0.
func encodePalette(p color.Palette) []byte {
	out := make([]byte, Colors*2)
	for i, c := range p {
		if i >= Colors {
			break
		}
		binary.LittleEndian.PutUint16(out[i*2:], rgb12(c))
	}
	return out
}

func rgb12(c color.Color) uint16 {
	r, g, b, _ := c.RGBA()
	return uint16(r>>12)<<8 | uint16(g>>12)<<4 | uint16(b>>12)
}

// Color12 builds an opaque colour from 4-bit channels.
func Color12(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r<<4 | r, G: g<<4 | g, B: b<<4 | b, A: 0xFF}
}
