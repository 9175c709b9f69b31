package emu

import "image"

const (
	ScreenWidth    = 224
	ScreenHeight   = 144
	TotalScanlines = 159
	VBlankLine     = ScreenHeight
)

// Tile map entry fields.
const (
	mapTileMask    = 0x01FF
	mapPaletteMask = 0x1E00
	mapBankBit     = 0x2000
	mapHFlipBit    = 0x4000
	mapVFlipBit    = 0x8000
)

const overlayWidth = 4

// Display renders screen 1 scanline by scanline from internal RAM and the
// display ports.
type Display struct {
	mem *Memory
	io  *IO

	framebuffer *image.RGBA

	// horizontal scroll latched for each visible line of the last frame
	lineScrollX [ScreenHeight]uint8
}

// NewDisplay creates a display reading from mem and io.
func NewDisplay(mem *Memory, io *IO) *Display {
	return &Display{
		mem:         mem,
		io:          io,
		framebuffer: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
}

// Framebuffer returns the RGBA framebuffer.
func (d *Display) Framebuffer() *image.RGBA {
	return d.framebuffer
}

// paletteColor converts a palette RAM entry (0-255) to 8-bit RGB.
// Entries are little-endian words: 0000RRRR GGGGBBBB.
func (d *Display) paletteColor(index uint8) (r, g, b uint8) {
	v := d.mem.Read16(paletteBase + uint16(index)*2)
	r = uint8(v>>8) & 0x0F
	g = uint8(v>>4) & 0x0F
	b = uint8(v) & 0x0F
	return r<<4 | r, g<<4 | g, b<<4 | b
}

// tilePixel returns the colour index (0-15) of pixel px, py of a 4bpp tile.
func (d *Display) tilePixel(tile uint16, px, py int, hFlip, vFlip bool) uint8 {
	if hFlip {
		px = 7 - px
	}
	if vFlip {
		py = 7 - py
	}
	row := tileBank0Base + tile*tileSize4BPP + uint16(py*4)

	if d.io.packedTiles() {
		b := d.mem.Read8(row + uint16(px>>1))
		if px&1 == 0 {
			return b >> 4
		}
		return b & 0x0F
	}

	shift := uint(7 - px)
	var idx uint8
	for plane := 0; plane < 4; plane++ {
		idx |= (d.mem.Read8(row+uint16(plane)) >> shift & 1) << plane
	}
	return idx
}

// RenderScanline draws visible line into the framebuffer using the
// current scroll registers.
func (d *Display) RenderScanline(line int) {
	if line < 0 || line >= ScreenHeight {
		return
	}
	pix := d.framebuffer.Pix
	offset := line * d.framebuffer.Stride

	scrollX := d.io.scr1ScrollX()
	d.lineScrollX[line] = scrollX

	br, bg, bb := d.paletteColor(d.io.backColor())
	if !d.io.colorMode() || !d.io.scr1Enabled() {
		for x := 0; x < ScreenWidth; x++ {
			p := offset + x*4
			pix[p], pix[p+1], pix[p+2], pix[p+3] = br, bg, bb, 0xFF
		}
		return
	}

	y := uint8(line) + d.io.scr1ScrollY()
	mapRow := d.io.scr1MapBase() + uint16(y>>3)*64
	py := int(y & 7)

	for sx := 0; sx < ScreenWidth; sx++ {
		x := uint8(sx) + scrollX
		entry := d.mem.Read16(mapRow + uint16(x>>3)*2)

		tile := entry & mapTileMask
		if entry&mapBankBit != 0 {
			tile += 512
		}
		idx := d.tilePixel(tile, int(x&7), py, entry&mapHFlipBit != 0, entry&mapVFlipBit != 0)

		r, g, b := br, bg, bb
		if idx != 0 {
			pal := uint8((entry & mapPaletteMask) >> 9)
			r, g, b = d.paletteColor(pal<<4 | idx)
		}
		p := offset + sx*4
		pix[p], pix[p+1], pix[p+2], pix[p+3] = r, g, b, 0xFF
	}
}

// LineScrollX returns the horizontal scroll line was rendered with.
func (d *Display) LineScrollX(line int) uint8 {
	return d.lineScrollX[line]
}

// MarkLine draws a short white marker at the left edge of line.
func (d *Display) MarkLine(line int) {
	if line < 0 || line >= ScreenHeight {
		return
	}
	offset := line * d.framebuffer.Stride
	for x := 0; x < overlayWidth; x++ {
		p := offset + x*4
		d.framebuffer.Pix[p] = 0xFF
		d.framebuffer.Pix[p+1] = 0xFF
		d.framebuffer.Pix[p+2] = 0xFF
		d.framebuffer.Pix[p+3] = 0xFF
	}
}
