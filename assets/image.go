package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sort"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ImageHeight is the height an imported picture is scaled to: the visible
// screen. The width is scaled to one full scroll wrap.
const ImageHeight = sceneHeight

// Extensions lists the file types FromImage accepts.
var Extensions = []string{".png", ".bmp", ".gif", ".jpg", ".jpeg"}

// FromImage decodes a picture, scales it to 256x144, reduces it to 16
// colours and encodes it as a scene.
func FromImage(data []byte) (Scene, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Scene{}, fmt.Errorf("decode image: %w", err)
	}

	rect := image.Rect(0, 0, MapWidth, ImageHeight)
	scaled := image.NewRGBA(rect)
	xdraw.ApproxBiLinear.Scale(scaled, rect, src, src.Bounds(), xdraw.Src, nil)

	pal := reducePalette(scaled, Colors)
	dst := image.NewPaletted(rect, pal)
	xdraw.FloydSteinberg.Draw(dst, rect, scaled, image.Point{})

	s, err := Encode(dst)
	if err != nil {
		return Scene{}, fmt.Errorf("encode %s image: %w", format, err)
	}
	s.BackColor = 0
	return s, nil
}

// reducePalette picks the n most frequent colours after reducing every
// pixel to 12-bit colour, which is all the palette RAM can hold.
func reducePalette(img *image.RGBA, n int) color.Palette {
	counts := make(map[uint16]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			counts[rgb12(img.RGBAAt(x, y))]++
		}
	}

	keys := make([]uint16, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}

	pal := make(color.Palette, len(keys))
	for i, k := range keys {
		pal[i] = Color12(uint8(k>>8)&0x0F, uint8(k>>4)&0x0F, uint8(k)&0x0F)
	}
	return pal
}
