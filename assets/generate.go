package assets

import (
	"image"
	"image/color"
	"math"
)

// Scene rows where each band of the default split table begins.
const (
	rowMountains = 35
	rowHills     = 47
	rowForest    = 63
	rowTrack     = 83
	rowCoast     = 92
	rowTrees     = 103
	sceneHeight  = 144
)

// Palette indexes of the generated scene.
const (
	skyDark = iota
	skyMid
	skyLight
	cloud
	mountain
	mountainShade
	hill
	hillShade
	forestDark
	forestLight
	track
	trackLine
	water
	foam
	trunk
	leaves
)

// GeneratedPalette is the palette of the built-in scene.
var GeneratedPalette = color.Palette{
	skyDark:       Color12(2, 4, 9),
	skyMid:        Color12(4, 7, 12),
	skyLight:      Color12(8, 11, 15),
	cloud:         Color12(14, 15, 15),
	mountain:      Color12(9, 10, 13),
	mountainShade: Color12(7, 8, 11),
	hill:          Color12(5, 9, 4),
	hillShade:     Color12(3, 6, 3),
	forestDark:    Color12(1, 4, 2),
	forestLight:   Color12(2, 6, 3),
	track:         Color12(9, 6, 3),
	trackLine:     Color12(12, 9, 5),
	water:         Color12(2, 6, 11),
	foam:          Color12(12, 14, 15),
	trunk:         Color12(5, 3, 1),
	leaves:        Color12(3, 8, 2),
}

// bayer4 is a 4x4 ordered dither matrix scaled to 0-15.
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// wave returns sin at an integer number of cycles across the map width so
// every band wraps seamlessly when its scroll register overflows.
func wave(x int, cycles int, phase float64) float64 {
	return math.Sin(2*math.Pi*float64(cycles*x)/MapWidth + phase)
}

// Generate draws the built-in coastal scene and encodes it.
func Generate() Scene {
	img := image.NewPaletted(image.Rect(0, 0, MapWidth, sceneHeight), GeneratedPalette)
	for y := 0; y < sceneHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			img.SetColorIndex(x, y, scenePixel(x, y))
		}
	}
	s, err := Encode(img)
	if err != nil {
		// 576 cells always fit in 1024 tiles.
		panic("assets: generated scene: " + err.Error())
	}
	s.BackColor = skyDark
	return s
}

func scenePixel(x, y int) uint8 {
	switch {
	case y < rowMountains:
		return skyPixel(x, y)
	case y < rowHills:
		return mountainPixel(x, y)
	case y < rowForest:
		return hillPixel(x, y)
	case y < rowTrack:
		return forestPixel(x, y)
	case y < rowCoast:
		return trackPixel(x, y)
	case y < rowTrees:
		return coastPixel(x, y)
	default:
		return treePixel(x, y)
	}
}

func skyPixel(x, y int) uint8 {
	// clouds
	c := wave(x, 2, 0)*0.6 + wave(x, 5, 1.3)*0.4
	if y >= 8 && y < 20 {
		dy := math.Abs(float64(y-14)) / 6
		if c > 0.35+dy*0.6 {
			return cloud
		}
	}

	// three tone gradient, dithered at the boundaries
	level := y * 3 * 16 / rowMountains
	tone := level / 16
	if level%16 > bayer4[y&3][x&3] {
		tone++
	}
	if tone > 2 {
		tone = 2
	}
	return uint8(skyDark + tone)
}

func mountainPixel(x, y int) uint8 {
	h := float64(rowMountains) + 6 - 4*wave(x, 3, 0) - 2*wave(x, 7, 0.5)
	if float64(y) < h {
		return skyLight
	}
	// shade the slopes facing right
	if wave(x, 3, math.Pi/2)+0.5*wave(x, 7, 0.5+math.Pi/2) < 0 {
		return mountainShade
	}
	return mountain
}

func hillPixel(x, y int) uint8 {
	h := float64(rowHills) + 7 - 3*wave(x, 4, 0.7) - 2*wave(x, 9, 0)
	if float64(y) < h {
		return mountain
	}
	if (x+y)%8 == 0 {
		return hillShade
	}
	return hill
}

func forestPixel(x, y int) uint8 {
	// a row of conifers every 16 pixels
	col := x % 16
	dist := col - 8
	if dist < 0 {
		dist = -dist
	}
	top := rowForest + 2 + dist*3/2 + (x/16)%3
	if y < top {
		return hill
	}
	if col < 8 {
		return forestLight
	}
	return forestDark
}

func trackPixel(x, y int) uint8 {
	if y == rowTrack+4 && x%32 < 16 {
		return trackLine
	}
	if y == rowTrack || y == rowCoast-1 {
		return trunk
	}
	return track
}

func coastPixel(x, y int) uint8 {
	phase := float64(y) * 0.9
	if (x+int(3*wave(x, 4, phase)+3))%24 < 3 && y%3 == 0 {
		return foam
	}
	return water
}

func treePixel(x, y int) uint8 {
	// ground
	if y >= sceneHeight-10 {
		if (x/4+y)%5 == 0 {
			return forestDark
		}
		return hillShade
	}

	// trees every 64 pixels, canopy above a trunk
	col := x % 64
	cx, cy := 32, rowTrees+18
	dx := float64(col - cx)
	dy := float64(y - cy)
	if dx*dx/400+dy*dy/196 <= 1 {
		if int(dx+dy)%5 == 0 {
			return forestLight
		}
		return leaves
	}
	if col >= cx-3 && col <= cx+3 && y > cy {
		return trunk
	}
	return water
}
