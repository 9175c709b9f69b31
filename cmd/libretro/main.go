package main

import (
	libretro "github.com/user-none/eblitui/libretro"
	"github.com/user-none/wsparallax/adapter"
)

func init() {
	libretro.RegisterFactory(&adapter.Factory{}, []libretro.RetropadMapping{
		{RetroID: libretro.JoypadA, BitID: 4},     // A
		{RetroID: libretro.JoypadB, BitID: 5},     // B
		{RetroID: libretro.JoypadStart, BitID: 7}, // Start
		{RetroID: libretro.JoypadY, BitID: 8},     // Y1
		{RetroID: libretro.JoypadR, BitID: 9},     // Y2
		{RetroID: libretro.JoypadX, BitID: 10},    // Y3
		{RetroID: libretro.JoypadL, BitID: 11},    // Y4
	})
}

func main() {}
