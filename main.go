package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/wsparallax/adapter"
	emubridge "github.com/user-none/wsparallax/bridge/ebiten"
	"github.com/user-none/wsparallax/cli"
	"github.com/user-none/wsparallax/emu"
	"github.com/user-none/wsparallax/parallax"
)

func main() {
	bgPath := flag.String("bg", "", "background image (PNG, BMP, GIF or JPEG); built-in scene if empty")
	splitsPath := flag.String("splits", "", "INI file overriding the split table")
	overlay := flag.Bool("overlay", false, "mark scanlines where a split was taken")
	scale := flag.Int("scale", 3, "initial window scale")
	flag.Parse()

	var bg []byte
	if *bgPath != "" {
		data, err := os.ReadFile(*bgPath)
		if err != nil {
			log.Fatalf("Failed to read background: %v", err)
		}
		bg = data
	}
	scene, err := adapter.LoadScene(bg)
	if err != nil {
		log.Fatalf("Failed to convert background: %v", err)
	}

	table := parallax.DefaultTable()
	if *splitsPath != "" {
		table, err = parallax.LoadTable(*splitsPath)
		if err != nil {
			log.Fatalf("Failed to load split table: %v", err)
		}
	}

	e, err := emubridge.NewEmulator(scene, table, emu.DefaultRegion())
	if err != nil {
		log.Fatalf("Failed to initialize emulator: %v", err)
	}

	ebiten.SetWindowSize(emu.ScreenWidth*(*scale), emu.ScreenHeight*(*scale))
	ebiten.SetWindowTitle(emu.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(emu.ScreenWidth, emu.ScreenHeight, -1, -1)
	ebiten.SetTPS(60)

	runner := cli.NewRunner(e, *overlay)
	defer runner.Close()
	defer e.Close()

	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}
}
