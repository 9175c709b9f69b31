//go:build !libretro && !ios

package main

import (
	"flag"
	"log"

	"github.com/user-none/eblitui/standalone"
	"github.com/user-none/wsparallax/adapter"
	"github.com/user-none/wsparallax/emu"
	"github.com/user-none/wsparallax/parallax"
)

func main() {
	bgPath := flag.String("bg", "", "background image to run directly (opens UI if not provided)")
	splitsPath := flag.String("splits", "", "INI file overriding the split table")
	overlay := flag.Bool("overlay", false, "mark scanlines where a split was taken")
	flag.Parse()

	factory := &adapter.Factory{}
	if *splitsPath != "" {
		table, err := parallax.LoadTable(*splitsPath)
		if err != nil {
			log.Fatalf("Failed to load split table: %v", err)
		}
		factory.Table = table
	}

	if *bgPath != "" {
		options := map[string]string{emu.OptionOverlay: "false"}
		if *overlay {
			options[emu.OptionOverlay] = "true"
		}
		if err := standalone.RunDirect(factory, *bgPath, "auto", options); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := standalone.Run(factory); err != nil {
		log.Fatal(err)
	}
}
