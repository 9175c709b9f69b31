package adapter

import (
	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/wsparallax/assets"
	"github.com/user-none/wsparallax/emu"
	"github.com/user-none/wsparallax/parallax"
)

// Compile-time interface check.
var _ emucore.CoreFactory = (*Factory)(nil)

// Factory implements emucore.CoreFactory for the parallax demo. The
// "ROM" is a background image; an empty one selects the built-in scene.
type Factory struct {
	// Table overrides the default split table when non-nil.
	Table parallax.Table
}

// SystemInfo returns system metadata for UI configuration.
func (f *Factory) SystemInfo() emucore.SystemInfo {
	return emucore.SystemInfo{
		Name:            emu.Name,
		ConsoleName:     "WonderSwan Color",
		Extensions:      assets.Extensions,
		ScreenWidth:     emu.ScreenWidth,
		MaxScreenHeight: emu.ScreenHeight,
		AspectRatio:     float64(emu.ScreenWidth) / float64(emu.ScreenHeight),
		SampleRate:      emu.SampleRate,
		Buttons: []emucore.Button{
			{Name: "A", ID: 4, DefaultKey: "J", DefaultPad: "A"},
			{Name: "B", ID: 5, DefaultKey: "K", DefaultPad: "B"},
			{Name: "Start", ID: 7, DefaultKey: "Enter", DefaultPad: "Start"},
			{Name: "Y1", ID: 8, DefaultKey: "I", DefaultPad: "Y"},
			{Name: "Y2", ID: 9, DefaultKey: "L", DefaultPad: "R1"},
			{Name: "Y3", ID: 10, DefaultKey: "M", DefaultPad: "X"},
			{Name: "Y4", ID: 11, DefaultKey: "H", DefaultPad: "L1"},
		},
		Players: 1,
		CoreOptions: []emucore.CoreOption{
			{
				Key:         emu.OptionOverlay,
				Label:       "Split Markers",
				Description: "Mark each scanline where a new scroll value was latched",
				Type:        emucore.CoreOptionBool,
				Default:     "false",
			},
		},
		DataDirName:   emu.Name,
		CoreName:      emu.Name,
		CoreVersion:   emu.Version,
		SerializeSize: emu.SerializeSize(),
	}
}

// CreateEmulator encodes the background and boots the parallax program.
func (f *Factory) CreateEmulator(rom []byte, region emucore.Region) (emucore.Emulator, error) {
	scene, err := LoadScene(rom)
	if err != nil {
		return nil, err
	}
	table := f.Table
	if table == nil {
		table = parallax.DefaultTable()
	}
	e, err := emu.NewEmulator(scene, table, region)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// DetectRegion returns the default region. The handheld has no regional
// variants, so there is nothing to detect.
func (f *Factory) DetectRegion(rom []byte) (emucore.Region, bool) {
	return emu.DefaultRegion(), false
}

// LoadScene returns the generated scene for empty data, otherwise the
// decoded image.
func LoadScene(data []byte) (assets.Scene, error) {
	if len(data) == 0 {
		return assets.Generate(), nil
	}
	return assets.FromImage(data)
}
