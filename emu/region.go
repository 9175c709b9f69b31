package emu

import emucore "github.com/user-none/eblitui/api"

// Region is an alias for emucore.Region.
type Region = emucore.Region

const (
	RegionNTSC = emucore.RegionNTSC
	RegionPAL  = emucore.RegionPAL
)

// The LCD refreshes at 75.47 Hz (3.072 MHz / (256 * 159)); frontends pace
// on whole frames per second.
const (
	FPS           = 75
	RefreshRateHz = 75.47
)

// Core option keys.
const (
	// OptionOverlay marks every scanline where a split was latched.
	OptionOverlay = "overlay"
)

// DefaultRegion returns the default region. It only affects how frontends
// label the core; timing is identical.
func DefaultRegion() Region {
	return RegionNTSC
}
