package emuios

import (
	ios "github.com/user-none/eblitui-ios"
	"github.com/user-none/wsparallax/adapter"
)

func init() {
	ios.RegisterFactory(&adapter.Factory{})
}

// Bridge functions for gomobile binding. The background image is passed
// where the bridge expects a ROM; there is no battery RAM to persist.

func Init(path string, regionCode int) bool { return ios.Init(path, regionCode) }
func Close()                                { ios.Close() }
func RunFrame()                             { ios.RunFrame() }
func GetFrameData() []byte                  { return ios.GetFrameData() }
func GetAudioData() []byte                  { return ios.GetAudioData() }
func SetInput(player int, buttons int)      { ios.SetInput(player, buttons) }
func FrameWidth() int                       { return ios.FrameWidth() }
func FrameStride() int                      { return ios.FrameStride() }
func FrameHeight() int                      { return ios.FrameHeight() }
func SystemInfoJSON() string                { return ios.SystemInfoJSON() }
func GetFPS() int                           { return ios.GetFPS() }
func HasSaveStates() bool                   { return ios.HasSaveStates() }
func SaveState() bool                       { return ios.SaveState() }
func StateLen() int                         { return ios.StateLen() }
func StateByte(i int) int                   { return ios.StateByte(i) }
func LoadState(data []byte) bool            { return ios.LoadState(data) }
func SetOption(key string, value string)    { ios.SetOption(key, value) }
