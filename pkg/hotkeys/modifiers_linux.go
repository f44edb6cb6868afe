//go:build linux && cgo

package hotkeys

import "golang.design/x/hotkey"

// X11 puts alt on Mod1 and super on Mod4
var modMap = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.Mod1,
	"super": hotkey.Mod4,
}
