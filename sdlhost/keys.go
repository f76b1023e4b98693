package sdlhost

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/cellux/ezgame"
)

// keyName translates an SDL keysym into its ezgame name with modifier
// prefixes applied. Names are normalized to match the glfwhost driver,
// so key maps work unchanged across hosts. Bare modifier keys produce
// no event.
func keyName(sym sdl.Keysym) (ezgame.Key, bool) {
	switch sym.Sym {
	case sdl.K_LSHIFT, sdl.K_LCTRL, sdl.K_LALT, sdl.K_LGUI:
		return "", false
	case sdl.K_RSHIFT, sdl.K_RCTRL, sdl.K_RALT, sdl.K_RGUI:
		return "", false
	}
	name := sdl.GetKeyName(sym.Sym)
	switch name {
	case "":
		return "", false
	case "Return":
		name = "Enter"
	case "Page Up":
		name = "PageUp"
	case "Page Down":
		name = "PageDown"
	}
	// SDL reports letters upper-cased, GLFW lower-cased.
	if len(name) == 1 {
		name = strings.ToLower(name)
	}
	if sym.Mod&sdl.KMOD_SHIFT != 0 {
		name = "S-" + name
	}
	if sym.Mod&sdl.KMOD_ALT != 0 {
		name = "M-" + name
	}
	if sym.Mod&sdl.KMOD_CTRL != 0 {
		name = "C-" + name
	}
	return ezgame.Key(name), true
}
