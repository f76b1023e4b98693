package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cellux/ezgame"
)

func keyAction(action glfw.Action) ezgame.KeyAction {
	switch action {
	case glfw.Release:
		return ezgame.KeyRelease
	case glfw.Repeat:
		return ezgame.KeyRepeat
	default:
		return ezgame.KeyPress
	}
}

// keyName translates a GLFW key into its ezgame name with modifier
// prefixes applied. Bare modifier keys produce no event.
func keyName(key glfw.Key, scancode int, mods glfw.ModifierKey) (ezgame.Key, bool) {
	var name string
	switch key {
	case glfw.KeyLeftShift, glfw.KeyLeftControl, glfw.KeyLeftAlt, glfw.KeyLeftSuper:
		return "", false
	case glfw.KeyRightShift, glfw.KeyRightControl, glfw.KeyRightAlt, glfw.KeyRightSuper:
		return "", false
	case glfw.KeySpace:
		name = "Space"
	case glfw.KeyEscape:
		name = "Escape"
	case glfw.KeyEnter:
		name = "Enter"
	case glfw.KeyTab:
		name = "Tab"
	case glfw.KeyBackspace:
		name = "Backspace"
	case glfw.KeyInsert:
		name = "Insert"
	case glfw.KeyDelete:
		name = "Delete"
	case glfw.KeyRight:
		name = "Right"
	case glfw.KeyLeft:
		name = "Left"
	case glfw.KeyDown:
		name = "Down"
	case glfw.KeyUp:
		name = "Up"
	case glfw.KeyPageUp:
		name = "PageUp"
	case glfw.KeyPageDown:
		name = "PageDown"
	case glfw.KeyHome:
		name = "Home"
	case glfw.KeyEnd:
		name = "End"
	case glfw.KeyF1:
		name = "F1"
	case glfw.KeyF2:
		name = "F2"
	case glfw.KeyF3:
		name = "F3"
	case glfw.KeyF4:
		name = "F4"
	case glfw.KeyF5:
		name = "F5"
	case glfw.KeyF6:
		name = "F6"
	case glfw.KeyF7:
		name = "F7"
	case glfw.KeyF8:
		name = "F8"
	case glfw.KeyF9:
		name = "F9"
	case glfw.KeyF10:
		name = "F10"
	case glfw.KeyF11:
		name = "F11"
	case glfw.KeyF12:
		name = "F12"
	default:
		name = glfw.GetKeyName(key, scancode)
	}
	if name == "" {
		return "", false
	}
	if mods&glfw.ModShift != 0 {
		name = "S-" + name
	}
	if mods&glfw.ModAlt != 0 {
		name = "M-" + name
	}
	if mods&glfw.ModControl != 0 {
		name = "C-" + name
	}
	return ezgame.Key(name), true
}
