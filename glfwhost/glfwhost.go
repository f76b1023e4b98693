// Package glfwhost hosts an ezgame application on a GLFW window with
// an OpenGL ES 2 context. The GL context is made current on the main
// thread when the display opens and stays current for the whole run,
// so scenes draw with plain gl calls.
package glfwhost

import (
	"fmt"
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cellux/ezgame"
)

func init() {
	runtime.LockOSThread()
}

// Surface is the drawing target of a GLFW-hosted application.
type Surface struct {
	window *glfw.Window
}

// Size returns the framebuffer size in pixels, which on high-DPI
// displays differs from the window size.
func (s *Surface) Size() ezgame.Size {
	w, h := s.window.GetFramebufferSize()
	return ezgame.Size{X: w, Y: h}
}

// Window exposes the underlying GLFW window.
func (s *Surface) Window() *glfw.Window {
	return s.window
}

// Host implements ezgame.Host on top of GLFW.
type Host struct {
	window  *glfw.Window
	surface *Surface
	caption string
	queue   []ezgame.Event
	last    float64
}

func New() *Host {
	return &Host{}
}

func (h *Host) Init() error {
	if err := glfw.Init(); err != nil {
		return err
	}
	h.last = glfw.GetTime()
	return nil
}

func (h *Host) Terminate() {
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
		h.surface = nil
	}
	glfw.Terminate()
}

func (h *Host) SetMode(resolution ezgame.Size) (ezgame.Surface, error) {
	if h.window != nil {
		h.window.SetSize(resolution.X, resolution.Y)
		return h.surface, nil
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return nil, fmt.Errorf("no monitors found")
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return nil, fmt.Errorf("video mode cannot be determined")
	}
	glfw.WindowHint(glfw.RedBits, mode.RedBits)
	glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
	glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
	glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.AutoIconify, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	window, err := glfw.CreateWindow(resolution.X, resolution.Y, h.caption, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, err
	}
	h.window = window
	h.surface = &Surface{window: window}
	h.installCallbacks()
	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	return h.surface, nil
}

func (h *Host) installCallbacks() {
	w := h.window
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		name, ok := keyName(key, scancode, mods)
		if !ok {
			return
		}
		h.queue = append(h.queue, ezgame.KeyEvent{Key: name, Action: keyAction(action)})
	})
	w.SetCharCallback(func(_ *glfw.Window, char rune) {
		h.queue = append(h.queue, ezgame.CharEvent{Char: char})
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := h.window.GetCursorPos()
		h.queue = append(h.queue, ezgame.MouseButtonEvent{
			Button:  int(button),
			X:       int(x),
			Y:       int(y),
			Pressed: action == glfw.Press,
		})
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.queue = append(h.queue, ezgame.MouseMotionEvent{X: int(x), Y: int(y)})
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		h.queue = append(h.queue, ezgame.ResizeEvent{Size: ezgame.Size{X: width, Y: height}})
	})
	w.SetCloseCallback(func(_ *glfw.Window) {
		h.queue = append(h.queue, ezgame.QuitEvent{})
	})
}

func (h *Host) SetCaption(title string) {
	h.caption = title
	if h.window != nil {
		h.window.SetTitle(title)
	}
}

// Caption returns the last caption set; GLFW 3.3 cannot read a window
// title back.
func (h *Host) Caption() string {
	return h.caption
}

func (h *Host) Present() {
	if h.window != nil {
		h.window.SwapBuffers()
	}
}

// Poll pumps GLFW and drains the events its callbacks queued up,
// including any that arrived while Tick was waiting.
func (h *Host) Poll() []ezgame.Event {
	glfw.PollEvents()
	events := h.queue
	h.queue = nil
	return events
}

// Tick waits until the iteration slot of the configured rate has
// passed and returns the elapsed milliseconds since the previous call.
// Waiting still services the event queue, so input stays responsive at
// low update rates.
func (h *Host) Tick(rate int) int {
	now := glfw.GetTime()
	if rate > 0 {
		target := h.last + 1.0/float64(rate)
		for now < target {
			glfw.WaitEventsTimeout(target - now)
			now = glfw.GetTime()
		}
	}
	elapsedMs := int((now - h.last) * 1000)
	h.last = now
	return elapsedMs
}
