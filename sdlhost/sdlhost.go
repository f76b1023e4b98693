// Package sdlhost hosts an ezgame application on an SDL2 window with
// an accelerated renderer. Scenes draw through the renderer exposed by
// the surface.
package sdlhost

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/cellux/ezgame"
)

func init() {
	runtime.LockOSThread()
}

// Surface is the drawing target of an SDL-hosted application.
type Surface struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

func (s *Surface) Size() ezgame.Size {
	w, h := s.window.GetSize()
	return ezgame.Size{X: int(w), Y: int(h)}
}

// Renderer exposes the underlying SDL renderer.
func (s *Surface) Renderer() *sdl.Renderer {
	return s.renderer
}

// Host implements ezgame.Host on top of SDL2.
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	surface  *Surface
	caption  string
	last     uint64
}

func New() *Host {
	return &Host{}
}

func (h *Host) Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	h.last = sdl.GetTicks64()
	return nil
}

func (h *Host) Terminate() {
	if h.renderer != nil {
		h.renderer.Destroy()
		h.renderer = nil
	}
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
		h.surface = nil
	}
	sdl.Quit()
}

func (h *Host) SetMode(resolution ezgame.Size) (ezgame.Surface, error) {
	if h.window != nil {
		h.window.SetSize(int32(resolution.X), int32(resolution.Y))
		return h.surface, nil
	}
	window, err := sdl.CreateWindow(h.caption,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(resolution.X), int32(resolution.Y), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	h.window = window
	h.renderer = renderer
	h.surface = &Surface{window: window, renderer: renderer}
	return h.surface, nil
}

func (h *Host) SetCaption(title string) {
	h.caption = title
	if h.window != nil {
		h.window.SetTitle(title)
	}
}

func (h *Host) Caption() string {
	if h.window != nil {
		return h.window.GetTitle()
	}
	return h.caption
}

func (h *Host) Present() {
	if h.renderer != nil {
		h.renderer.Present()
	}
}

func (h *Host) Poll() []ezgame.Event {
	var events []ezgame.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, ezgame.QuitEvent{})
		case *sdl.KeyboardEvent:
			name, ok := keyName(e.Keysym)
			if !ok {
				continue
			}
			action := ezgame.KeyPress
			if e.Type == sdl.KEYUP {
				action = ezgame.KeyRelease
			} else if e.Repeat != 0 {
				action = ezgame.KeyRepeat
			}
			events = append(events, ezgame.KeyEvent{Key: name, Action: action})
		case *sdl.TextInputEvent:
			for _, char := range e.GetText() {
				events = append(events, ezgame.CharEvent{Char: char})
			}
		case *sdl.MouseButtonEvent:
			events = append(events, ezgame.MouseButtonEvent{
				Button:  int(e.Button),
				X:       int(e.X),
				Y:       int(e.Y),
				Pressed: e.State == sdl.PRESSED,
			})
		case *sdl.MouseMotionEvent:
			events = append(events, ezgame.MouseMotionEvent{X: int(e.X), Y: int(e.Y)})
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				events = append(events, ezgame.ResizeEvent{
					Size: ezgame.Size{X: int(e.Data1), Y: int(e.Data2)},
				})
			}
		}
	}
	return events
}

func (h *Host) Tick(rate int) int {
	now := sdl.GetTicks64()
	if rate > 0 {
		target := h.last + uint64(1000/rate)
		if now < target {
			sdl.Delay(uint32(target - now))
			now = sdl.GetTicks64()
		}
	}
	elapsedMs := int(now - h.last)
	h.last = now
	return elapsedMs
}
