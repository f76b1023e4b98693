// Package ezgame is a small convenience layer over a host multimedia
// library: an Application that owns the display, the frame clock and
// the event pump, and a Scene abstraction for replaceable per-screen
// logic with lifecycle hooks. The package renders nothing itself; it
// sequences calls into user scenes and a Host driver such as the ones
// in the glfwhost and sdlhost subpackages.
package ezgame

import (
	"errors"
	"fmt"
)

// ErrNoScene is returned by Run when it is called without an initial
// scene while no scene is active.
var ErrNoScene = errors.New("no scene to run")

// Application owns the host subsystem lifecycle, the display settings
// and the active scene slot, and drives the main loop.
//
// An Application is single-threaded: the loop, every scene hook and
// every settings change run on the goroutine that called Run. It is
// spent once Run returns; create a new one to run again.
type Application struct {
	host       Host
	surface    Surface
	resolution Size
	updateRate int
	scene      Scene
	quit       bool
	err        error
}

// New initializes the host subsystem and opens the display with the
// given caption, resolution and target update rate. A host that cannot
// open a display makes New fail; nothing is left initialized in that
// case.
func New(host Host, title string, resolution Size, updateRate int) (*Application, error) {
	if err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	host.SetCaption(title)
	surface, err := host.SetMode(resolution)
	if err != nil {
		host.Terminate()
		return nil, fmt.Errorf("set mode %v: %w", resolution, err)
	}
	logger.Debug("application created",
		"title", title, "resolution", resolution, "updateRate", updateRate)
	return &Application{
		host:       host,
		surface:    surface,
		resolution: resolution,
		updateRate: updateRate,
	}, nil
}

// Settings returns the currently effective display settings. The title
// is read back through the display facility.
func (app *Application) Settings() Settings {
	return Settings{
		Title:      app.host.Caption(),
		Resolution: app.resolution,
		UpdateRate: app.updateRate,
	}
}

// UpdateSettings applies the non-nil fields of o. Each field takes
// immediate effect on the host: a new title is set on the window, a
// new resolution reopens the display and replaces the current surface,
// a new update rate is used by the next clock tick.
func (app *Application) UpdateSettings(o Overrides) error {
	if o.Title != nil {
		app.host.SetCaption(*o.Title)
	}
	if o.Resolution != nil {
		surface, err := app.host.SetMode(*o.Resolution)
		if err != nil {
			return fmt.Errorf("set mode %v: %w", *o.Resolution, err)
		}
		app.surface = surface
		app.resolution = *o.Resolution
	}
	if o.UpdateRate != nil {
		app.updateRate = *o.UpdateRate
	}
	return nil
}

// ActiveScene returns the scene the loop currently drives. It is nil
// before the first run and after termination.
func (app *Application) ActiveScene() Scene {
	return app.scene
}

// ChangeScene hands the application over to next immediately: the
// active scene's OnExit runs and its application reference is cleared,
// then next (if any) is bound and its OnEnter runs. Passing nil leaves
// no scene active, which the running loop treats as a request to
// terminate after the current iteration's bookkeeping.
//
// Scene code should normally use Scene.ChangeScene instead, which
// defers the hand-off to the end of the loop iteration.
func (app *Application) ChangeScene(next Scene) {
	prev := app.scene
	if prev != nil {
		prev.OnExit(next)
		prev.unbind()
	}
	app.scene = next
	if next != nil {
		next.bind(app)
		next.OnEnter(prev)
	}
	logger.Debug("scene changed", "from", sceneName(prev), "to", sceneName(next))
}

// Run drives the main loop until a host quit event arrives or a scene
// transitions to nil. Each iteration polls and dispatches all pending
// events, updates the active scene, performs a requested hand-off,
// draws, presents, and throttles to the configured update rate.
//
// The host subsystem is terminated exactly once on every exit path,
// including panics out of scene code; errors from the host propagate
// after that teardown.
func (app *Application) Run(initial Scene) error {
	if initial == nil && app.scene == nil {
		return ErrNoScene
	}
	defer app.host.Terminate()

	if initial != nil {
		app.ChangeScene(initial)
	}
	logger.Debug("main loop started")

	elapsed := 0
	for app.scene != nil && !app.quit && app.err == nil {
		// Deliver the whole batch even after a quit event; stop early
		// only once the scene has asked for a transition.
		for _, ev := range app.host.Poll() {
			app.scene.HandleEvent(ev)
			if _, ok := ev.(QuitEvent); ok {
				app.quit = true
			}
			if app.scene == nil || app.scene.TransitionPending() {
				break
			}
		}
		if app.scene == nil {
			break
		}

		app.scene.Update(elapsed)

		if next, requested := app.scene.takeTransition(); requested {
			app.ChangeScene(next)
		}
		if app.scene == nil {
			break
		}

		app.scene.Draw(app.surface)
		app.host.Present()
		elapsed = app.host.Tick(app.updateRate)
	}

	// Make sure the last scene sees its exit hook.
	if app.scene != nil {
		app.ChangeScene(nil)
	}
	logger.Debug("main loop finished", "err", app.err)
	return app.err
}

// fail records a host failure observed inside a scene hook so the loop
// can stop and Run can return it. The first failure wins.
func (app *Application) fail(err error) {
	if app.err == nil {
		app.err = err
	}
}

func sceneName(s Scene) string {
	if s == nil {
		return "none"
	}
	return fmt.Sprintf("%T", s)
}
