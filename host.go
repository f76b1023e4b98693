package ezgame

// Surface is the drawing target handed to Scene.Draw. Drivers return
// concrete surface types; scenes that need driver-specific drawing
// capabilities assert on those.
type Surface interface {
	Size() Size
}

// Display owns the window the application draws into.
type Display interface {
	// SetMode opens the display at the given resolution, or resizes an
	// already open one, and returns its drawing surface.
	SetMode(resolution Size) (Surface, error)
	// SetCaption sets the window title.
	SetCaption(title string)
	// Caption returns the current window title.
	Caption() string
	// Present flips the finished frame onto the display.
	Present()
}

// EventPump drains the host event queue.
type EventPump interface {
	// Poll returns all pending events in arrival order.
	Poll() []Event
}

// Clock throttles the main loop.
type Clock interface {
	// Tick sleeps as needed to cap the loop at rate iterations per
	// second and returns the elapsed milliseconds since the previous
	// call, including the sleep. A rate <= 0 does not throttle.
	Tick(rate int) int
}

// Host bundles the facilities an Application needs from the underlying
// multimedia library. Init is called once by New; Terminate is called
// exactly once on every exit path out of Application.Run.
type Host interface {
	Init() error
	Terminate()
	Display
	EventPump
	Clock
}
