package ezgame

// Event is a host event delivered to the active scene. Scenes receive
// every pending event and recognize the kinds they care about by type
// switch.
type Event interface{}

// Key is a host-independent key name: "a", "Space", "F1". Modifier
// prefixes are S- (shift), M- (alt) and C- (control), nested in
// C-M-S- order, so control+shift+x is "C-S-x".
type Key string

// KeyAction distinguishes the phases of a key stroke.
type KeyAction int

const (
	KeyPress KeyAction = iota
	KeyRelease
	KeyRepeat
)

// QuitEvent reports a host-level quit request, typically the window
// being closed. The main loop terminates after the current iteration.
type QuitEvent struct{}

// KeyEvent reports a keyboard key changing state.
type KeyEvent struct {
	Key    Key
	Action KeyAction
}

// CharEvent carries a rune of typed text.
type CharEvent struct {
	Char rune
}

// MouseButtonEvent reports a mouse button press or release at a window
// position.
type MouseButtonEvent struct {
	Button  int
	X, Y    int
	Pressed bool
}

// MouseMotionEvent reports the pointer moving to a window position.
type MouseMotionEvent struct {
	X, Y int
}

// ResizeEvent reports a display size change.
type ResizeEvent struct {
	Size Size
}
