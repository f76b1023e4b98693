package ezgame

// KeyHandler processes a key looked up in a KeyMap and reports whether
// it consumed it.
type KeyHandler func(key Key) bool

func CreateKeyHandler(f func()) KeyHandler {
	return func(key Key) bool {
		f()
		return true
	}
}

// KeyMap maps key names to handlers. Scenes that dispatch on bindings
// route their key events through one instead of switching by hand.
type KeyMap map[Key]KeyHandler

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

func (km KeyMap) HandleKey(key Key) bool {
	if handler, ok := km[key]; ok {
		return handler(key)
	} else {
		return false
	}
}

func (km KeyMap) Bind(key Key, handler KeyHandler) {
	km[key] = handler
}

// BindFunc binds a key to a handler that takes no arguments and always
// consumes the key.
func (km KeyMap) BindFunc(key Key, f func()) {
	km[key] = CreateKeyHandler(f)
}

// HandleEvent routes key press and repeat events through the map and
// ignores everything else.
func (km KeyMap) HandleEvent(event Event) bool {
	ke, ok := event.(KeyEvent)
	if !ok || ke.Action == KeyRelease {
		return false
	}
	return km.HandleKey(ke.Key)
}
