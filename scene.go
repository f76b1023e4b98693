package ezgame

// Scene is a replaceable unit of per-screen behavior: a menu, a level,
// a pause screen. Implement one by embedding SceneBase in a struct and
// overriding any of the hooks; SceneBase supplies no-op defaults and
// the transition bookkeeping the main loop relies on.
//
// A scene is inactive until an Application enters it, active until the
// application exits it, and may be activated again later. The hosting
// application is reachable through SceneBase.Application only while
// the scene is active.
type Scene interface {
	// Draw paints the scene onto the surface. Drawing must not request
	// scene transitions.
	Draw(surface Surface)

	// Update advances the scene state. elapsedMs is the time since the
	// previous loop iteration in milliseconds, as reported by the host
	// clock; it is 0 on the first iteration of a run.
	Update(elapsedMs int)

	// HandleEvent processes one host event. Every pending event kind
	// is delivered here, so the scene has to filter by type switch
	// rather than assume a restricted set.
	HandleEvent(event Event)

	// OnEnter is called once when the scene becomes active, before any
	// Draw, Update or HandleEvent of the activation. previous is the
	// scene that was active before, or nil. The SceneBase
	// implementation merges the scene's declared settings into the
	// hosting application; an override that wants to keep that merge
	// must call SceneBase.OnEnter itself.
	OnEnter(previous Scene)

	// OnExit is called once when the scene stops being active, after
	// the last Draw, Update or HandleEvent of the activation and
	// before the application reference is dropped. next is the
	// incoming scene, or nil when the application is shutting down.
	OnExit(next Scene)

	// ChangeScene requests a transition to next at the end of the
	// current loop iteration; nil requests application shutdown.
	// Calling it again before the hand-off overwrites the earlier
	// target. Implemented by SceneBase.
	ChangeScene(next Scene)

	// TransitionPending reports whether ChangeScene has been called
	// since the last hand-off. Used by the main loop, not by scene
	// authors. Implemented by SceneBase.
	TransitionPending() bool

	bind(app *Application)
	unbind()
	takeTransition() (next Scene, requested bool)
}

// transition distinguishes "transition requested to nil" from "no
// transition requested": a nil *transition means no request.
type transition struct {
	next Scene
}

// SceneBase implements the Scene control surface and default no-op
// hooks. Embed it by value; its unexported methods are what satisfy
// the Scene interface.
type SceneBase struct {
	app      *Application
	settings Overrides
	pending  *transition
}

// NewSceneBase declares per-scene application settings, merged into
// the hosting application every time the scene is entered. The zero
// SceneBase declares none.
func NewSceneBase(settings Overrides) SceneBase {
	return SceneBase{settings: settings}
}

// Application returns the application currently hosting the scene. It
// is nil while the scene is inactive; the reference is borrowed, never
// owned.
func (s *SceneBase) Application() *Application {
	return s.app
}

// DeclaredSettings returns the settings the scene applies on entry.
func (s *SceneBase) DeclaredSettings() Overrides {
	return s.settings
}

func (s *SceneBase) Draw(surface Surface) {}

func (s *SceneBase) Update(elapsedMs int) {}

func (s *SceneBase) HandleEvent(event Event) {}

// OnEnter merges the declared settings into the hosting application.
func (s *SceneBase) OnEnter(previous Scene) {
	if s.app == nil {
		return
	}
	if err := s.app.UpdateSettings(s.settings); err != nil {
		s.app.fail(err)
	}
}

func (s *SceneBase) OnExit(next Scene) {}

func (s *SceneBase) ChangeScene(next Scene) {
	if s.app == nil {
		logger.Debug("ChangeScene on inactive scene ignored")
		return
	}
	s.pending = &transition{next: next}
}

func (s *SceneBase) TransitionPending() bool {
	return s.pending != nil
}

func (s *SceneBase) bind(app *Application) {
	s.app = app
	s.pending = nil
}

func (s *SceneBase) unbind() {
	s.app = nil
	s.pending = nil
}

func (s *SceneBase) takeTransition() (Scene, bool) {
	if s.pending == nil {
		return nil, false
	}
	next := s.pending.next
	s.pending = nil
	return next, true
}
