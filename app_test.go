package ezgame

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	size Size
}

func (s *fakeSurface) Size() Size {
	return s.size
}

// fakeHost records every facility call and feeds the loop scripted
// event batches, one batch per Poll.
type fakeHost struct {
	initErr    error
	setModeErr error

	initCalls    int
	terminations int
	caption      string
	surface      *fakeSurface
	setModes     []Size
	presents     int
	batches      [][]Event
	tickMs       int
	tickRates    []int
}

func newFakeHost() *fakeHost {
	return &fakeHost{tickMs: 16}
}

func (h *fakeHost) Init() error {
	h.initCalls++
	return h.initErr
}

func (h *fakeHost) Terminate() {
	h.terminations++
}

func (h *fakeHost) SetMode(resolution Size) (Surface, error) {
	if h.setModeErr != nil {
		return nil, h.setModeErr
	}
	h.setModes = append(h.setModes, resolution)
	h.surface = &fakeSurface{size: resolution}
	return h.surface, nil
}

func (h *fakeHost) SetCaption(title string) {
	h.caption = title
}

func (h *fakeHost) Caption() string {
	return h.caption
}

func (h *fakeHost) Present() {
	h.presents++
}

func (h *fakeHost) Poll() []Event {
	if len(h.batches) == 0 {
		return nil
	}
	batch := h.batches[0]
	h.batches = h.batches[1:]
	return batch
}

func (h *fakeHost) Tick(rate int) int {
	h.tickRates = append(h.tickRates, rate)
	return h.tickMs
}

// recordingScene appends every hook invocation to a shared log.
type recordingScene struct {
	SceneBase
	name     string
	log      *[]string
	onUpdate func(self *recordingScene, elapsedMs int)
	onEvent  func(self *recordingScene, event Event)
}

func newRecordingScene(name string, log *[]string, settings Overrides) *recordingScene {
	return &recordingScene{
		SceneBase: NewSceneBase(settings),
		name:      name,
		log:       log,
	}
}

func (s *recordingScene) record(entry string) {
	*s.log = append(*s.log, entry)
}

func sceneLabel(s Scene) string {
	if s == nil {
		return "none"
	}
	if r, ok := s.(*recordingScene); ok {
		return r.name
	}
	return "?"
}

func describeEvent(event Event) string {
	switch e := event.(type) {
	case QuitEvent:
		return "quit"
	case KeyEvent:
		return string(e.Key)
	default:
		return fmt.Sprintf("%T", e)
	}
}

func (s *recordingScene) Draw(surface Surface) {
	s.record(s.name + ".draw")
}

func (s *recordingScene) Update(elapsedMs int) {
	s.record(fmt.Sprintf("%s.update(%d)", s.name, elapsedMs))
	if s.onUpdate != nil {
		s.onUpdate(s, elapsedMs)
	}
}

func (s *recordingScene) HandleEvent(event Event) {
	s.record(fmt.Sprintf("%s.event(%s)", s.name, describeEvent(event)))
	if s.onEvent != nil {
		s.onEvent(s, event)
	}
}

func (s *recordingScene) OnEnter(previous Scene) {
	s.record(fmt.Sprintf("%s.enter(%s)", s.name, sceneLabel(previous)))
	s.SceneBase.OnEnter(previous)
}

func (s *recordingScene) OnExit(next Scene) {
	s.record(fmt.Sprintf("%s.exit(%s)", s.name, sceneLabel(next)))
}

func newTestApp(t *testing.T, host *fakeHost) *Application {
	t.Helper()
	app, err := New(host, "T", Size{X: 320, Y: 240}, 30)
	require.NoError(t, err)
	return app
}

func TestNew(t *testing.T) {
	host := newFakeHost()
	app, err := New(host, "T", Size{X: 320, Y: 240}, 30)

	require.NoError(t, err)
	assert.Equal(t, 1, host.initCalls)
	assert.Equal(t, []Size{{X: 320, Y: 240}}, host.setModes)
	assert.Equal(t, Settings{Title: "T", Resolution: Size{X: 320, Y: 240}, UpdateRate: 30}, app.Settings())
	assert.Nil(t, app.ActiveScene(), "no scene may be active after construction")
}

func TestNewInitFailure(t *testing.T) {
	host := newFakeHost()
	host.initErr = errors.New("no display")

	_, err := New(host, "T", Size{X: 320, Y: 240}, 30)

	require.Error(t, err)
	assert.ErrorIs(t, err, host.initErr)
	assert.Equal(t, 0, host.terminations, "nothing to terminate when init itself failed")
}

func TestNewSetModeFailure(t *testing.T) {
	host := newFakeHost()
	host.setModeErr = errors.New("mode unavailable")

	_, err := New(host, "T", Size{X: 320, Y: 240}, 30)

	require.Error(t, err)
	assert.ErrorIs(t, err, host.setModeErr)
	assert.Equal(t, 1, host.terminations, "a half-constructed host must be released")
}

func TestRunWithoutScene(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)
	modesBefore := len(host.setModes)

	err := app.Run(nil)

	assert.ErrorIs(t, err, ErrNoScene)
	assert.Equal(t, 0, host.terminations, "failed precondition must not tear down the host")
	assert.Equal(t, modesBefore, len(host.setModes), "failed precondition must not touch the display")
	assert.Equal(t, 0, host.presents)
}

func TestRunSceneSequence(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)

	var log []string
	sceneB := newRecordingScene("B", &log, Overrides{})
	sceneA := newRecordingScene("A", &log, Overrides{})
	sceneA.onUpdate = func(s *recordingScene, elapsedMs int) {
		s.ChangeScene(sceneB)
	}
	sceneB.onUpdate = func(s *recordingScene, elapsedMs int) {
		s.ChangeScene(nil)
	}

	err := app.Run(sceneA)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"A.enter(none)",
		"A.update(0)",
		"A.exit(B)",
		"B.enter(A)",
		"B.draw",
		"B.update(16)",
		"B.exit(none)",
	}, log)
	assert.Nil(t, app.ActiveScene())
	assert.Equal(t, 1, host.terminations)
	assert.Equal(t, []int{30}, host.tickRates, "the clock must be driven at the configured rate")
}

func TestRunElapsedComesFromClock(t *testing.T) {
	host := newFakeHost()
	host.tickMs = 25
	app := newTestApp(t, host)

	var log []string
	var elapsed []int
	scene := newRecordingScene("A", &log, Overrides{})
	scene.onUpdate = func(s *recordingScene, elapsedMs int) {
		elapsed = append(elapsed, elapsedMs)
		if len(elapsed) == 3 {
			s.ChangeScene(nil)
		}
	}

	err := app.Run(scene)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 25, 25}, elapsed,
		"the first iteration has no previous tick, later ones carry the clock reading")
}

func TestChangeSceneLastWriteWins(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)

	var log []string
	skipped := newRecordingScene("X", &log, Overrides{})
	target := newRecordingScene("Y", &log, Overrides{})
	target.onUpdate = func(s *recordingScene, elapsedMs int) {
		s.ChangeScene(nil)
	}
	first := newRecordingScene("A", &log, Overrides{})
	first.onUpdate = func(s *recordingScene, elapsedMs int) {
		s.ChangeScene(skipped)
		s.ChangeScene(target)
	}

	err := app.Run(first)

	require.NoError(t, err)
	assert.Contains(t, log, "A.exit(Y)")
	assert.Contains(t, log, "Y.enter(A)")
	assert.NotContains(t, log, "X.enter(A)", "an overwritten target must never be entered")
	for _, entry := range log {
		assert.NotContains(t, entry, "X.", "the intermediate scene must see no calls at all")
	}
}

func TestQuitEventFinishesBatch(t *testing.T) {
	host := newFakeHost()
	host.batches = [][]Event{{
		KeyEvent{Key: "a", Action: KeyPress},
		QuitEvent{},
		KeyEvent{Key: "b", Action: KeyPress},
	}}
	app := newTestApp(t, host)

	var log []string
	scene := newRecordingScene("A", &log, Overrides{})

	err := app.Run(scene)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"A.enter(none)",
		"A.event(a)",
		"A.event(quit)",
		"A.event(b)",
		"A.update(0)",
		"A.draw",
		"A.exit(none)",
	}, log, "events after the quit signal still reach the scene, then exactly one terminating hand-off runs")
	assert.Equal(t, 1, host.terminations)
}

func TestPendingTransitionStopsBatch(t *testing.T) {
	host := newFakeHost()
	host.batches = [][]Event{{
		KeyEvent{Key: "a", Action: KeyPress},
		KeyEvent{Key: "b", Action: KeyPress},
	}}
	app := newTestApp(t, host)

	var log []string
	scene := newRecordingScene("A", &log, Overrides{})
	scene.onEvent = func(s *recordingScene, event Event) {
		s.ChangeScene(nil)
	}

	err := app.Run(scene)

	require.NoError(t, err)
	assert.Contains(t, log, "A.event(a)")
	assert.NotContains(t, log, "A.event(b)",
		"once the scene requested a transition the rest of the batch is dropped")
}

func TestSettingsInheritance(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)

	var log []string
	sceneA := newRecordingScene("A", &log, Overrides{Resolution: Res(800, 600)})
	sceneB := newRecordingScene("B", &log, Overrides{})

	step := 0
	sceneA.onUpdate = func(s *recordingScene, elapsedMs int) {
		step++
		if step == 1 {
			s.ChangeScene(sceneB)
		} else {
			s.ChangeScene(nil)
		}
	}
	bStep := 0
	sceneB.onUpdate = func(s *recordingScene, elapsedMs int) {
		bStep++
		switch bStep {
		case 1:
			assert.Equal(t, Size{X: 800, Y: 600}, s.Application().Settings().Resolution,
				"a scene without declared settings inherits the resolution")
			require.NoError(t, s.Application().UpdateSettings(Overrides{Resolution: Res(640, 480)}))
		case 2:
			s.ChangeScene(sceneA)
		}
	}

	err := app.Run(sceneA)

	require.NoError(t, err)
	assert.Equal(t, []Size{
		{X: 320, Y: 240}, // New
		{X: 800, Y: 600}, // A entered
		{X: 640, Y: 480}, // B changed it by hand
		{X: 800, Y: 600}, // A re-entered, declared settings reapplied
	}, host.setModes)
}

func TestUpdateSettingsPartial(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)

	require.NoError(t, app.UpdateSettings(Overrides{Title: String("renamed")}))
	assert.Equal(t, "renamed", app.Settings().Title)
	assert.Equal(t, 1, len(host.setModes), "a title change must not touch the display mode")

	require.NoError(t, app.UpdateSettings(Overrides{Resolution: Res(1024, 768)}))
	assert.Equal(t, Size{X: 1024, Y: 768}, app.Settings().Resolution)
	assert.Equal(t, "renamed", app.Settings().Title)

	require.NoError(t, app.UpdateSettings(Overrides{UpdateRate: Int(60)}))
	assert.Equal(t, Settings{
		Title:      "renamed",
		Resolution: Size{X: 1024, Y: 768},
		UpdateRate: 60,
	}, app.Settings())
}

func TestUpdateSettingsSetModeFailure(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)
	host.setModeErr = errors.New("mode unavailable")

	err := app.UpdateSettings(Overrides{Resolution: Res(1, 1)})

	require.Error(t, err)
	assert.ErrorIs(t, err, host.setModeErr)
	assert.Equal(t, Size{X: 320, Y: 240}, app.Settings().Resolution,
		"a failed mode change leaves the old settings in effect")
}

func TestSettingsMergeFailureStopsRun(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)

	var log []string
	scene := newRecordingScene("A", &log, Overrides{Resolution: Res(800, 600)})
	host.setModeErr = errors.New("mode unavailable")

	err := app.Run(scene)

	require.Error(t, err)
	assert.ErrorIs(t, err, host.setModeErr)
	assert.Equal(t, 1, host.terminations, "the host is released even when a hook fails")
	assert.Contains(t, log, "A.exit(none)", "the failing scene still sees its exit hook")
}

func TestRunTerminatesHostOnPanic(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)

	var log []string
	scene := newRecordingScene("A", &log, Overrides{})
	scene.onUpdate = func(s *recordingScene, elapsedMs int) {
		panic("scene bug")
	}

	require.Panics(t, func() {
		_ = app.Run(scene)
	})
	assert.Equal(t, 1, host.terminations, "panics out of scene code must still release the host")
}

func TestRunAfterChangeSceneNeedsNoInitial(t *testing.T) {
	host := newFakeHost()
	app := newTestApp(t, host)

	var log []string
	scene := newRecordingScene("A", &log, Overrides{})
	scene.onUpdate = func(s *recordingScene, elapsedMs int) {
		s.ChangeScene(nil)
	}
	app.ChangeScene(scene)

	err := app.Run(nil)

	require.NoError(t, err)
	assert.Contains(t, log, "A.update(0)")
}
