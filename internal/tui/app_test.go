package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vocabcards/internal/domain"
	"vocabcards/internal/gesture"
	"vocabcards/internal/service"
	"vocabcards/internal/testutil"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, prefs *testutil.MockPreferenceRepository) *App {
	t.Helper()
	return newTestAppWithTTL(t, prefs, time.Minute)
}

func newTestAppWithTTL(t *testing.T, prefs *testutil.MockPreferenceRepository, ttl time.Duration) *App {
	t.Helper()

	source := new(testutil.MockSource)
	source.On("Fetch", mock.Anything).Return(testutil.NewTestCatalog(
		testutil.NewTestSet("a", "Animals", "cat", "dog", "fox"),
		testutil.NewTestSet("b", "Birds", "owl"),
	), nil)

	logger := testutil.NewTestLogger()
	catalogs := service.NewCatalogService(source, 0, logger)
	require.NoError(t, catalogs.Load(context.Background()))

	study := service.NewStudyService(catalogs, prefs, firstRand{}, logger)
	return New(study, catalogs, Options{Gesture: gesture.TerminalConfig(), ToastTTL: ttl}, logger)
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func defaultPrefs() *testutil.MockPreferenceRepository {
	prefs := new(testutil.MockPreferenceRepository)
	prefs.On("GetPreferences", LocalUserID).Return(domain.DefaultPreferences(), nil)
	prefs.On("SavePreferredSet", LocalUserID, mock.Anything).Return(nil)
	return prefs
}

func TestApp_SelectAndNavigate(t *testing.T) {
	a := newTestApp(t, defaultPrefs())
	defer a.toast.Stop()

	a.selectSet("a")
	assert.Equal(t, pageCards, a.screen)
	assert.Equal(t, "Loaded: Animals", a.toast.Message())

	assert.Nil(t, a.handleKey(key(tcell.KeyRight, 0)))
	state, ok := a.study.Current(LocalUserID)
	require.True(t, ok)
	assert.Equal(t, 1, state.Position())

	a.handleKey(key(tcell.KeyRune, ' '))
	state, _ = a.study.Current(LocalUserID)
	assert.True(t, state.Revealed())

	a.handleKey(key(tcell.KeyLeft, 0))
	state, _ = a.study.Current(LocalUserID)
	assert.Equal(t, 0, state.Position())
	assert.False(t, state.Revealed())

	a.handleKey(key(tcell.KeyLeft, 0))
	assert.Equal(t, "First card", a.toast.Message())

	a.handleKey(key(tcell.KeyEscape, 0))
	assert.Equal(t, pageHome, a.screen)
}

func TestApp_NavigationKeysIgnoredOnHome(t *testing.T) {
	a := newTestApp(t, defaultPrefs())
	defer a.toast.Stop()

	ev := key(tcell.KeyRight, 0)
	assert.Equal(t, ev, a.handleKey(ev))
	_, ok := a.study.Current(LocalUserID)
	assert.False(t, ok)
}

func TestApp_Picker(t *testing.T) {
	a := newTestApp(t, defaultPrefs())
	defer a.toast.Stop()

	a.handleKey(key(tcell.KeyRune, 's'))
	assert.True(t, a.pickerOpen)
	assert.Equal(t, 2, a.picker.GetItemCount())

	// navigation keys go to the list while the picker is open
	ev := key(tcell.KeyRight, 0)
	assert.Equal(t, ev, a.handleKey(ev))

	a.handleKey(key(tcell.KeyEscape, 0))
	assert.False(t, a.pickerOpen)
}

func TestApp_SwipeAndTap(t *testing.T) {
	a := newTestApp(t, defaultPrefs())
	defer a.toast.Stop()

	a.selectSet("a")
	a.card.SetRect(20, 2, 40, 10)

	mouse := func(action tview.MouseAction, x, y int) {
		a.handleMouse(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone), action)
	}

	// drag left past the threshold advances
	mouse(tview.MouseLeftDown, 30, 5)
	mouse(tview.MouseMove, 26, 5)
	assert.True(t, a.gestures.Tracking())
	mouse(tview.MouseLeftUp, 22, 5)
	assert.False(t, a.gestures.Tracking())
	state, _ := a.study.Current(LocalUserID)
	assert.Equal(t, 1, state.Position())

	// a short drag does nothing
	mouse(tview.MouseLeftDown, 30, 5)
	mouse(tview.MouseMove, 33, 5)
	mouse(tview.MouseLeftUp, 33, 5)
	state, _ = a.study.Current(LocalUserID)
	assert.Equal(t, 1, state.Position())
	assert.False(t, state.Revealed())

	// a tap reveals
	mouse(tview.MouseLeftDown, 30, 5)
	mouse(tview.MouseLeftUp, 30, 5)
	state, _ = a.study.Current(LocalUserID)
	assert.True(t, state.Revealed())

	// drag right retreats
	mouse(tview.MouseLeftDown, 25, 5)
	mouse(tview.MouseMove, 30, 5)
	mouse(tview.MouseLeftUp, 35, 5)
	state, _ = a.study.Current(LocalUserID)
	assert.Equal(t, 0, state.Position())

	// presses outside the card are not gestures
	mouse(tview.MouseLeftDown, 5, 5)
	assert.False(t, a.gestures.Tracking())
}

func TestApp_ToggleTheme(t *testing.T) {
	prefs := new(testutil.MockPreferenceRepository)
	prefs.On("GetPreferences", LocalUserID).Return(domain.DefaultPreferences(), nil)
	prefs.On("SaveTheme", LocalUserID, domain.ThemeLight).Return(nil)

	a := newTestApp(t, prefs)
	defer a.toast.Stop()

	a.handleKey(key(tcell.KeyRune, 'd'))
	assert.Equal(t, domain.ThemeLight, a.theme)
	assert.Equal(t, PaletteFor(domain.ThemeLight), a.palette)
	assert.Equal(t, "☀️", a.toast.Message())
	prefs.AssertExpectations(t)
}

func TestApp_ToggleThemeFailure(t *testing.T) {
	prefs := new(testutil.MockPreferenceRepository)
	prefs.On("GetPreferences", LocalUserID).Return(domain.DefaultPreferences(), nil)
	prefs.On("SaveTheme", LocalUserID, domain.ThemeLight).Return(errors.New("disk full"))

	a := newTestApp(t, prefs)
	defer a.toast.Stop()

	a.handleKey(key(tcell.KeyRune, 'd'))
	assert.Equal(t, domain.ThemeDark, a.theme)
	assert.Equal(t, "Could not save theme", a.toast.Message())
}

// onLoop runs f on the event loop and reports whether the loop answered
func onLoop(a *App, f func()) bool {
	done := make(chan struct{})
	go func() {
		a.app.QueueUpdateDraw(f)
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestApp_ToastExpiresWhileRunning(t *testing.T) {
	prefs := new(testutil.MockPreferenceRepository)
	prefs.On("GetPreferences", LocalUserID).Return(domain.Preferences{PreferredSetID: "b", Theme: domain.ThemeDark}, nil)
	prefs.On("SavePreferredSet", LocalUserID, "b").Return(nil)

	a := newTestAppWithTTL(t, prefs, time.Millisecond)
	a.app.SetScreen(tcell.NewSimulationScreen("UTF-8"))

	runErr := make(chan error, 1)
	go func() { runErr <- a.Run() }()
	defer func() {
		a.Stop()
		select {
		case err := <-runErr:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("app did not stop")
		}
	}()

	// "Birds" has one card, so every press shows "Last card" and each toast
	// expires while the next one is being shown
	for i := 0; i < 50; i++ {
		require.True(t, onLoop(a, func() {
			a.handleKey(key(tcell.KeyRight, 0))
		}), "event loop stopped answering after %d presses", i)
		time.Sleep(time.Millisecond)
	}

	require.Eventually(t, func() bool {
		var text string
		if !onLoop(a, func() { text = a.status.GetText(true) }) {
			return false
		}
		return !strings.Contains(text, "Last card")
	}, 2*time.Second, 20*time.Millisecond, "status line should clear once the toast expires")
	assert.Empty(t, a.toast.Message())
	assert.True(t, onLoop(a, func() {}), "event loop must still answer a queued update")
}
