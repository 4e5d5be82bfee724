package tui

import (
	"strings"
	"testing"

	"vocabcards/internal/domain"
	"vocabcards/internal/gesture"
	"vocabcards/internal/session"
	"vocabcards/internal/testutil"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, tcell.GetColor("#0b1020"), PaletteFor(domain.ThemeDark).Background)
	assert.Equal(t, tcell.GetColor("#f5f7fb"), PaletteFor(domain.ThemeLight).Background)
	assert.Equal(t, PaletteFor(domain.ThemeDark), PaletteFor(domain.Theme("unknown")))
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionNext},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionPrev},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionReveal},
		{"t", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), ActionReveal},
		{"shift-t", tcell.NewEventKey(tcell.KeyRune, 'T', tcell.ModShift), ActionReveal},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), ActionPicker},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionClose},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), ActionTheme},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyAction(tt.ev))
		})
	}
}

func TestMouseEvent(t *testing.T) {
	tests := []struct {
		name     string
		action   tview.MouseAction
		onCard   bool
		tracking bool
		want     gesture.EventKind
		ok       bool
	}{
		{"press on card", tview.MouseLeftDown, true, false, gesture.Down, true},
		{"press off card", tview.MouseLeftDown, false, false, 0, false},
		{"move while tracking", tview.MouseMove, false, true, gesture.Move, true},
		{"move while idle", tview.MouseMove, true, false, 0, false},
		{"release while tracking", tview.MouseLeftUp, false, true, gesture.Up, true},
		{"release while idle", tview.MouseLeftUp, true, false, 0, false},
		{"scroll", tview.MouseScrollUp, true, true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := mouseEvent(tt.action, 3, 4, tt.onCard, tt.tracking)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, ev.Kind)
				assert.Equal(t, 3.0, ev.X)
				assert.Equal(t, 4.0, ev.Y)
			}
		})
	}
}

func TestCardMargins(t *testing.T) {
	left, right := cardMargins(0, 12)
	assert.Equal(t, [2]int{12, 12}, [2]int{left, right})

	left, right = cardMargins(-5.7, 12)
	assert.Equal(t, [2]int{7, 17}, [2]int{left, right})

	left, right = cardMargins(12, 12)
	assert.Equal(t, [2]int{24, 0}, [2]int{left, right})

	left, right = cardMargins(-20, 12)
	assert.Equal(t, [2]int{0, 32}, [2]int{left, right})
}

func TestCardRendering(t *testing.T) {
	catalog := testutil.NewTestCatalog(
		testutil.NewTestSet("a", "Animals", "cat", "dog"),
		testutil.NewTestSet("e", "Empty"),
	)
	p := PaletteFor(domain.ThemeDark)

	state := session.Select(catalog, "a", firstRand{})
	assert.Equal(t, " 📚 Animals · 1/2 ", cardTitle(state))

	body := cardBody(state, p)
	assert.Contains(t, body, "░░░░░░")
	assert.NotContains(t, body, "-translation")

	body = cardBody(state.ToggleReveal(), p)
	assert.Contains(t, body, "-translation")

	empty := session.Select(catalog, "e", firstRand{})
	assert.Equal(t, " 📚 Empty ", cardTitle(empty))
	assert.Contains(t, cardBody(empty, p), "no cards")

	none := session.Select(testutil.NewTestCatalog(), "", firstRand{})
	assert.Equal(t, " No sets ", cardTitle(none))
	assert.Contains(t, cardBody(none, p), "No sets loaded")
}

func TestStatusText(t *testing.T) {
	p := PaletteFor(domain.ThemeLight)
	assert.True(t, strings.HasPrefix(statusText(domain.ThemeLight, "", p), " ☀️ "))
	assert.Contains(t, statusText(domain.ThemeDark, "Loaded: [x]", p), "Loaded: [x[]")
}

func TestSetLabel(t *testing.T) {
	assert.Equal(t, "🐾 Animals (3)", setLabel(domain.SetSummary{ID: "a", Name: "Animals", Emoji: "🐾", Count: 3}))
}
