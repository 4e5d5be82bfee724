// Package tui is the terminal front end: a set list, a card view driven by
// keys and mouse swipes, and a set picker.
package tui

import (
	"fmt"
	"time"

	"vocabcards/internal/domain"
	"vocabcards/internal/gesture"
	"vocabcards/internal/notify"
	"vocabcards/internal/service"
	"vocabcards/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// LocalUserID keys the single local user's session and preferences
const LocalUserID int64 = 0

const (
	pageHome   = "home"
	pageCards  = "cards"
	pagePicker = "picker"
)

// Options configures the app
type Options struct {
	Gesture  gesture.Config
	ToastTTL time.Duration
}

// App is the terminal flashcard viewer
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	status *tview.TextView

	home    *tview.List
	cardRow *tview.Flex
	padL    *tview.Box
	padR    *tview.Box
	card    *tview.TextView
	picker  *tview.List

	study    *service.StudyService
	catalogs *service.CatalogService
	gestures *gesture.Interpreter
	toast    *notify.Toast
	logger   *zap.Logger

	theme      domain.Theme
	palette    Palette
	basePad    int
	screen     string
	pickerOpen bool
}

// New builds the app. Preferences are read once to pick the theme.
func New(study *service.StudyService, catalogs *service.CatalogService, opts Options, logger *zap.Logger) *App {
	prefs, err := study.Preferences(LocalUserID)
	if err != nil {
		logger.Warn("Failed to load preferences, using defaults", zap.Error(err))
		prefs = domain.DefaultPreferences()
	}

	a := &App{
		app:      tview.NewApplication(),
		study:    study,
		catalogs: catalogs,
		gestures: gesture.New(opts.Gesture),
		logger:   logger,
		theme:    prefs.Theme,
		palette:  PaletteFor(prefs.Theme),
		basePad:  int(opts.Gesture.MaxVisualOffset),
		screen:   pageHome,
	}
	a.toast = notify.NewToast(opts.ToastTTL, a.showToast, a.hideToast)
	a.build()
	return a
}

func (a *App) build() {
	a.palette.apply()

	a.home = tview.NewList().ShowSecondaryText(false)
	a.home.SetBorder(true).SetTitle(" Sets ")

	a.card = tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetTextAlign(tview.AlignCenter)
	a.card.SetBorder(true)

	a.padL = tview.NewBox()
	a.padR = tview.NewBox()
	a.cardRow = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(a.padL, a.basePad, 0, false).
		AddItem(a.card, 0, 1, true).
		AddItem(a.padR, a.basePad, 0, false)

	a.picker = tview.NewList().ShowSecondaryText(false)
	a.picker.SetBorder(true).SetTitle(" Choose a set ")
	pickerModal := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(a.picker, 44, 0, true).
			AddItem(nil, 0, 1, false), 14, 0, true).
		AddItem(nil, 0, 1, false)

	a.pages = tview.NewPages().
		AddPage(pageHome, a.home, true, true).
		AddPage(pageCards, a.cardRow, true, false).
		AddPage(pagePicker, pickerModal, true, false)

	a.status = tview.NewTextView().SetDynamicColors(true)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.app.SetRoot(root, true).EnableMouse(true)
	a.app.SetInputCapture(a.handleKey)
	a.app.SetMouseCapture(a.handleMouse)

	a.paint()
	a.refreshSets()
	a.refreshStatus("")
}

// Notify shows a transient message in the status line
func (a *App) Notify(msg string) {
	a.toast.Show(msg)
}

// Run resumes the preferred set when there is one and blocks until quit
func (a *App) Run() error {
	defer a.toast.Stop()

	if len(a.catalogs.Sets()) > 0 {
		a.showCards(a.study.Resume(LocalUserID))
	}
	return a.app.Run()
}

// Stop ends the event loop
func (a *App) Stop() {
	a.app.Stop()
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	action := keyAction(ev)

	if a.pickerOpen {
		switch action {
		case ActionClose, ActionPicker:
			a.closePicker()
			return nil
		case ActionQuit:
			a.app.Stop()
			return nil
		}
		return ev
	}

	switch action {
	case ActionQuit:
		a.app.Stop()
		return nil
	case ActionTheme:
		a.toggleTheme()
		return nil
	case ActionPicker:
		a.openPicker()
		return nil
	}

	if a.screen != pageCards {
		return ev
	}
	switch action {
	case ActionNext:
		a.move(a.study.Next, session.State.AtEnd, "Last card")
		return nil
	case ActionPrev:
		a.move(a.study.Prev, session.State.AtStart, "First card")
		return nil
	case ActionReveal:
		a.step(a.study.Flip)
		return nil
	case ActionClose:
		a.showHome()
		return nil
	}
	return ev
}

func (a *App) handleMouse(ev *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if a.screen != pageCards || a.pickerOpen {
		return ev, action
	}

	x, y := ev.Position()
	gev, ok := mouseEvent(action, x, y, a.card.InRect(x, y), a.gestures.Tracking())
	if !ok {
		return ev, action
	}

	res := a.gestures.Handle(gev)
	a.shift(res.Offset)

	if gev.Kind != gesture.Up {
		return nil, 0
	}
	switch {
	case res.Tap:
		a.step(a.study.Flip)
	case res.Command == gesture.Advance:
		a.move(a.study.Next, session.State.AtEnd, "Last card")
	case res.Command == gesture.Retreat:
		a.move(a.study.Prev, session.State.AtStart, "First card")
	}
	return nil, 0
}

// move steps the session, noting when it is already at the bound
func (a *App) move(op func(userID int64) (session.State, bool), atBound func(session.State) bool, msg string) {
	if state, ok := a.study.Current(LocalUserID); ok && !state.Empty() && atBound(state) {
		a.Notify(msg)
	}
	a.step(op)
}

// step applies a session operation and redraws the card
func (a *App) step(op func(userID int64) (session.State, bool)) {
	state, ok := op(LocalUserID)
	if !ok {
		state = a.study.Resume(LocalUserID)
	}
	a.renderCard(state)
}

func (a *App) selectSet(id string) {
	state := a.study.SelectSet(LocalUserID, id)
	if state.Set() == nil {
		a.Notify("No sets available")
		a.showHome()
		return
	}
	a.showCards(state)
	a.Notify(fmt.Sprintf("Loaded: %s", state.Set().Name))
}

func (a *App) showCards(state session.State) {
	a.screen = pageCards
	a.pages.SwitchToPage(pageCards)
	a.app.SetFocus(a.card)
	a.renderCard(state)
}

func (a *App) showHome() {
	a.gestures.Cancel()
	a.shift(0)
	a.screen = pageHome
	a.refreshSets()
	a.pages.SwitchToPage(pageHome)
	a.app.SetFocus(a.home)
}

func (a *App) renderCard(state session.State) {
	a.card.SetTitle(cardTitle(state))
	a.card.SetText(cardBody(state, a.palette))
}

func (a *App) shift(offset float64) {
	left, right := cardMargins(offset, a.basePad)
	a.cardRow.ResizeItem(a.padL, left, 0)
	a.cardRow.ResizeItem(a.padR, right, 0)
}

func (a *App) openPicker() {
	sets := a.catalogs.Sets()
	if len(sets) == 0 {
		a.Notify("No sets available")
		return
	}

	a.gestures.Cancel()
	a.shift(0)
	fillSetList(a.picker, sets, a.currentSetID(), func(id string) {
		a.closePicker()
		a.selectSet(id)
	})
	a.pickerOpen = true
	a.pages.ShowPage(pagePicker)
	a.app.SetFocus(a.picker)
}

func (a *App) closePicker() {
	if !a.pickerOpen {
		return
	}
	a.pickerOpen = false
	a.pages.HidePage(pagePicker)
	if a.screen == pageCards {
		a.app.SetFocus(a.card)
	} else {
		a.app.SetFocus(a.home)
	}
}

func (a *App) refreshSets() {
	fillSetList(a.home, a.catalogs.Sets(), a.currentSetID(), a.selectSet)
}

func (a *App) currentSetID() string {
	if state, ok := a.study.Current(LocalUserID); ok {
		return state.SetID()
	}
	prefs, err := a.study.Preferences(LocalUserID)
	if err != nil {
		return ""
	}
	return prefs.PreferredSetID
}

// fillSetList lists sets with the current one highlighted
func fillSetList(list *tview.List, sets []domain.SetSummary, current string, onSelect func(id string)) {
	list.Clear()
	for i, s := range sets {
		id := s.ID
		list.AddItem(setLabel(s), "", 0, func() { onSelect(id) })
		if id == current {
			list.SetCurrentItem(i)
		}
	}
}

func (a *App) toggleTheme() {
	theme, err := a.study.ToggleTheme(LocalUserID)
	if err != nil {
		a.logger.Error("Failed to save theme", zap.Error(err))
		a.Notify("Could not save theme")
		return
	}
	a.theme = theme
	a.palette = PaletteFor(theme)
	a.paint()
	if state, ok := a.study.Current(LocalUserID); ok {
		a.renderCard(state)
	}
	a.Notify(theme.Icon())
}

// paint recolors the existing primitives with the current palette
func (a *App) paint() {
	p := a.palette
	p.apply()

	for _, box := range []*tview.Box{a.home.Box, a.picker.Box, a.padL, a.padR, a.status.Box} {
		box.SetBackgroundColor(p.Background)
		box.SetBorderColor(p.Accent)
		box.SetTitleColor(p.Accent)
	}
	a.card.SetBackgroundColor(p.Card)
	a.card.SetBorderColor(p.Accent)
	a.card.SetTitleColor(p.Accent)
	a.card.SetTextColor(p.Text)

	for _, list := range []*tview.List{a.home, a.picker} {
		list.SetMainTextColor(p.Text)
		list.SetSelectedTextColor(p.Background)
		list.SetSelectedBackgroundColor(p.Accent)
	}
	a.status.SetTextColor(p.Muted)
	a.refreshStatus(a.toast.Message())
}

func (a *App) refreshStatus(toast string) {
	a.status.SetText(statusText(a.theme, toast, a.palette))
}

// showToast runs on the event loop, inside Notify
func (a *App) showToast(msg string) {
	a.refreshStatus(msg)
}

// hideToast runs on the toast's timer goroutine
func (a *App) hideToast() {
	a.app.QueueUpdateDraw(func() {
		a.refreshStatus("")
	})
}
