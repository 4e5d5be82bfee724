package tui

import "github.com/gdamore/tcell/v2"

// Action is what a key press asks the app to do
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionReveal
	ActionPicker
	ActionClose
	ActionTheme
	ActionQuit
)

// keyAction maps a key press to an action
func keyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyRight:
		return ActionNext
	case tcell.KeyLeft:
		return ActionPrev
	case tcell.KeyEscape:
		return ActionClose
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 't', 'T':
			return ActionReveal
		case 's':
			return ActionPicker
		case 'd':
			return ActionTheme
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}
