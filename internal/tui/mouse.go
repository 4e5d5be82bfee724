package tui

import (
	"vocabcards/internal/gesture"

	"github.com/rivo/tview"
)

// mouseEvent converts a tview mouse action into a gesture event. Presses
// count only on the card; motion and release count only while tracking.
func mouseEvent(action tview.MouseAction, x, y int, onCard, tracking bool) (gesture.Event, bool) {
	ev := gesture.Event{X: float64(x), Y: float64(y)}
	switch action {
	case tview.MouseLeftDown:
		if !onCard {
			return ev, false
		}
		ev.Kind = gesture.Down
	case tview.MouseMove:
		if !tracking {
			return ev, false
		}
		ev.Kind = gesture.Move
	case tview.MouseLeftUp:
		if !tracking {
			return ev, false
		}
		ev.Kind = gesture.Up
	default:
		return ev, false
	}
	return ev, true
}

// cardMargins splits the horizontal padding around the card so a drag of
// offset cells shifts it sideways
func cardMargins(offset float64, base int) (left, right int) {
	shift := int(offset)
	left, right = base+shift, base-shift
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	return left, right
}
