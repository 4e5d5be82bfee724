package tui

import (
	"fmt"
	"strings"

	"vocabcards/internal/domain"
	"vocabcards/internal/session"

	"github.com/rivo/tview"
)

const helpText = "←/→ cards  space/t reveal  s sets  d theme  q quit"

// setLabel is the home list entry of a set
func setLabel(s domain.SetSummary) string {
	return fmt.Sprintf("%s %s (%d)", s.Emoji, tview.Escape(s.Name), s.Count)
}

// cardTitle shows the set and progress in the card border
func cardTitle(state session.State) string {
	set := state.Set()
	if set == nil {
		return " No sets "
	}
	if state.Empty() {
		return fmt.Sprintf(" %s %s ", set.DisplayEmoji(), tview.Escape(set.Name))
	}
	return fmt.Sprintf(" %s %s · %d/%d ", set.DisplayEmoji(), tview.Escape(set.Name), state.Position()+1, state.Total())
}

// cardBody renders the current card with tview color tags
func cardBody(state session.State, p Palette) string {
	item, ok := state.Current()
	if !ok {
		if state.Set() == nil {
			return fmt.Sprintf("[%s]No sets loaded.[-]", tag(p.Muted))
		}
		return fmt.Sprintf("[%s]This set has no cards.[-]", tag(p.Muted))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n[%s::b]%s[-::-]\n\n", tag(p.Accent), tview.Escape(item.Word))
	if item.Sentence != "" {
		fmt.Fprintf(&b, "[%s::i]%s[-::-]\n\n", tag(p.Muted), tview.Escape(item.Sentence))
	}
	if state.Revealed() {
		fmt.Fprintf(&b, "[%s]%s[-]", tag(p.Text), tview.Escape(item.Translation))
	} else {
		fmt.Fprintf(&b, "[%s]░░░░░░  (space to reveal)[-]", tag(p.Muted))
	}
	if item.Image != "" {
		fmt.Fprintf(&b, "\n\n[%s]%s[-]", tag(p.Muted), tview.Escape(item.Image))
	}
	return b.String()
}

// statusText is the bottom line: key help, theme, and a toast when shown
func statusText(theme domain.Theme, toast string, p Palette) string {
	if toast == "" {
		return fmt.Sprintf(" %s %s", theme.Icon(), helpText)
	}
	return fmt.Sprintf(" %s %s  [%s::b]%s[-::-]", theme.Icon(), helpText, tag(p.Accent), tview.Escape(toast))
}
