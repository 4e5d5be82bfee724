package handler

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"vocabcards/internal/domain"
	"vocabcards/internal/session"

	tele "gopkg.in/telebot.v3"
)

// setsPerRow is the width of the set grid
const setsPerRow = 2

// homeText builds the set grid caption
func homeText(sets []domain.SetSummary, theme domain.Theme) string {
	if len(sets) == 0 {
		return fmt.Sprintf("%s Наборов пока нет.\n\nЗагляни позже.", theme.Icon())
	}
	return fmt.Sprintf("%s <b>Выбери набор карточек:</b>", theme.Icon())
}

// maxCallbackData is Telegram's limit on callback data, which telebot sends
// as "\f" + unique
const maxCallbackData = 64

// setIndexMark prefixes a set position used in place of its id
const setIndexMark = "#"

// setCallback returns the button unique for a set. Ids that do not fit in
// callback data, or that telebot would split, are sent by position.
func setCallback(index int, id string) string {
	unique := setPrefix + id
	if len(unique)+1 > maxCallbackData || strings.Contains(id, "|") || strings.HasPrefix(id, setIndexMark) {
		return setPrefix + setIndexMark + strconv.Itoa(index)
	}
	return unique
}

// resolveSetID maps the payload of a set button back to a set id. Unknown
// positions resolve to "", which selects the first set.
func resolveSetID(ref string, sets []domain.SetSummary) string {
	if !strings.HasPrefix(ref, setIndexMark) {
		return ref
	}
	i, err := strconv.Atoi(strings.TrimPrefix(ref, setIndexMark))
	if err != nil || i < 0 || i >= len(sets) {
		return ""
	}
	return sets[i].ID
}

// homeMarkup builds the set grid with an optional shortcut back into the
// preferred set
func homeMarkup(sets []domain.SetSummary, preferred string, theme domain.Theme) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for i, s := range sets {
		if s.ID == preferred {
			btn := markup.Data(fmt.Sprintf("▶️ Продолжить: %s", s.Name), setCallback(i, s.ID))
			rows = append(rows, markup.Row(btn))
			break
		}
	}

	row := tele.Row{}
	for i, s := range sets {
		label := fmt.Sprintf("%s %s (%d)", s.Emoji, s.Name, s.Count)
		row = append(row, markup.Data(label, setCallback(i, s.ID)))
		if len(row) == setsPerRow {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, markup.Row(themeButton(theme)))

	markup.Inline(rows...)
	return markup
}

// cardText renders the current card as HTML. imageURL may be empty.
func cardText(state session.State, imageURL string) string {
	set := state.Set()
	if set == nil {
		return "Наборов пока нет."
	}

	var b strings.Builder

	item, ok := state.Current()
	if !ok {
		fmt.Fprintf(&b, "%s <b>%s</b>\n\nВ этом наборе нет карточек.", set.DisplayEmoji(), html.EscapeString(set.Name))
		return b.String()
	}

	if imageURL != "" {
		// zero-width link so Telegram shows the image as a preview
		fmt.Fprintf(&b, "<a href=\"%s\">&#8203;</a>", html.EscapeString(imageURL))
	}
	fmt.Fprintf(&b, "%s %s · %d/%d\n\n",
		set.DisplayEmoji(), html.EscapeString(set.Name), state.Position()+1, state.Total())
	fmt.Fprintf(&b, "📝 <b>%s</b>\n", html.EscapeString(item.Word))
	if item.Sentence != "" {
		fmt.Fprintf(&b, "<i>%s</i>\n", html.EscapeString(item.Sentence))
	}
	b.WriteString("\n")
	if state.Revealed() {
		fmt.Fprintf(&b, "🔄 %s", html.EscapeString(item.Translation))
	} else {
		b.WriteString("🔄 ░░░░░░")
	}
	return b.String()
}

// cardMarkup builds the navigation keyboard for a card
func cardMarkup(theme domain.Theme) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnPrev, btnFlip, btnNext),
		markup.Row(btnSets, themeButton(theme)),
	)
	return markup
}

func themeButton(theme domain.Theme) tele.Btn {
	btn := btnTheme
	btn.Text = theme.Icon() + " Тема"
	return btn
}

// resolveImage turns an item's image path into an absolute URL Telegram can
// preview. Relative paths need a base URL; without one there is no preview.
func resolveImage(baseURL, image string) string {
	if image == "" {
		return ""
	}
	ref, err := url.Parse(image)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		if ref.Scheme == "http" || ref.Scheme == "https" {
			return ref.String()
		}
		return ""
	}
	if baseURL == "" {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return ""
	}
	return base.ResolveReference(ref).String()
}
