package handler

import (
	"fmt"
	"strings"
	"unicode"

	"vocabcards/internal/domain"
	"vocabcards/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Saturated navigation re-renders the same card; Telegram rejects the edit
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message not modified, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// show edits the message behind a callback or sends a new one for commands.
// A non-empty notice is shown as a transient callback answer.
func (h *Handler) show(c tele.Context, text string, markup *tele.ReplyMarkup, notice string) error {
	userID := c.Sender().ID

	if c.Callback() == nil {
		if notice != "" {
			text = notice + "\n\n" + text
		}
		return c.Send(text, markup, tele.ModeHTML)
	}

	if err := c.Edit(text, markup, tele.ModeHTML); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup, tele.ModeHTML)
	}
	if notice != "" {
		return c.Respond(&tele.CallbackResponse{Text: notice})
	}
	return c.Respond()
}

// handleCallback handles callbacks not bound to a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique did not come through
	switch data {
	case btnNext.Unique:
		return h.handleNext(c)
	case btnPrev.Unique:
		return h.handlePrev(c)
	case btnFlip.Unique:
		return h.handleFlip(c)
	case btnSets.Unique, btnHome.Unique:
		return h.handleSets(c)
	case btnTheme.Unique:
		return h.handleTheme(c)
	}

	if strings.HasPrefix(data, setPrefix) {
		return h.handleSetSelection(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleSetSelection starts a shuffled session over the chosen set
func (h *Handler) handleSetSelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	ref := strings.TrimPrefix(strings.TrimSpace(data), setPrefix)
	setID := resolveSetID(ref, h.catalogService.Sets())

	state := h.studyService.SelectSet(userID, setID)
	if state.Set() == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Наборов пока нет",
			ShowAlert: true,
		})
	}

	h.logger.Info("Set selected",
		zap.Int64("user_id", userID),
		zap.String("set_id", state.SetID()),
		zap.Int("cards", state.Total()),
	)
	return h.showCard(c, state, fmt.Sprintf("Загружено: %s", state.Set().Name))
}

// handleNext moves to the next card
func (h *Handler) handleNext(c tele.Context) error {
	return h.navigate(c, h.studyService.Next)
}

// handlePrev moves to the previous card
func (h *Handler) handlePrev(c tele.Context) error {
	return h.navigate(c, h.studyService.Prev)
}

// handleFlip shows or hides the translation
func (h *Handler) handleFlip(c tele.Context) error {
	return h.navigate(c, h.studyService.Flip)
}

func (h *Handler) navigate(c tele.Context, step func(userID int64) (session.State, bool)) error {
	state, ok := step(c.Sender().ID)
	if !ok {
		// No session yet, e.g. after a restart
		return h.showHome(c, "")
	}
	return h.showCard(c, state, "")
}

// handleTheme toggles the theme and re-renders the current view
func (h *Handler) handleTheme(c tele.Context) error {
	userID := c.Sender().ID

	theme, err := h.studyService.ToggleTheme(userID)
	if err != nil {
		h.logger.Error("Failed to toggle theme", zap.Int64("user_id", userID), zap.Error(err))
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Ошибка при сохранении"})
		}
		return c.Send(msgInternalError)
	}

	notice := theme.Icon()
	if h.GetState(userID).Screen == domain.ScreenCards {
		if state, ok := h.studyService.Current(userID); ok {
			return h.showCardWithTheme(c, state, theme, notice)
		}
	}
	return h.showHome(c, notice)
}

// showCard renders a card using the user's stored theme
func (h *Handler) showCard(c tele.Context, state session.State, notice string) error {
	userID := c.Sender().ID

	prefs, err := h.studyService.Preferences(userID)
	if err != nil {
		h.logger.Warn("Failed to load preferences", zap.Int64("user_id", userID), zap.Error(err))
		prefs = domain.DefaultPreferences()
	}
	return h.showCardWithTheme(c, state, prefs.Theme, notice)
}

func (h *Handler) showCardWithTheme(c tele.Context, state session.State, theme domain.Theme, notice string) error {
	imageURL := ""
	if item, ok := state.Current(); ok {
		imageURL = resolveImage(h.imageBaseURL, item.Image)
	}

	h.SetState(c.Sender().ID, &domain.ChatState{Screen: domain.ScreenCards})
	return h.show(c, cardText(state, imageURL), cardMarkup(theme), notice)
}
