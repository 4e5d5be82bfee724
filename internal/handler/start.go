package handler

import (
	"vocabcards/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgPasswordPrompt = "Привет! Это карточки для запоминания слов. Введи пароль:"
	msgInternalError  = "Произошла ошибка. Попробуйте позже."
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgInternalError)
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	if !authorized {
		h.SetState(userID, &domain.ChatState{Screen: domain.ScreenWaitingPassword})
		return c.Send(msgPasswordPrompt)
	}

	return h.showHome(c, "")
}

// handleSets shows the set grid
func (h *Handler) handleSets(c tele.Context) error {
	return h.showHome(c, "")
}

// showHome renders the set grid with the user's theme
func (h *Handler) showHome(c tele.Context, notice string) error {
	userID := c.Sender().ID

	prefs, err := h.studyService.Preferences(userID)
	if err != nil {
		h.logger.Warn("Failed to load preferences", zap.Int64("user_id", userID), zap.Error(err))
		prefs = domain.DefaultPreferences()
	}

	sets := h.catalogService.Sets()

	h.ResetState(userID)
	return h.show(c, homeText(sets, prefs.Theme), homeMarkup(sets, prefs.PreferredSetID, prefs.Theme), notice)
}
