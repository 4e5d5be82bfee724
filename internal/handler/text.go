package handler

import (
	"strings"

	"vocabcards/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// textAction maps typed shortcuts on the card screen to navigation
func textAction(text string) string {
	switch strings.ToLower(text) {
	case ">", "→", "n", "д", "дальше":
		return "next"
	case "<", "←", "p", "н", "назад":
		return "prev"
	case "t", "п", "перевод":
		return "flip"
	}
	return ""
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	// If not authorized, treat the text as a password attempt
	if !authorized {
		if !h.authService.CheckPassword(text) {
			return c.Send("Неверный пароль")
		}

		if err := h.authService.AuthorizeUser(userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(msgInternalError)
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		return h.showHome(c, "")
	}

	if h.GetState(userID).Screen != domain.ScreenCards {
		return h.showHome(c, "")
	}

	switch textAction(text) {
	case "next":
		return h.handleNext(c)
	case "prev":
		return h.handlePrev(c)
	case "flip":
		return h.handleFlip(c)
	}
	return c.Send("Листай кнопками ⬅️ ➡️ или напиши > / < / t")
}
