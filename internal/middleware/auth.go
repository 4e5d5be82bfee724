package middleware

import (
	"vocabcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	msgInternalError = "Произошла ошибка. Попробуйте позже."
	msgNeedPassword  = "Сначала введи пароль. Напиши /start, если забыл, как начать."
)

// AuthMiddleware lets only users who passed the password through
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID, c.Sender().Username); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return reply(c, msgInternalError)
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, msgInternalError)
			}

			if !authorized {
				logger.Debug("Rejected unauthorized user", zap.Int64("user_id", userID))
				return reply(c, msgNeedPassword)
			}

			return next(c)
		}
	}
}

// reply answers a callback with an alert, or sends a message otherwise
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
