package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly gates a handler to the static operator allow-list
func AdminOnly(admins []int64, logger *zap.Logger) tele.MiddlewareFunc {
	allowed := make(map[int64]struct{}, len(admins))
	for _, id := range admins {
		allowed[id] = struct{}{}
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if _, ok := allowed[userID]; !ok {
				logger.Warn("Unauthorized admin command",
					zap.Int64("user_id", userID),
					zap.String("text", c.Text()),
				)
				return c.Reply("Только для админов")
			}

			return next(c)
		}
	}
}
