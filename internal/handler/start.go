package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: the privacy notice comes before anything else
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	return c.Send(
		"Перед началом работы вы ознакомились с политикой обработки персональных данных?",
		privacyMarkup(),
	)
}

// handlePrivacyYes records consent and opens the main menu
func (h *Handler) handlePrivacyYes(c tele.Context) error {
	userID := c.Sender().ID

	h.state.SetConsent(userID, true)
	h.logger.Info("User accepted privacy notice", zap.Int64("user_id", userID))

	if err := c.Edit("Спасибо! Вы можете продолжить."); err != nil {
		h.logger.Warn("Failed to edit consent message", zap.Error(err))
	}
	if err := c.Send("Выберите действие:", mainMenuMarkup()); err != nil {
		h.logger.Warn("Failed to send main menu", zap.Error(err))
	}
	return c.Respond()
}

// handlePrivacyNo records refusal; nothing else is available without consent
func (h *Handler) handlePrivacyNo(c tele.Context) error {
	userID := c.Sender().ID

	h.state.SetConsent(userID, false)
	h.logger.Info("User declined privacy notice", zap.Int64("user_id", userID))

	if err := c.Edit(
		"К сожалению, без согласия на обработку персональных данных вы не можете пользоваться ботом. Вопросы: " + h.cfg.SupportContact,
	); err != nil {
		h.logger.Warn("Failed to edit consent message", zap.Error(err))
	}
	return c.Respond()
}
