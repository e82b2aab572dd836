package handler

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// askSupport arms the support relay: the user's next free-text message
// goes to the operators instead of the form.
func (h *Handler) askSupport(c tele.Context) error {
	userID := c.Sender().ID

	if !h.state.Consent(userID) {
		return c.Reply(consentHint)
	}

	h.state.SetSupportWaiting(userID)
	return c.Reply("Опишите вашу проблему или вопрос. Сообщение будет отправлено менеджеру.")
}

// forwardSupport broadcasts a support message to every operator with a
// one-tap reply control bound to the sender. The waiting flag was
// already cleared by the caller; it stays cleared whether or not every
// operator received the broadcast.
func (h *Handler) forwardSupport(c tele.Context, text string) error {
	sender := c.Sender()
	name := strings.TrimSpace(sender.FirstName + " " + sender.LastName)

	h.logger.Info("Forwarding support message",
		zap.Int64("user_id", sender.ID),
	)

	body := fmt.Sprintf("[Support] From %s (@%s):\n%s", name, sender.Username, text)
	h.notifyAdmins(body, supportReplyMarkup(sender.ID))

	return c.Send("Ваше сообщение отправлено в поддержку. Мы свяжемся с вами.")
}
