package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drigmma/zabugorn/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// callbackID parses the id payload of an action button
func callbackID(data string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(data), 10, 64)
}

// denyNonAdmin answers a callback from someone off the allow-list.
// No state change happens for unauthorized actors.
func (h *Handler) denyNonAdmin(c tele.Context) error {
	h.logger.Warn("Unauthorized admin action",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("data", c.Data()),
	)
	return c.Respond(&tele.CallbackResponse{
		Text:      "Только для админов",
		ShowAlert: true,
	})
}

// handleTake claims a request for the pressing operator
func (h *Handler) handleTake(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return h.denyNonAdmin(c)
	}

	requestID, err := callbackID(c.Data())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректная заявка"})
	}

	if err := h.requests.Claim(requestID); err != nil {
		h.logger.Error("Failed to claim request",
			zap.Int64("request_id", requestID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при обновлении заявки"})
	}

	h.logger.Info("Request claimed",
		zap.Int64("request_id", requestID),
		zap.Int64("admin_id", c.Sender().ID),
	)

	// Controls disappear only from this operator's copy of the message
	h.removeControls(c)
	return c.Respond(&tele.CallbackResponse{Text: "Заявка взята в работу"})
}

// handleReject marks a request as rejected
func (h *Handler) handleReject(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return h.denyNonAdmin(c)
	}

	requestID, err := callbackID(c.Data())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректная заявка"})
	}

	if err := h.requests.Reject(requestID); err != nil {
		h.logger.Error("Failed to reject request",
			zap.Int64("request_id", requestID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при обновлении заявки"})
	}

	h.logger.Info("Request rejected",
		zap.Int64("request_id", requestID),
		zap.Int64("admin_id", c.Sender().ID),
	)

	h.removeControls(c)
	return c.Respond(&tele.CallbackResponse{Text: "Заявка отклонена"})
}

// handleDelete hard-deletes a request; the mirror row is left alone
func (h *Handler) handleDelete(c tele.Context) error {
	if !h.cfg.IsAdmin(c.Sender().ID) {
		return h.denyNonAdmin(c)
	}

	requestID, err := callbackID(c.Data())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректная заявка"})
	}

	if err := h.requests.Remove(requestID); err != nil {
		h.logger.Error("Failed to delete request",
			zap.Int64("request_id", requestID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при удалении заявки"})
	}

	h.logger.Info("Request deleted",
		zap.Int64("request_id", requestID),
		zap.Int64("admin_id", c.Sender().ID),
	)

	if _, err := h.bot.Edit(c.Message(), c.Message().Text+"\n\n(удалено)"); err != nil {
		h.logger.Warn("Failed to annotate deleted request", zap.Error(err))
	}
	return c.Respond(&tele.CallbackResponse{Text: "Заявка удалена"})
}

// handleAdminMsg puts the operator into compose mode bound to a user
func (h *Handler) handleAdminMsg(c tele.Context) error {
	adminID := c.Sender().ID
	if !h.cfg.IsAdmin(adminID) {
		return h.denyNonAdmin(c)
	}

	targetID, err := callbackID(c.Data())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректный пользователь"})
	}

	lock := h.state.UserLock(adminID)
	lock.Lock()
	h.state.SetSession(adminID, &domain.Session{
		UserID:       adminID,
		Step:         domain.StepAwaitingAdminReply,
		TargetUserID: targetID,
	})
	lock.Unlock()

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(fmt.Sprintf("Введите сообщение, которое будет отправлено пользователю %d", targetID))
}

// relayAdminMessage forwards the operator's next message to the bound
// user. The operator's session is cleared whether delivery works or not.
func (h *Handler) relayAdminMessage(c tele.Context, sess *domain.Session) error {
	adminID := c.Sender().ID
	targetID := sess.TargetUserID

	h.state.ClearSession(adminID)

	if _, err := h.bot.Send(&tele.User{ID: targetID}, "Сообщение от менеджера: "+c.Text()); err != nil {
		h.logger.Warn("Failed to deliver admin message",
			zap.Int64("admin_id", adminID),
			zap.Int64("target_user_id", targetID),
			zap.Error(err),
		)
		return c.Reply("Не удалось отправить сообщение пользователю")
	}

	h.logger.Info("Admin message delivered",
		zap.Int64("admin_id", adminID),
		zap.Int64("target_user_id", targetID),
	)
	return c.Reply("Сообщение отправлено пользователю")
}

// handleListRequests sends the newest requests, each with a fresh
// action surface
func (h *Handler) handleListRequests(c tele.Context) error {
	requests, err := h.requests.Recent()
	if err != nil {
		h.logger.Error("Failed to list requests", zap.Error(err))
		return c.Reply("Ошибка при загрузке заявок")
	}

	if len(requests) == 0 {
		return c.Reply("Нет актуальных заявок")
	}

	for _, req := range requests {
		text := fmt.Sprintf("#%d %s\n%s\n%s\nСтатус: %s",
			req.ID, req.Name, req.BrandModel, req.Phones, req.Status)
		if err := c.Send(text, adminRequestMarkup(req.ID, req.UserID)); err != nil {
			h.logger.Warn("Failed to send request listing",
				zap.Int64("request_id", req.ID),
				zap.Error(err),
			)
		}
	}
	return nil
}

// removeControls strips the inline keyboard from the pressed message
func (h *Handler) removeControls(c tele.Context) {
	if _, err := h.bot.EditReplyMarkup(c.Message(), nil); err != nil {
		h.logger.Warn("Failed to remove request controls", zap.Error(err))
	}
}
