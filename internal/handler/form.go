package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/drigmma/zabugorn/internal/domain"
	"github.com/drigmma/zabugorn/internal/form"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes all free-text messages. An active session always
// consumes the input first; the support flag is consulted only when no
// session claims it.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	lock := h.state.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if sess := h.state.Session(userID); sess != nil {
		if sess.Step == domain.StepAwaitingAdminReply {
			return h.relayAdminMessage(c, sess)
		}
		return h.advanceForm(c, sess, text)
	}

	switch text {
	case menuFillForm:
		return h.startForm(c)
	case menuSupport:
		return h.askSupport(c)
	}

	if h.state.TakeSupportWaiting(userID) {
		return h.forwardSupport(c, text)
	}

	return c.Reply("Пожалуйста, используйте клавиатуру. Если нужно — напишите 'Заполнить анкету' или 'Написать в поддержку'.")
}

// handleContact feeds a shared contact into the form's phone steps
func (h *Handler) handleContact(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.state.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := h.state.Session(userID)
	if sess == nil {
		return nil
	}
	if sess.Step != domain.StepPhone && sess.Step != domain.StepExtraPhone {
		return nil
	}

	contact := c.Message().Contact
	if contact == nil {
		return nil
	}

	return h.advanceForm(c, sess, contact.PhoneNumber)
}

// handleUseHandle handles the use-my-username shortcut on the username step
func (h *Handler) handleUseHandle(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.state.UserLock(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := h.state.Session(userID)
	if sess == nil || sess.Step != domain.StepUsername {
		return c.Respond()
	}

	handle := c.Sender().Username
	if handle == "" {
		return c.Respond(&tele.CallbackResponse{
			Text:      "У вас не указан username в Telegram",
			ShowAlert: true,
		})
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.advanceForm(c, sess, "@"+handle)
}

// startForm begins the questionnaire; consent is the entry precondition
func (h *Handler) startForm(c tele.Context) error {
	userID := c.Sender().ID

	if !h.state.Consent(userID) {
		return c.Reply(consentHint)
	}

	h.state.SetSession(userID, domain.NewSession(userID))
	h.logger.Info("Form started", zap.Int64("user_id", userID))

	return c.Send(form.StartPrompt())
}

// advanceForm applies one answer and sends the engine's reply
func (h *Handler) advanceForm(c tele.Context, sess *domain.Session, input string) error {
	result := h.engine.Advance(sess, input)

	if result.Done {
		return h.completeForm(c, sess.UserID, result.Answers)
	}
	if result.Rejected {
		return c.Send(result.Reply)
	}

	if sess.Step == domain.StepUsername {
		return c.Send(result.Reply, usernameMarkup())
	}
	return c.Send(result.Reply)
}

// completeForm persists the finished form and fans the request out to
// the operators. The session is destroyed first, unconditionally, so
// the user can never get stuck mid-form on a backend failure.
func (h *Handler) completeForm(c tele.Context, userID int64, answers map[string]string) error {
	h.state.ClearSession(userID)

	req := requestFromAnswers(userID, answers)

	id, err := h.requests.Submit(req)
	if err != nil {
		h.logger.Error("Failed to save request",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil
	}
	req.ID = id

	h.logger.Info("Request saved",
		zap.Int64("request_id", id),
		zap.Int64("user_id", userID),
	)

	if err := c.Send(
		"Спасибо! Ваша заявка отправлена. Наш менеджер свяжется с вами.",
		&tele.ReplyMarkup{RemoveKeyboard: true},
	); err != nil {
		h.logger.Warn("Failed to send confirmation",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	h.notifyAdmins(requestSummary(req), adminRequestMarkup(id, userID))

	go h.requests.MirrorAppend(context.Background(), id, req)

	return nil
}

// requestFromAnswers maps the completed answer set onto a request
func requestFromAnswers(userID int64, answers map[string]string) *domain.Request {
	phones := answers[domain.FieldPhone]
	if extra := answers[domain.FieldExtraPhone]; extra != "" {
		phones += ", " + extra
	}

	return &domain.Request{
		UserID:     userID,
		Username:   answers[domain.FieldUsername],
		Name:       answers[domain.FieldName],
		Phones:     phones,
		BrandModel: answers[domain.FieldBrandModel],
		Exterior:   answers[domain.FieldExterior],
		Interior:   answers[domain.FieldInterior],
		Package:    answers[domain.FieldPackage],
		Budget:     answers[domain.FieldBudget],
		Year:       answers[domain.FieldYear],
		Wishes:     answers[domain.FieldWishes],
		Status:     domain.StatusNew,
	}
}

// requestSummary renders the operator notification body
func requestSummary(req *domain.Request) string {
	return fmt.Sprintf(
		"Новая заявка #%d\n"+
			"ФИО: %s\n"+
			"Телефон: %s\n"+
			"Username: %s\n"+
			"Марка/модель: %s\n"+
			"Экстерьер: %s\n"+
			"Интерьер: %s\n"+
			"Комплектация: %s\n"+
			"Бюджет: %s\n"+
			"Год: %s\n"+
			"Пожелания: %s",
		req.ID, req.Name, req.Phones, req.Username, req.BrandModel,
		req.Exterior, req.Interior, req.Package, req.Budget, req.Year,
		req.Wishes,
	)
}
