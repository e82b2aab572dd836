package handler

import (
	"strconv"

	"github.com/drigmma/zabugorn/internal/config"
	"github.com/drigmma/zabugorn/internal/form"
	"github.com/drigmma/zabugorn/internal/middleware"
	"github.com/drigmma/zabugorn/internal/service"
	"github.com/drigmma/zabugorn/internal/state"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Main reply keyboard labels; incoming text is matched against these
const (
	menuFillForm = "Заполнить анкету"
	menuSupport  = "Написать в поддержку"

	consentHint = "Сначала подтвердите обработку персональных данных через /start"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	requests *service.RequestService
	engine   *form.Engine
	state    *state.Store
	cfg      *config.Config
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	requests *service.RequestService,
	engine *form.Engine,
	st *state.Store,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		requests: requests,
		engine:   engine,
		state:    st,
		cfg:      cfg,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/list_requests", h.handleListRequests,
		middleware.AdminOnly(h.cfg.AdminIDs, h.logger))

	// Text and shared contacts
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnContact, h.handleContact)

	// Consent and form callbacks
	h.bot.Handle(&btnPrivacyYes, h.handlePrivacyYes)
	h.bot.Handle(&btnPrivacyNo, h.handlePrivacyNo)
	h.bot.Handle(&btnUseHandle, h.handleUseHandle)

	// Admin action callbacks
	h.bot.Handle(&btnTake, h.handleTake)
	h.bot.Handle(&btnReject, h.handleReject)
	h.bot.Handle(&btnDelete, h.handleDelete)
	h.bot.Handle(&btnAdminMsg, h.handleAdminMsg)
}

// Inline keyboard buttons
var (
	btnPrivacyYes = tele.Btn{
		Unique: "privacy_yes",
		Text:   "Да, ознакомился(ась)",
	}
	btnPrivacyNo = tele.Btn{
		Unique: "privacy_no",
		Text:   "Нет, не согласен(на)",
	}
	btnUseHandle = tele.Btn{
		Unique: "use_handle",
		Text:   "Использовать мой username",
	}
	btnAdminMsg = tele.Btn{
		Unique: "admin_msg",
		Text:   "✉️ Написать",
	}
	btnTake = tele.Btn{
		Unique: "take",
		Text:   "✅ Взять в работу",
	}
	btnReject = tele.Btn{
		Unique: "reject",
		Text:   "❌ Отклонить",
	}
	btnDelete = tele.Btn{
		Unique: "delete",
		Text:   "🗑 Удалить заявку",
	}
)

// privacyMarkup returns the consent yes/no keyboard
func privacyMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnPrivacyYes),
		markup.Row(btnPrivacyNo),
	)
	return markup
}

// mainMenuMarkup returns the persistent reply keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(menuFillForm)),
		menu.Row(menu.Text(menuSupport)),
	)
	return menu
}

// usernameMarkup returns the use-my-username shortcut keyboard
func usernameMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnUseHandle))
	return markup
}

// adminRequestMarkup builds the operator action surface for one request
func adminRequestMarkup(requestID, userID int64) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(btnAdminMsg.Text, btnAdminMsg.Unique, strconv.FormatInt(userID, 10))),
		markup.Row(markup.Data(btnTake.Text, btnTake.Unique, strconv.FormatInt(requestID, 10))),
		markup.Row(markup.Data(btnReject.Text, btnReject.Unique, strconv.FormatInt(requestID, 10))),
		markup.Row(markup.Data(btnDelete.Text, btnDelete.Unique, strconv.FormatInt(requestID, 10))),
	)
	return markup
}

// supportReplyMarkup builds a one-tap "reply to this user" control
func supportReplyMarkup(userID int64) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(btnAdminMsg.Text, btnAdminMsg.Unique, strconv.FormatInt(userID, 10))),
	)
	return markup
}

// notifyAdmins sends text to every operator. Each send is attempted
// independently; a failure for one recipient never aborts the loop.
func (h *Handler) notifyAdmins(text string, markup *tele.ReplyMarkup) {
	for _, adminID := range h.cfg.AdminIDs {
		if _, err := h.bot.Send(&tele.User{ID: adminID}, text, markup); err != nil {
			h.logger.Warn("Failed to notify admin",
				zap.Int64("admin_id", adminID),
				zap.Error(err),
			)
		}
	}
}
