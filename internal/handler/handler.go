package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/flightapi"
	"github.com/traveldesk/travelbot/internal/httputil"
	"github.com/traveldesk/travelbot/internal/i18n"
	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/service"
	"github.com/traveldesk/travelbot/internal/session"
	"github.com/traveldesk/travelbot/internal/telegram"
)

// ChatClient is the slice of the Bot API client the handlers use.
type ChatClient interface {
	SendMessage(ctx context.Context, params telegram.SendMessageParams) (*telegram.Message, error)
	EditMessageText(ctx context.Context, chatID, messageID int64, text, parseMode string) error
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
}

// FlightSearcher runs provider searches and booking-token lookups.
type FlightSearcher interface {
	Search(ctx context.Context, p flightapi.SearchParams) ([]model.FlightOption, error)
	FetchBooking(ctx context.Context, p flightapi.SearchParams, bookingToken string) (*flightapi.BookingDetail, error)
}

// DestinationRecommender offloads tip generation behind a placeholder.
type DestinationRecommender interface {
	Recommend(ctx context.Context, chatID int64, destination string, lang model.Language) error
}

// ChatLimiter bounds the update rate of a single chat.
type ChatLimiter interface {
	Allow(ctx context.Context, chatID int64) bool
}

// Auditor records chat traffic; failures never surface.
type Auditor interface {
	RecordInbound(ctx context.Context, chatID int64, senderHandle *string, kind string, payload any)
	RecordOutbound(ctx context.Context, chatID int64, operation string, payload any, sendErr error)
}

// Handler receives webhook updates and drives the dialogue state machine.
// All dialogue mutations run inside Registry.WithChat, so events for one
// chat are processed strictly in order.
type Handler struct {
	registry    *session.Registry
	chat        ChatClient
	queries     *service.QueryBuilder
	flights     FlightSearcher
	checklists  *service.ChecklistService
	recommender DestinationRecommender
	audit       Auditor
	limiter     ChatLimiter
	logger      zerolog.Logger
}

func NewHandler(
	registry *session.Registry,
	chat ChatClient,
	queries *service.QueryBuilder,
	flights FlightSearcher,
	checklists *service.ChecklistService,
	recommender DestinationRecommender,
	audit Auditor,
	limiter ChatLimiter,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		registry:    registry,
		chat:        chat,
		queries:     queries,
		flights:     flights,
		checklists:  checklists,
		recommender: recommender,
		audit:       audit,
		limiter:     limiter,
		logger:      logger.With().Str("component", "webhook").Logger(),
	}
}

// HandleWebhook decodes one Bot API update and processes it. Telegram
// retries non-200 responses, so processing errors are logged and answered
// with 200 to avoid redelivery of an update that already mutated state.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn().Err(err).Msg("undecodable update")
		httputil.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "bad update"})
		return
	}

	h.Dispatch(r.Context(), &update)
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Dispatch routes an update to the message or callback path under the
// chat's session lock. Over-limit chats are dropped silently; Telegram
// still gets a 200 so the update is not redelivered.
func (h *Handler) Dispatch(ctx context.Context, update *telegram.Update) {
	chatID, ok := updateChatID(update)
	if !ok {
		return
	}
	if h.limiter != nil && !h.limiter.Allow(ctx, chatID) {
		h.logger.Warn().Int64("chat_id", chatID).Msg("chat over rate limit, update dropped")
		return
	}

	switch {
	case update.CallbackQuery != nil:
		h.dispatchCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "":
		h.dispatchMessage(ctx, update.Message)
	}
}

func updateChatID(update *telegram.Update) (int64, bool) {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID, true
	case update.Message != nil:
		return update.Message.Chat.ID, true
	}
	return 0, false
}

func (h *Handler) dispatchMessage(ctx context.Context, msg *telegram.Message) {
	chatID := msg.Chat.ID
	h.audit.RecordInbound(ctx, chatID, senderHandle(msg.From), "message", msg)

	err := h.registry.WithChat(chatID, func(s *model.Session) error {
		return h.handleText(ctx, s, msg.Text)
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Msg("message handling failed")
	}
}

func (h *Handler) dispatchCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	h.audit.RecordInbound(ctx, chatID, senderHandle(&cb.From), "callback", cb)

	if err := h.chat.AnswerCallbackQuery(ctx, cb.ID); err != nil {
		h.logger.Warn().Err(err).Str("callback_id", cb.ID).Msg("failed to answer callback")
	}

	err := h.registry.WithChat(chatID, func(s *model.Session) error {
		return h.handleCallback(ctx, s, cb.Data)
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Msg("callback handling failed")
	}
}

func senderHandle(u *telegram.User) *string {
	if u == nil || u.Username == "" {
		return nil
	}
	return &u.Username
}

// handleText routes plain text by command first, then by dialogue state.
func (h *Handler) handleText(ctx context.Context, s *model.Session, text string) error {
	text = strings.TrimSpace(text)

	if cmd, ok := parseCommand(text); ok {
		return h.handleCommand(ctx, s, cmd)
	}

	switch text {
	case i18n.T(s.Language, "flight_tickets"):
		return h.startFlightSearch(ctx, s)
	case i18n.T(s.Language, "checklist_journey"):
		return h.startChecklist(ctx, s)
	case i18n.T(s.Language, "dest_recommend"):
		return h.startRecommendation(ctx, s)
	}

	switch s.State.Kind {
	case model.StateAwaitingFlightDetails:
		return h.handleFlightDetails(ctx, s, text)
	case model.StateAwaitingItemAdd:
		return h.handleItemAdd(ctx, s, text)
	case model.StateAwaitingItemDelete:
		return h.handleItemDelete(ctx, s, text)
	case model.StateAwaitingDestination:
		return h.handleDestination(ctx, s, text)
	}

	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "unknown_action"),
	})
	return nil
}

func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd := strings.Fields(text)[0]
	// Strip the bot-mention suffix groups append.
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	return cmd, true
}

func (h *Handler) handleCommand(ctx context.Context, s *model.Session, cmd string) error {
	switch cmd {
	case "/start":
		return h.handleStart(ctx, s)
	case "/help":
		h.send(ctx, s, telegram.SendMessageParams{
			ChatID: s.ChatID,
			Text:   i18n.T(s.Language, "help_message"),
		})
		return nil
	case "/language":
		return h.askLanguage(ctx, s)
	case "/searchflight":
		return h.startFlightSearch(ctx, s)
	case "/checklist":
		return h.startChecklist(ctx, s)
	case "/recommendations":
		return h.startRecommendation(ctx, s)
	}

	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "unknown_action"),
	})
	return nil
}

// handleCallback routes inline-button presses. A press that does not fit
// the current state is treated like any other unknown input.
func (h *Handler) handleCallback(ctx context.Context, s *model.Session, data string) error {
	if lang, ok := strings.CutPrefix(data, "lang_"); ok {
		return h.handleLanguagePick(ctx, s, model.Language(lang))
	}
	if strings.HasPrefix(data, "flight_") {
		return h.handleFlightSelection(ctx, s, data)
	}
	if name, ok := strings.CutPrefix(data, "pick_"); ok {
		return h.handleStatusPick(ctx, s, name)
	}

	switch data {
	case "show_checklist":
		return h.showChecklist(ctx, s)
	case "start_new_checklist":
		return h.startNewChecklist(ctx, s)
	case "add_item":
		return h.askItemAdd(ctx, s)
	case "delete_item":
		return h.askItemDelete(ctx, s)
	case "update_status":
		return h.askStatusItem(ctx, s)
	case "keep_as_is":
		return h.keepChecklist(ctx, s)
	case "done":
		return h.handleStatusConfirm(ctx, s, model.ItemStatusDone)
	case "not_done":
		return h.handleStatusConfirm(ctx, s, model.ItemStatusPending)
	}

	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "unknown_action"),
	})
	return nil
}

// send delivers a message and audits the attempt. Delivery failures are
// logged; the dialogue state change that preceded them stands.
func (h *Handler) send(ctx context.Context, s *model.Session, params telegram.SendMessageParams) *telegram.Message {
	msg, err := h.chat.SendMessage(ctx, params)
	h.audit.RecordOutbound(ctx, params.ChatID, "sendMessage", params, err)
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", params.ChatID).Msg("send failed")
	}
	return msg
}

// failDialogue applies the non-validation error policy: log, tell the
// user something generic and reset the dialogue to idle.
func (h *Handler) failDialogue(ctx context.Context, s *model.Session, err error, userKey string) error {
	h.logger.Error().Err(err).Int64("chat_id", s.ChatID).
		Str("code", string(apperrors.GetCode(err))).Msg("dialogue step failed")
	s.State = model.Idle()
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, userKey),
	})
	return nil
}
