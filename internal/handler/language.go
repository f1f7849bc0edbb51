package handler

import (
	"context"

	"github.com/traveldesk/travelbot/internal/i18n"
	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/telegram"
)

var languageButtons = []telegram.InlineKeyboardButton{
	{Text: "English", CallbackData: "lang_en"},
	{Text: "עברית", CallbackData: "lang_he"},
	{Text: "Русский", CallbackData: "lang_ru"},
	{Text: "العربية", CallbackData: "lang_ar"},
}

func (h *Handler) handleStart(ctx context.Context, s *model.Session) error {
	s.State = model.Idle()
	return h.askLanguage(ctx, s)
}

func (h *Handler) askLanguage(ctx context.Context, s *model.Session) error {
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID:      s.ChatID,
		Text:        i18n.T(s.Language, "choose_language"),
		ReplyMarkup: telegram.InlineRows(languageButtons...),
	})
	return nil
}

// handleLanguagePick stores the locale and shows the main menu in it.
func (h *Handler) handleLanguagePick(ctx context.Context, s *model.Session, lang model.Language) error {
	if lang.Valid() {
		s.Language = lang
	}
	return h.showMainMenu(ctx, s)
}

func (h *Handler) showMainMenu(ctx context.Context, s *model.Session) error {
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "welcome_message"),
		ReplyMarkup: telegram.ReplyRows(
			i18n.T(s.Language, "flight_tickets"),
			i18n.T(s.Language, "checklist_journey"),
			i18n.T(s.Language, "dest_recommend"),
		),
	})
	return nil
}
