package handler

import (
	"context"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/i18n"
	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/telegram"
)

func (h *Handler) startChecklist(ctx context.Context, s *model.Session) error {
	s.State = model.State(model.StateAwaitingChecklistChoice)
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "checklist_prompt"),
		ReplyMarkup: telegram.InlineRows(
			telegram.InlineKeyboardButton{Text: i18n.T(s.Language, "show_checklist"), CallbackData: "show_checklist"},
			telegram.InlineKeyboardButton{Text: i18n.T(s.Language, "start_checklist"), CallbackData: "start_new_checklist"},
		),
	})
	return nil
}

// sendChecklist renders the list followed by the modification keyboard.
func (h *Handler) sendChecklist(ctx context.Context, s *model.Session, list *model.Checklist) {
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   formatChecklist(s.Language, list),
	})
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "modify_checklist_prompt"),
		ReplyMarkup: telegram.InlineRows(
			telegram.InlineKeyboardButton{Text: i18n.T(s.Language, "add"), CallbackData: "add_item"},
			telegram.InlineKeyboardButton{Text: i18n.T(s.Language, "delete"), CallbackData: "delete_item"},
			telegram.InlineKeyboardButton{Text: i18n.T(s.Language, "update"), CallbackData: "update_status"},
			telegram.InlineKeyboardButton{Text: i18n.T(s.Language, "keep_as_is"), CallbackData: "keep_as_is"},
		),
	})
	s.State = model.State(model.StateAwaitingChecklistChoice)
}

func (h *Handler) showChecklist(ctx context.Context, s *model.Session) error {
	list, err := h.checklists.GetOrCreate(ctx, s.ChatID, s.Language)
	if err != nil {
		return h.failDialogue(ctx, s, err, "unexpected_error")
	}
	h.sendChecklist(ctx, s, list)
	return nil
}

func (h *Handler) startNewChecklist(ctx context.Context, s *model.Session) error {
	list, err := h.checklists.StartNew(ctx, s.ChatID, s.Language)
	if err != nil {
		return h.failDialogue(ctx, s, err, "unexpected_error")
	}
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "confirm_new_checklist"),
	})
	h.sendChecklist(ctx, s, list)
	return nil
}

func (h *Handler) askItemAdd(ctx context.Context, s *model.Session) error {
	s.State = model.State(model.StateAwaitingItemAdd)
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "send_item_add"),
	})
	return nil
}

func (h *Handler) askItemDelete(ctx context.Context, s *model.Session) error {
	s.State = model.State(model.StateAwaitingItemDelete)
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "send_item_delete"),
	})
	return nil
}

func (h *Handler) handleItemAdd(ctx context.Context, s *model.Session, text string) error {
	if err := h.checklists.AddItem(ctx, s.ChatID, text); err != nil {
		if apperrors.IsValidation(err) {
			h.send(ctx, s, telegram.SendMessageParams{
				ChatID: s.ChatID,
				Text:   i18n.T(s.Language, "specify_item_add"),
			})
			return nil
		}
		return h.failDialogue(ctx, s, err, "unexpected_error")
	}
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "item_added") + ": " + text,
	})
	return h.showChecklist(ctx, s)
}

func (h *Handler) handleItemDelete(ctx context.Context, s *model.Session, text string) error {
	if err := h.checklists.RemoveItem(ctx, s.ChatID, text); err != nil {
		if apperrors.IsValidation(err) {
			h.send(ctx, s, telegram.SendMessageParams{
				ChatID: s.ChatID,
				Text:   i18n.T(s.Language, "specify_item_delete"),
			})
			return nil
		}
		return h.failDialogue(ctx, s, err, "unexpected_error")
	}
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "item_removed") + ": " + text,
	})
	return h.showChecklist(ctx, s)
}

// askStatusItem offers one button per current item.
func (h *Handler) askStatusItem(ctx context.Context, s *model.Session) error {
	list, err := h.checklists.GetOrCreate(ctx, s.ChatID, s.Language)
	if err != nil {
		return h.failDialogue(ctx, s, err, "unexpected_error")
	}

	buttons := make([]telegram.InlineKeyboardButton, 0, len(list.Items))
	for _, item := range list.Items {
		buttons = append(buttons, telegram.InlineKeyboardButton{
			Text:         item.Name,
			CallbackData: "pick_" + item.Name,
		})
	}

	s.State = model.State(model.StateAwaitingStatusPick)
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID:      s.ChatID,
		Text:        i18n.T(s.Language, "select_item_update"),
		ReplyMarkup: telegram.InlineRows(buttons...),
	})
	return nil
}

func (h *Handler) handleStatusPick(ctx context.Context, s *model.Session, name string) error {
	s.State = model.AwaitingStatusConfirm(name)
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "change_item_status"),
		ReplyMarkup: telegram.InlineRows(
			telegram.InlineKeyboardButton{Text: i18n.T(s.Language, "mark_done"), CallbackData: "done"},
			telegram.InlineKeyboardButton{Text: i18n.T(s.Language, "mark_not_done"), CallbackData: "not_done"},
		),
	})
	return nil
}

// handleStatusConfirm applies the picked status to the item carried by
// the confirm state. A press outside that state has no item to act on.
func (h *Handler) handleStatusConfirm(ctx context.Context, s *model.Session, status model.ItemStatus) error {
	if s.State.Kind != model.StateAwaitingStatusConfirm || s.State.ItemName == "" {
		h.send(ctx, s, telegram.SendMessageParams{
			ChatID: s.ChatID,
			Text:   i18n.T(s.Language, "unknown_action"),
		})
		return nil
	}
	name := s.State.ItemName

	if err := h.checklists.SetStatus(ctx, s.ChatID, name, status); err != nil {
		return h.failDialogue(ctx, s, err, "unexpected_error")
	}

	key := "item_marked_done"
	if status == model.ItemStatusPending {
		key = "item_marked_not_done"
	}
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, key) + " " + name,
	})
	return h.showChecklist(ctx, s)
}

func (h *Handler) keepChecklist(ctx context.Context, s *model.Session) error {
	s.State = model.Idle()
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "checklist_unchanged"),
	})
	return nil
}
