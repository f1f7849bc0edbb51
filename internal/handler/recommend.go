package handler

import (
	"context"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/i18n"
	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/telegram"
)

func (h *Handler) startRecommendation(ctx context.Context, s *model.Session) error {
	s.State = model.State(model.StateAwaitingDestination)
	h.send(ctx, s, telegram.SendMessageParams{
		ChatID: s.ChatID,
		Text:   i18n.T(s.Language, "ask_destination"),
	})
	return nil
}

// handleDestination hands the destination to the recommender, which
// replies through its own placeholder message. The dialogue is free
// again as soon as the offload is accepted.
func (h *Handler) handleDestination(ctx context.Context, s *model.Session, text string) error {
	if err := h.recommender.Recommend(ctx, s.ChatID, text, s.Language); err != nil {
		if apperrors.IsValidation(err) {
			h.send(ctx, s, telegram.SendMessageParams{
				ChatID: s.ChatID,
				Text:   i18n.T(s.Language, "invalid_destination"),
			})
			return nil
		}
		return h.failDialogue(ctx, s, err, "unexpected_error")
	}
	s.State = model.Idle()
	return nil
}
