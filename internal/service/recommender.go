package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/traveldesk/travelbot/internal/errors"
	"github.com/traveldesk/travelbot/internal/i18n"
	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/telegram"
)

// RecommendationGenerator produces destination tips in the chat's locale.
type RecommendationGenerator interface {
	Recommend(ctx context.Context, destination string, lang model.Language) (string, error)
}

// Messenger is the slice of the chat client the recommender needs.
type Messenger interface {
	SendMessage(ctx context.Context, params telegram.SendMessageParams) (*telegram.Message, error)
	EditMessageText(ctx context.Context, chatID, messageID int64, text, parseMode string) error
}

// Recommender posts a placeholder message immediately and edits it in
// place once generation finishes, so a slow model never blocks webhook
// handling.
type Recommender struct {
	generator RecommendationGenerator
	messenger Messenger
	timeout   time.Duration
	logger    zerolog.Logger
}

func NewRecommender(generator RecommendationGenerator, messenger Messenger, timeout time.Duration, logger zerolog.Logger) *Recommender {
	return &Recommender{
		generator: generator,
		messenger: messenger,
		timeout:   timeout,
		logger:    logger.With().Str("component", "recommender").Logger(),
	}
}

// Recommend validates the destination, posts the placeholder and offloads
// generation to a bounded background goroutine.
func (r *Recommender) Recommend(ctx context.Context, chatID int64, destination string, lang model.Language) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return apperrors.MalformedInput("empty destination")
	}

	placeholder, err := r.messenger.SendMessage(ctx, telegram.SendMessageParams{
		ChatID: chatID,
		Text:   i18n.T(lang, "loading_recommendations"),
	})
	if err != nil {
		return err
	}

	go r.fill(chatID, placeholder.MessageID, destination, lang)
	return nil
}

func (r *Recommender) fill(chatID, messageID int64, destination string, lang model.Language) {
	// Detached from the webhook request; the timeout is the only bound.
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	text, err := r.generator.Recommend(ctx, destination, lang)
	if err != nil {
		r.logger.Error().Err(err).Int64("chat_id", chatID).Str("destination", destination).
			Msg("recommendation generation failed")
		if editErr := r.messenger.EditMessageText(ctx, chatID, messageID, i18n.T(lang, "no_recommendations"), ""); editErr != nil {
			r.logger.Error().Err(editErr).Int64("chat_id", chatID).Msg("failed to edit placeholder")
		}
		return
	}

	if err := r.messenger.EditMessageText(ctx, chatID, messageID, text, "HTML"); err != nil {
		r.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to deliver recommendation")
	}
}
