package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/traveldesk/travelbot/internal/model"
	"github.com/traveldesk/travelbot/internal/repository"
)

// AuditService records chat traffic for retention-bounded inspection.
// Recording failures are logged, never surfaced: the dialogue must not
// break because the audit store is down.
type AuditService struct {
	repo   repository.MessageRepository
	logger zerolog.Logger
}

func NewAuditService(repo repository.MessageRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{
		repo:   repo,
		logger: logger.With().Str("component", "audit").Logger(),
	}
}

func (s *AuditService) RecordInbound(ctx context.Context, chatID int64, senderHandle *string, kind string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to marshal inbound payload")
		return
	}
	_, err = s.repo.CreateInbound(ctx, model.CreateInboundMessageParams{
		ChatID:       chatID,
		SenderHandle: senderHandle,
		Kind:         kind,
		Payload:      raw,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to record inbound message")
	}
}

func (s *AuditService) RecordOutbound(ctx context.Context, chatID int64, operation string, payload any, sendErr error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to marshal outbound payload")
		return
	}
	params := model.CreateOutboundMessageParams{
		ChatID:    chatID,
		Operation: operation,
		Payload:   raw,
		Status:    model.OutboundStatusSent,
	}
	if sendErr != nil {
		params.Status = model.OutboundStatusFailed
		msg := sendErr.Error()
		params.ErrorMessage = &msg
	}
	if _, err := s.repo.CreateOutbound(ctx, params); err != nil {
		s.logger.Error().Err(err).Int64("chat_id", chatID).Msg("failed to record outbound message")
	}
}
