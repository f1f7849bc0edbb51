package repository

import (
	"context"
	"time"

	"github.com/traveldesk/travelbot/internal/database"
	"github.com/traveldesk/travelbot/internal/model"
)

type MessageRepository interface {
	CreateInbound(ctx context.Context, params model.CreateInboundMessageParams) (*model.InboundMessage, error)
	CreateOutbound(ctx context.Context, params model.CreateOutboundMessageParams) (*model.OutboundMessage, error)
	// DeleteOlderThan prunes audit rows past retention from both tables.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type messageRepo struct {
	db database.DBTX
}

func NewMessageRepository(db database.DBTX) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) CreateInbound(ctx context.Context, params model.CreateInboundMessageParams) (*model.InboundMessage, error) {
	var msg model.InboundMessage
	err := r.db.GetContext(ctx, &msg, `
		INSERT INTO inbound_messages (chat_id, sender_handle, kind, payload)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, params.ChatID, params.SenderHandle, params.Kind, params.Payload)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepo) CreateOutbound(ctx context.Context, params model.CreateOutboundMessageParams) (*model.OutboundMessage, error) {
	var msg model.OutboundMessage
	err := r.db.GetContext(ctx, &msg, `
		INSERT INTO outbound_messages (chat_id, operation, payload, status, error_message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *
	`, params.ChatID, params.Operation, params.Payload, params.Status, params.ErrorMessage)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var total int64

	result, err := r.db.ExecContext(ctx, `
		DELETE FROM inbound_messages WHERE created_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	n, _ := result.RowsAffected()
	total += n

	result, err = r.db.ExecContext(ctx, `
		DELETE FROM outbound_messages WHERE created_at < $1
	`, cutoff)
	if err != nil {
		return total, err
	}
	n, _ = result.RowsAffected()
	total += n

	return total, nil
}
