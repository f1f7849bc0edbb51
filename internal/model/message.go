package model

import (
	"encoding/json"
	"time"
)

// InboundMessage is one audited update from the chat transport.
type InboundMessage struct {
	ID           string          `db:"id" json:"id"`
	ChatID       int64           `db:"chat_id" json:"chatId"`
	SenderHandle *string         `db:"sender_handle" json:"senderHandle,omitempty"`
	Kind         string          `db:"kind" json:"kind"`
	Payload      json.RawMessage `db:"payload" json:"payload"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}

type CreateInboundMessageParams struct {
	ChatID       int64
	SenderHandle *string
	Kind         string
	Payload      json.RawMessage
}

// OutboundMessage is one audited send or edit toward the chat transport.
type OutboundMessage struct {
	ID           string          `db:"id" json:"id"`
	ChatID       int64           `db:"chat_id" json:"chatId"`
	Operation    string          `db:"operation" json:"operation"`
	Payload      json.RawMessage `db:"payload" json:"payload"`
	Status       OutboundStatus  `db:"status" json:"status"`
	ErrorMessage *string         `db:"error_message" json:"errorMessage,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}

type CreateOutboundMessageParams struct {
	ChatID       int64
	Operation    string
	Payload      json.RawMessage
	Status       OutboundStatus
	ErrorMessage *string
}
