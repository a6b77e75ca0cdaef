package entity

import (
	"context"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one side of a completed chat turn. Append-only,
// grouped by session and ordered by created_at.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Tokens    int       `json:"tokens"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageRepositoryInterface interface {
	Save(ctx context.Context, msg *ChatMessage) error
	SaveBatch(ctx context.Context, msgs []*ChatMessage) error
}
