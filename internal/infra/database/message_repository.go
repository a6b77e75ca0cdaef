package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/mstancik/leadgen-backend/internal/entity"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

const insertMessageQuery = `
	INSERT INTO messages (id, session_id, role, content, tokens)
	VALUES ($1, $2, $3, $4, $5)
`

func (r *MessageRepository) Save(ctx context.Context, msg *entity.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	_, err := r.DB.ExecContext(ctx, insertMessageQuery,
		msg.ID, msg.SessionID, msg.Role, msg.Content, msg.Tokens)
	return err
}

// SaveBatch writes one turn's messages atomically so a transcript never
// ends up with a user message and no assistant reply.
func (r *MessageRepository) SaveBatch(ctx context.Context, msgs []*entity.ChatMessage) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	for _, msg := range msgs {
		if msg.ID == "" {
			msg.ID = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx, insertMessageQuery,
			msg.ID, msg.SessionID, msg.Role, msg.Content, msg.Tokens); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
