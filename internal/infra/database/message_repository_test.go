package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstancik/leadgen-backend/internal/entity"
)

// TestSaveBatchIsTransactional - a failed insert rolls the whole turn back
func TestSaveBatchIsTransactional(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO messages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO messages").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := NewMessageRepository(db)

	err = repo.SaveBatch(context.Background(), []*entity.ChatMessage{
		{SessionID: "s1", Role: entity.RoleUser, Content: "hi"},
		{SessionID: "s1", Role: entity.RoleAssistant, Content: "hello"},
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSaveBatchCommitsBothSides
func TestSaveBatchCommitsBothSides(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO messages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO messages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewMessageRepository(db)

	msgs := []*entity.ChatMessage{
		{SessionID: "s1", Role: entity.RoleUser, Content: "hi", Tokens: 10},
		{SessionID: "s1", Role: entity.RoleAssistant, Content: "hello", Tokens: 4},
	}
	err = repo.SaveBatch(context.Background(), msgs)

	assert.NoError(t, err)
	assert.NotEmpty(t, msgs[0].ID)
	assert.NotEmpty(t, msgs[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSaveSingleMessage
func TestSaveSingleMessage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO messages").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMessageRepository(db)

	msg := &entity.ChatMessage{SessionID: "s1", Role: entity.RoleUser, Content: "hi"}
	err = repo.Save(context.Background(), msg)

	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
}
