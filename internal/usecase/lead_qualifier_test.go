package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/usecase"
)

// TestQualifyShortMessageSkipsModel - informativeness fast path
func TestQualifyShortMessageSkipsModel(t *testing.T) {
	mockModel := new(MockTextModel)
	qualifier := usecase.NewLeadQualifier(mockModel)

	q, err := qualifier.Qualify(context.Background(), "  hi ")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusDisqualified, q.Status)
	assert.Equal(t, "Message too short or empty", q.Reason)
	mockModel.AssertNotCalled(t, "GenerateJSON", mock.Anything, mock.Anything)
}

// TestQualifyQualifiedVerdict
func TestQualifyQualifiedVerdict(t *testing.T) {
	mockModel := new(MockTextModel)
	mockModel.On("GenerateJSON", mock.Anything, mock.Anything).
		Return(`{"status": "qualified", "reason": "Concrete automation pain point from a business owner."}`, nil)

	qualifier := usecase.NewLeadQualifier(mockModel)

	q, err := qualifier.Qualify(context.Background(), "We spend 20 hours a week on manual invoicing, can you automate it?")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusQualified, q.Status)
	assert.NotEmpty(t, q.Reason)
}

// TestQualifyStripsMarkdownFences - models wrap JSON despite instructions
func TestQualifyStripsMarkdownFences(t *testing.T) {
	mockModel := new(MockTextModel)
	mockModel.On("GenerateJSON", mock.Anything, mock.Anything).
		Return("```json\n{\"status\": \"DISQUALIFIED\", \"reason\": \"Job application, not a prospect.\"}\n```", nil)

	qualifier := usecase.NewLeadQualifier(mockModel)

	q, err := qualifier.Qualify(context.Background(), "I am looking for a developer position at your company")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusDisqualified, q.Status)
}

// TestQualifyModelErrorIsSurfaced - never invent a verdict
func TestQualifyModelErrorIsSurfaced(t *testing.T) {
	mockModel := new(MockTextModel)
	mockModel.On("GenerateJSON", mock.Anything, mock.Anything).Return("", assert.AnError)

	qualifier := usecase.NewLeadQualifier(mockModel)

	q, err := qualifier.Qualify(context.Background(), "We need help automating our warehouse workflows")

	assert.Error(t, err)
	assert.Nil(t, q)
}

// TestQualifyUnknownStatusIsRejected
func TestQualifyUnknownStatusIsRejected(t *testing.T) {
	mockModel := new(MockTextModel)
	mockModel.On("GenerateJSON", mock.Anything, mock.Anything).
		Return(`{"status": "maybe", "reason": "Hard to tell."}`, nil)

	qualifier := usecase.NewLeadQualifier(mockModel)

	q, err := qualifier.Qualify(context.Background(), "We need help automating our warehouse workflows")

	assert.Error(t, err)
	assert.Nil(t, q)
}

// TestQualifyEmptyReasonGetsDefault
func TestQualifyEmptyReasonGetsDefault(t *testing.T) {
	mockModel := new(MockTextModel)
	mockModel.On("GenerateJSON", mock.Anything, mock.Anything).
		Return(`{"status": "qualified", "reason": ""}`, nil)

	qualifier := usecase.NewLeadQualifier(mockModel)

	q, err := qualifier.Qualify(context.Background(), "We need help automating our warehouse workflows")

	assert.NoError(t, err)
	assert.Equal(t, "No reason provided", q.Reason)
}
