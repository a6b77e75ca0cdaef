package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/usecase"
)

// TestRequalifyOverwritesVerdict
func TestRequalifyOverwritesVerdict(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockEmail := new(MockEmailService)

	lead := &entity.Lead{
		ID:       "lead-123",
		Email:    "jan@example.sk",
		Interest: "We want to automate our invoicing workflows.",
		Status:   entity.StatusProcessing,
	}

	mockRepo.On("FindByID", mock.Anything, "lead-123").Return(lead, nil)
	mockRepo.On("UpdateQualification", mock.Anything, "lead-123", entity.StatusQualified, mock.Anything).Return(nil)
	mockEmail.On("SendAdminLeadAlert", mock.Anything, mock.Anything).Return(nil)
	mockEmail.On("SendClientQualified", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewRequalifyLeadUseCase(mockRepo, usecase.NewLeadQualifier(qualifiedModel()), mockEmail)

	out, err := uc.Execute(context.Background(), "lead-123")

	assert.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, entity.StatusQualified, out.Status)
	assert.NotNil(t, out.Result)
	mockRepo.AssertExpectations(t)
	mockEmail.AssertExpectations(t)
}

// TestRequalifyUnknownLead
func TestRequalifyUnknownLead(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, assert.AnError)

	uc := usecase.NewRequalifyLeadUseCase(mockRepo, usecase.NewLeadQualifier(new(MockTextModel)), nil)

	out, err := uc.Execute(context.Background(), "missing")

	assert.Nil(t, out)
	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeLeadNotFound, domainErr.Code)
}

// TestRequalifyModelFailureIsSurfaced - unlike intake, stale data is flagged
func TestRequalifyModelFailureIsSurfaced(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockModel := new(MockTextModel)
	mockModel.On("GenerateJSON", mock.Anything, mock.Anything).Return("", assert.AnError)

	lead := &entity.Lead{
		ID:       "lead-123",
		Email:    "jan@example.sk",
		Interest: "We want to automate our invoicing workflows.",
	}
	mockRepo.On("FindByID", mock.Anything, "lead-123").Return(lead, nil)

	uc := usecase.NewRequalifyLeadUseCase(mockRepo, usecase.NewLeadQualifier(mockModel), nil)

	out, err := uc.Execute(context.Background(), "lead-123")

	assert.Nil(t, out)
	techErr, ok := err.(*usecase.TechnicalError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeQualificationFailed, techErr.Code)
	mockRepo.AssertNotCalled(t, "UpdateQualification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestRequalifyEmptyInterestStillQualifies - placeholder text reaches the model
func TestRequalifyEmptyInterestStillQualifies(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockModel := new(MockTextModel)
	mockModel.On("GenerateJSON", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "No message provided")
	})).Return(`{"status": "disqualified", "reason": "No message to evaluate."}`, nil)

	lead := &entity.Lead{ID: "lead-123", Email: "jan@example.sk", Interest: ""}
	mockRepo.On("FindByID", mock.Anything, "lead-123").Return(lead, nil)
	mockRepo.On("UpdateQualification", mock.Anything, "lead-123", entity.StatusDisqualified, mock.Anything).Return(nil)

	uc := usecase.NewRequalifyLeadUseCase(mockRepo, usecase.NewLeadQualifier(mockModel), nil)

	out, err := uc.Execute(context.Background(), "lead-123")

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusDisqualified, out.Status)
}
