package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/infra/integration/gemini"
)

// MockConversationModel
type MockConversationModel struct {
	mock.Mock
}

func (m *MockConversationModel) NextTurn(ctx context.Context, system string, history []gemini.ChatMessage) (*gemini.TurnResult, error) {
	args := m.Called(ctx, system, history)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gemini.TurnResult), args.Error(1)
}

func (m *MockConversationModel) ToolResult(ctx context.Context, system string, history []gemini.ChatMessage, call *gemini.LeadToolCall, outcome string) (*gemini.TurnResult, error) {
	args := m.Called(ctx, system, history, call, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gemini.TurnResult), args.Error(1)
}

// MockMessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Save(ctx context.Context, msg *entity.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) SaveBatch(ctx context.Context, msgs []*entity.ChatMessage) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateQualification(ctx context.Context, id string, status string, q *entity.Qualification) error {
	args := m.Called(ctx, id, status, q)
	return args.Error(0)
}

// MockTextModel
type MockTextModel struct {
	mock.Mock
}

func (m *MockTextModel) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextModel) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockContentCollector
type MockContentCollector struct {
	mock.Mock
}

func (m *MockContentCollector) Collect(ctx context.Context, rawURL string) string {
	args := m.Called(ctx, rawURL)
	return args.String(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAuditReport(to, url string, analysis *entity.AIAnalysis, psi *entity.PageSpeedMetrics) error {
	args := m.Called(to, url, analysis, psi)
	return args.Error(0)
}

func (m *MockEmailService) SendAdminLeadAlert(lead *entity.Lead, q *entity.Qualification) error {
	args := m.Called(lead, q)
	return args.Error(0)
}

func (m *MockEmailService) SendClientQualified(lead *entity.Lead, q *entity.Qualification) error {
	args := m.Called(lead, q)
	return args.Error(0)
}

func (m *MockEmailService) SendClientDisqualified(lead *entity.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}
