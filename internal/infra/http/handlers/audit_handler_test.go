package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mstancik/leadgen-backend/internal/infra/http/handlers"
	"github.com/mstancik/leadgen-backend/internal/usecase"
)

const handlerAnalysisJSON = `{
	"score": 65,
	"industry": "Služby",
	"summary": "Dobrý základ.",
	"opportunities": [
		{"title": "Rezervačný systém", "description": "Automatizujte booking.", "impact": "High"},
		{"title": "FAQ chatbot", "description": "Odpovede 24/7.", "impact": "Medium"},
		{"title": "Email follow-up", "description": "Automatické sekvencie.", "impact": "Medium"}
	]
}`

func newAuditHandler(collector *MockContentCollector, model *MockTextModel, email *MockEmailService) *handlers.AuditHandler {
	uc := usecase.NewRunAuditUseCase(collector, nil, usecase.NewInsightGenerator(model), email)
	return handlers.NewAuditHandler(uc)
}

// TestAuditEndpointSuccess
func TestAuditEndpointSuccess(t *testing.T) {
	mockCollector := new(MockContentCollector)
	mockModel := new(MockTextModel)
	mockEmail := new(MockEmailService)

	mockCollector.On("Collect", mock.Anything, "example.sk").Return("Poskytujeme služby pre firmy.")
	mockModel.On("GenerateJSON", mock.Anything, mock.Anything).Return(handlerAnalysisJSON, nil)
	mockEmail.On("SendAuditReport", "jan@example.sk", "example.sk", mock.Anything, mock.Anything).Return(nil)

	handler := newAuditHandler(mockCollector, mockModel, mockEmail)

	rec := postJSON(t, handler.Handle, "/api/audit", map[string]string{
		"url":   "example.sk",
		"email": "jan@example.sk",
	}, "1.2.3.4")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.AuditResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 65, resp.Score)
	assert.Equal(t, "Rezervačný systém", resp.Teaser)
}

// TestAuditEndpointMissingInput
func TestAuditEndpointMissingInput(t *testing.T) {
	handler := newAuditHandler(new(MockContentCollector), new(MockTextModel), new(MockEmailService))

	rec := postJSON(t, handler.Handle, "/api/audit", map[string]string{}, "1.2.3.4")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestAuditEndpointUnreachableTarget - user-facing failure rides a 200
func TestAuditEndpointUnreachableTarget(t *testing.T) {
	mockCollector := new(MockContentCollector)
	mockCollector.On("Collect", mock.Anything, "dead.example").Return("")

	handler := newAuditHandler(mockCollector, new(MockTextModel), new(MockEmailService))

	rec := postJSON(t, handler.Handle, "/api/audit", map[string]string{
		"url":   "dead.example",
		"email": "jan@example.sk",
	}, "1.2.3.4")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.AuditResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to load website content.", resp.Error)
}
