package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mstancik/leadgen-backend/internal/usecase"
)

type ChatHandler struct {
	Agent *usecase.ChatAgentUseCase
}

func NewChatHandler(agent *usecase.ChatAgentUseCase) *ChatHandler {
	return &ChatHandler{Agent: agent}
}

type chatErrorResponse struct {
	Error string `json:"error"`
}

func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChatTurnInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, chatErrorResponse{Error: "Invalid JSON"})
		return
	}

	// First turn of a fresh browser session arrives without an id.
	if input.SessionID == "" {
		input.SessionID = uuid.New().String()
	}

	output, err := h.Agent.HandleTurn(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, chatErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		SessionID    string `json:"session_id"`
		Reply        string `json:"reply"`
		LeadCaptured bool   `json:"lead_captured"`
	}{
		SessionID:    input.SessionID,
		Reply:        output.Reply,
		LeadCaptured: output.LeadCaptured,
	})
}
