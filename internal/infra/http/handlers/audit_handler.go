package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mstancik/leadgen-backend/internal/infra/http/middleware"
	"github.com/mstancik/leadgen-backend/internal/usecase"
)

type AuditHandler struct {
	UC          *usecase.RunAuditUseCase
	rateLimiter *RateLimiter
}

func NewAuditHandler(uc *usecase.RunAuditUseCase) *AuditHandler {
	return &AuditHandler{
		UC:          uc,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

type AuditRequest struct {
	URL   string `json:"url"`
	Email string `json:"email"`
}

type AuditResponse struct {
	Success bool   `json:"success"`
	Score   int    `json:"score,omitempty"`
	Teaser  string `json:"teaser,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *AuditHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, AuditResponse{
			Success: false,
			Error:   "Too many requests. Please try again later.",
		})
		return
	}

	var req AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AuditResponse{Success: false, Error: "Invalid JSON"})
		return
	}

	output, err := h.UC.Execute(ctx, usecase.RunAuditInput{URL: req.URL, Email: req.Email})
	if err != nil {
		if de, ok := err.(*usecase.DomainError); ok {
			if de.Code == usecase.CodeMissingInput {
				writeJSON(w, http.StatusBadRequest, AuditResponse{Success: false, Error: de.Message})
				return
			}
			// Collector failure: a user-facing error, not a server fault.
			middleware.RecordAudit("failed")
			writeJSON(w, http.StatusOK, AuditResponse{Success: false, Error: de.Message})
			return
		}
		writeJSON(w, http.StatusInternalServerError, AuditResponse{Success: false, Error: "Something went wrong during the audit."})
		return
	}

	middleware.RecordAudit("done")
	writeJSON(w, http.StatusOK, AuditResponse{
		Success: true,
		Score:   output.Score,
		Teaser:  output.Teaser,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
