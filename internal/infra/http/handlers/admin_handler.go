package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/usecase"
)

type AdminHandler struct {
	Leads     entity.LeadRepositoryInterface
	Requalify *usecase.RequalifyLeadUseCase
	Secret    string
}

func NewAdminHandler(leads entity.LeadRepositoryInterface, requalify *usecase.RequalifyLeadUseCase, secret string) *AdminHandler {
	return &AdminHandler{
		Leads:     leads,
		Requalify: requalify,
		Secret:    secret,
	}
}

var spacesRe = regexp.MustCompile(`\s+`)

// authorized does a whitespace-lenient shared-secret check; dashboards
// paste keys with stray spaces all the time.
func (h *AdminHandler) authorized(r *http.Request) bool {
	key := r.URL.Query().Get("key")
	if key == "" {
		return false
	}
	return spacesRe.ReplaceAllString(key, "") == spacesRe.ReplaceAllString(h.Secret, "")
}

func (h *AdminHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, chatErrorResponse{Error: "Unauthorized"})
		return
	}

	leads, err := h.Leads.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: "Failed to fetch leads"})
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, struct {
		Leads []*entity.Lead `json:"leads"`
	}{Leads: leads})
}

type QualifyRequest struct {
	LeadID string `json:"lead_id"`
}

// HandleQualify re-runs qualification for one lead. Failure is reported
// distinctly so the dashboard flags the action instead of silently
// showing stale data.
func (h *AdminHandler) HandleQualify(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, chatErrorResponse{Error: "Unauthorized"})
		return
	}

	var req QualifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LeadID == "" {
		writeJSON(w, http.StatusBadRequest, chatErrorResponse{Error: "lead_id is required"})
		return
	}

	output, err := h.Requalify.Execute(r.Context(), req.LeadID)
	if err != nil {
		if de, ok := err.(*usecase.DomainError); ok && de.Code == usecase.CodeLeadNotFound {
			writeJSON(w, http.StatusNotFound, chatErrorResponse{Error: "Lead not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, output)
}
