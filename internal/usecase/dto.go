package usecase

import "github.com/mstancik/leadgen-backend/internal/entity"

type RunAuditInput struct {
	URL   string `json:"url"`
	Email string `json:"email"`
}

type RunAuditOutput struct {
	Success bool   `json:"success"`
	Score   int    `json:"score"`
	Teaser  string `json:"teaser"`
}

type CaptureLeadInput struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Interest string `json:"interest,omitempty"`
}

type CaptureLeadOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type RequalifyOutput struct {
	Success bool                  `json:"success"`
	Status  string                `json:"status"`
	Result  *entity.Qualification `json:"result,omitempty"`
}

type ChatTurnMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatTurnInput struct {
	SessionID string            `json:"session_id"`
	Messages  []ChatTurnMessage `json:"messages"`
}

type ChatTurnOutput struct {
	Reply        string `json:"reply"`
	LeadCaptured bool   `json:"lead_captured"`
}
