package usecase

import (
	"context"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/infra/integration/gemini"
	"github.com/mstancik/leadgen-backend/internal/infra/queue"
)

// ContentCollector fetches and sanitizes a page's visible text. An empty
// string means the target was unreachable or blocked; that is not an
// error here, the orchestrator decides how fatal it is.
type ContentCollector interface {
	Collect(ctx context.Context, rawURL string) string
}

// SpeedScorer returns nil on any failure (quota, timeout, bad payload).
type SpeedScorer interface {
	Audit(ctx context.Context, rawURL string) *entity.PageSpeedMetrics
}

type TextCompletionModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateJSON constrains the model to a JSON response body.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// ConversationModel drives one assistant turn of the chat agent. A turn
// result carries either text or a saveLead tool call, never both empty.
type ConversationModel interface {
	NextTurn(ctx context.Context, system string, history []gemini.ChatMessage) (*gemini.TurnResult, error)
	ToolResult(ctx context.Context, system string, history []gemini.ChatMessage, call *gemini.LeadToolCall, outcome string) (*gemini.TurnResult, error)
}

type EmailService interface {
	SendAuditReport(to, url string, analysis *entity.AIAnalysis, psi *entity.PageSpeedMetrics) error
	SendAdminLeadAlert(lead *entity.Lead, q *entity.Qualification) error
	SendClientQualified(lead *entity.Lead, q *entity.Qualification) error
	SendClientDisqualified(lead *entity.Lead) error
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
