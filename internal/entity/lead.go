package entity

import (
	"context"
	"time"
)

// Lead lifecycle statuses. The pipeline only ever sets the first four;
// contacted/lost are reserved for a human operator on the dashboard.
const (
	StatusNew          = "new"
	StatusProcessing   = "processing"
	StatusQualified    = "qualified"
	StatusDisqualified = "disqualified"
	StatusContacted    = "contacted"
	StatusLost         = "lost"
)

// Qualification is the AI verdict attached to a lead. Status is
// qualified or disqualified for a completed verdict; when the model was
// unavailable it holds "processing" with a pending reason so the lead is
// never mis-classified by a guess.
type Qualification struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type Lead struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Name          string         `json:"name,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Company       string         `json:"company,omitempty"`
	Interest      string         `json:"interest,omitempty"`
	Status        string         `json:"status"`
	Qualification *Qualification `json:"qualification,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type LeadRepositoryInterface interface {
	// Upsert inserts or updates by email (the natural idempotency key).
	Upsert(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context) ([]*Lead, error)
	UpdateQualification(ctx context.Context, id string, status string, q *Qualification) error
}
