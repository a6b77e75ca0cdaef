package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mstancik/leadgen-backend/internal/entity"
)

// minInterestLength is the informativeness threshold below which a
// message cannot possibly be qualified; the model call is skipped.
const minInterestLength = 5

const reasonTooShort = "Message too short or empty"

type LeadQualifier struct {
	Model TextCompletionModel
}

func NewLeadQualifier(model TextCompletionModel) *LeadQualifier {
	return &LeadQualifier{Model: model}
}

// Qualify classifies an interest text as qualified or disqualified with a
// one-sentence reason. A model failure is returned as-is: inventing a
// verdict here would silently mis-classify leads, so the caller decides
// what a pending lead looks like.
func (q *LeadQualifier) Qualify(ctx context.Context, interest string) (*entity.Qualification, error) {
	if len(strings.TrimSpace(interest)) < minInterestLength {
		return &entity.Qualification{
			Status: entity.StatusDisqualified,
			Reason: reasonTooShort,
		}, nil
	}

	prompt := fmt.Sprintf(`You are a lead qualification assistant for an AI automation consultancy.
Classify the following inquiry.

QUALIFIED: business owner, concrete pain point, explicit automation or cost-saving ask.
DISQUALIFIED: spam, job seeking, vague greeting, generic marketing.

Inquiry: "%s"

Output strictly valid JSON (no markdown):
{ "status": "qualified"|"disqualified", "reason": string (one sentence) }`, interest)

	raw, err := q.Model.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("qualification model call failed: %w", err)
	}

	var result entity.Qualification
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("qualification response not parseable: %w", err)
	}

	result.Status = strings.ToLower(strings.TrimSpace(result.Status))
	if result.Status != entity.StatusQualified && result.Status != entity.StatusDisqualified {
		return nil, fmt.Errorf("qualification returned unknown status %q", result.Status)
	}
	if result.Reason == "" {
		result.Reason = "No reason provided"
	}

	return &result, nil
}
