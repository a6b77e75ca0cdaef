package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/entity"
)

// insightPromptBudget keeps the page excerpt well inside the model's
// context window; the collector already trims to 8000 chars.
const insightPromptBudget = 4000

const expectedOpportunities = 3

type InsightGenerator struct {
	Model TextCompletionModel
}

func NewInsightGenerator(model TextCompletionModel) *InsightGenerator {
	return &InsightGenerator{Model: model}
}

// Analyze asks the model for an AI-readiness assessment of the page text.
// It never fails: any call or parse problem degrades to a fixed fallback
// so the audit can still complete and the requester still gets an email.
func (g *InsightGenerator) Analyze(ctx context.Context, text, url string) *entity.AIAnalysis {
	excerpt := truncateRunes(text, insightPromptBudget)

	prompt := fmt.Sprintf(`You are an expert AI Business Consultant.
Analyze this website text: "%s..."

Output strictly valid JSON (no markdown):
{
  "score": number (0-100),
  "industry": string (Slovak),
  "summary": string (Slovak, 2 sentences),
  "opportunities": [
    { "title": string (Slovak), "description": string (Slovak), "impact": "High"|"Medium" }
  ]
}
Generate exactly 3 opportunities.`, excerpt)

	raw, err := g.Model.GenerateJSON(ctx, prompt)
	if err != nil {
		logrus.WithField("url", url).Warnf("insight generation failed: %v", err)
		return fallbackAnalysis()
	}

	var analysis entity.AIAnalysis
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &analysis); err != nil {
		logrus.WithField("url", url).Warnf("insight response not parseable: %v", err)
		return fallbackAnalysis()
	}

	// A partial opportunity list is as useless as none; degrade instead.
	if len(analysis.Opportunities) != expectedOpportunities {
		logrus.WithField("url", url).Warnf("insight response had %d opportunities, want %d", len(analysis.Opportunities), expectedOpportunities)
		return fallbackAnalysis()
	}
	if analysis.Score < 0 {
		analysis.Score = 0
	}
	if analysis.Score > 100 {
		analysis.Score = 100
	}

	return &analysis
}

// fallbackAnalysis keeps the pipeline alive when the model is down or
// returns garbage. The requester still gets a report email.
func fallbackAnalysis() *entity.AIAnalysis {
	return &entity.AIAnalysis{
		Score:    0,
		Industry: "Neznáme",
		Summary:  "Ospravedlňujeme sa, AI momentálne nemohla analyzovať túto stránku pre vysoké zaťaženie.",
		Opportunities: []entity.Opportunity{
			{Title: "Kontaktujte nás", Description: "Pre manuálnu analýzu nám napíšte.", Impact: "High"},
		},
	}
}

// truncateRunes caps s at limit bytes without splitting a UTF-8 rune, so
// a Slovak page excerpt never ends in an invalid byte mid-prompt.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// stripJSONFences removes markdown code fences the model sometimes wraps
// around JSON despite instructions.
func stripJSONFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
