package usecase

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/entity"
)

func NewRunAuditUseCase(
	collector ContentCollector,
	scorer SpeedScorer,
	insights *InsightGenerator,
	emailService EmailService,
) *RunAuditUseCase {
	return &RunAuditUseCase{
		Collector:    collector,
		Scorer:       scorer,
		Insights:     insights,
		EmailService: emailService,
	}
}

type RunAuditUseCase struct {
	Collector    ContentCollector
	Scorer       SpeedScorer
	Insights     *InsightGenerator
	EmailService EmailService
}

// Execute runs the audit pipeline: collect page text, enrich with the AI
// analysis and the PageSpeed score in parallel, email the full report and
// hand a teaser back to the caller. Only an unreachable target is fatal.
func (uc *RunAuditUseCase) Execute(ctx context.Context, input RunAuditInput) (*RunAuditOutput, error) {
	if validationErrors := ValidateRunAuditInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeMissingInput,
			Message: joinValidationErrors(validationErrors),
		}
	}

	// collecting
	content := uc.Collector.Collect(ctx, input.URL)
	if content == "" {
		return nil, &DomainError{
			Code:    CodeTargetUnreachable,
			Message: "Failed to load website content.",
		}
	}

	// enriching: AI analysis and PageSpeed run concurrently. The scorer
	// caps itself with its own timeout and returns nil on any failure,
	// so the join never outlives the slower of the two.
	var (
		analysis *entity.AIAnalysis
		psi      *entity.PageSpeedMetrics
		wg       sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		analysis = uc.Insights.Analyze(ctx, content, input.URL)
	}()

	if uc.Scorer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			psi = uc.Scorer.Audit(ctx, input.URL)
		}()
	}
	wg.Wait()

	// notifying: a failed send does not undo the audit, the caller gets
	// the teaser in-band either way.
	if err := uc.EmailService.SendAuditReport(input.Email, input.URL, analysis, psi); err != nil {
		logrus.WithFields(logrus.Fields{
			"url":   input.URL,
			"email": input.Email,
		}).Errorf("audit report email failed: %v", err)
	}

	teaser := "Optimization Opportunity Found"
	if len(analysis.Opportunities) > 0 && analysis.Opportunities[0].Title != "" {
		teaser = analysis.Opportunities[0].Title
	}

	return &RunAuditOutput{
		Success: true,
		Score:   analysis.Score,
		Teaser:  teaser,
	}, nil
}
