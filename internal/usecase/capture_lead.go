package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/infra/queue"
)

const reasonPending = "Analysis pending"

func NewCaptureLeadUseCase(
	repo entity.LeadRepositoryInterface,
	qualifier *LeadQualifier,
	emailService EmailService,
	producer QueueProducerInterface,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Repo:         repo,
		Qualifier:    qualifier,
		EmailService: emailService,
		Queue:        producer,
	}
}

type CaptureLeadUseCase struct {
	Repo         entity.LeadRepositoryInterface
	Qualifier    *LeadQualifier
	EmailService EmailService
	Queue        QueueProducerInterface
}

// Execute captures and qualifies one lead: qualify the interest text,
// upsert by email, notify admin and client, publish the lead event.
// Success reflects persistence only; notification and queue failures are
// logged and swallowed.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	// received: reject before any side effect.
	if validationErrors := ValidateCaptureLeadInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidationError,
			Message: joinValidationErrors(validationErrors),
		}
	}

	// qualifying. A model failure must not guess a verdict: the lead
	// stays at "processing" with an explicit pending marker until someone
	// (or the dashboard) re-qualifies it.
	qualification, err := uc.Qualifier.Qualify(ctx, input.Interest)
	status := ""
	if err != nil {
		logrus.WithField("email", input.Email).Warnf("qualification failed, leaving lead pending: %v", err)
		status = entity.StatusProcessing
		qualification = &entity.Qualification{Status: entity.StatusProcessing, Reason: reasonPending}
	} else {
		status = qualification.Status
	}

	lead := &entity.Lead{
		Email:         input.Email,
		Name:          input.Name,
		Phone:         input.Phone,
		Company:       input.Company,
		Interest:      input.Interest,
		Status:        status,
		Qualification: qualification,
	}

	// persisting
	if err := uc.Repo.Upsert(ctx, lead); err != nil {
		logrus.WithField("email", input.Email).Errorf("lead upsert failed: %v", err)
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "Database save failed.",
		}
	}

	// notifying: each send is isolated, one failing never blocks the other.
	uc.notify(lead, qualification)

	// Best-effort CRM sync event. Delivery is not guaranteed by design.
	if uc.Queue != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:  lead.ID,
			Email:   lead.Email,
			Name:    lead.Name,
			Phone:   lead.Phone,
			Company: lead.Company,
			Status:  lead.Status,
			Reason:  qualification.Reason,
		}
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			logrus.WithField("lead_id", lead.ID).Warnf("lead event publish failed: %v", err)
		}
	}

	return &CaptureLeadOutput{
		Success: true,
		Message: "Autonomous Loop Complete: Saved, Qualified, and Emailed.",
		Status:  lead.Status,
	}, nil
}

func (uc *CaptureLeadUseCase) notify(lead *entity.Lead, q *entity.Qualification) {
	if uc.EmailService == nil {
		return
	}

	if err := uc.EmailService.SendAdminLeadAlert(lead, q); err != nil {
		logrus.WithField("email", lead.Email).Errorf("admin alert failed: %v", err)
	}

	var err error
	if lead.Status == entity.StatusQualified {
		err = uc.EmailService.SendClientQualified(lead, q)
	} else {
		err = uc.EmailService.SendClientDisqualified(lead)
	}
	if err != nil {
		logrus.WithField("email", lead.Email).Errorf("client email failed: %v", err)
	}
}
