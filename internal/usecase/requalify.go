package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/entity"
)

func NewRequalifyLeadUseCase(
	repo entity.LeadRepositoryInterface,
	qualifier *LeadQualifier,
	emailService EmailService,
) *RequalifyLeadUseCase {
	return &RequalifyLeadUseCase{
		Repo:         repo,
		Qualifier:    qualifier,
		EmailService: emailService,
	}
}

type RequalifyLeadUseCase struct {
	Repo         entity.LeadRepositoryInterface
	Qualifier    *LeadQualifier
	EmailService EmailService
}

// Execute re-runs qualification for a stored lead, overwriting its prior
// verdict. Repeatable: the same model answer produces the same stored
// state. Unlike intake, a model failure here is surfaced so the dashboard
// can flag the action instead of silently keeping stale data.
func (uc *RequalifyLeadUseCase) Execute(ctx context.Context, leadID string) (*RequalifyOutput, error) {
	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil || lead == nil {
		return nil, &DomainError{
			Code:    CodeLeadNotFound,
			Message: "Lead not found",
		}
	}

	text := lead.Interest
	if text == "" {
		text = "No message provided"
	}

	qualification, err := uc.Qualifier.Qualify(ctx, text)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeQualificationFailed,
			Message: "Qualification failed: " + err.Error(),
		}
	}

	if err := uc.Repo.UpdateQualification(ctx, lead.ID, qualification.Status, qualification); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "Failed to store qualification: " + err.Error(),
		}
	}

	lead.Status = qualification.Status
	lead.Qualification = qualification

	if uc.EmailService != nil {
		if err := uc.EmailService.SendAdminLeadAlert(lead, qualification); err != nil {
			logrus.WithField("lead_id", lead.ID).Errorf("admin alert failed: %v", err)
		}
		var sendErr error
		if qualification.Status == entity.StatusQualified {
			sendErr = uc.EmailService.SendClientQualified(lead, qualification)
		} else {
			sendErr = uc.EmailService.SendClientDisqualified(lead)
		}
		if sendErr != nil {
			logrus.WithField("lead_id", lead.ID).Errorf("client email failed: %v", sendErr)
		}
	}

	return &RequalifyOutput{
		Success: true,
		Status:  qualification.Status,
		Result:  qualification,
	}, nil
}
