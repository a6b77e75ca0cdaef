package usecase

// Error codes surfaced to HTTP handlers.
const (
	CodeMissingInput        = "MISSING_INPUT"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeTargetUnreachable   = "AUDIT_TARGET_UNREACHABLE"
	CodeLeadNotFound        = "LEAD_NOT_FOUND"
	CodeQualificationFailed = "QUALIFICATION_FAILED"
	CodeDatabaseError       = "DATABASE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
