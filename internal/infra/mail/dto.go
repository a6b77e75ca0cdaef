package mail

import "github.com/mstancik/leadgen-backend/internal/entity"

type EmailSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	AdminEmail string
	BookingURL string
}

type auditReportData struct {
	URL       string
	Analysis  *entity.AIAnalysis
	PSI       *entity.PageSpeedMetrics
	PerfColor string
}

type adminAlertData struct {
	Lead   *entity.Lead
	Status string
	Reason string
}

type clientQualifiedData struct {
	Interest   string
	Reason     string
	BookingURL string
}

type clientDisqualifiedData struct {
	Interest string
}
