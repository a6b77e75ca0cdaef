package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/infra/http/middleware"
)

func NewEmailSender(host string, port int, user, password, from, adminEmail, bookingURL string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		AdminEmail: adminEmail,
		BookingURL: bookingURL,
	}
}

// SendAuditReport delivers the full audit to the requester. The PSI
// section renders only when metrics were actually collected.
func (s *EmailSender) SendAuditReport(to, url string, analysis *entity.AIAnalysis, psi *entity.PageSpeedMetrics) error {
	data := auditReportData{
		URL:      url,
		Analysis: analysis,
		PSI:      psi,
	}
	if psi != nil {
		data.PerfColor = perfColor(psi.Performance)
	}

	subject := fmt.Sprintf("🚀 Váš AI Audit Report pre %s", url)
	return s.send(to, subject, auditReportTmpl, data)
}

func (s *EmailSender) SendAdminLeadAlert(lead *entity.Lead, q *entity.Qualification) error {
	data := adminAlertData{
		Lead:   lead,
		Status: strings.ToUpper(lead.Status),
		Reason: q.Reason,
	}

	subject := fmt.Sprintf("🎯 Nový Lead (%s): %s", data.Status, lead.Email)
	return s.send(s.AdminEmail, subject, adminAlertTmpl, data)
}

func (s *EmailSender) SendClientQualified(lead *entity.Lead, q *entity.Qualification) error {
	data := clientQualifiedData{
		Interest:   lead.Interest,
		Reason:     q.Reason,
		BookingURL: s.BookingURL,
	}
	return s.send(lead.Email, "Výsledok analýzy: Kvalifikovaný pre spoluprácu", clientQualifiedTmpl, data)
}

func (s *EmailSender) SendClientDisqualified(lead *entity.Lead) error {
	data := clientDisqualifiedData{Interest: lead.Interest}
	return s.send(lead.Email, "Potvrdenie prijatia správy", clientDisqualifiedTmpl, data)
}

// send builds and delivers one message. No retries: a failed send is
// terminal for that message and reported upward as a plain error.
func (s *EmailSender) send(to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("email template failed: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		middleware.RecordNotificationFailure(tmpl.Name())
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

func perfColor(score int) string {
	switch {
	case score >= 90:
		return "#16a34a"
	case score >= 50:
		return "#ca8a04"
	default:
		return "#dc2626"
	}
}
