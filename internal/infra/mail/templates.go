package mail

import "html/template"

// User-facing copy is Slovak by design; the site serves a Slovak market.

var auditReportTmpl = template.Must(template.New("audit-report").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #1e293b;">
  <h1 style="color: #4f46e5;">AI Audit Report: {{.URL}}</h1>

  <div style="background: #f8fafc; padding: 20px; border-radius: 12px; margin: 20px 0;">
    <h2 style="margin-top: 0;">AI Readiness Score: <span style="color: #4f46e5; font-size: 1.5em;">{{.Analysis.Score}}/100</span></h2>
    <p><strong>Odvetvie:</strong> {{.Analysis.Industry}}</p>
    <p>{{.Analysis.Summary}}</p>
  </div>

  {{if .PSI}}
  <div style="background: #eef2ff; padding: 20px; border-radius: 12px; margin: 20px 0; border: 1px solid #c7d2fe;">
    <h3 style="margin-top: 0; color: #3730a3;">⚡ Rýchlosť webu (Mobile)</h3>
    <p style="font-size: 2em; font-weight: bold; margin: 10px 0; color: {{.PerfColor}}">{{.PSI.Performance}}/100</p>
    <ul style="padding-left: 20px; color: #4338ca;">
      <li>First Contentful Paint: <strong>{{.PSI.FCP}}</strong></li>
      <li>Largest Contentful Paint: <strong>{{.PSI.LCP}}</strong></li>
    </ul>
  </div>
  {{end}}

  <h3>🚀 Príležitosti na automatizáciu</h3>
  {{range .Analysis.Opportunities}}
  <div style="border-left: 4px solid #4f46e5; padding-left: 15px; margin-bottom: 20px;">
    <h4 style="margin: 0; color: #1e293b;">{{.Title}}</h4>
    <p style="margin: 5px 0 0; color: #475569;">{{.Description}}</p>
    <small style="color: #64748b;">Impact: {{.Impact}}</small>
  </div>
  {{end}}

  <hr style="margin: 40px 0; border: none; border-top: 1px solid #e2e8f0;" />

  <p style="text-align: center; color: #64748b; font-size: 12px;">
    Generated by Marian Stancik AI Agent.<br/>
    <a href="mailto:marian@stancik.ai">Odpovedať na tento email</a>
  </p>
</div>
`))

var adminAlertTmpl = template.Must(template.New("admin-new-lead-alert").Parse(`
<h1>Nový Lead - {{.Status}}</h1>
<p><strong>Email:</strong> {{.Lead.Email}}</p>
<p><strong>Status:</strong> {{.Lead.Status}}</p>
<p><strong>Záujem:</strong> {{.Lead.Interest}}</p>
<p><strong>AI Dôvod:</strong> {{.Reason}}</p>
<hr />
<p><strong>Meno:</strong> {{if .Lead.Name}}{{.Lead.Name}}{{else}}Nezadané{{end}}</p>
<p><strong>Telefón:</strong> {{if .Lead.Phone}}{{.Lead.Phone}}{{else}}Nezadané{{end}}</p>
<p><strong>Firma:</strong> {{if .Lead.Company}}{{.Lead.Company}}{{else}}Nezadané{{end}}</p>
`))

var clientQualifiedTmpl = template.Must(template.New("client-qualified").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>Dobrý deň,</h1>
  <p>Naša AI analyzovala vašu situáciu: <em>"{{.Interest}}"</em></p>
  <p><strong>Výsledok: Kvalifikovaný</strong> - {{.Reason}}</p>
  <p><a href="{{.BookingURL}}">Rezervovať Termín</a></p>
</div>
`))

var clientDisqualifiedTmpl = template.Must(template.New("client-disqualified").Parse(`
<p>Ďakujem za správu.</p>
<p>Analyzovali sme váš vstup: <em>"{{.Interest}}"</em></p>
`))
