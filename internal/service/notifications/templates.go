package notifications

import (
	"bytes"
	"fmt"
	"html/template"
)

// mailData данные, доступные всем шаблонам писем
type mailData struct {
	ClinicName   string
	PatientName  string
	ServiceName  string
	Date         string
	TimeSlot     string
	Price        float64
	PatientEmail string
	PatientPhone string
	Notes        string
	FirstVisit   bool

	// Поля формы обратной связи
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

var adminBookingTemplate = template.Must(template.New("adminBooking").Parse(`
<h2>Neue Terminanfrage</h2>
<p>Über das Buchungsformular ist eine neue Terminanfrage eingegangen:</p>
<table cellpadding="4">
  <tr><td><b>Patient</b></td><td>{{.PatientName}}</td></tr>
  <tr><td><b>E-Mail</b></td><td>{{.PatientEmail}}</td></tr>
  <tr><td><b>Telefon</b></td><td>{{.PatientPhone}}</td></tr>
  <tr><td><b>Behandlung</b></td><td>{{.ServiceName}}</td></tr>
  <tr><td><b>Datum</b></td><td>{{.Date}}</td></tr>
  <tr><td><b>Uhrzeit</b></td><td>{{.TimeSlot}}</td></tr>
  <tr><td><b>Preis</b></td><td>{{printf "%.2f" .Price}} €</td></tr>
  {{if .FirstVisit}}<tr><td><b>Erstbesuch</b></td><td>ja</td></tr>{{end}}
  {{if .Notes}}<tr><td><b>Anmerkungen</b></td><td>{{.Notes}}</td></tr>{{end}}
</table>
<p>Der Termin wartet auf Bestätigung.</p>
`))

var patientAckTemplate = template.Must(template.New("patientAck").Parse(`
<h2>Ihre Terminanfrage bei {{.ClinicName}}</h2>
<p>Guten Tag {{.PatientName}},</p>
<p>vielen Dank für Ihre Terminanfrage. Wir haben folgende Daten erhalten:</p>
<ul>
  <li><b>Behandlung:</b> {{.ServiceName}}</li>
  <li><b>Datum:</b> {{.Date}}</li>
  <li><b>Uhrzeit:</b> {{.TimeSlot}}</li>
</ul>
<p>Ihr Termin ist noch nicht bestätigt. Sie erhalten eine separate
Bestätigung, sobald unser Team Ihre Anfrage geprüft hat.</p>
<p>Mit freundlichen Grüßen<br>{{.ClinicName}}</p>
`))

var patientConfirmTemplate = template.Must(template.New("patientConfirm").Parse(`
<h2>Terminbestätigung</h2>
<p>Guten Tag {{.PatientName}},</p>
<p>Ihr Termin wurde bestätigt:</p>
<ul>
  <li><b>Behandlung:</b> {{.ServiceName}}</li>
  <li><b>Datum:</b> {{.Date}}</li>
  <li><b>Uhrzeit:</b> {{.TimeSlot}}</li>
</ul>
<p>Bitte erscheinen Sie einige Minuten vor Ihrem Termin. Falls Sie den
Termin nicht wahrnehmen können, geben Sie uns bitte rechtzeitig Bescheid.</p>
<p>Mit freundlichen Grüßen<br>{{.ClinicName}}</p>
`))

var contactRelayTemplate = template.Must(template.New("contactRelay").Parse(`
<h2>Neue Kontaktanfrage</h2>
<table cellpadding="4">
  <tr><td><b>Name</b></td><td>{{.SenderName}}</td></tr>
  <tr><td><b>E-Mail</b></td><td>{{.SenderEmail}}</td></tr>
  {{if .Subject}}<tr><td><b>Betreff</b></td><td>{{.Subject}}</td></tr>{{end}}
</table>
<p>{{.Message}}</p>
`))

func renderTemplate(tmpl *template.Template, data mailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
