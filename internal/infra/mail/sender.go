package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendCampaign livre un email de campagne à un abonné. Le corps HTML vient
// tel quel de la campagne stockée en base.
func (s *EmailSender) SendCampaign(to, name, subject, bodyHTML string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	if name != "" {
		m.SetAddressHeader("To", to, name)
	} else {
		m.SetHeader("To", to)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", bodyHTML)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erreur d'envoi SMTP: %w", err)
	}

	return nil
}

var contactNotificationTmpl = template.Must(template.New("contact").Parse(
	`Nouvelle demande de contact reçue.

Nom        : {{.FullName}}
Entreprise : {{if .Company}}{{.Company}}{{else}}n/a{{end}}
Email      : {{.Email}}
Téléphone  : {{if .Phone}}{{.Phone}}{{else}}n/a{{end}}
Service    : {{.ServiceLabel}}
Consent    : {{if .Consent}}oui{{else}}non{{end}}

Message :
{{.Message}}
`))

type contactNotificationData struct {
	*entity.ContactRequest
	ServiceLabel string
}

// SendContactNotification prévient la boîte interne qu'une demande de
// contact vient d'être enregistrée.
func (s *EmailSender) SendContactNotification(to string, req *entity.ContactRequest) error {
	var body bytes.Buffer
	data := contactNotificationData{
		ContactRequest: req,
		ServiceLabel:   entity.ContactServiceLabel(req.Service),
	}
	if err := contactNotificationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("erreur de rendu du template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Demande de contact - %s", req.FullName))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erreur d'envoi SMTP: %w", err)
	}

	return nil
}
