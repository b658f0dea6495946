package utils

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

type EmailData struct {
	Name     string
	Message  string
	LoginURL string
}

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends templated HTML mail.
type Mailer interface {
	SendEmail(to, subject string, data EmailData, templateName string) error
}

type SMTPMailer struct {
	settings SMTPSettings
}

func NewSMTPMailer(settings SMTPSettings) *SMTPMailer {
	return &SMTPMailer{settings: settings}
}

func (m *SMTPMailer) SendEmail(to, subject string, data EmailData, templateName string) error {
	tmpl, err := template.ParseFS(templateFS, "templates/"+templateName)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.settings.From); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(subject)
	if err := msg.SetBodyHTMLTemplate(tmpl, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	client, err := mail.NewClient(m.settings.Host,
		mail.WithPort(m.settings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.settings.Username),
		mail.WithPassword(m.settings.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
