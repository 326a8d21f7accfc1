package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"dermatriagem-api/config"
	"dermatriagem-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

var inviteTemplate = template.Must(template.ParseFS(templatesFS, "templates/invite.html"))

const inviteSubject = "Convite para o DermaTriagem"

type inviteEmailData struct {
	Email     string
	Link      string
	ExpiresAt string
}

type EmailSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	return &EmailSender{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// RenderInvite renders the HTML body of an invitation.
func RenderInvite(email entity.InviteEmail) (string, error) {
	data := inviteEmailData{
		Email:     email.To,
		Link:      email.Link,
		ExpiresAt: email.ExpiresAt.Format("02/01/2006 15:04"),
	}

	var body bytes.Buffer
	if err := inviteTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render invite template: %w", err)
	}
	return body.String(), nil
}

func (s *EmailSender) SendInvite(ctx context.Context, email entity.InviteEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := RenderInvite(email)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", inviteSubject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invite email to %s: %w", email.To, err)
	}

	return nil
}

// LogSender replaces SMTP delivery when no SMTP host is configured: the link
// is written to the log.
type LogSender struct {
	log *logrus.Logger
}

func NewLogSender(log *logrus.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendInvite(ctx context.Context, email entity.InviteEmail) error {
	s.log.WithFields(logrus.Fields{
		"to":         email.To,
		"link":       email.Link,
		"expires_at": email.ExpiresAt,
	}).Info("Invite email (SMTP disabled)")
	return nil
}
