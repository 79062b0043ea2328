package mailer

import (
	"gopkg.in/gomail.v2"

	"portfolio/internal/config"
)

// Mailer sends transactional email for the portfolio (setup/reset
// links, contact notifications).
type Mailer interface {
	Send(m Message) error
	From() string
}

// Message is one outgoing email. HTML is optional; when set it is
// attached as a multipart alternative to Text.
type Message struct {
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

type smtpMailer struct {
	cfg *config.Config
}

// New creates an SMTP-backed mailer from config.
func New(cfg *config.Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (s *smtpMailer) From() string {
	return s.cfg.SMTPUser
}

func (s *smtpMailer) Send(msg Message) error {
	m := gomail.NewMessage()
	if msg.FromName != "" {
		m.SetAddressHeader("From", s.cfg.SMTPUser, msg.FromName)
	} else {
		m.SetHeader("From", s.cfg.SMTPUser)
	}
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPassword)
	return d.DialAndSend(m)
}
