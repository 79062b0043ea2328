package service

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/mailer"
)

// ContactInput is one submitted contact-form message.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService delivers contact-form messages: a notification to the
// site owner and a confirmation back to the visitor.
type ContactService interface {
	Send(ctx context.Context, in ContactInput) error
}

type contactService struct {
	portfolio    PortfolioService
	mail         mailer.Mailer
	contactEmail string
}

// NewContactService creates a new contact service. contactEmail
// overrides the notification recipient; when empty the profile email
// from the database is used.
func NewContactService(portfolio PortfolioService, mail mailer.Mailer, contactEmail string) ContactService {
	return &contactService{
		portfolio:    portfolio,
		mail:         mail,
		contactEmail: contactEmail,
	}
}

// Send loads the current profile so both emails carry up-to-date
// contact details, then sends the owner notification and the visitor
// confirmation. Both sends must succeed.
func (s *contactService) Send(ctx context.Context, in ContactInput) error {
	data, err := s.portfolio.GetPortfolioData(ctx, "fr")
	if err != nil {
		return fmt.Errorf("load portfolio data: %w", err)
	}

	to := s.contactEmail
	if to == "" {
		to = data.Email
	}

	subject := in.Subject
	if subject == "" {
		subject = "Portfolio Contact"
	}
	now := time.Now().Format("02/01/2006 à 15:04")

	owner := mailer.Message{
		FromName: "Portfolio Contact",
		To:       to,
		ReplyTo:  fmt.Sprintf("%s <%s>", in.Name, in.Email),
		Subject:  fmt.Sprintf("💼 Nouveau message de %s - %s", in.Name, subject),
		Text: fmt.Sprintf(
			"Nouveau message de contact reçu\n\nNom: %s\nEmail: %s\nSujet: %s\nDate: %s\n\nMessage:\n%s\n\nRépondez directement à %s",
			in.Name, in.Email, subject, now, in.Message, in.Email,
		),
		HTML: fmt.Sprintf(
			`<h2>📩 Nouveau message de contact</h2><p><strong>Nom :</strong> %s<br><strong>Email :</strong> <a href="mailto:%s">%s</a><br><strong>Sujet :</strong> %s<br><strong>Date :</strong> %s</p><h3>Message</h3><p style="white-space: pre-wrap;">%s</p>`,
			in.Name, in.Email, in.Email, subject, now, in.Message,
		),
	}
	if err := s.mail.Send(owner); err != nil {
		return fmt.Errorf("send owner notification: %w", err)
	}

	confirmation := mailer.Message{
		FromName: data.Name,
		To:       in.Email,
		Subject:  fmt.Sprintf("Confirmation de réception - %s", data.Name),
		Text: fmt.Sprintf(
			"Bonjour %s,\n\nMerci de m'avoir contacté ! J'ai bien reçu votre message et je vous répondrai dans les plus brefs délais.\n\nRécapitulatif de votre message :\nSujet: %s\nDate: %s\n\nVotre message:\n%s\n\nCordialement,\n%s\n%s\n\nEmail: %s\nTéléphone: %s\n\nLinkedIn: %s\nGitHub: %s",
			in.Name, subject, now, in.Message, data.Name, data.Title, data.Email, data.Phone, data.Social.Linkedin, data.Social.Github,
		),
		HTML: fmt.Sprintf(
			`<h2>Message bien reçu !</h2><p>Bonjour <strong>%s</strong>,</p><p>Merci de m'avoir contacté ! J'ai bien reçu votre message et je vous répondrai dans les plus brefs délais, généralement sous 24-48 heures.</p><p><strong>Sujet :</strong> %s<br><strong>Date d'envoi :</strong> %s</p><blockquote style="white-space: pre-wrap;">%s</blockquote><p>Cordialement,<br><strong>%s</strong><br>%s</p><p>📧 %s | 📱 %s</p><p><a href="%s">LinkedIn</a> · <a href="%s">GitHub</a></p>`,
			in.Name, subject, now, in.Message, data.Name, data.Title, data.Email, data.Phone, data.Social.Linkedin, data.Social.Github,
		),
	}
	if err := s.mail.Send(confirmation); err != nil {
		return fmt.Errorf("send visitor confirmation: %w", err)
	}
	return nil
}
