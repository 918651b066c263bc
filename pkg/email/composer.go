package email

import (
	"bytes"
	"fmt"
	"time"

	"codeforge-backend/internal/domain"
)

// SubmittedAtLayout is how the submission time is printed in admin notifications.
const SubmittedAtLayout = "January 2, 2006 at 3:04 PM MST"

// Brand holds the fixed company details that appear in outgoing mail.
type Brand struct {
	Name         string
	SenderName   string // display name on From; defaults to Name
	ContactEmail string
	Site         string
	Tagline      string
	ResponseTime string
}

// Composer builds admin notifications and submitter acknowledgements.
// Apart from one clock read per composition call it has no side effects.
type Composer struct {
	brand     Brand
	now       func() time.Time
	location  *time.Location
	templates *templateSet
}

// ComposerOption customises a Composer.
type ComposerOption func(*Composer)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) ComposerOption {
	return func(c *Composer) { c.now = now }
}

// WithLocation sets the time zone used to print submission times.
func WithLocation(loc *time.Location) ComposerOption {
	return func(c *Composer) { c.location = loc }
}

// NewComposer parses the templates once and returns a ready Composer.
func NewComposer(brand Brand, opts ...ComposerOption) (*Composer, error) {
	if brand.SenderName == "" {
		brand.SenderName = brand.Name
	}
	tpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	c := &Composer{
		brand:     brand,
		now:       time.Now,
		location:  time.UTC,
		templates: tpl,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ComposeAdminMessage builds the notification for one admin address.
func (c *Composer) ComposeAdminMessage(sub domain.Submission, adminAddress, fromAddress string) (domain.NotificationMessage, error) {
	return c.adminMessage(sub, adminAddress, fromAddress, c.now())
}

// ComposeAcknowledgement builds the confirmation sent back to the submitter.
func (c *Composer) ComposeAcknowledgement(sub domain.Submission, fromAddress string) (domain.NotificationMessage, error) {
	data := ackEmailData{
		Brand:   c.brand,
		Name:    sub.Name,
		Project: sub.Project,
		Steps:   NextSteps,
	}

	var html, text bytes.Buffer
	if err := c.templates.ackHTML.Execute(&html, data); err != nil {
		return domain.NotificationMessage{}, fmt.Errorf("failed to execute acknowledgement template: %w", err)
	}
	if err := c.templates.ackText.Execute(&text, data); err != nil {
		return domain.NotificationMessage{}, fmt.Errorf("failed to execute acknowledgement text template: %w", err)
	}

	return domain.NotificationMessage{
		To:       sub.Email,
		From:     fromAddress,
		FromName: c.brand.SenderName,
		Subject:  fmt.Sprintf("Thank you for contacting %s!", c.brand.Name),
		Body:     html.String(),
		TextBody: text.String(),
	}, nil
}

// ComposeAll builds one admin message per recipient, in order, followed by the
// acknowledgement. The clock is read once so every admin copy shows the same time.
func (c *Composer) ComposeAll(sub domain.Submission, recipients domain.RecipientList) ([]domain.NotificationMessage, time.Time, error) {
	submittedAt := c.now()

	msgs := make([]domain.NotificationMessage, 0, len(recipients.Admins)+1)
	for _, admin := range recipients.Admins {
		msg, err := c.adminMessage(sub, admin, recipients.FromAddress, submittedAt)
		if err != nil {
			return nil, submittedAt, err
		}
		msgs = append(msgs, msg)
	}

	ack, err := c.ComposeAcknowledgement(sub, recipients.FromAddress)
	if err != nil {
		return nil, submittedAt, err
	}
	return append(msgs, ack), submittedAt, nil
}

func (c *Composer) adminMessage(sub domain.Submission, adminAddress, fromAddress string, at time.Time) (domain.NotificationMessage, error) {
	data := adminEmailData{
		Brand:       c.brand,
		Name:        sub.Name,
		Email:       sub.Email,
		Project:     sub.Project,
		SubmittedAt: at.In(c.location).Format(SubmittedAtLayout),
	}

	var html, text bytes.Buffer
	if err := c.templates.adminHTML.Execute(&html, data); err != nil {
		return domain.NotificationMessage{}, fmt.Errorf("failed to execute admin template: %w", err)
	}
	if err := c.templates.adminText.Execute(&text, data); err != nil {
		return domain.NotificationMessage{}, fmt.Errorf("failed to execute admin text template: %w", err)
	}

	return domain.NotificationMessage{
		To:       adminAddress,
		From:     fromAddress,
		FromName: c.brand.SenderName,
		Subject:  fmt.Sprintf("New Contact Form - %s", sub.Name),
		Body:     html.String(),
		TextBody: text.String(),
		ReplyTo:  sub.Email,
	}, nil
}
