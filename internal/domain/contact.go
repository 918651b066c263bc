package domain

import (
	"context"
	"time"
)

// ContactForm is the untyped contact form body as it arrives over HTTP.
// Fields are left as `any` so the validator can tell "absent" from "not a string".
type ContactForm struct {
	Name    any `json:"name" swaggertype:"string" example:"Ada"`
	Email   any `json:"email" swaggertype:"string" example:"ada@example.com"`
	Project any `json:"project" swaggertype:"string" example:"Need a website"`
}

// Submission is a contact form that passed validation.
type Submission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,contact_email"`
	Project string `validate:"required"`
}

// NotificationMessage is one composed email, ready for a MailTransport.
type NotificationMessage struct {
	To       string
	From     string
	FromName string
	Subject  string
	Body     string // HTML
	TextBody string
	ReplyTo  string
}

// RecipientList is the process-wide admin list plus the sender identity.
// It is built once at startup and never mutated.
type RecipientList struct {
	Admins      []string
	FromAddress string
}

// NewRecipientList copies admins so later changes to the caller's slice are not observed.
func NewRecipientList(admins []string, fromAddress string) RecipientList {
	cp := make([]string, len(admins))
	copy(cp, admins)
	return RecipientList{Admins: cp, FromAddress: fromAddress}
}

// DispatchKind tells admin notifications from the submitter acknowledgement.
type DispatchKind string

const (
	DispatchAdmin           DispatchKind = "admin"
	DispatchAcknowledgement DispatchKind = "acknowledgement"
)

// DispatchResult is the outcome of sending one NotificationMessage.
type DispatchResult struct {
	Recipient string       `json:"recipient"`
	Kind      DispatchKind `json:"kind"`
	Success   bool         `json:"success"`
	Error     string       `json:"error,omitempty"`
}

// DispatchReport aggregates the results for one submission: admin results in
// configuration order, then the acknowledgement.
type DispatchReport struct {
	Results     []DispatchResult `json:"results"`
	SubmittedAt time.Time        `json:"submitted_at"`
}

// Succeeded counts successful dispatches.
func (r DispatchReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Success {
			n++
		}
	}
	return n
}

// Failed counts failed dispatches.
func (r DispatchReport) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// OK reports whether every dispatch succeeded.
func (r DispatchReport) OK() bool {
	return r.Failed() == 0
}

// AdminResults returns the admin part of the report.
func (r DispatchReport) AdminResults() []DispatchResult {
	var out []DispatchResult
	for _, res := range r.Results {
		if res.Kind == DispatchAdmin {
			out = append(out, res)
		}
	}
	return out
}

// ContactUsecase handles a contact form submission end to end.
type ContactUsecase interface {
	// Handle validates the form, notifies every admin and acknowledges the submitter.
	Handle(ctx context.Context, form ContactForm) (DispatchReport, error)
}
