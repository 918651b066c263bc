package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"codeforge-backend/internal/domain"
	"codeforge-backend/pkg/email"
	"codeforge-backend/pkg/logger"
)

// MessageComposer builds the admin notifications and the acknowledgement for a submission.
type MessageComposer interface {
	ComposeAll(sub domain.Submission, recipients domain.RecipientList) ([]domain.NotificationMessage, time.Time, error)
}

type contactUsecase struct {
	validator  *SubmissionValidator
	composer   MessageComposer
	sender     email.Sender
	recipients domain.RecipientList
	log        *logger.Logger
}

// NewContactUsecase creates a new contact usecase. recipients is copied and never modified.
func NewContactUsecase(validator *SubmissionValidator, composer MessageComposer, sender email.Sender, recipients domain.RecipientList, log *logger.Logger) domain.ContactUsecase {
	if log == nil {
		log = logger.Log
	}
	return &contactUsecase{
		validator:  validator,
		composer:   composer,
		sender:     sender,
		recipients: domain.NewRecipientList(recipients.Admins, recipients.FromAddress),
		log:        log.WithComponent("contact"),
	}
}

// Handle validates the form, sends every message concurrently and reports the outcome.
func (uc *contactUsecase) Handle(ctx context.Context, form domain.ContactForm) (domain.DispatchReport, error) {
	sub, err := uc.validator.Validate(form)
	if err != nil {
		return domain.DispatchReport{}, &domain.ServiceError{Kind: domain.InvalidInput, Err: err}
	}

	msgs, submittedAt, err := uc.composer.ComposeAll(sub, uc.recipients)
	if err != nil {
		return domain.DispatchReport{}, fmt.Errorf("failed to compose contact emails: %w", err)
	}

	results, errs := uc.dispatch(ctx, msgs)
	report := domain.DispatchReport{Results: results, SubmittedAt: submittedAt}

	if !report.OK() {
		for _, res := range report.Results {
			if !res.Success {
				uc.log.Error().
					Str("recipient", logger.RedactEmail(res.Recipient)).
					Str("kind", string(res.Kind)).
					Str("error", res.Error).
					Msg("email dispatch failed")
			}
		}
		return report, &domain.ServiceError{
			Kind:   domain.DeliveryFailure,
			Report: &report,
			Err:    errors.Join(errs...),
		}
	}

	uc.log.Info().
		Str("submitter", logger.RedactEmail(sub.Email)).
		Int("admins", len(uc.recipients.Admins)).
		Msg("emails sent successfully")
	return report, nil
}

// dispatch sends all messages at once and waits for every one of them.
// Each goroutine writes only its own slot, so result order follows msgs.
func (uc *contactUsecase) dispatch(ctx context.Context, msgs []domain.NotificationMessage) ([]domain.DispatchResult, []error) {
	results := make([]domain.DispatchResult, len(msgs))
	errs := make([]error, len(msgs))

	var wg sync.WaitGroup
	for i, msg := range msgs {
		kind := domain.DispatchAdmin
		if i >= len(uc.recipients.Admins) {
			kind = domain.DispatchAcknowledgement
		}
		results[i] = domain.DispatchResult{Recipient: msg.To, Kind: kind}

		wg.Add(1)
		go func(i int, msg domain.NotificationMessage) {
			defer wg.Done()
			err := uc.send(ctx, msg)
			if err != nil {
				errs[i] = err
				results[i].Error = err.Error()
				return
			}
			results[i].Success = true
		}(i, msg)
	}
	wg.Wait()

	return results, errs
}

func (uc *contactUsecase) send(ctx context.Context, msg domain.NotificationMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mail transport panicked: %v", r)
		}
	}()
	return uc.sender.Send(ctx, msg)
}
