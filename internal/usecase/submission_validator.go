package usecase

import (
	"errors"
	"strings"

	"codeforge-backend/internal/domain"
	"codeforge-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// SubmissionValidator turns a raw ContactForm into a typed Submission.
type SubmissionValidator struct {
	validate *validator.Validate
}

// NewSubmissionValidator creates a validator. A nil instance gets one with the
// custom tags registered.
func NewSubmissionValidator(v *validator.Validate) *SubmissionValidator {
	if v == nil {
		v = validation.New()
	}
	return &SubmissionValidator{validate: v}
}

// Validate checks required fields first (name, email, project), then the email shape.
// Name and email come back trimmed; the project text is returned as submitted.
func (sv *SubmissionValidator) Validate(form domain.ContactForm) (domain.Submission, error) {
	sub := domain.Submission{
		Name:    stringField(form.Name),
		Email:   stringField(form.Email),
		Project: stringField(form.Project),
	}

	err := sv.validate.Struct(sub)
	if err == nil {
		// The project text is echoed verbatim; trimming only decides emptiness.
		sub.Project, _ = form.Project.(string)
		return sub, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.Submission{}, err
	}

	// A missing field wins over a malformed email regardless of field order.
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return domain.Submission{}, domain.NewMissingField(strings.ToLower(fe.Field()))
		}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "contact_email" {
			return domain.Submission{}, domain.ErrInvalidEmailFormat
		}
	}
	return domain.Submission{}, err
}

// stringField returns the trimmed string value, or "" for absent and non-string values.
func stringField(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
