package domain

import (
	"errors"
	"fmt"
)

// ValidationKind classifies a rejected contact form.
type ValidationKind int

const (
	MissingField ValidationKind = iota + 1
	InvalidEmailFormat
)

// ValidationError is returned by the submission validator.
type ValidationError struct {
	Kind  ValidationKind
	Field string // set for MissingField
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingField:
		return fmt.Sprintf("missing field: %s", e.Field)
	case InvalidEmailFormat:
		return "invalid email format"
	default:
		return "invalid submission"
	}
}

// NewMissingField builds a MissingField validation error.
func NewMissingField(field string) *ValidationError {
	return &ValidationError{Kind: MissingField, Field: field}
}

// ErrInvalidEmailFormat is the validation error for a malformed address.
var ErrInvalidEmailFormat = &ValidationError{Kind: InvalidEmailFormat, Field: "email"}

// ServiceErrorKind is one of the two failure shapes returned to the HTTP layer.
type ServiceErrorKind int

const (
	InvalidInput ServiceErrorKind = iota + 1
	DeliveryFailure
)

func (k ServiceErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case DeliveryFailure:
		return "delivery_failure"
	default:
		return "unknown"
	}
}

// ServiceError is the error returned by ContactUsecase.Handle.
// Report is only set for DeliveryFailure.
type ServiceError struct {
	Kind   ServiceErrorKind
	Report *DispatchReport
	Err    error
}

func (e *ServiceError) Error() string {
	switch e.Kind {
	case InvalidInput:
		return fmt.Sprintf("invalid input: %v", e.Err)
	case DeliveryFailure:
		if e.Report != nil {
			return fmt.Sprintf("delivery failed for %d of %d messages: %v", e.Report.Failed(), len(e.Report.Results), e.Err)
		}
		return fmt.Sprintf("delivery failed: %v", e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err is a ServiceError of kind InvalidInput.
func IsInvalidInput(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Kind == InvalidInput
}

// IsDeliveryFailure reports whether err is a ServiceError of kind DeliveryFailure.
func IsDeliveryFailure(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Kind == DeliveryFailure
}
