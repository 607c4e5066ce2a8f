package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// ValidationError carries the full ordered list of rule failures from
// one aggregate pass. Warnings are non-blocking and informational.
type ValidationError struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
	Status   int      `json:"-"`
}

func (v *ValidationError) Code() int {
	return v.Status
}

// StructuredError maps field names to their problems; used for
// request-shape failures reported by the struct validator.
type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError        = NewSimple(404, "Project not found")
	AddressNotFoundError = NewSimple(404, "Address not found for the given postal code")
	InvalidPostalError   = NewSimple(400, "郵便番号は7桁の数字で入力してください（例：123-4567）")
	UnknownAppTypeError  = NewSimple(400, "Unknown application type")
	InactiveAppTypeError = NewSimple(400, "Application type is no longer active")
)

// NewValidation wraps an ordered error list into a 400 response.
func NewValidation(errs, warnings []string) *ValidationError {
	return &ValidationError{
		Errors:   errs,
		Warnings: warnings,
		Status:   http.StatusBadRequest,
	}
}

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too small, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "datetime":
			problems[field] = append(problems[field], "Value must be a date formatted as "+fe.Param())

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
