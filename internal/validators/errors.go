package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every error returned from Validate.
	ErrValidation = errors.New("validation failed")

	ErrRequired           = errors.New("is required")
	ErrTooShort           = errors.New("is too short")
	ErrTooLong            = errors.New("is too long")
	ErrInvalidEmail       = errors.New("is not a valid email address")
	ErrOutOfRange         = errors.New("is out of range")
	ErrNegative           = errors.New("must not be negative")
	ErrNotPositive        = errors.New("must be greater than zero")
	ErrTooManyDecimals    = errors.New("has too many decimal places")
	ErrNotInteger         = errors.New("must be a whole number")
	ErrTooLarge           = errors.New("is too large")
	ErrInvalidURL         = errors.New("is not an absolute http(s) URL")
	ErrInvalidProjectType = errors.New("is not a known project type")
	ErrInvalidStatus      = errors.New("is not a known project status")
	ErrInvalidUserID      = errors.New("must be a non-empty user id")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)

// FieldError is a single rule violation on a named wire field.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError carries every violation found in one value.
// errors.Is matches ErrValidation as well as each rule sentinel.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Details(), "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields)+1)
	errs = append(errs, ErrValidation)
	for _, f := range e.Fields {
		errs = append(errs, f)
	}
	return errs
}

// Details renders the violations as "<field>: <rule>" strings.
func (e *ValidationError) Details() []string {
	details := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		details = append(details, f.Error())
	}
	return details
}

// violations collects field errors while a value is being checked.
type violations []FieldError

func (v *violations) add(field string, err error) {
	*v = append(*v, FieldError{Field: field, Err: err})
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Fields: v}
}
