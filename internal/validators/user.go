package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-green-pledge/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// UserValidator validates registration and login requests.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.RegisterRequest and models.LoginRequest (value or pointer).
// A login request is only checked for presence; credential rules apply at registration.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	var errs violations
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if utf8.RuneCountInString(strings.TrimSpace(req.Username)) < minUsernameLength {
				errs.add(f, fmt.Errorf("%w: at least %d characters", ErrTooShort, minUsernameLength))
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				errs.add(f, ErrInvalidEmail)
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < minPasswordLength {
				errs.add(f, fmt.Errorf("%w: at least %d characters", ErrTooShort, minPasswordLength))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *UserValidator) validateLogin(_ context.Context, req models.LoginRequest) error {
	var errs violations
	if req.Username == "" {
		errs.add(FieldUsername, ErrRequired)
	}
	if req.Password == "" {
		errs.add(FieldPassword, ErrRequired)
	}

	return errs.err()
}

// isEmail accepts a bare address (no display name, no angle brackets).
func isEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	if addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
