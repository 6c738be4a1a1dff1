package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-green-pledge/models"
)

const (
	FieldUserID     = "userId"
	FieldProjectID  = "projectId"
	FieldAmount     = "amount"
	FieldTreesCount = "treesCount"
	FieldMessage    = "message"
)

const maxPledgeMessageLength = 500

// PledgeValidator validates pledge create requests.
type PledgeValidator struct{}

func NewPledgeValidator() Validator {
	return &PledgeValidator{}
}

func (v *PledgeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PledgeCreateRequest:
		return v.validateCreate(ctx, value, fields...)
	case *models.PledgeCreateRequest:
		return v.validateCreate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PledgeValidator) validateCreate(_ context.Context, req models.PledgeCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldProjectID, FieldAmount, FieldTreesCount, FieldMessage}
	}

	var errs violations
	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID != nil && strings.TrimSpace(*req.UserID) == "" {
				errs.add(f, ErrInvalidUserID)
			}
		case FieldProjectID:
			if strings.TrimSpace(req.ProjectID) == "" {
				errs.add(f, ErrRequired)
			}
		case FieldAmount:
			if req.Amount == "" {
				errs.add(f, ErrRequired)
				continue
			}
			if d, ok := parseColumn(&errs, f, req.Amount, amountColumn); ok && !d.IsPositive() {
				errs.add(f, ErrNotPositive)
			}
		case FieldTreesCount:
			checkOptionalAmount(&errs, f, req.TreesCount, treesCountColumn)
		case FieldMessage:
			if req.Message != nil && utf8.RuneCountInString(*req.Message) > maxPledgeMessageLength {
				errs.add(f, fmt.Errorf("%w: at most %d characters", ErrTooLong, maxPledgeMessageLength))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
