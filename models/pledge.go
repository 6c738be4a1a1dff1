package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pledge is a supporter's commitment of money (and optionally trees) to a project.
// Pledges are immutable once created.
type Pledge struct {
	ID string `json:"id"`

	// UserID is nil for anonymous pledges.
	UserID    *string `json:"userId"`
	ProjectID string  `json:"projectId"`

	Amount     decimal.Decimal     `json:"amount"`
	TreesCount decimal.NullDecimal `json:"treesCount"`
	Message    *string             `json:"message"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func (p Pledge) TableName() string {
	return "pledges"
}

// PledgeCreateRequest is the wire body of POST /api/pledges.
type PledgeCreateRequest struct {
	UserID     *string        `json:"userId,omitempty"`
	ProjectID  string         `json:"projectId"`
	Amount     NumericString  `json:"amount"`
	TreesCount *NumericString `json:"treesCount,omitempty"`
	Message    *string        `json:"message,omitempty"`
}

// PledgeInsert is the parsed shape of a new pledge handed to storage.
type PledgeInsert struct {
	UserID     *string
	ProjectID  string
	Amount     decimal.Decimal
	TreesCount decimal.NullDecimal
	Message    *string
}

// Pledge builds the stored entity from the insert shape.
func (i PledgeInsert) Pledge(id string, createdAt time.Time) Pledge {
	return Pledge{
		ID:         id,
		UserID:     i.UserID,
		ProjectID:  i.ProjectID,
		Amount:     i.Amount,
		TreesCount: i.TreesCount,
		Message:    i.Message,
		CreatedAt:  createdAt,
	}
}

// PledgeFilter selects pledges for listing. UserID takes precedence over ProjectID;
// with neither set every pledge is returned.
type PledgeFilter struct {
	UserID    string
	ProjectID string
}
