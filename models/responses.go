package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`

	// Details lists per-field validation failures as "<field>: <rule>".
	// It is only present for validation errors.
	Details []string `json:"details,omitempty"`
}

// SeedResult is returned by POST /api/seed. Count is omitted when the
// database was already seeded.
type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
