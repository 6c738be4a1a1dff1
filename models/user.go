package models

import "time"

// User is a registered account.
type User struct {
	// ID is the server-assigned identifier (UUID string).
	ID string `json:"id"`

	// Username is unique across all users.
	Username string `json:"username"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never serialized into any response.
	Password string `json:"-"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInsert is the storage shape of a new user. Password must already be hashed.
type UserInsert struct {
	Username string
	Email    string
	Password string
}
