package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request cannot be turned into
	// a storage shape after validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForeignUserID is returned when a pledge names a user other than the caller.
	ErrForeignUserID = errors.New("pledge user id does not match the caller")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrNotLoggedIn is returned when an operation needs a stored session and none exists.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrSessionExpired is returned when the stored session token is past its expiry.
	ErrSessionExpired = errors.New("session expired, log in again")
)
