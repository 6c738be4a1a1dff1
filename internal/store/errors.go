package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by id, username or email
	// matches no user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when registering a user fails
	// because another account already uses the same username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when registering a user fails
	// because another account already uses the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrProjectNotFound is returned when a read or update targets a project
	// id that does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectHasPledges is returned when deleting a project that is still
	// referenced by at least one pledge.
	ErrProjectHasPledges = errors.New("project has pledges")

	// ErrProjectReferenceNotFound is returned when a pledge references a
	// project that does not exist.
	ErrProjectReferenceNotFound = errors.New("referenced project does not exist")

	// ErrUserReferenceNotFound is returned when a pledge references a user
	// that does not exist.
	ErrUserReferenceNotFound = errors.New("referenced user does not exist")

	// ErrCacheMiss is returned by response caches when no live entry exists
	// for the requested key.
	ErrCacheMiss = errors.New("cache miss")

	// ErrLocalSessionNotFound is returned when no session has been stored
	// on this client.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrUnsupportedDSN is returned by [Open] when the DSN matches no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
