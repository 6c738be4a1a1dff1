package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ViolationKind tells which integrity rule a failed statement broke.
type ViolationKind int

const (
	// NoViolation is the classification of every error that is not an
	// integrity constraint violation (connection loss, syntax, timeouts...).
	NoViolation ViolationKind = iota

	// UniqueViolation means a unique or primary key constraint was hit.
	UniqueViolation

	// ForeignKeyViolation means a referenced row is missing (insert) or a
	// referencing row still exists (delete).
	ForeignKeyViolation
)

// Violation is the result of [ErrorClassificator.Classify].
type Violation struct {
	Kind ViolationKind

	// Constraint names the violated constraint when the driver reports it:
	// the constraint name on PostgreSQL ("users_email_key"), the
	// "table.column" list on SQLite ("users.email"). SQLite never names
	// foreign keys, so Constraint is empty for them.
	Constraint string
}

// ErrorClassificator maps driver specific errors to a [Violation].
type ErrorClassificator interface {
	Classify(err error) Violation
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Class 23 codes are mapped,
// anything else (including a nil or non-PostgreSQL error) is [NoViolation].
func (c *PostgresErrorClassifier) Classify(err error) Violation {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Violation{}
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return Violation{Kind: UniqueViolation, Constraint: pgErr.ConstraintName}
	case pgerrcode.ForeignKeyViolation, pgerrcode.RestrictViolation:
		return Violation{Kind: ForeignKeyViolation, Constraint: pgErr.ConstraintName}
	}

	return Violation{}
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator] using the sqlite3 extended result codes.
func (c *SQLiteErrorClassifier) Classify(err error) Violation {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return Violation{}
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		// message format: "UNIQUE constraint failed: users.username"
		_, columns, _ := strings.Cut(liteErr.Error(), "failed: ")
		return Violation{Kind: UniqueViolation, Constraint: strings.TrimSpace(columns)}
	case sqlite3.ErrConstraintForeignKey:
		return Violation{Kind: ForeignKeyViolation}
	case sqlite3.ErrConstraintTrigger:
		// ON DELETE RESTRICT is enforced as a trigger-level constraint
		if strings.Contains(liteErr.Error(), "FOREIGN KEY constraint failed") {
			return Violation{Kind: ForeignKeyViolation}
		}
	}

	return Violation{}
}
