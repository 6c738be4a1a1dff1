package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a geometry value is not well-formed JSON.
var ErrInvalidGeometry = errors.New("geometry is not valid JSON")

// Geometry is an opaque JSON document attached to a project (typically GeoJSON).
// A nil Geometry means "no geometry" and is rendered as JSON null.
type Geometry json.RawMessage

func (g Geometry) IsZero() bool {
	return len(g) == 0
}

func (g Geometry) MarshalJSON() ([]byte, error) {
	if g.IsZero() {
		return []byte("null"), nil
	}

	return g, nil
}

func (g *Geometry) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) {
		*g = nil
		return nil
	}

	*g = append((*g)[:0], trimmed...)
	return nil
}

// Scan implements sql.Scanner. Both JSONB (PostgreSQL) and TEXT (SQLite) columns are accepted.
func (g *Geometry) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*g = nil
	case []byte:
		*g = append(Geometry(nil), v...)
	case string:
		*g = Geometry(v)
	default:
		return fmt.Errorf("%w: unsupported column type %T", ErrInvalidGeometry, src)
	}

	if len(*g) > 0 && !json.Valid(*g) {
		return ErrInvalidGeometry
	}

	return nil
}

// Value implements driver.Valuer.
func (g Geometry) Value() (driver.Value, error) {
	if g.IsZero() {
		return nil, nil
	}
	if !json.Valid(g) {
		return nil, ErrInvalidGeometry
	}

	return string(g), nil
}
