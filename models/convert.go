package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Insert parses the wire request into the storage shape.
// It only fails on malformed numbers or dates; business rules are not checked.
func (r ProjectCreateRequest) Insert() (ProjectInsert, error) {
	var errs []error

	insert := ProjectInsert{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Location:    strings.TrimSpace(r.Location),
		ProjectType: ProjectType(r.ProjectType),
		ImageURL:    normalizeImageURL(r.ImageURL),
		Status:      ProjectStatusActive,
		Geometry:    r.Geometry,
	}

	insert.Latitude = parseField("latitude", r.Latitude, &errs)
	insert.Longitude = parseField("longitude", r.Longitude, &errs)
	insert.Area = parseOptionalField("area", r.Area, &errs)
	insert.TreesPlanted = parseOptionalField("treesPlanted", r.TreesPlanted, &errs)
	insert.CO2Offset = parseOptionalField("co2Offset", r.CO2Offset, &errs)
	insert.StartDate = parseOptionalDate("startDate", r.StartDate, &errs)

	if r.Status != nil {
		insert.Status = ProjectStatus(*r.Status)
	}

	return insert, errors.Join(errs...)
}

// Patch parses the wire request into the partial update shape.
func (r ProjectUpdateRequest) Patch() (ProjectPatch, error) {
	var errs []error

	patch := ProjectPatch{
		Name:        trimmed(r.Name),
		Description: trimmed(r.Description),
		Location:    trimmed(r.Location),
		ImageURL:    r.ImageURL,
		Geometry:    r.Geometry,
	}

	if r.Latitude != nil {
		d := parseField("latitude", *r.Latitude, &errs)
		patch.Latitude = &d
	}
	if r.Longitude != nil {
		d := parseField("longitude", *r.Longitude, &errs)
		patch.Longitude = &d
	}
	if r.ProjectType != nil {
		t := ProjectType(*r.ProjectType)
		patch.ProjectType = &t
	}
	patch.Area = parseOptionalPointer("area", r.Area, &errs)
	patch.TreesPlanted = parseOptionalPointer("treesPlanted", r.TreesPlanted, &errs)
	patch.CO2Offset = parseOptionalPointer("co2Offset", r.CO2Offset, &errs)
	patch.StartDate = parseOptionalDate("startDate", r.StartDate, &errs)
	if r.Status != nil {
		s := ProjectStatus(*r.Status)
		patch.Status = &s
	}

	return patch, errors.Join(errs...)
}

// Insert parses the wire request into the storage shape.
func (r PledgeCreateRequest) Insert() (PledgeInsert, error) {
	var errs []error

	insert := PledgeInsert{
		UserID:    trimmed(r.UserID),
		ProjectID: strings.TrimSpace(r.ProjectID),
		Message:   r.Message,
	}
	insert.Amount = parseField("amount", r.Amount, &errs)
	insert.TreesCount = parseOptionalField("treesCount", r.TreesCount, &errs)

	return insert, errors.Join(errs...)
}

func parseField(name string, raw NumericString, errs *[]error) decimal.Decimal {
	d, err := raw.Decimal()
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", name, err))
	}
	return d
}

func parseOptionalField(name string, raw *NumericString, errs *[]error) decimal.NullDecimal {
	if raw == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(parseField(name, *raw, errs))
}

func parseOptionalPointer(name string, raw *NumericString, errs *[]error) *decimal.Decimal {
	if raw == nil {
		return nil
	}
	d := parseField(name, *raw, errs)
	return &d
}

func parseOptionalDate(name string, raw *string, errs *[]error) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := ParseDate(*raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", name, err))
		return nil
	}
	return &t
}

// normalizeImageURL maps the empty string to "no image".
func normalizeImageURL(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}
	return raw
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
