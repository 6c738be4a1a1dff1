package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/shopspring/decimal"
)

// Wire field names of a project.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldLocation     = "location"
	FieldLatitude     = "latitude"
	FieldLongitude    = "longitude"
	FieldProjectType  = "projectType"
	FieldArea         = "area"
	FieldTreesPlanted = "treesPlanted"
	FieldCO2Offset    = "co2Offset"
	FieldImageURL     = "imageUrl"
	FieldStartDate    = "startDate"
	FieldStatus       = "status"
	FieldGeometry     = "geometry"

	// FieldBody is reported when the request as a whole is unacceptable.
	FieldBody = "body"
)

const (
	minProjectNameLength        = 3
	minProjectDescriptionLength = 10
)

var projectFields = []string{
	FieldName, FieldDescription, FieldLocation, FieldLatitude, FieldLongitude, FieldProjectType,
	FieldArea, FieldTreesPlanted, FieldCO2Offset, FieldImageURL, FieldStartDate, FieldStatus, FieldGeometry,
}

// ProjectValidator validates project create and update requests.
type ProjectValidator struct{}

func NewProjectValidator() Validator {
	return &ProjectValidator{}
}

// Validate accepts models.ProjectCreateRequest and models.ProjectUpdateRequest (value or pointer).
func (v *ProjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProjectCreateRequest:
		return v.validateCreate(ctx, value, fields...)
	case *models.ProjectCreateRequest:
		return v.validateCreate(ctx, *value, fields...)

	case models.ProjectUpdateRequest:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ProjectUpdateRequest:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProjectValidator) validateCreate(_ context.Context, req models.ProjectCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = projectFields
	}

	var errs violations
	for _, f := range fields {
		switch f {
		case FieldName:
			checkMinLength(&errs, f, req.Name, minProjectNameLength)
		case FieldDescription:
			checkMinLength(&errs, f, req.Description, minProjectDescriptionLength)
		case FieldLocation:
			checkMinLength(&errs, f, req.Location, 1)
		case FieldLatitude:
			checkCoordinate(&errs, f, req.Latitude, maxLatitude)
		case FieldLongitude:
			checkCoordinate(&errs, f, req.Longitude, maxLongitude)
		case FieldProjectType:
			checkProjectType(&errs, f, req.ProjectType)
		case FieldArea:
			checkOptionalAmount(&errs, f, req.Area, areaColumn)
		case FieldTreesPlanted:
			checkOptionalAmount(&errs, f, req.TreesPlanted, treesColumn)
		case FieldCO2Offset:
			checkOptionalAmount(&errs, f, req.CO2Offset, co2Column)
		case FieldImageURL:
			if req.ImageURL != nil {
				checkImageURL(&errs, f, *req.ImageURL)
			}
		case FieldStartDate:
			if req.StartDate != nil {
				checkDate(&errs, f, *req.StartDate)
			}
		case FieldStatus:
			if req.Status != nil {
				checkStatus(&errs, f, *req.Status)
			}
		case FieldGeometry:
			checkGeometry(&errs, f, req.Geometry)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

// validateUpdate applies the create rules to every field that is present.
func (v *ProjectValidator) validateUpdate(_ context.Context, req models.ProjectUpdateRequest, fields ...string) error {
	if req.IsEmpty() {
		var errs violations
		errs.add(FieldBody, ErrNoFieldsToUpdate)
		return errs.err()
	}

	if len(fields) == 0 {
		fields = projectFields
	}

	var errs violations
	for _, f := range fields {
		switch f {
		case FieldName:
			if req.Name != nil {
				checkMinLength(&errs, f, *req.Name, minProjectNameLength)
			}
		case FieldDescription:
			if req.Description != nil {
				checkMinLength(&errs, f, *req.Description, minProjectDescriptionLength)
			}
		case FieldLocation:
			if req.Location != nil {
				checkMinLength(&errs, f, *req.Location, 1)
			}
		case FieldLatitude:
			if req.Latitude != nil {
				checkCoordinate(&errs, f, *req.Latitude, maxLatitude)
			}
		case FieldLongitude:
			if req.Longitude != nil {
				checkCoordinate(&errs, f, *req.Longitude, maxLongitude)
			}
		case FieldProjectType:
			if req.ProjectType != nil {
				checkProjectType(&errs, f, *req.ProjectType)
			}
		case FieldArea:
			checkOptionalAmount(&errs, f, req.Area, areaColumn)
		case FieldTreesPlanted:
			checkOptionalAmount(&errs, f, req.TreesPlanted, treesColumn)
		case FieldCO2Offset:
			checkOptionalAmount(&errs, f, req.CO2Offset, co2Column)
		case FieldImageURL:
			if req.ImageURL != nil {
				checkImageURL(&errs, f, *req.ImageURL)
			}
		case FieldStartDate:
			if req.StartDate != nil {
				checkDate(&errs, f, *req.StartDate)
			}
		case FieldStatus:
			if req.Status != nil {
				checkStatus(&errs, f, *req.Status)
			}
		case FieldGeometry:
			checkGeometry(&errs, f, req.Geometry)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func checkMinLength(errs *violations, field, value string, min int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs.add(field, ErrRequired)
		return
	}
	if utf8.RuneCountInString(trimmed) < min {
		errs.add(field, fmt.Errorf("%w: at least %d characters", ErrTooShort, min))
	}
}

func checkCoordinate(errs *violations, field string, raw models.NumericString, bound decimal.Decimal) {
	if raw == "" {
		errs.add(field, ErrRequired)
		return
	}
	if d, ok := parseColumn(errs, field, raw, coordinateColumn); ok {
		checkRange(errs, field, d, bound)
	}
}

// checkOptionalAmount validates a non-negative optional decimal.
func checkOptionalAmount(errs *violations, field string, raw *models.NumericString, col column) {
	if raw == nil {
		return
	}
	if d, ok := parseColumn(errs, field, *raw, col); ok {
		checkNonNegative(errs, field, d)
	}
}

func checkProjectType(errs *violations, field, value string) {
	if !models.ProjectType(value).IsValid() {
		errs.add(field, ErrInvalidProjectType)
	}
}

func checkStatus(errs *violations, field, value string) {
	if !models.ProjectStatus(value).IsValid() {
		errs.add(field, ErrInvalidStatus)
	}
}

// checkImageURL treats the empty string as "no image".
func checkImageURL(errs *violations, field, raw string) {
	if raw == "" {
		return
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs.add(field, ErrInvalidURL)
	}
}

func checkDate(errs *violations, field, raw string) {
	if _, err := models.ParseDate(raw); err != nil {
		errs.add(field, err)
	}
}

func checkGeometry(errs *violations, field string, g models.Geometry) {
	if !g.IsZero() && !json.Valid(g) {
		errs.add(field, models.ErrInvalidGeometry)
	}
}
