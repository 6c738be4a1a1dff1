package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectType classifies the kind of conservation work a project performs.
type ProjectType string

const (
	ProjectTypeReforestation ProjectType = "reforestation"
	ProjectTypeConservation  ProjectType = "conservation"
	ProjectTypeRestoration   ProjectType = "restoration"
	ProjectTypeAfforestation ProjectType = "afforestation"
)

// IsValid reports whether t is one of the known project types.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeReforestation, ProjectTypeConservation, ProjectTypeRestoration, ProjectTypeAfforestation:
		return true
	}
	return false
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPlanned   ProjectStatus = "planned"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusPlanned:
		return true
	}
	return false
}

// Project is a conservation project as stored and served.
//
// Decimal fields are serialized as JSON strings so that no precision is lost
// between the store and the client.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`

	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`

	ProjectType ProjectType `json:"projectType"`

	// Area is measured in hectares.
	Area         decimal.NullDecimal `json:"area"`
	TreesPlanted decimal.NullDecimal `json:"treesPlanted"`
	// CO2Offset is measured in tons.
	CO2Offset decimal.NullDecimal `json:"co2Offset"`

	ImageURL  *string       `json:"imageUrl"`
	StartDate *time.Time    `json:"startDate"`
	Status    ProjectStatus `json:"status"`
	Geometry  Geometry      `json:"geometry"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (p Project) TableName() string {
	return "projects"
}

// ProjectCreateRequest is the wire body of POST /api/projects.
// Numeric fields arrive as strings; optional fields are pointers.
type ProjectCreateRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Latitude    NumericString `json:"latitude"`
	Longitude   NumericString `json:"longitude"`
	ProjectType string        `json:"projectType"`

	Area         *NumericString `json:"area,omitempty"`
	TreesPlanted *NumericString `json:"treesPlanted,omitempty"`
	CO2Offset    *NumericString `json:"co2Offset,omitempty"`
	ImageURL     *string        `json:"imageUrl,omitempty"`
	StartDate    *string        `json:"startDate,omitempty"`
	Status       *string        `json:"status,omitempty"`
	Geometry     Geometry       `json:"geometry,omitempty"`
}

// ProjectUpdateRequest is the wire body of PATCH /api/projects/{id}.
// Every field is optional; a nil field is left unchanged.
type ProjectUpdateRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Latitude    *NumericString `json:"latitude,omitempty"`
	Longitude   *NumericString `json:"longitude,omitempty"`
	ProjectType *string        `json:"projectType,omitempty"`

	Area         *NumericString `json:"area,omitempty"`
	TreesPlanted *NumericString `json:"treesPlanted,omitempty"`
	CO2Offset    *NumericString `json:"co2Offset,omitempty"`
	ImageURL     *string        `json:"imageUrl,omitempty"`
	StartDate    *string        `json:"startDate,omitempty"`
	Status       *string        `json:"status,omitempty"`
	Geometry     Geometry       `json:"geometry,omitempty"`
}

// IsEmpty reports whether the request carries no field at all.
func (r ProjectUpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Location == nil &&
		r.Latitude == nil && r.Longitude == nil && r.ProjectType == nil &&
		r.Area == nil && r.TreesPlanted == nil && r.CO2Offset == nil &&
		r.ImageURL == nil && r.StartDate == nil && r.Status == nil &&
		r.Geometry.IsZero()
}

// ProjectInsert is the parsed shape of a new project handed to storage.
type ProjectInsert struct {
	Name        string
	Description string
	Location    string
	Latitude    decimal.Decimal
	Longitude   decimal.Decimal
	ProjectType ProjectType

	Area         decimal.NullDecimal
	TreesPlanted decimal.NullDecimal
	CO2Offset    decimal.NullDecimal
	ImageURL     *string
	StartDate    *time.Time
	Status       ProjectStatus
	Geometry     Geometry
}

// ProjectPatch is the parsed shape of a partial project update.
// Nil pointers (and a zero Geometry) mean "leave unchanged".
type ProjectPatch struct {
	Name        *string
	Description *string
	Location    *string
	Latitude    *decimal.Decimal
	Longitude   *decimal.Decimal
	ProjectType *ProjectType

	Area         *decimal.Decimal
	TreesPlanted *decimal.Decimal
	CO2Offset    *decimal.Decimal
	// ImageURL pointing at "" clears the stored image.
	ImageURL  *string
	StartDate *time.Time
	Status    *ProjectStatus
	Geometry  Geometry
}

func (p ProjectPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Location == nil &&
		p.Latitude == nil && p.Longitude == nil && p.ProjectType == nil &&
		p.Area == nil && p.TreesPlanted == nil && p.CO2Offset == nil &&
		p.ImageURL == nil && p.StartDate == nil && p.Status == nil &&
		p.Geometry.IsZero()
}

// Apply merges the patch into p and returns the result.
func (p ProjectPatch) Apply(project Project) Project {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Location != nil {
		project.Location = *p.Location
	}
	if p.Latitude != nil {
		project.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		project.Longitude = *p.Longitude
	}
	if p.ProjectType != nil {
		project.ProjectType = *p.ProjectType
	}
	if p.Area != nil {
		project.Area = decimal.NewNullDecimal(*p.Area)
	}
	if p.TreesPlanted != nil {
		project.TreesPlanted = decimal.NewNullDecimal(*p.TreesPlanted)
	}
	if p.CO2Offset != nil {
		project.CO2Offset = decimal.NewNullDecimal(*p.CO2Offset)
	}
	if p.ImageURL != nil {
		// An empty URL clears the image.
		project.ImageURL = normalizeImageURL(p.ImageURL)
	}
	if p.StartDate != nil {
		date := *p.StartDate
		project.StartDate = &date
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	if !p.Geometry.IsZero() {
		project.Geometry = append(Geometry(nil), p.Geometry...)
	}

	return project
}

// Project builds the stored entity from the insert shape.
func (i ProjectInsert) Project(id string, createdAt time.Time) Project {
	return Project{
		ID:           id,
		Name:         i.Name,
		Description:  i.Description,
		Location:     i.Location,
		Latitude:     i.Latitude,
		Longitude:    i.Longitude,
		ProjectType:  i.ProjectType,
		Area:         i.Area,
		TreesPlanted: i.TreesPlanted,
		CO2Offset:    i.CO2Offset,
		ImageURL:     i.ImageURL,
		StartDate:    i.StartDate,
		Status:       i.Status,
		Geometry:     i.Geometry,
		CreatedAt:    createdAt,
	}
}
