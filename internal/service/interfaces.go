package service

import (
	"context"

	"github.com/MKhiriev/go-green-pledge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates users and issues bearer tokens.
type AuthService interface {
	// RegisterUser hashes the password and stores a new account.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	// Login returns the account matching the credentials or ErrInvalidCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	// GetUser returns the account with the given id.
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProjectService manages the project catalog.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, request models.ProjectCreateRequest) (models.Project, error)
	UpdateProject(ctx context.Context, id string, request models.ProjectUpdateRequest) (models.Project, error)
	// DeleteProject removes the project or returns ErrProjectNotFound.
	DeleteProject(ctx context.Context, id string) error
}

// PledgeService lists and records pledges. The caller's identity, when
// authenticated, is read from the context (see utils.GetUserIDFromContext).
type PledgeService interface {
	ListPledges(ctx context.Context, filter models.PledgeFilter) ([]models.Pledge, error)
	CreatePledge(ctx context.Context, request models.PledgeCreateRequest) (models.Pledge, error)
}

// SeedService fills an empty catalog with the demo projects.
type SeedService interface {
	Seed(ctx context.Context) (models.SeedResult, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
