package service

import (
	"context"

	"github.com/MKhiriev/go-green-pledge/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the identity the client acts as. The session
// (user and bearer token) is kept in the local client database.
type ClientAuthService interface {
	// Register creates an account on the server and stores the new session.
	Register(ctx context.Context, request models.RegisterRequest) (models.Session, error)

	// Login authenticates against the server and stores the new session.
	Login(ctx context.Context, request models.LoginRequest) (models.Session, error)

	// Logout forgets the stored session. It is not an error to log out twice.
	Logout(ctx context.Context) error

	// WhoAmI re-derives the current user from the server with the stored
	// token and refreshes the stored session. A rejected token drops the session.
	WhoAmI(ctx context.Context) (models.User, error)
}

// ClientCatalogService reads and changes the catalog through the server.
//
// Reads are served from the response cache while the entry is fresh; a miss
// performs one request and caches the result. Every successful change
// invalidates the cached paths it affects. Failed requests are never retried
// and never touch the cache.
type ClientCatalogService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, request models.ProjectCreateRequest) (models.Project, error)
	UpdateProject(ctx context.Context, id string, request models.ProjectUpdateRequest) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListPledges(ctx context.Context, filter models.PledgeFilter) ([]models.Pledge, error)
	// CreatePledge pledges as the logged-in user, or anonymously without a session.
	CreatePledge(ctx context.Context, request models.PledgeCreateRequest) (models.Pledge, error)

	Seed(ctx context.Context) (models.SeedResult, error)
	ServerVersion(ctx context.Context) (string, error)

	// ClearCache drops every cached response.
	ClearCache(ctx context.Context) error
}
