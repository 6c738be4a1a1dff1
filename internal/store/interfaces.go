package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-green-pledge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered accounts.
type UserRepository interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.UserInsert) (models.User, error)
}

// ProjectRepository persists conservation projects.
type ProjectRepository interface {
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, project models.ProjectInsert) (models.Project, error)
	CreateProjects(ctx context.Context, projects ...models.ProjectInsert) ([]models.Project, error)
	UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
}

// PledgeRepository persists pledges. Pledges are never updated or deleted.
type PledgeRepository interface {
	GetAllPledges(ctx context.Context) ([]models.Pledge, error)
	GetPledgesByUser(ctx context.Context, userID string) ([]models.Pledge, error)
	GetPledgesByProject(ctx context.Context, projectID string) ([]models.Pledge, error)
	CreatePledge(ctx context.Context, pledge models.PledgeInsert) (models.Pledge, error)
}

// Storage is the complete persistence contract of the server.
type Storage interface {
	UserRepository
	ProjectRepository
	PledgeRepository
}

// ResponseCache keeps raw response bodies keyed by request path (plus query).
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	// InvalidatePrefix drops every entry whose key equals prefix or
	// continues it with "/" or "?".
	InvalidatePrefix(ctx context.Context, prefix string) error
	Clear(ctx context.Context) error
}

// SessionRepository keeps the identity the client is logged in as.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
