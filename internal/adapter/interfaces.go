// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the green-pledge server.
//
// [ServerAdapter] decouples the client service layer from HTTP. The package
// ships one implementation over go-resty ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-green-pledge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter performs typed requests against every route of the server.
//
// The adapter keeps no identity of its own: authenticated calls take the
// bearer token explicitly, and an empty token sends no Authorization header.
// Each call performs exactly one request.
type ServerAdapter interface {
	// Register creates an account and returns it with the issued bearer token.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, string, error)

	// Login authenticates and returns the account with the issued bearer token.
	Login(ctx context.Context, request models.LoginRequest) (models.User, string, error)

	// Me returns the account the token belongs to.
	Me(ctx context.Context, token string) (models.User, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, token string, request models.ProjectCreateRequest) (models.Project, error)
	UpdateProject(ctx context.Context, token, id string, request models.ProjectUpdateRequest) (models.Project, error)
	DeleteProject(ctx context.Context, token, id string) error

	// ListPledges applies the server's filter precedence: userId, then projectId.
	ListPledges(ctx context.Context, filter models.PledgeFilter) ([]models.Pledge, error)

	// CreatePledge records a pledge; token may be empty for an anonymous pledge.
	CreatePledge(ctx context.Context, token string, request models.PledgeCreateRequest) (models.Pledge, error)

	Seed(ctx context.Context) (models.SeedResult, error)
	Version(ctx context.Context) (string, error)
}
