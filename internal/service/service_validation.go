package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/validators"
	"github.com/MKhiriev/go-green-pledge/models"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProjectServiceWrapper defines middleware composition for ProjectService.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}

// PledgeServiceWrapper defines middleware composition for PledgeService.
type PledgeServiceWrapper interface {
	Wrap(PledgeService) PledgeService
}

// authValidationService checks registration and login bodies before they
// reach the wrapped AuthService.
type authValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &authValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *authValidationService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during registration validation: %w", err)
	}

	return v.inner.RegisterUser(ctx, request)
}

func (v *authValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Login(ctx, request)
}

func (v *authValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *authValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *authValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *authValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// projectValidationService checks create and update bodies against the
// project field rules.
type projectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &projectValidationService{
		validator: validators.NewProjectValidator(),
	}
}

func (v *projectValidationService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return v.inner.ListProjects(ctx)
}

func (v *projectValidationService) GetProject(ctx context.Context, id string) (models.Project, error) {
	return v.inner.GetProject(ctx, id)
}

func (v *projectValidationService) CreateProject(ctx context.Context, request models.ProjectCreateRequest) (models.Project, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Project{}, fmt.Errorf("error during project validation before saving: %w", err)
	}

	return v.inner.CreateProject(ctx, request)
}

func (v *projectValidationService) UpdateProject(ctx context.Context, id string, request models.ProjectUpdateRequest) (models.Project, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Project{}, fmt.Errorf("error during project validation before update: %w", err)
	}

	return v.inner.UpdateProject(ctx, id, request)
}

func (v *projectValidationService) DeleteProject(ctx context.Context, id string) error {
	return v.inner.DeleteProject(ctx, id)
}

func (v *projectValidationService) Wrap(inner ProjectService) ProjectService {
	v.inner = inner
	return v
}

type pledgeValidationService struct {
	inner     PledgeService
	validator validators.Validator
}

func NewPledgeValidationService() PledgeServiceWrapper {
	return &pledgeValidationService{
		validator: validators.NewPledgeValidator(),
	}
}

func (v *pledgeValidationService) ListPledges(ctx context.Context, filter models.PledgeFilter) ([]models.Pledge, error) {
	return v.inner.ListPledges(ctx, filter)
}

func (v *pledgeValidationService) CreatePledge(ctx context.Context, request models.PledgeCreateRequest) (models.Pledge, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Pledge{}, fmt.Errorf("error during pledge validation before saving: %w", err)
	}

	return v.inner.CreatePledge(ctx, request)
}

func (v *pledgeValidationService) Wrap(inner PledgeService) PledgeService {
	v.inner = inner
	return v
}
