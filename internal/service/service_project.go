package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/metrics"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/models"
)

type projectService struct {
	projectRepository store.ProjectRepository

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

func (p *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := p.projectRepository.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	return projects, nil
}

func (p *projectService) GetProject(ctx context.Context, id string) (models.Project, error) {
	project, err := p.projectRepository.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("error getting project: %w", err)
	}

	return project, nil
}

// CreateProject parses the request into its storage shape and persists it.
// A request that cannot be parsed yields ErrInvalidDataProvided.
func (p *projectService) CreateProject(ctx context.Context, request models.ProjectCreateRequest) (models.Project, error) {
	log := logger.FromContext(ctx)

	insert, err := request.Insert()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	project, err := p.projectRepository.CreateProject(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "projectService.CreateProject").Msg("error creating project")
		return models.Project{}, fmt.Errorf("error creating project: %w", err)
	}

	metrics.ProjectsCreated.Inc()
	log.Info().Str("project_id", project.ID).Msg("project created")

	return project, nil
}

// UpdateProject applies the provided fields and returns the merged project.
func (p *projectService) UpdateProject(ctx context.Context, id string, request models.ProjectUpdateRequest) (models.Project, error) {
	patch, err := request.Patch()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	project, err := p.projectRepository.UpdateProject(ctx, id, patch)
	if err != nil {
		return models.Project{}, fmt.Errorf("error updating project: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("project_id", id).Msg("project updated")
	return project, nil
}

// DeleteProject returns store.ErrProjectNotFound when nothing was removed
// and store.ErrProjectHasPledges when pledges still reference the project.
func (p *projectService) DeleteProject(ctx context.Context, id string) error {
	deleted, err := p.projectRepository.DeleteProject(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	if !deleted {
		return store.ErrProjectNotFound
	}

	logger.FromContext(ctx).Info().Str("project_id", id).Msg("project deleted")
	return nil
}
