package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
	sq "github.com/Masterminds/squirrel"
)

// projectRepository is the SQL implementation of [ProjectRepository] over the
// "projects" table.
type projectRepository struct {
	*DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] backed by db.
func NewProjectRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		ids:    ids,
		logger: logger,
	}
}

// GetAllProjects returns every project in insertion order.
// Returns an empty slice when the catalog is empty.
func (p *projectRepository) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.selectProjects().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.GetAllProjects").Msg("failed to execute query for getting all projects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		project, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "projectRepository.GetAllProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "projectRepository.GetAllProjects").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// GetProject returns the project with the given id or [ErrProjectNotFound].
func (p *projectRepository) GetProject(ctx context.Context, id string) (models.Project, error) {
	return p.getProject(ctx, p.DB.DB, id)
}

func (p *projectRepository) getProject(ctx context.Context, q queryRower, id string) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.selectProjects().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	project, err := scanProject(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "projectRepository.GetProject").Str("project_id", id).Msg("failed to scan project row")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return project, nil
}

// CreateProject inserts a project and returns it with generated id and timestamp.
func (p *projectRepository) CreateProject(ctx context.Context, insert models.ProjectInsert) (models.Project, error) {
	project := insert.Project(p.ids.Generate(), storeNow())

	if err := p.execInsert(ctx, p.DB.DB, project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// CreateProjects inserts all projects in a single transaction: either every
// project is stored or none is.
func (p *projectRepository) CreateProjects(ctx context.Context, inserts ...models.ProjectInsert) ([]models.Project, error) {
	projects := make([]models.Project, 0, len(inserts))
	now := storeNow()

	err := p.withinTx(ctx, func(tx *sql.Tx) error {
		for _, insert := range inserts {
			project := insert.Project(p.ids.Generate(), now)
			if err := p.execInsert(ctx, tx, project); err != nil {
				return err
			}
			projects = append(projects, project)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "projectRepository.CreateProjects").Int("count", len(inserts)).Msg("batch insert rolled back")
		return nil, err
	}

	return projects, nil
}

func (p *projectRepository) execInsert(ctx context.Context, exec execer, project models.Project) error {
	query, args, err := p.insertProject(project).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = exec.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "projectRepository.execInsert").Msg("failed to insert project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateProject merges the fields present in patch into the stored project
// and returns the updated record. Absent fields are left unchanged.
// An empty patch returns the current record.
func (p *projectRepository) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (models.Project, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return p.GetProject(ctx, id)
	}

	query, args, err := p.updateProject(id, patch).ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Project
	err = p.withinTx(ctx, func(tx *sql.Tx) error {
		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).Str("func", "projectRepository.UpdateProject").Str("project_id", id).Msg("failed to update project")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, execErr := result.RowsAffected()
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		if affected == 0 {
			return ErrProjectNotFound
		}

		updated, execErr = p.getProject(ctx, tx, id)
		return execErr
	})
	if err != nil {
		return models.Project{}, err
	}

	return updated, nil
}

// DeleteProject removes the project and reports whether a record existed.
// A project still referenced by pledges is kept and [ErrProjectHasPledges]
// is returned.
func (p *projectRepository) DeleteProject(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.builder().Delete(models.Project{}.TableName()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		if p.classify(err).Kind == ForeignKeyViolation {
			return false, ErrProjectHasPledges
		}
		log.Err(err).Str("func", "projectRepository.DeleteProject").Str("project_id", id).Msg("failed to delete project")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
