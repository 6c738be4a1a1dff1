package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
	sq "github.com/Masterminds/squirrel"
)

// pledgeRepository is the SQL implementation of [PledgeRepository] over the
// "pledges" table.
type pledgeRepository struct {
	*DB
	ids    utils.IDGenerator
	logger *logger.Logger
}

// NewPledgeRepository constructs a [PledgeRepository] backed by db.
func NewPledgeRepository(db *DB, ids utils.IDGenerator, logger *logger.Logger) PledgeRepository {
	logger.Debug().Msg("creating pledge repository")
	return &pledgeRepository{
		DB:     db,
		ids:    ids,
		logger: logger,
	}
}

func (p *pledgeRepository) GetAllPledges(ctx context.Context) ([]models.Pledge, error) {
	return p.getPledges(ctx, "pledgeRepository.GetAllPledges", nil)
}

func (p *pledgeRepository) GetPledgesByUser(ctx context.Context, userID string) ([]models.Pledge, error) {
	return p.getPledges(ctx, "pledgeRepository.GetPledgesByUser", sq.Eq{"user_id": userID})
}

func (p *pledgeRepository) GetPledgesByProject(ctx context.Context, projectID string) ([]models.Pledge, error) {
	return p.getPledges(ctx, "pledgeRepository.GetPledgesByProject", sq.Eq{"project_id": projectID})
}

// getPledges returns the pledges matching where (all when where is nil)
// in creation order. Returns an empty slice when nothing matches.
func (p *pledgeRepository) getPledges(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Pledge, error) {
	log := logger.FromContext(ctx)

	builder := p.selectPledges()
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for getting pledges")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pledges := make([]models.Pledge, 0, 16)
	for rows.Next() {
		pledge, scanErr := scanPledge(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan pledge row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		pledges = append(pledges, pledge)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pledges, nil
}

// CreatePledge inserts a pledge and returns it with generated id and timestamp.
//
// Error handling:
//   - missing project → [ErrProjectReferenceNotFound].
//   - missing user → [ErrUserReferenceNotFound].
func (p *pledgeRepository) CreatePledge(ctx context.Context, insert models.PledgeInsert) (models.Pledge, error) {
	log := logger.FromContext(ctx)

	pledge := insert.Pledge(p.ids.Generate(), storeNow())

	query, args, err := p.insertPledge(pledge).ToSql()
	if err != nil {
		return models.Pledge{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.ExecContext(ctx, query, args...); err != nil {
		if violation := p.classify(err); violation.Kind == ForeignKeyViolation {
			return models.Pledge{}, p.missingReference(ctx, violation.Constraint, pledge)
		}

		log.Err(err).Str("func", "pledgeRepository.CreatePledge").Str("project_id", pledge.ProjectID).Msg("failed to insert pledge")
		return models.Pledge{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return pledge, nil
}

// missingReference resolves which reference of a rejected pledge is missing.
// PostgreSQL names the constraint; SQLite does not, so the referenced
// project is looked up instead.
func (p *pledgeRepository) missingReference(ctx context.Context, constraint string, pledge models.Pledge) error {
	switch {
	case strings.Contains(constraint, "project"):
		return ErrProjectReferenceNotFound
	case strings.Contains(constraint, "user"):
		return ErrUserReferenceNotFound
	}

	query, args, err := p.builder().Select("1").From(models.Project{}.TableName()).Where(sq.Eq{"id": pledge.ProjectID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = p.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrProjectReferenceNotFound
	case err != nil:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	case pledge.UserID != nil:
		return ErrUserReferenceNotFound
	}

	return ErrProjectReferenceNotFound
}
