package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/metrics"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
)

type pledgeService struct {
	pledgeRepository store.PledgeRepository

	logger *logger.Logger
}

func NewPledgeService(pledgeRepository store.PledgeRepository, logger *logger.Logger) PledgeService {
	return &pledgeService{
		pledgeRepository: pledgeRepository,
		logger:           logger,
	}
}

// ListPledges filters by user when filter.UserID is set, otherwise by
// project when filter.ProjectID is set, otherwise returns every pledge.
func (p *pledgeService) ListPledges(ctx context.Context, filter models.PledgeFilter) ([]models.Pledge, error) {
	var (
		pledges []models.Pledge
		err     error
	)

	switch {
	case filter.UserID != "":
		pledges, err = p.pledgeRepository.GetPledgesByUser(ctx, filter.UserID)
	case filter.ProjectID != "":
		pledges, err = p.pledgeRepository.GetPledgesByProject(ctx, filter.ProjectID)
	default:
		pledges, err = p.pledgeRepository.GetAllPledges(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing pledges: %w", err)
	}

	return pledges, nil
}

// CreatePledge records a pledge on behalf of the caller.
//
// An authenticated caller pledges as themselves: an absent userId is filled
// with the caller's id and any other id is rejected with ErrForeignUserID.
// An anonymous caller may not name a user at all.
func (p *pledgeService) CreatePledge(ctx context.Context, request models.PledgeCreateRequest) (models.Pledge, error) {
	log := logger.FromContext(ctx)

	callerID, authenticated := utils.GetUserIDFromContext(ctx)
	if request.UserID != nil && (!authenticated || *request.UserID != callerID) {
		log.Debug().Bool("authenticated", authenticated).Msg("pledge names a foreign user")
		return models.Pledge{}, ErrForeignUserID
	}
	if authenticated && request.UserID == nil {
		request.UserID = &callerID
	}

	insert, err := request.Insert()
	if err != nil {
		return models.Pledge{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	pledge, err := p.pledgeRepository.CreatePledge(ctx, insert)
	if err != nil {
		log.Err(err).Str("func", "pledgeService.CreatePledge").Str("project_id", insert.ProjectID).Msg("error creating pledge")
		return models.Pledge{}, fmt.Errorf("error creating pledge: %w", err)
	}

	metrics.PledgesCreated.Inc()
	log.Info().Str("pledge_id", pledge.ID).Str("project_id", pledge.ProjectID).Msg("pledge recorded")

	return pledge, nil
}
