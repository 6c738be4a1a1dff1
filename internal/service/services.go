package service

import (
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProjectService ProjectService
	PledgeService  PledgeService
	SeedService    SeedService
	AppInfoService AppInfoService
}

// NewServices wires the server services over storage. Request-facing
// services are wrapped with their validation layer.
func NewServices(storage store.Storage, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storage, cfg.App, logger)),
		ProjectService: NewProjectValidationService().Wrap(NewProjectService(storage, logger)),
		PledgeService:  NewPledgeValidationService().Wrap(NewPledgeService(storage, logger)),
		SeedService:    NewSeedService(storage, logger),
		AppInfoService: appInfoService,
	}, nil
}
