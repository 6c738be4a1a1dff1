package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/metrics"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/models"
)

const (
	seedAlreadyDoneMessage = "Database already seeded"
	seedDoneMessage        = "Database seeded successfully"
)

type seedService struct {
	projectRepository store.ProjectRepository

	logger *logger.Logger
}

func NewSeedService(projectRepository store.ProjectRepository, logger *logger.Logger) SeedService {
	return &seedService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// Seed inserts the demo catalog in one transaction when no project exists yet.
func (s *seedService) Seed(ctx context.Context) (models.SeedResult, error) {
	log := logger.FromContext(ctx)

	existing, err := s.projectRepository.GetAllProjects(ctx)
	if err != nil {
		return models.SeedResult{}, fmt.Errorf("error checking existing projects: %w", err)
	}
	if len(existing) > 0 {
		return models.SeedResult{Message: seedAlreadyDoneMessage}, nil
	}

	requests := seedProjects()
	inserts := make([]models.ProjectInsert, 0, len(requests))
	for _, request := range requests {
		insert, err := request.Insert()
		if err != nil {
			return models.SeedResult{}, fmt.Errorf("error parsing seed project %q: %w", request.Name, err)
		}
		inserts = append(inserts, insert)
	}

	created, err := s.projectRepository.CreateProjects(ctx, inserts...)
	if err != nil {
		log.Err(err).Str("func", "seedService.Seed").Msg("error inserting seed projects")
		return models.SeedResult{}, fmt.Errorf("error inserting seed projects: %w", err)
	}

	metrics.ProjectsCreated.Add(float64(len(created)))
	log.Info().Int("count", len(created)).Msg("database seeded")

	return models.SeedResult{Message: seedDoneMessage, Count: len(created)}, nil
}

func seedProjects() []models.ProjectCreateRequest {
	return []models.ProjectCreateRequest{
		{
			Name:         "Amazon Rainforest Restoration",
			Description:  "Restoring degraded rainforest areas in the Brazilian Amazon through native species reforestation and community engagement.",
			Location:     "Brazil, South America",
			Latitude:     "-3.4653",
			Longitude:    "-62.2159",
			ProjectType:  string(models.ProjectTypeReforestation),
			Area:         numeric("1200.50"),
			TreesPlanted: numeric("450000"),
			CO2Offset:    numeric("9000.00"),
			ImageURL:     text("https://images.unsplash.com/photo-1516026672322-bc52d61a55d5?q=80&w=800&auto=format&fit=crop"),
			Status:       text(string(models.ProjectStatusActive)),
		},
		{
			Name:         "African Savanna Conservation",
			Description:  "Protecting and restoring savanna ecosystems in Kenya through sustainable land management and wildlife corridor preservation.",
			Location:     "Kenya, East Africa",
			Latitude:     "-1.2921",
			Longitude:    "36.8219",
			ProjectType:  string(models.ProjectTypeConservation),
			Area:         numeric("800.00"),
			TreesPlanted: numeric("180000"),
			CO2Offset:    numeric("3600.00"),
			ImageURL:     text("https://images.unsplash.com/photo-1547471080-7cc2caa01a7e?q=80&w=800&auto=format&fit=crop"),
			Status:       text(string(models.ProjectStatusActive)),
		},
		{
			Name:         "Boreal Forest Protection",
			Description:  "Preserving ancient boreal forests in Canada and promoting sustainable forestry practices to combat climate change.",
			Location:     "Canada, North America",
			Latitude:     "56.1304",
			Longitude:    "-106.3468",
			ProjectType:  string(models.ProjectTypeConservation),
			Area:         numeric("2500.00"),
			TreesPlanted: numeric("0"),
			CO2Offset:    numeric("15000.00"),
			ImageURL:     text("https://images.unsplash.com/photo-1511497584788-876760111969?q=80&w=800&auto=format&fit=crop"),
			Status:       text(string(models.ProjectStatusActive)),
		},
		{
			Name:         "Mangrove Coastal Restoration",
			Description:  "Restoring vital mangrove ecosystems along the coast of Indonesia to protect against erosion and support marine biodiversity.",
			Location:     "Indonesia, Southeast Asia",
			Latitude:     "-0.7893",
			Longitude:    "113.9213",
			ProjectType:  string(models.ProjectTypeRestoration),
			Area:         numeric("450.00"),
			TreesPlanted: numeric("280000"),
			CO2Offset:    numeric("5600.00"),
			ImageURL:     text("https://images.unsplash.com/photo-1559827260-dc66d52bef19?q=80&w=800&auto=format&fit=crop"),
			Status:       text(string(models.ProjectStatusActive)),
		},
		{
			Name:         "Urban Green Corridor Initiative",
			Description:  "Creating interconnected green spaces and tree corridors in urban areas of India to improve air quality and biodiversity.",
			Location:     "India, South Asia",
			Latitude:     "20.5937",
			Longitude:    "78.9629",
			ProjectType:  string(models.ProjectTypeAfforestation),
			Area:         numeric("150.00"),
			TreesPlanted: numeric("95000"),
			CO2Offset:    numeric("1900.00"),
			ImageURL:     text("https://images.unsplash.com/photo-1524492412937-b28074a5d7da?q=80&w=800&auto=format&fit=crop"),
			Status:       text(string(models.ProjectStatusActive)),
		},
		{
			Name:         "Mediterranean Forest Recovery",
			Description:  "Recovering fire-damaged Mediterranean forests in Spain through native oak and pine reforestation programs.",
			Location:     "Spain, Europe",
			Latitude:     "40.4637",
			Longitude:    "-3.7492",
			ProjectType:  string(models.ProjectTypeRestoration),
			Area:         numeric("680.00"),
			TreesPlanted: numeric("320000"),
			CO2Offset:    numeric("6400.00"),
			ImageURL:     text("https://images.unsplash.com/photo-1542601906990-b4d3fb778b09?q=80&w=800&auto=format&fit=crop"),
			Status:       text(string(models.ProjectStatusCompleted)),
		},
	}
}

func numeric(v string) *models.NumericString {
	n := models.NumericString(v)
	return &n
}

func text(v string) *string {
	return &v
}
