package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/mock"
	"github.com/MKhiriev/go-green-pledge/internal/validators"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeedService_Seed_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	svc := NewSeedService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetAllProjects(ctx).Return([]models.Project{}, nil)
	repo.EXPECT().CreateProjects(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, inserts ...models.ProjectInsert) ([]models.Project, error) {
			require.Len(t, inserts, 6)
			assert.Equal(t, "Amazon Rainforest Restoration", inserts[0].Name)
			assert.Equal(t, models.ProjectStatusCompleted, inserts[5].Status)

			projects := make([]models.Project, len(inserts))
			for i, insert := range inserts {
				projects[i] = insert.Project("p", storeTime())
			}
			return projects, nil
		},
	).Times(1)

	result, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SeedResult{Message: "Database seeded successfully", Count: 6}, result)
}

func TestSeedService_Seed_AlreadySeeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	svc := NewSeedService(repo, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().GetAllProjects(ctx).Return([]models.Project{{ID: "p-1"}}, nil)

	result, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Database already seeded", result.Message)
	assert.Zero(t, result.Count)
}

func TestSeedService_Seed_InsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	svc := NewSeedService(repo, logger.Nop())
	ctx := context.Background()
	dbErr := errors.New("tx aborted")

	repo.EXPECT().GetAllProjects(ctx).Return(nil, nil)
	repo.EXPECT().CreateProjects(ctx, gomock.Any()).Return(nil, dbErr)

	_, err := svc.Seed(ctx)
	assert.ErrorIs(t, err, dbErr)
}

func TestSeedProjects_PassValidation(t *testing.T) {
	v := validators.NewProjectValidator()
	for _, req := range seedProjects() {
		assert.NoError(t, v.Validate(context.Background(), req), req.Name)
	}
}
