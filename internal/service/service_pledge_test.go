package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/mock"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/internal/validators"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storeTime() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestPledgeSvc(t *testing.T) (PledgeService, *mock.MockPledgeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPledgeRepository(ctrl)

	return NewPledgeService(repo, logger.Nop()), repo
}

func TestPledgeService_ListPledges_FilterPrecedence(t *testing.T) {
	t.Run("user wins over project", func(t *testing.T) {
		svc, repo := newTestPledgeSvc(t)
		repo.EXPECT().GetPledgesByUser(gomock.Any(), "u-1").Return([]models.Pledge{{ID: "pl-1"}}, nil)

		pledges, err := svc.ListPledges(context.Background(), models.PledgeFilter{UserID: "u-1", ProjectID: "p-1"})
		require.NoError(t, err)
		assert.Len(t, pledges, 1)
	})

	t.Run("project", func(t *testing.T) {
		svc, repo := newTestPledgeSvc(t)
		repo.EXPECT().GetPledgesByProject(gomock.Any(), "p-1").Return([]models.Pledge{}, nil)

		pledges, err := svc.ListPledges(context.Background(), models.PledgeFilter{ProjectID: "p-1"})
		require.NoError(t, err)
		assert.Empty(t, pledges)
	})

	t.Run("all", func(t *testing.T) {
		svc, repo := newTestPledgeSvc(t)
		repo.EXPECT().GetAllPledges(gomock.Any()).Return([]models.Pledge{{ID: "pl-1"}, {ID: "pl-2"}}, nil)

		pledges, err := svc.ListPledges(context.Background(), models.PledgeFilter{})
		require.NoError(t, err)
		assert.Len(t, pledges, 2)
	})
}

func TestPledgeService_CreatePledge_Anonymous(t *testing.T) {
	svc, repo := newTestPledgeSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreatePledge(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, insert models.PledgeInsert) (models.Pledge, error) {
			assert.Nil(t, insert.UserID)
			assert.Equal(t, "p-1", insert.ProjectID)
			assert.Equal(t, "25", insert.Amount.String())
			return insert.Pledge("pl-1", storeTime()), nil
		},
	)

	pledge, err := svc.CreatePledge(ctx, models.PledgeCreateRequest{ProjectID: "p-1", Amount: "25.00"})
	require.NoError(t, err)
	assert.Equal(t, "pl-1", pledge.ID)
}

func TestPledgeService_CreatePledge_AuthenticatedFillsUserID(t *testing.T) {
	svc, repo := newTestPledgeSvc(t)
	ctx := utils.WithUserID(context.Background(), "u-1")

	repo.EXPECT().CreatePledge(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, insert models.PledgeInsert) (models.Pledge, error) {
			require.NotNil(t, insert.UserID)
			assert.Equal(t, "u-1", *insert.UserID)
			return insert.Pledge("pl-1", storeTime()), nil
		},
	)

	_, err := svc.CreatePledge(ctx, models.PledgeCreateRequest{ProjectID: "p-1", Amount: "10"})
	require.NoError(t, err)
}

func TestPledgeService_CreatePledge_ForeignUserID(t *testing.T) {
	other := "u-2"

	t.Run("authenticated as someone else", func(t *testing.T) {
		svc, _ := newTestPledgeSvc(t)
		ctx := utils.WithUserID(context.Background(), "u-1")

		_, err := svc.CreatePledge(ctx, models.PledgeCreateRequest{UserID: &other, ProjectID: "p-1", Amount: "10"})
		assert.ErrorIs(t, err, ErrForeignUserID)
	})

	t.Run("anonymous naming a user", func(t *testing.T) {
		svc, _ := newTestPledgeSvc(t)

		_, err := svc.CreatePledge(context.Background(), models.PledgeCreateRequest{UserID: &other, ProjectID: "p-1", Amount: "10"})
		assert.ErrorIs(t, err, ErrForeignUserID)
	})

	t.Run("own id is accepted", func(t *testing.T) {
		svc, repo := newTestPledgeSvc(t)
		ctx := utils.WithUserID(context.Background(), other)
		repo.EXPECT().CreatePledge(ctx, gomock.Any()).Return(models.Pledge{ID: "pl-1", UserID: &other}, nil)

		_, err := svc.CreatePledge(ctx, models.PledgeCreateRequest{UserID: &other, ProjectID: "p-1", Amount: "10"})
		assert.NoError(t, err)
	})
}

func TestPledgeService_CreatePledge_MissingProject(t *testing.T) {
	svc, repo := newTestPledgeSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreatePledge(ctx, gomock.Any()).Return(models.Pledge{}, store.ErrProjectReferenceNotFound)

	_, err := svc.CreatePledge(ctx, models.PledgeCreateRequest{ProjectID: "nope", Amount: "10"})
	assert.ErrorIs(t, err, store.ErrProjectReferenceNotFound)
}

func TestPledgeValidationService_RejectsZeroAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewPledgeValidationService().Wrap(mock.NewMockPledgeService(ctrl))

	_, err := svc.CreatePledge(context.Background(), models.PledgeCreateRequest{ProjectID: "p-1", Amount: "0"})
	assert.ErrorIs(t, err, validators.ErrNotPositive)
}

func TestPledgeValidationService_PassesListThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockPledgeService(ctrl)
	svc := NewPledgeValidationService().Wrap(inner)

	filter := models.PledgeFilter{ProjectID: "p-1"}
	inner.EXPECT().ListPledges(gomock.Any(), filter).Return([]models.Pledge{{ID: "pl-1"}}, nil)

	pledges, err := svc.ListPledges(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, pledges, 1)
}
