package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-green-pledge/internal/adapter"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/mock"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCacheTTL = time.Minute

// newTestCatalogSvc builds the service over a real in-memory cache so that
// invalidation is exercised end to end.
func newTestCatalogSvc(t *testing.T) (*clientCatalogService, *mock.MockServerAdapter, *mock.MockSessionRepository, store.ResponseCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)
	cache := store.NewMemoryCache()

	svc := NewClientCatalogService(cache, mockSessions, mockAdapter, testCacheTTL, logger.Nop()).(*clientCatalogService)
	return svc, mockAdapter, mockSessions, cache
}

func TestClientCatalog_ListProjects_CachesAfterFirstFetch(t *testing.T) {
	svc, mockAdapter, _, _ := newTestCatalogSvc(t)
	ctx := context.Background()

	project := models.Project{
		ID:        "p-1",
		Name:      "Mangroves",
		Latitude:  decimal.RequireFromString("-3.4653"),
		Longitude: decimal.RequireFromString("-62.2159"),
		Area:      decimal.NewNullDecimal(decimal.RequireFromString("1500.50")),
	}
	mockAdapter.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{project}, nil).Times(1)

	first, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	second, err := svc.ListProjects(ctx)
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, project.Name, second[0].Name)
	assert.True(t, project.Latitude.Equal(second[0].Latitude))
	assert.True(t, project.Longitude.Equal(second[0].Longitude))
	assert.True(t, project.Area.Decimal.Equal(second[0].Area.Decimal))

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestClientCatalog_FailedFetchIsNotCached(t *testing.T) {
	svc, mockAdapter, _, cache := newTestCatalogSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().GetProject(gomock.Any(), "p-404").
		Return(models.Project{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, "Project not found"))

	_, err := svc.GetProject(ctx, "p-404")
	require.ErrorIs(t, err, store.ErrProjectNotFound)

	_, err = cache.Get(ctx, adapter.ProjectPath("p-404"))
	assert.ErrorIs(t, err, store.ErrCacheMiss)
}

func TestClientCatalog_UpdateProject_InvalidatesListAndItem(t *testing.T) {
	svc, mockAdapter, mockSessions, cache := newTestCatalogSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{{ID: "p-1", Name: "Old"}}, nil)
	mockAdapter.EXPECT().GetProject(gomock.Any(), "p-1").Return(models.Project{ID: "p-1", Name: "Old"}, nil)
	_, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	_, err = svc.GetProject(ctx, "p-1")
	require.NoError(t, err)

	// a pledge listing must survive a project update
	require.NoError(t, cache.Set(ctx, adapter.PledgesPath, []byte(`[]`), testCacheTTL))

	name := "New"
	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{Token: "t"}, nil)
	mockAdapter.EXPECT().UpdateProject(gomock.Any(), "t", "p-1", gomock.Any()).Return(models.Project{ID: "p-1", Name: name}, nil)

	_, err = svc.UpdateProject(ctx, "p-1", models.ProjectUpdateRequest{Name: &name})
	require.NoError(t, err)

	_, err = cache.Get(ctx, adapter.ProjectsPath)
	assert.ErrorIs(t, err, store.ErrCacheMiss)
	_, err = cache.Get(ctx, adapter.ProjectPath("p-1"))
	assert.ErrorIs(t, err, store.ErrCacheMiss)
	_, err = cache.Get(ctx, adapter.PledgesPath)
	assert.NoError(t, err)

	mockAdapter.EXPECT().GetProject(gomock.Any(), "p-1").Return(models.Project{ID: "p-1", Name: name}, nil)
	project, err := svc.GetProject(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, name, project.Name)
}

func TestClientCatalog_FailedMutationKeepsCache(t *testing.T) {
	svc, mockAdapter, mockSessions, cache := newTestCatalogSvc(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, adapter.ProjectsPath, []byte(`[]`), testCacheTTL))

	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{Token: "t"}, nil)
	mockAdapter.EXPECT().DeleteProject(gomock.Any(), "t", "p-1").
		Return(fmt.Errorf("%w: %s", adapter.ErrConflict, "Project has pledges"))

	err := svc.DeleteProject(ctx, "p-1")
	require.ErrorIs(t, err, store.ErrProjectHasPledges)

	_, err = cache.Get(ctx, adapter.ProjectsPath)
	assert.NoError(t, err)
}

func TestClientCatalog_CreateProject_RequiresSession(t *testing.T) {
	svc, _, mockSessions, _ := newTestCatalogSvc(t)

	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.CreateProject(context.Background(), models.ProjectCreateRequest{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientCatalog_CreatePledge_AnonymousAndInvalidatesPledges(t *testing.T) {
	svc, mockAdapter, mockSessions, cache := newTestCatalogSvc(t)
	ctx := context.Background()

	filterKey := adapter.PledgesQueryPath(models.PledgeFilter{ProjectID: "p-1"})
	require.NoError(t, cache.Set(ctx, filterKey, []byte(`[]`), testCacheTTL))
	require.NoError(t, cache.Set(ctx, adapter.ProjectsPath, []byte(`[]`), testCacheTTL))

	req := models.PledgeCreateRequest{ProjectID: "p-1", Amount: "10"}
	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)
	mockAdapter.EXPECT().CreatePledge(gomock.Any(), "", req).Return(models.Pledge{ID: "pl-1"}, nil)

	_, err := svc.CreatePledge(ctx, req)
	require.NoError(t, err)

	_, err = cache.Get(ctx, filterKey)
	assert.ErrorIs(t, err, store.ErrCacheMiss)
	_, err = cache.Get(ctx, adapter.ProjectsPath)
	assert.NoError(t, err)
}

func TestClientCatalog_CreatePledge_ExpiredSession(t *testing.T) {
	svc, _, mockSessions, _ := newTestCatalogSvc(t)
	now := time.Now()
	svc.now = func() time.Time { return now }

	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{Token: "t", ExpiresAt: now.Add(-time.Minute)}, nil)

	_, err := svc.CreatePledge(context.Background(), models.PledgeCreateRequest{ProjectID: "p-1", Amount: "10"})
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientCatalog_UndecodableEntryIsRefetched(t *testing.T) {
	svc, mockAdapter, _, cache := newTestCatalogSvc(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, adapter.ProjectsPath, []byte(`{not json`), testCacheTTL))
	mockAdapter.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{{ID: "p-1"}}, nil)

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	body, err := cache.Get(ctx, adapter.ProjectsPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(body))
}

func TestClientCatalog_CacheReadErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockResponseCache(ctrl)
	svc := NewClientCatalogService(mockCache, mock.NewMockSessionRepository(ctrl), mockAdapter, testCacheTTL, logger.Nop())

	mockCache.EXPECT().Get(gomock.Any(), adapter.ProjectsPath).Return(nil, errors.New("database is locked"))
	mockAdapter.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{}, nil)
	mockCache.EXPECT().Set(gomock.Any(), adapter.ProjectsPath, []byte(`[]`), testCacheTTL).Return(nil)

	projects, err := svc.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestClientCatalog_Seed_InvalidatesProjects(t *testing.T) {
	svc, mockAdapter, _, cache := newTestCatalogSvc(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, adapter.ProjectsPath, []byte(`[]`), testCacheTTL))
	mockAdapter.EXPECT().Seed(gomock.Any()).Return(models.SeedResult{Message: "Database seeded successfully", Count: 6}, nil)

	result, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Count)

	_, err = cache.Get(ctx, adapter.ProjectsPath)
	assert.ErrorIs(t, err, store.ErrCacheMiss)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "duplicate username", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Username already exists"), want: store.ErrUsernameAlreadyExists},
		{name: "invalid project", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Invalid project data (name: is required)"), want: ErrInvalidDataProvided},
		{name: "invalid pledge", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Invalid pledge data"), want: ErrInvalidDataProvided},
		{name: "bad token", in: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "Authentication required"), want: ErrTokenIsExpiredOrInvalid},
		{name: "forbidden", in: fmt.Errorf("%w: %s", adapter.ErrForbidden, "Cannot pledge on behalf of another user"), want: ErrForeignUserID},
		{name: "not found", in: fmt.Errorf("%w: %s", adapter.ErrNotFound, "Project not found"), want: store.ErrProjectNotFound},
		{name: "unmapped", in: fmt.Errorf("%w: %s", adapter.ErrTooManyRequests, "Too many requests"), want: adapter.ErrTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
