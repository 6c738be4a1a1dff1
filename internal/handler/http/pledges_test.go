package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-green-pledge/internal/app"
	"github.com/MKhiriev/go-green-pledge/internal/service"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListPledges_PassesFilter(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter models.PledgeFilter
	}{
		{name: "all", query: "", filter: models.PledgeFilter{}},
		{name: "by user", query: "?userId=u-1", filter: models.PledgeFilter{UserID: "u-1"}},
		{name: "by project", query: "?projectId=p-1", filter: models.PledgeFilter{ProjectID: "p-1"}},
		{name: "both", query: "?userId=u-1&projectId=p-1", filter: models.PledgeFilter{UserID: "u-1", ProjectID: "p-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newTestServer(t, defaultTestConfig())
			mocks.pledges.EXPECT().ListPledges(gomock.Any(), tt.filter).Return([]models.Pledge{{ID: "pl-1"}}, nil)

			resp := doRequest(t, srv, http.MethodGet, "/api/pledges"+tt.query, "", "")

			require.Equal(t, http.StatusOK, resp.StatusCode)
			var pledges []models.Pledge
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&pledges))
			assert.Len(t, pledges, 1)
		})
	}
}

func TestCreatePledge_Anonymous(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.pledges.EXPECT().CreatePledge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req models.PledgeCreateRequest) (models.Pledge, error) {
			_, ok := utils.GetUserIDFromContext(ctx)
			assert.False(t, ok)
			assert.Equal(t, models.NumericString("25.50"), req.Amount)
			return models.Pledge{ID: "pl-1", ProjectID: req.ProjectID}, nil
		})

	resp := doRequest(t, srv, http.MethodPost, "/api/pledges", `{"projectId":"p-1","amount":"25.50"}`, "")

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var got models.Pledge
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "pl-1", got.ID)
}

func TestCreatePledge_AuthenticatedCallerInContext(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.expectAuthenticated("u-1")
	mocks.pledges.EXPECT().CreatePledge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.PledgeCreateRequest) (models.Pledge, error) {
			userID, ok := utils.GetUserIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "u-1", userID)
			return models.Pledge{ID: "pl-1", UserID: &userID}, nil
		})

	resp := doRequest(t, srv, http.MethodPost, "/api/pledges", `{"projectId":"p-1","amount":"10"}`, "good")

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreatePledge_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "foreign user id",
			err:         service.ErrForeignUserID,
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgForeignUserID,
		},
		{
			name:        "missing project",
			err:         fmt.Errorf("pledge creation failed: %w", store.ErrProjectReferenceNotFound),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidPledgeData,
		},
		{
			name:        "unparseable amount",
			err:         fmt.Errorf("%w: amount", service.ErrInvalidDataProvided),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidPledgeData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newTestServer(t, defaultTestConfig())
			mocks.pledges.EXPECT().CreatePledge(gomock.Any(), gomock.Any()).Return(models.Pledge{}, tt.err)

			resp := doRequest(t, srv, http.MethodPost, "/api/pledges", `{"projectId":"p-1","amount":"10","userId":"u-2"}`, "")

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantMessage, decodeError(t, resp).Error)
		})
	}
}

// A present but bad token is rejected rather than treated as anonymous.
func TestCreatePledge_BadTokenRejected(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "bad").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	resp := doRequest(t, srv, http.MethodPost, "/api/pledges", `{"projectId":"p-1","amount":"10"}`, "bad")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, decodeError(t, resp).Error)
}
