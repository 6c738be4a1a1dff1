package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-green-pledge/internal/app"
	"github.com/MKhiriev/go-green-pledge/internal/store"
	"github.com/MKhiriev/go-green-pledge/internal/validators"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListProjects(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.projects.EXPECT().ListProjects(gomock.Any()).Return([]models.Project{{ID: "p-1"}, {ID: "p-2"}}, nil)

	resp := doRequest(t, srv, http.MethodGet, "/api/projects", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var projects []models.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	assert.Len(t, projects, 2)
}

func TestListProjects_Failure(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.projects.EXPECT().ListProjects(gomock.Any()).Return(nil, fmt.Errorf("%w: timeout", store.ErrExecutingQuery))

	resp := doRequest(t, srv, http.MethodGet, "/api/projects", "", "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, app.MsgFailedToFetchProjects, decodeError(t, resp).Error)
}

func TestGetProject(t *testing.T) {
	tests := []struct {
		name       string
		project    models.Project
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "found", project: models.Project{ID: "p-1", Name: "Mangroves"}, wantStatus: http.StatusOK},
		{name: "not found", err: store.ErrProjectNotFound, wantStatus: http.StatusNotFound, wantError: app.MsgProjectNotFound},
		{name: "storage failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantError: app.MsgFailedToFetchProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newTestServer(t, defaultTestConfig())
			mocks.projects.EXPECT().GetProject(gomock.Any(), "p-1").Return(tt.project, tt.err)

			resp := doRequest(t, srv, http.MethodGet, "/api/projects/p-1", "", "")

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, resp).Error)
				return
			}
			var got models.Project
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.project.Name, got.Name)
		})
	}
}

func TestCreateProject_RequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t, defaultTestConfig())

	resp := doRequest(t, srv, http.MethodPost, "/api/projects", `{"name":"x"}`, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, app.MsgAuthenticationRequired, decodeError(t, resp).Error)
}

func TestCreateProject_Created(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.expectAuthenticated("u-1")
	mocks.projects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.ProjectCreateRequest) (models.Project, error) {
			assert.Equal(t, "Mangroves", req.Name)
			assert.Equal(t, models.NumericString("-3.5"), req.Latitude)
			return models.Project{ID: "p-9", Name: req.Name}, nil
		})

	resp := doRequest(t, srv, http.MethodPost, "/api/projects", `{"name":"Mangroves","latitude":"-3.5"}`, "good")

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var got models.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "p-9", got.ID)
}

func TestCreateProject_Validation(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.expectAuthenticated("u-1")
	mocks.projects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(models.Project{}, &validators.ValidationError{
		Fields: []validators.FieldError{
			{Field: "latitude", Err: validators.ErrOutOfRange},
			{Field: "name", Err: validators.ErrRequired},
		},
	})

	resp := doRequest(t, srv, http.MethodPost, "/api/projects", `{"latitude":"91"}`, "good")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, app.MsgInvalidProjectData, body.Error)
	assert.Equal(t, []string{"latitude: is out of range", "name: is required"}, body.Details)
}

func TestUpdateProject(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.expectAuthenticated("u-1")
	mocks.projects.EXPECT().UpdateProject(gomock.Any(), "p-1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req models.ProjectUpdateRequest) (models.Project, error) {
			assert.Nil(t, req.Name)
			if !assert.NotNil(t, req.Status) {
				return models.Project{}, nil
			}
			return models.Project{ID: "p-1", Status: models.ProjectStatus(*req.Status)}, nil
		})

	resp := doRequest(t, srv, http.MethodPatch, "/api/projects/p-1", `{"status":"completed"}`, "good")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.Project
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, models.ProjectStatus("completed"), got.Status)
}

func TestUpdateProject_NotFound(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.expectAuthenticated("u-1")
	mocks.projects.EXPECT().UpdateProject(gomock.Any(), "missing", gomock.Any()).Return(models.Project{}, store.ErrProjectNotFound)

	resp := doRequest(t, srv, http.MethodPatch, "/api/projects/missing", `{"name":"New name"}`, "good")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, app.MsgProjectNotFound, decodeError(t, resp).Error)
}

func TestDeleteProject(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", err: store.ErrProjectNotFound, wantStatus: http.StatusNotFound, wantError: app.MsgProjectNotFound},
		{name: "has pledges", err: fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrProjectHasPledges), wantStatus: http.StatusConflict, wantError: app.MsgProjectHasPledges},
		{name: "storage failure", err: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError, wantError: app.MsgFailedToDeleteProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mocks := newTestServer(t, defaultTestConfig())
			mocks.expectAuthenticated("u-1")
			mocks.projects.EXPECT().DeleteProject(gomock.Any(), "p-1").Return(tt.err)

			resp := doRequest(t, srv, http.MethodDelete, "/api/projects/p-1", "", "good")

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, resp).Error)
			}
		})
	}
}
