// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://pledge.example.com/ ", want: "https://pledge.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := BaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, RegisterPath, r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		w.Header().Set("Authorization", "Bearer token-123")
		writeJSON(t, w, http.StatusCreated, models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"})
	}))
	defer srv.Close()

	user, token, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "token-123", token)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Username already exists"})
	}))
	defer srv.Close()

	_, _, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Username already exists")
}

func TestLogin_MissingBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.User{ID: "u-1"})
	}))
	defer srv.Close()

	_, _, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Username: "alice", Password: "x"})
	assert.Error(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid credentials"})
	}))
	defer srv.Close()

	_, _, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Username: "alice", Password: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, MePath, r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.User{ID: "u-1"})
	}))
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL).Me(context.Background(), "token-123")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

// ── projects ─────────────────────────────────────────────────────────────────

func TestListProjects_NoAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.Project{{ID: "p-1"}, {ID: "p-2"}})
	}))
	defer srv.Close()

	projects, err := newTestAdapter(t, srv.URL).ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestGetProject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects/p-404", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetProject(context.Background(), "p-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProject_ValidationDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid project data",
			Details: []string{"latitude: is out of range"},
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateProject(context.Background(), "t", models.ProjectCreateRequest{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "latitude: is out of range")
}

func TestUpdateProject_Patch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Renamed"}`, string(body))
		writeJSON(t, w, http.StatusOK, models.Project{ID: "p-1", Name: "Renamed"})
	}))
	defer srv.Close()

	name := "Renamed"
	project, err := newTestAdapter(t, srv.URL).UpdateProject(context.Background(), "t", "p-1", models.ProjectUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", project.Name)
}

func TestDeleteProject_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "Project has pledges"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteProject(context.Background(), "t", "p-1")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDeleteProject_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).DeleteProject(context.Background(), "t", "p-1"))
}

// ── pledges ──────────────────────────────────────────────────────────────────

func TestPledgesQueryPath(t *testing.T) {
	assert.Equal(t, "/api/pledges", PledgesQueryPath(models.PledgeFilter{}))
	assert.Equal(t, "/api/pledges?projectId=p-1", PledgesQueryPath(models.PledgeFilter{ProjectID: "p-1"}))
	assert.Equal(t, "/api/pledges?userId=u-1", PledgesQueryPath(models.PledgeFilter{UserID: "u-1", ProjectID: "p-1"}))
}

func TestListPledges_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "p-1", r.URL.Query().Get("projectId"))
		writeJSON(t, w, http.StatusOK, []models.Pledge{{ID: "pl-1"}})
	}))
	defer srv.Close()

	pledges, err := newTestAdapter(t, srv.URL).ListPledges(context.Background(), models.PledgeFilter{ProjectID: "p-1"})
	require.NoError(t, err)
	assert.Len(t, pledges, 1)
}

func TestCreatePledge_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "Forbidden"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreatePledge(context.Background(), "", models.PledgeCreateRequest{ProjectID: "p-1", Amount: "5"})
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── misc ─────────────────────────────────────────────────────────────────────

func TestSeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		writeJSON(t, w, http.StatusOK, models.SeedResult{Message: "Database seeded successfully", Count: 6})
	}))
	defer srv.Close()

	result, err := newTestAdapter(t, srv.URL).Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, result.Count)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestMapHTTPError_UnexpectedStatusAndPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListProjects(context.Background())
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "maintenance")
}
