package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/mock"
	"github.com/MKhiriev/go-green-pledge/internal/service"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testServices bundles the service mocks behind one Handler.
type testServices struct {
	auth     *mock.MockAuthService
	projects *mock.MockProjectService
	pledges  *mock.MockPledgeService
	seed     *mock.MockSeedService
	appInfo  *mock.MockAppInfoService
}

func newTestServer(t *testing.T, cfg config.Server) (*httptest.Server, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:     mock.NewMockAuthService(ctrl),
		projects: mock.NewMockProjectService(ctrl),
		pledges:  mock.NewMockPledgeService(ctrl),
		seed:     mock.NewMockSeedService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:    mocks.auth,
		ProjectService: mocks.projects,
		PledgeService:  mocks.pledges,
		SeedService:    mocks.seed,
		AppInfoService: mocks.appInfo,
	}, cfg, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv, mocks
}

func defaultTestConfig() config.Server {
	return config.Server{RequestTimeout: 5 * time.Second}
}

// expectAuthenticated makes "Bearer good" resolve to userID.
func (m *testServices) expectAuthenticated(userID string) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: userID}, nil)
	m.auth.EXPECT().GetUser(gomock.Any(), userID).Return(models.User{ID: userID, Username: "alice"}, nil)
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, body, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeError(t *testing.T, resp *http.Response) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ── Routing ─────────────────────────────────────────────────────────────────

func TestNewHandler_DisablesLimiterWithoutRate(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.Nil(t, h.authLimiter)
}

func TestRoutes_Version(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	resp := doRequest(t, srv, http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "v1.2.3", string(body))
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	srv, _ := newTestServer(t, defaultTestConfig())

	resp := doRequest(t, srv, http.MethodPut, "/api/projects/p-1", `{}`, "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_Metrics(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")

	doRequest(t, srv, http.MethodGet, "/api/version", "", "")
	resp := doRequest(t, srv, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `greenpledge_http_requests_total{method="GET",path="/api/version",status="200"}`)
}

func TestRoutes_TraceIDIsEchoed(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/version", nil)
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-42")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-42", resp.Header.Get(traceIDHeader))
}

func TestRoutes_Seed(t *testing.T) {
	srv, mocks := newTestServer(t, defaultTestConfig())
	mocks.seed.EXPECT().Seed(gomock.Any()).Return(models.SeedResult{Message: "Database seeded successfully", Count: 6}, nil)

	resp := doRequest(t, srv, http.MethodPost, "/api/seed", "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result models.SeedResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 6, result.Count)
}
