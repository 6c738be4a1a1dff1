package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-green-pledge/internal/config"
	"github.com/MKhiriev/go-green-pledge/internal/logger"
	"github.com/MKhiriev/go-green-pledge/internal/utils"
	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/go-resty/resty/v2"
)

// Route paths. The client response cache is keyed by these paths.
const (
	RegisterPath = "/api/auth/register"
	LoginPath    = "/api/auth/login"
	MePath       = "/api/auth/me"
	ProjectsPath = "/api/projects"
	PledgesPath  = "/api/pledges"
	SeedPath     = "/api/seed"
	VersionPath  = "/api/version"
)

// ProjectPath returns the path of a single project.
func ProjectPath(id string) string {
	return ProjectsPath + "/" + url.PathEscape(id)
}

// PledgesQueryPath returns the pledge listing path for filter. Only the
// parameter the server will honour is kept, so equal listings share a path.
func PledgesQueryPath(filter models.PledgeFilter) string {
	switch {
	case filter.UserID != "":
		return PledgesPath + "?" + url.Values{"userId": {filter.UserID}}.Encode()
	case filter.ProjectID != "":
		return PledgesPath + "?" + url.Values{"projectId": {filter.ProjectID}}.Encode()
	default:
		return PledgesPath
	}
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := BaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

// BaseURL turns a configured server address into the URL requests are sent
// to: "http://" is assumed when no scheme is given and trailing slashes are
// dropped.
func BaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. The token is read from the
// Authorization header of the response.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, string, error) {
	return h.authenticate(ctx, RegisterPath, request)
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.User, string, error) {
	return h.authenticate(ctx, LoginPath, request)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.User, string, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.User{}, "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, "", fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	return user, token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context, token string) (models.User, error) {
	var user models.User
	if err := h.get(ctx, token, MePath, &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := h.get(ctx, "", ProjectsPath, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

func (h *httpServerAdapter) GetProject(ctx context.Context, id string) (models.Project, error) {
	var project models.Project
	if err := h.get(ctx, "", ProjectPath(id), &project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (h *httpServerAdapter) CreateProject(ctx context.Context, token string, request models.ProjectCreateRequest) (models.Project, error) {
	var project models.Project

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&project).
		Post(ProjectsPath)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (h *httpServerAdapter) UpdateProject(ctx context.Context, token, id string, request models.ProjectUpdateRequest) (models.Project, error) {
	var project models.Project

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&project).
		Patch(ProjectPath(id))
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (h *httpServerAdapter) DeleteProject(ctx context.Context, token, id string) error {
	resp, err := h.authedRequest(ctx, token).Delete(ProjectPath(id))
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListPledges(ctx context.Context, filter models.PledgeFilter) ([]models.Pledge, error) {
	var pledges []models.Pledge
	if err := h.get(ctx, "", PledgesQueryPath(filter), &pledges); err != nil {
		return nil, err
	}

	return pledges, nil
}

func (h *httpServerAdapter) CreatePledge(ctx context.Context, token string, request models.PledgeCreateRequest) (models.Pledge, error) {
	var pledge models.Pledge

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&pledge).
		Post(PledgesPath)
	if err != nil {
		return models.Pledge{}, fmt.Errorf("create pledge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Pledge{}, err
	}

	return pledge, nil
}

func (h *httpServerAdapter) Seed(ctx context.Context) (models.SeedResult, error) {
	var result models.SeedResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Post(SeedPath)
	if err != nil {
		return models.SeedResult{}, fmt.Errorf("seed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SeedResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(VersionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) get(ctx context.Context, token, path string, result any) error {
	resp, err := h.authedRequest(ctx, token).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("request failed")
		return err
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
