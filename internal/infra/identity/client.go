// Package identity implements the REST client for the remote portal
// backend that issues bearer tokens and owns application state.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"portaljobs/config"
	"portaljobs/internal/domain/entity"
	domainerrors "portaljobs/internal/domain/errors"
	"portaljobs/internal/domain/service"

	"github.com/pkg/errors"
)

// Client talks to the identity provider over REST/JSON with bearer auth.
// It implements both service.IdentityProvider and service.ApplicationClient;
// both surfaces live on the same backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the provider client.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.Provider.BaseURL), "/"),
		httpClient: &http.Client{
			Timeout: cfg.Provider.Timeout,
		},
		logger: logger,
	}
}

// NewIdentityProvider exposes the client under its auth interface for DI.
func NewIdentityProvider(client *Client) service.IdentityProvider {
	return client
}

// NewApplicationClient exposes the client under its applications interface for DI.
func NewApplicationClient(client *Client) service.ApplicationClient {
	return client
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name,omitempty"`
	Website     string `json:"website,omitempty"`
	Headline    string `json:"headline,omitempty"`
	Location    string `json:"location,omitempty"`
}

type authResponse struct {
	AccessToken string       `json:"access_token"`
	User        *userPayload `json:"user"`
}

// userPayload decodes the backend's account record. Identifiers arrive as
// integers and are carried as opaque strings from here on.
type userPayload struct {
	ID               json.Number              `json:"id"`
	Email            string                   `json:"email"`
	Name             string                   `json:"name"`
	UserType         string                   `json:"user_type"`
	CandidateProfile *candidateProfilePayload `json:"candidate_profile"`
	CompanyProfile   *companyProfilePayload   `json:"company_profile"`
	CreatedAt        string                   `json:"created_at"`
}

type candidateProfilePayload struct {
	ID        json.Number `json:"id"`
	Headline  string      `json:"headline"`
	Location  string      `json:"location"`
	ResumeURL string      `json:"resume_url"`
}

type companyProfilePayload struct {
	ID          json.Number `json:"id"`
	CompanyName string      `json:"company_name"`
	Website     string      `json:"website"`
	Industry    string      `json:"industry"`
}

type createApplicationRequest struct {
	JobID string `json:"job_id"`
}

type createApplicationResponse struct {
	Message     string             `json:"message"`
	Application applicationPayload `json:"application"`
}

type listApplicationsResponse struct {
	Applications []applicationPayload `json:"applications"`
	Total        int                  `json:"total"`
}

// applicationPayload decodes the backend's record. Status may be absent on
// a freshly created application; it defaults to pending.
type applicationPayload struct {
	ID          json.Number `json:"id"`
	JobID       json.Number `json:"job_id"`
	CandidateID json.Number `json:"candidate_id"`
	Status      string      `json:"status"`
	AppliedAt   string      `json:"applied_at"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Login authenticates against POST /auth/login/{role}.
func (c *Client) Login(ctx context.Context, role entity.Role, creds service.Credentials) (*service.AuthGrant, error) {
	var parsed authResponse
	err := c.post(ctx, "/auth/login/"+role.String(), "", loginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	}, &parsed)
	if err != nil {
		return nil, err
	}

	return c.grantFrom(&parsed, role)
}

// Register creates an account via POST /auth/register/{role}. The grant's
// token is empty when the provider does not auto-login the new account.
func (c *Client) Register(ctx context.Context, role entity.Role, data service.Registration) (*service.AuthGrant, error) {
	var parsed authResponse
	err := c.post(ctx, "/auth/register/"+role.String(), "", registerRequest{
		Name:        data.Name,
		Email:       data.Email,
		Password:    data.Password,
		CompanyName: data.CompanyName,
		Website:     data.Website,
		Headline:    data.Headline,
		Location:    data.Location,
	}, &parsed)
	if err != nil {
		return nil, err
	}

	return c.grantFrom(&parsed, role)
}

// Logout invalidates the token via POST /auth/logout.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.post(ctx, "/auth/logout", token, struct{}{}, nil)
}

// Create submits an application via POST /applications/.
func (c *Client) Create(ctx context.Context, token string, jobID string) (*entity.Application, error) {
	var parsed createApplicationResponse
	if err := c.post(ctx, "/applications/", token, createApplicationRequest{JobID: jobID}, &parsed); err != nil {
		return nil, err
	}

	app, err := parsed.Application.toEntity()
	if err != nil {
		return nil, err
	}

	return app, nil
}

// ListMine fetches the caller's applications via GET /applications/my-applications.
func (c *Client) ListMine(ctx context.Context, token string) ([]*entity.Application, error) {
	var parsed listApplicationsResponse
	if err := c.get(ctx, "/applications/my-applications", token, &parsed); err != nil {
		return nil, err
	}

	applications := make([]*entity.Application, 0, len(parsed.Applications))
	for i := range parsed.Applications {
		app, err := parsed.Applications[i].toEntity()
		if err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}

	return applications, nil
}

func (c *Client) grantFrom(parsed *authResponse, role entity.Role) (*service.AuthGrant, error) {
	if parsed.User == nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "provider response missing user record")
	}

	user, err := parsed.User.toEntity()
	if err != nil {
		return nil, err
	}
	if user.Role == "" {
		user.Role = role
	}

	return &service.AuthGrant{
		AccessToken: parsed.AccessToken,
		User:        user,
	}, nil
}

func (p *userPayload) toEntity() (*entity.User, error) {
	user := &entity.User{
		ID:    p.ID.String(),
		Email: p.Email,
		Name:  p.Name,
	}

	if p.UserType != "" {
		role, ok := entity.ParseRole(p.UserType)
		if !ok {
			return nil, errors.Wrapf(domainerrors.ErrProviderUnavailable, "unknown account type %q", p.UserType)
		}
		user.Role = role
	}

	if p.CandidateProfile != nil {
		user.CandidateProfile = &entity.CandidateProfile{
			CandidateID: p.CandidateProfile.ID.String(),
			Headline:    p.CandidateProfile.Headline,
			Location:    p.CandidateProfile.Location,
			ResumeURL:   p.CandidateProfile.ResumeURL,
		}
	}
	if p.CompanyProfile != nil {
		user.CompanyProfile = &entity.CompanyProfile{
			CompanyID:   p.CompanyProfile.ID.String(),
			CompanyName: p.CompanyProfile.CompanyName,
			Website:     p.CompanyProfile.Website,
			Industry:    p.CompanyProfile.Industry,
		}
	}
	if p.CreatedAt != "" {
		createdAt, err := parseBackendTime(p.CreatedAt)
		if err == nil {
			user.CreatedAt = createdAt
		}
	}

	return user, nil
}

func (p *applicationPayload) toEntity() (*entity.Application, error) {
	status, ok := entity.ParseApplicationStatus(p.Status)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "status %q", p.Status)
	}

	app := &entity.Application{
		ID:          p.ID.String(),
		JobID:       p.JobID.String(),
		CandidateID: p.CandidateID.String(),
		Status:      status,
	}
	if p.AppliedAt != "" {
		createdAt, err := parseBackendTime(p.AppliedAt)
		if err != nil {
			return nil, err
		}
		app.CreatedAt = createdAt
	}

	return app, nil
}

func (c *Client) post(ctx context.Context, path, token string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(domainerrors.ErrProviderUnavailable, err.Error())
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(domainerrors.ErrProviderUnavailable, "read response body")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapError(req, resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(domainerrors.ErrProviderUnavailable, "decode response body")
	}

	return nil
}

// mapError converts provider statuses into the domain taxonomy so callers
// never branch on raw HTTP codes.
func (c *Client) mapError(req *http.Request, status int, payload []byte) error {
	var parsed errorResponse
	detail := strings.TrimSpace(string(payload))
	if err := json.Unmarshal(payload, &parsed); err == nil {
		if parsed.Error != "" {
			detail = parsed.Error
		} else if parsed.Message != "" {
			detail = parsed.Message
		}
	}

	c.logger.Debug("Provider request rejected",
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.String("detail", detail),
	)

	switch status {
	case http.StatusUnauthorized:
		return errors.Wrap(domainerrors.ErrInvalidCredentials, detail)
	case http.StatusForbidden:
		return errors.Wrap(domainerrors.ErrWrongRole, detail)
	case http.StatusNotFound:
		return errors.Wrap(domainerrors.ErrJobNotFound, detail)
	case http.StatusConflict:
		if strings.Contains(req.URL.Path, "/auth/") {
			return errors.Wrap(domainerrors.ErrAccountAlreadyExists, detail)
		}

		return errors.Wrap(domainerrors.ErrAlreadyApplied, detail)
	case http.StatusBadRequest:
		return errors.Wrap(domainerrors.ErrValidationFailed, detail)
	default:
		return errors.Wrapf(domainerrors.ErrProviderUnavailable, "status %d: %s", status, detail)
	}
}
