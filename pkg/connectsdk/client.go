package connectsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the Job Connector service. All operations are
// unauthenticated; identity is established per-request through the OTP flow.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new connector service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response into target when the status matches expectedStatus.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	target any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target != nil {
		if err := json.Unmarshal(bodyBytes, target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ============================================================================
// Auth
// ============================================================================

// RequestOTP asks the service to issue and deliver a one-time code.
func (c *Client) RequestOTP(ctx context.Context, req RequestOTPRequest) (*RequestOTPResponse, error) {
	var resp RequestOTPResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/request-otp", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyOTP submits a code, or probes for account existence when Bypass is set.
func (c *Client) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VerifyOTPResponse, error) {
	var resp VerifyOTPResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/verify-otp", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ============================================================================
// Profiles
// ============================================================================

// CreateSeeker registers a new seeker profile.
func (c *Client) CreateSeeker(ctx context.Context, req CreateSeekerRequest) (*CreateSeekerResponse, error) {
	var resp CreateSeekerResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/profile/seeker", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateSeeker replaces the profile fields of an existing seeker.
func (c *Client) UpdateSeeker(ctx context.Context, req CreateSeekerRequest) (*CreateSeekerResponse, error) {
	var resp CreateSeekerResponse
	if err := c.doJSON(ctx, http.MethodPut, "/v1/profile/seeker", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateProvider registers a new provider profile.
func (c *Client) CreateProvider(ctx context.Context, req CreateProviderRequest) (*CreateProviderResponse, error) {
	var resp CreateProviderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/profile/provider", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProvider replaces the profile fields of an existing provider.
func (c *Client) UpdateProvider(ctx context.Context, req CreateProviderRequest) (*CreateProviderResponse, error) {
	var resp CreateProviderResponse
	if err := c.doJSON(ctx, http.MethodPut, "/v1/profile/provider", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile fetches the profile for a role and contact handle. Exactly one
// of whatsappNumber or email must be non-empty.
func (c *Client) GetProfile(ctx context.Context, role, whatsappNumber, email string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("role", role)
	if whatsappNumber != "" {
		q.Set("whatsappNumber", whatsappNumber)
	}
	if email != "" {
		q.Set("email", email)
	}

	var resp json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/v1/profile?"+q.Encode(), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return resp, nil
}

// ============================================================================
// Jobs
// ============================================================================

// PostJob publishes a job listing on behalf of a provider.
func (c *Client) PostJob(ctx context.Context, req PostJobRequest) (*PostJobResponse, error) {
	var resp PostJobResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/jobs", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetJob fetches a single job listing by ID.
func (c *Client) GetJob(ctx context.Context, id string) (*Job, error) {
	var resp Job
	if err := c.doJSON(ctx, http.MethodGet, "/v1/jobs/"+url.PathEscape(id), nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListJobs returns job listings matching the given filters. Empty filter
// values are ignored.
func (c *Client) ListJobs(ctx context.Context, location, skill, experience string) (*ListJobsResponse, error) {
	q := url.Values{}
	if location != "" {
		q.Set("location", location)
	}
	if skill != "" {
		q.Set("skill", skill)
	}
	if experience != "" {
		q.Set("experience", experience)
	}

	path := "/v1/jobs"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp ListJobsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveJob deletes a job listing.
func (c *Client) RemoveJob(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/jobs/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// ============================================================================
// System
// ============================================================================

// Livez reports basic service liveness.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Readyz reports service readiness, including database connectivity.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}
