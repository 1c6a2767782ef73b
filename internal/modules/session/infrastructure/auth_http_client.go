package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cachetteWeb/internal/modules/session/application/port"
	"cachetteWeb/internal/modules/session/domain"
	"cachetteWeb/internal/shared/normalization"
	"cachetteWeb/internal/shared/rest"
)

// AuthHTTPClient implements AuthGateway against the backend's auth routes.
type AuthHTTPClient struct {
	rest *rest.Client
}

func NewAuthHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *AuthHTTPClient {
	return &AuthHTTPClient{rest: rest.NewClient(baseURL, timeout, client)}
}

func (c *AuthHTTPClient) Login(ctx context.Context, creds port.Credentials) (port.AuthResult, error) {
	payload := map[string]any{
		"email":    creds.Email,
		"password": creds.Password,
	}
	return c.post(ctx, "auth/login", payload)
}

func (c *AuthHTTPClient) Register(ctx context.Context, reg port.Registration) (port.AuthResult, error) {
	// Both snake_case and camelCase name fields go out: backend revisions
	// have expected either and ignore the one they do not know.
	payload := map[string]any{
		"first_name": reg.FirstName,
		"last_name":  reg.LastName,
		"firstName":  reg.FirstName,
		"lastName":   reg.LastName,
		"email":      reg.Email,
		"password":   reg.Password,
		"role":       domain.RoleUser,
	}
	if reg.Phone != "" {
		payload["phone"] = reg.Phone
	}
	return c.post(ctx, "auth/register", payload)
}

func (c *AuthHTTPClient) post(ctx context.Context, endpoint string, payload map[string]any) (port.AuthResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return port.AuthResult{}, fmt.Errorf("encode auth payload: %w", err)
	}

	req, err := c.rest.NewRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return port.AuthResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("auth request error", slog.String("endpoint", endpoint), slog.Any("error", err))
		return port.AuthResult{}, fmt.Errorf("%w: %v", port.ErrAuthUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return port.AuthResult{}, port.ErrBadCredentials
	case res.StatusCode == http.StatusConflict:
		return port.AuthResult{}, port.ErrEmailTaken
	case res.StatusCode >= http.StatusBadRequest:
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("auth unexpected status", slog.String("endpoint", endpoint), slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(raw))))
		return port.AuthResult{}, fmt.Errorf("%w: status %d", port.ErrAuthUnavailable, res.StatusCode)
	}

	return decodeAuthResult(res.Body)
}

func decodeAuthResult(body io.Reader) (port.AuthResult, error) {
	var payload map[string]any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return port.AuthResult{}, fmt.Errorf("%w: %v", port.ErrMalformedAuthRes, err)
	}

	container := normalization.MapFromPayload(payload)
	token := normalization.FirstString(container, "token", "access_token", "accessToken")
	if token == "" {
		return port.AuthResult{}, fmt.Errorf("%w: no token in response", port.ErrMalformedAuthRes)
	}

	rawUser, _ := container["user"].(map[string]any)
	if rawUser == nil {
		rawUser, _ = container["customer"].(map[string]any)
	}
	if rawUser == nil {
		// Some backend revisions inline the user fields next to the token.
		rawUser = container
	}

	return port.AuthResult{Token: token, User: domain.NormalizeUser(rawUser)}, nil
}

var _ port.AuthGateway = (*AuthHTTPClient)(nil)
