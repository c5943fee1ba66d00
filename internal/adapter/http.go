package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/flowdash/flowdash/contract"
	"github.com/flowdash/flowdash/internal/config"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/utils"
	"github.com/flowdash/flowdash/models"
)

type httpIdentityAPI struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPIdentityAPI constructs an HTTP/REST implementation of
// [IdentityAPI]. It normalises and validates the base URL from
// clientCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if clientCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPIdentityAPI(clientCfg config.Client, logger *logger.Logger) (IdentityAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(clientCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(clientCfg.Timeout)

	return &httpIdentityAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
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

// SetToken implements [IdentityAPI]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpIdentityAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [IdentityAPI].
func (h *httpIdentityAPI) Token() string {
	return h.token
}

// Register implements [IdentityAPI]. It POSTs the registration body to the
// catalog's register endpoint and returns the created user out of the
// response envelope. No token is issued or stored.
func (h *httpIdentityAPI) Register(ctx context.Context, dto contract.RegisterDto) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(dto).
		Post(contract.Endpoints.Auth.Register)
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	var envelope contract.ApiResponse[models.User]
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("decode register response: %w", err)
	}

	return envelope.Data, nil
}

// Login implements [IdentityAPI]. It POSTs the credentials to the catalog's
// login endpoint. On success the bearer token from the response envelope is
// stored via SetToken.
func (h *httpIdentityAPI) Login(ctx context.Context, dto contract.LoginDto) (contract.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(dto).
		Post(contract.Endpoints.Auth.Login)
	if err != nil {
		return contract.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return contract.AuthResponse{}, err
	}

	var envelope contract.ApiResponse[contract.AuthResponse]
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return contract.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(envelope.Data.AccessToken)
	return envelope.Data, nil
}

// Me implements [IdentityAPI]. It GETs the catalog's me endpoint with the
// stored bearer token and returns the resolved user.
func (h *httpIdentityAPI) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get(contract.Endpoints.Auth.Me)
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.User{}, err
	}

	var envelope contract.ApiResponse[models.User]
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return envelope.Data, nil
}

func (h *httpIdentityAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
