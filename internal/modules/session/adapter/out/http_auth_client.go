package out

import (
	"context"
	"errors"
	"fmt"

	"cfdash/internal/modules/session/domain"
	sessionout "cfdash/internal/modules/session/port/out"
	apperrors "cfdash/internal/platform/errors"
	"cfdash/internal/platform/httpx"
)

type HTTPAuthClient struct {
	client *httpx.Client
}

func NewHTTPAuthClient(client *httpx.Client) *HTTPAuthClient {
	return &HTTPAuthClient{client: client}
}

var _ sessionout.AuthAPI = (*HTTPAuthClient)(nil)

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *HTTPAuthClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.client.Post(ctx, "/login", loginRequest{Email: email, Senha: password}, &resp)
	if err != nil {
		// The backend answers a rejected attempt with 401; never leak whether
		// the email exists.
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response missing token")
	}
	return resp.Token, nil
}

type accountStatusResponse struct {
	HasAccount bool `json:"hasAccount"`
	ContaAtiva bool `json:"contaAtiva"`
}

func (c *HTTPAuthClient) AccountStatus(ctx context.Context) (domain.AccountProbe, error) {
	var resp accountStatusResponse
	if err := c.client.Get(ctx, "/api/conta/me", &resp); err != nil {
		return domain.AccountProbe{}, err
	}
	return domain.AccountProbe{HasAccount: resp.HasAccount, Active: resp.ContaAtiva}, nil
}
