package out

import (
	"context"
	"fmt"
	"net/http"

	"studyhub/internal/modules/auth/domain"
	authout "studyhub/internal/modules/auth/port/out"
	"studyhub/internal/platform/api"
)

type APIAuthClient struct {
	client *api.Client
}

func NewAPIAuthClient(client *api.Client) authout.AuthAPI {
	return &APIAuthClient{client: client}
}

type wireProfile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (p wireProfile) profile() domain.Profile {
	return domain.Profile{
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}

func (c *APIAuthClient) Login(ctx context.Context, username, password string) (domain.Session, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		AccessToken string      `json:"access_token"`
		TokenType   string      `json:"token_type"`
		User        wireProfile `json:"user"`
	}
	if err := c.client.DoJSON(ctx, http.MethodPost, "/api/auth/token", body, &resp, api.Public()); err != nil {
		return domain.Session{}, err
	}
	if resp.AccessToken == "" {
		return domain.Session{}, fmt.Errorf("login response missing access_token")
	}
	return domain.Session{Token: resp.AccessToken, User: resp.User.profile()}, nil
}

func (c *APIAuthClient) Register(ctx context.Context, username, email, password string) (domain.Profile, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp wireProfile
	if err := c.client.DoJSON(ctx, http.MethodPost, "/api/auth/register", body, &resp, api.Public()); err != nil {
		return domain.Profile{}, err
	}
	return resp.profile(), nil
}

func (c *APIAuthClient) CurrentUser(ctx context.Context) (domain.Profile, error) {
	var resp wireProfile
	if err := c.client.DoJSON(ctx, http.MethodGet, "/api/users/me", nil, &resp); err != nil {
		return domain.Profile{}, err
	}
	return resp.profile(), nil
}
