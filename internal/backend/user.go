package backend

import (
	"context"
	"fmt"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthTokens struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for session tokens.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthTokens, error) {
	var tokens AuthTokens
	if err := c.post(ctx, "/user/login", creds, &tokens); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &tokens, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if err := c.post(ctx, "/user/register", req, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// RefreshToken trades a refresh token for a fresh session token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	body := map[string]string{"token": refreshToken}
	var tokens AuthTokens
	if err := c.post(ctx, "/user/refreshToken", body, &tokens); err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}
	return &tokens, nil
}

// UpdateProfile updates the account identified by email.
func (c *Client) UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) error {
	if err := c.put(ctx, "/user/update/"+email, fields, nil); err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}
	return nil
}

// UpdatePassword changes the account password.
func (c *Client) UpdatePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	if err := c.put(ctx, "/user/update-password", body, nil); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}
	return nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.post(ctx, "/user/logout", nil, nil); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}
