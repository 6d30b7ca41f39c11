package boardclient

import "context"

// Login exchanges credentials for a bearer token and the authenticated
// profile. Most callers want [session.Store.Login] via [Client.Session]
// instead, which also updates session state and persists the token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.post(ctx, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. The backend authenticates the new account
// in the same call, so the response carries a usable token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.post(ctx, "/api/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout transitions the session to anonymous and clears the persisted
// credential. Pure local state change; the backend is not called.
func (c *Client) Logout(ctx context.Context) {
	c.session.Logout(ctx)
	c.metrics.Inc(MetricLogout)
	c.audit.Emit(ctx, AuditEvent{EventType: EventLogout, Success: true})
}

// ForgotPassword asks the backend to mail a password reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.post(ctx, "/api/auth/forgot-password", body, nil)
}

// ResetPassword redeems a reset token for a new password.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}{Token: resetToken, NewPassword: newPassword}
	return c.post(ctx, "/api/auth/reset-password", body, nil)
}

// GoogleLogin fetches the OAuth authorization URL that starts the Google
// sign-in redirect flow.
func (c *Client) GoogleLogin(ctx context.Context) (*GoogleLoginResponse, error) {
	var out GoogleLoginResponse
	if err := c.get(ctx, "/api/auth/google/login", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
