package boardclient

import "context"

// Me fetches the current user profile. Only meaningful with a credential
// attached; a stale token surfaces as a 401 with the usual side effects.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out User
	if err := c.get(ctx, "/api/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe mutates the current profile and returns the updated record.
func (c *Client) UpdateMe(ctx context.Context, req UpdateUserRequest) (*User, error) {
	var out User
	if err := c.put(ctx, "/api/users/me", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.put(ctx, "/api/users/me/password", req, nil)
}

// DeleteAccount soft-deletes the current account.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.delete(ctx, "/api/users/me")
}
