package boardclient

import (
	"context"
	"fmt"
)

// PersonalDashboardData fetches the caller's cross-team dashboard.
func (c *Client) PersonalDashboardData(ctx context.Context) (*PersonalDashboard, error) {
	var out PersonalDashboard
	if err := c.get(ctx, "/api/dashboard/personal", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProjectDashboardData fetches one project's statistics dashboard.
func (c *Client) ProjectDashboardData(ctx context.Context, projectID int64) (*ProjectDashboard, error) {
	var out ProjectDashboard
	if err := c.get(ctx, fmt.Sprintf("/api/dashboard/project/%d", projectID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
