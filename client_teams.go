package boardclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Teams lists the caller's teams with membership role and counts.
func (c *Client) Teams(ctx context.Context) ([]TeamWithRole, error) {
	var out []TeamWithRole
	if err := c.get(ctx, "/api/teams", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTeam describes the createteam operation and its observable behavior.
func (c *Client) CreateTeam(ctx context.Context, name string) (*Team, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}
	var out Team
	if err := c.post(ctx, "/api/teams", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Team fetches one team with the caller's role.
func (c *Client) Team(ctx context.Context, id int64) (*TeamWithRole, error) {
	var out TeamWithRole
	if err := c.get(ctx, fmt.Sprintf("/api/teams/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeam renames a team.
func (c *Client) UpdateTeam(ctx context.Context, id int64, name string) (*Team, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}
	var out Team
	if err := c.put(ctx, fmt.Sprintf("/api/teams/%d", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTeam describes the deleteteam operation and its observable behavior.
func (c *Client) DeleteTeam(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/teams/%d", id))
}

// TeamMembers lists a team's membership.
func (c *Client) TeamMembers(ctx context.Context, id int64) ([]TeamMember, error) {
	var out []TeamMember
	if err := c.get(ctx, fmt.Sprintf("/api/teams/%d/members", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InviteMember mails a team invite to an address.
func (c *Client) InviteMember(ctx context.Context, teamID int64, email string) (*TeamInvite, error) {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	var out TeamInvite
	if err := c.post(ctx, fmt.Sprintf("/api/teams/%d/invite", teamID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// KickMember removes a member from a team.
func (c *Client) KickMember(ctx context.Context, teamID, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/teams/%d/members/%d", teamID, userID))
}

// ChangeMemberRole sets a member's role; see the format package for the
// role constants.
func (c *Client) ChangeMemberRole(ctx context.Context, teamID, userID int64, role string) error {
	body := struct {
		Role string `json:"role"`
	}{Role: role}
	return c.put(ctx, fmt.Sprintf("/api/teams/%d/members/%d/role", teamID, userID), body, nil)
}

// LeaveTeam removes the caller from a team.
func (c *Client) LeaveTeam(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/teams/%d/leave", id), nil, nil)
}

// TeamActivity pages through a team's activity feed.
func (c *Client) TeamActivity(ctx context.Context, id int64, limit, offset int) ([]ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	var out []ActivityEntry
	if err := c.get(ctx, fmt.Sprintf("/api/teams/%d/activity", id), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
