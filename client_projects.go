package boardclient

import (
	"context"
	"fmt"
)

// TeamProjects lists a team's projects.
func (c *Client) TeamProjects(ctx context.Context, teamID int64) ([]Project, error) {
	var out []Project
	if err := c.get(ctx, fmt.Sprintf("/api/teams/%d/projects", teamID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProject describes the createproject operation and its observable behavior.
func (c *Client) CreateProject(ctx context.Context, teamID int64, req ProjectRequest) (*Project, error) {
	var out Project
	if err := c.post(ctx, fmt.Sprintf("/api/teams/%d/projects", teamID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Project fetches one project with its issue statistics.
func (c *Client) Project(ctx context.Context, id int64) (*ProjectDetail, error) {
	var out ProjectDetail
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject describes the updateproject operation and its observable behavior.
func (c *Client) UpdateProject(ctx context.Context, id int64, req ProjectRequest) (*Project, error) {
	var out Project
	if err := c.put(ctx, fmt.Sprintf("/api/projects/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject describes the deleteproject operation and its observable behavior.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/projects/%d", id))
}

// ArchiveProject sets or clears a project's archived flag.
func (c *Client) ArchiveProject(ctx context.Context, id int64, archived bool) (*Project, error) {
	body := struct {
		IsArchived bool `json:"is_archived"`
	}{IsArchived: archived}
	var out Project
	if err := c.put(ctx, fmt.Sprintf("/api/projects/%d/archive", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleFavorite flips the caller's favorite flag on a project.
func (c *Client) ToggleFavorite(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/projects/%d/favorite", id), nil, nil)
}

// ProjectLabels lists a project's labels.
func (c *Client) ProjectLabels(ctx context.Context, id int64) ([]Label, error) {
	var out []Label
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d/labels", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLabel describes the createlabel operation and its observable behavior.
func (c *Client) CreateLabel(ctx context.Context, projectID int64, req LabelRequest) (*Label, error) {
	var out Label
	if err := c.post(ctx, fmt.Sprintf("/api/projects/%d/labels", projectID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLabel describes the deletelabel operation and its observable behavior.
func (c *Client) DeleteLabel(ctx context.Context, projectID, labelID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/projects/%d/labels/%d", projectID, labelID))
}
