package boardclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ProjectIssues lists a project's issues, optionally narrowed by params.
func (c *Client) ProjectIssues(ctx context.Context, projectID int64, params IssueListParams) ([]Issue, error) {
	q := url.Values{}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Priority != "" {
		q.Set("priority", params.Priority)
	}
	if params.AssigneeID != 0 {
		q.Set("assignee_id", strconv.FormatInt(params.AssigneeID, 10))
	}
	if params.LabelID != 0 {
		q.Set("label_id", strconv.FormatInt(params.LabelID, 10))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	var out []Issue
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d/issues", projectID), q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIssue describes the createissue operation and its observable behavior.
func (c *Client) CreateIssue(ctx context.Context, projectID int64, req IssueRequest) (*Issue, error) {
	var out Issue
	if err := c.post(ctx, fmt.Sprintf("/api/projects/%d/issues", projectID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Issue fetches one issue with AI annotations and comment count.
func (c *Client) Issue(ctx context.Context, id int64) (*IssueDetail, error) {
	var out IssueDetail
	if err := c.get(ctx, fmt.Sprintf("/api/issues/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateIssue describes the updateissue operation and its observable behavior.
func (c *Client) UpdateIssue(ctx context.Context, id int64, req IssueRequest) (*Issue, error) {
	var out Issue
	if err := c.put(ctx, fmt.Sprintf("/api/issues/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteIssue describes the deleteissue operation and its observable behavior.
func (c *Client) DeleteIssue(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/issues/%d", id))
}

// UpdateIssuePositions applies a bulk kanban reorder in one call.
func (c *Client) UpdateIssuePositions(ctx context.Context, positions []IssuePosition) error {
	return c.put(ctx, "/api/issues/positions", positions, nil)
}

// IssueHistory lists an issue's change history.
func (c *Client) IssueHistory(ctx context.Context, id int64) ([]HistoryEntry, error) {
	var out []HistoryEntry
	if err := c.get(ctx, fmt.Sprintf("/api/issues/%d/history", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
