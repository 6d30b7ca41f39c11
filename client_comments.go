package boardclient

import (
	"context"
	"fmt"
)

// IssueComments lists an issue's comments.
func (c *Client) IssueComments(ctx context.Context, issueID int64) ([]Comment, error) {
	var out []Comment
	if err := c.get(ctx, fmt.Sprintf("/api/issues/%d/comments", issueID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment describes the createcomment operation and its observable behavior.
func (c *Client) CreateComment(ctx context.Context, issueID int64, content string) (*Comment, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}
	var out Comment
	if err := c.post(ctx, fmt.Sprintf("/api/issues/%d/comments", issueID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateComment describes the updatecomment operation and its observable behavior.
func (c *Client) UpdateComment(ctx context.Context, id int64, content string) (*Comment, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}
	var out Comment
	if err := c.put(ctx, fmt.Sprintf("/api/comments/%d", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment describes the deletecomment operation and its observable behavior.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/comments/%d", id))
}
