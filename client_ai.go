package boardclient

import "context"

type aiIssueRef struct {
	IssueID int64 `json:"issue_id"`
}

// IssueSummary asks the backend's AI service for an issue summary.
func (c *Client) IssueSummary(ctx context.Context, issueID int64) (*AISummary, error) {
	var out AISummary
	if err := c.post(ctx, "/api/ai/summary", aiIssueRef{IssueID: issueID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IssueSuggestion asks for a suggested next step on an issue.
func (c *Client) IssueSuggestion(ctx context.Context, issueID int64) (*AISuggestion, error) {
	var out AISuggestion
	if err := c.post(ctx, "/api/ai/suggestion", aiIssueRef{IssueID: issueID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendLabels asks for label recommendations for an issue.
func (c *Client) RecommendLabels(ctx context.Context, issueID int64) (*AILabelRecommendation, error) {
	var out AILabelRecommendation
	if err := c.post(ctx, "/api/ai/labels", aiIssueRef{IssueID: issueID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DetectDuplicates asks for issues similar to the given one.
func (c *Client) DetectDuplicates(ctx context.Context, issueID int64) (*AIDuplicateReport, error) {
	var out AIDuplicateReport
	if err := c.post(ctx, "/api/ai/duplicates", aiIssueRef{IssueID: issueID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SummarizeComments asks for a summary of an issue's comment thread.
func (c *Client) SummarizeComments(ctx context.Context, issueID int64) (*AISummary, error) {
	var out AISummary
	if err := c.post(ctx, "/api/ai/comment-summary", aiIssueRef{IssueID: issueID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
