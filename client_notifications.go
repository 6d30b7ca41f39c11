package boardclient

import (
	"context"
	"fmt"
)

// Notifications fetches the caller's feed with the total unread count.
func (c *Client) Notifications(ctx context.Context) (*NotificationList, error) {
	var out NotificationList
	if err := c.get(ctx, "/api/notifications", nil, &out); err != nil {
		return nil, err
	}
	c.metrics.Inc(MetricNotificationPoll)
	return &out, nil
}

// MarkNotificationRead describes the marknotificationread operation and its observable behavior.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.put(ctx, fmt.Sprintf("/api/notifications/%d/read", id), nil, nil)
}

// MarkAllNotificationsRead describes the markallnotificationsread operation and its observable behavior.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.put(ctx, "/api/notifications/read-all", nil, nil)
}
