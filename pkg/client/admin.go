package client

import (
	"context"
	"fmt"
	"time"
)

// UserPage is one page of an admin user listing
type UserPage struct {
	Data       []User `json:"data"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalItems int64  `json:"total_items"`
	TotalPages int    `json:"total_pages"`
}

// AuditEntry is one recorded admin-visible action
type AuditEntry struct {
	Time   time.Time `json:"time"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
}

// ListUsers retrieves a page of user accounts. Requires an admin token.
func (c *Client) ListUsers(ctx context.Context, page, pageSize int) (*UserPage, error) {
	path := fmt.Sprintf("/api/v1/admin/users?page=%d&page_size=%d", page, pageSize)
	var out UserPage
	if err := c.doRequest(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AuditTail retrieves the most recent audit entries, newest first.
// Requires an admin token.
func (c *Client) AuditTail(ctx context.Context, limit int) ([]AuditEntry, error) {
	path := fmt.Sprintf("/api/v1/admin/audit?limit=%d", limit)
	var out []AuditEntry
	if err := c.doRequest(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
