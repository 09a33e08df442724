package client

import "context"

// FetchPolicy retrieves the server's feature access policy. Clients
// should refresh it on startup and feed it to a RouteGuard.
func (c *Client) FetchPolicy(ctx context.Context) (*PolicyDocument, error) {
	var doc PolicyDocument
	if err := c.doRequest(ctx, "GET", "/api/v1/policy/features", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
