package client

import (
	"context"
	"fmt"
)

// GenerateWorkout requests a personalized workout plan. Requires an
// active basic subscription and completed screening.
func (c *Client) GenerateWorkout(ctx context.Context, req GeneratePlanRequest) (*Plan, error) {
	var p Plan
	if err := c.doRequest(ctx, "POST", "/api/v1/plans/workout/generate", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GenerateMeal requests a personalized meal plan. Requires an active
// basic subscription.
func (c *Client) GenerateMeal(ctx context.Context, req GeneratePlanRequest) (*Plan, error) {
	var p Plan
	if err := c.doRequest(ctx, "POST", "/api/v1/plans/meal/generate", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlans retrieves a page of the user's generated plans
func (c *Client) ListPlans(ctx context.Context, page, pageSize int) (*PlanPage, error) {
	path := fmt.Sprintf("/api/v1/plans?page=%d&page_size=%d", page, pageSize)
	var out PlanPage
	if err := c.doRequest(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
