package api

import (
	"context"
	"strconv"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/plans"
)

// Plans lists the training plans visible to the caller.
func (c *Client) Plans(ctx context.Context) ([]plans.Plan, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out []plans.Plan
	resp, err := req.SetResult(&out).Get("/api/planificaciones")
	if err != nil {
		return nil, errors.Wrapf(err, "api.Plans")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return out, nil
}

// Plan fetches one training plan by ID.
func (c *Client) Plan(ctx context.Context, id string) (*plans.Plan, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out plans.Plan
	resp, err := req.SetPathParam("id", id).SetResult(&out).Get("/api/planificaciones/{id}")
	if err != nil {
		return nil, errors.Wrapf(err, "api.Plan")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// CreatePlan stores a new plan for a client.
func (c *Client) CreatePlan(ctx context.Context, p plans.Plan) (*plans.Plan, error) {
	if err := c.validate.Struct(p); err != nil {
		return nil, errors.Wrapf(err, "api.CreatePlan: invalid payload")
	}

	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out plans.Plan
	resp, err := req.SetBody(p).SetResult(&out).Post("/api/planificaciones")
	if err != nil {
		return nil, errors.Wrapf(err, "api.CreatePlan")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// AssignDay attaches one block to a day of a plan week through the nested
// assignment endpoint. Callers assigning several blocks go through
// plans.Assigner, which serialises the calls for a deterministic tally.
func (c *Client) AssignDay(ctx context.Context, planID string, week, day int, blockID string) error {
	req, err := c.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{
			"id":     planID,
			"semana": strconv.Itoa(week),
		}).
		SetBody(map[string]any{"dia": day, "bloque": blockID}).
		Post("/api/planificaciones/{id}/semanas/{semana}/dias")
	if err != nil {
		return errors.Wrapf(err, "api.AssignDay")
	}
	if resp.IsError() {
		return errorFromResponse(resp)
	}
	return nil
}
