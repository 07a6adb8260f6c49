package api

import (
	"context"

	"github.com/rfonline/rfclient/blocks"
	"github.com/rfonline/rfclient/internal/errors"
)

// Blocks lists the caller's workout blocks.
func (c *Client) Blocks(ctx context.Context) ([]blocks.Block, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out []blocks.Block
	resp, err := req.SetResult(&out).Get("/api/bloques")
	if err != nil {
		return nil, errors.Wrapf(err, "api.Blocks")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return out, nil
}

// Block fetches one workout block by ID.
func (c *Client) Block(ctx context.Context, id string) (*blocks.Block, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out blocks.Block
	resp, err := req.SetPathParam("id", id).SetResult(&out).Get("/api/bloques/{id}")
	if err != nil {
		return nil, errors.Wrapf(err, "api.Block")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// CreateBlock stores a new workout block and returns it with its assigned ID.
func (c *Client) CreateBlock(ctx context.Context, b blocks.Block) (*blocks.Block, error) {
	if err := c.validate.Struct(b); err != nil {
		return nil, errors.Wrapf(err, "api.CreateBlock: invalid payload")
	}

	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out blocks.Block
	resp, err := req.SetBody(b).SetResult(&out).Post("/api/bloques")
	if err != nil {
		return nil, errors.Wrapf(err, "api.CreateBlock")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// UpdateBlock replaces an existing block.
func (c *Client) UpdateBlock(ctx context.Context, b blocks.Block) (*blocks.Block, error) {
	if b.ID == "" {
		return nil, errors.Wrapf(errors.ErrNotFound, "api.UpdateBlock: missing block ID")
	}
	if err := c.validate.Struct(b); err != nil {
		return nil, errors.Wrapf(err, "api.UpdateBlock: invalid payload")
	}

	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out blocks.Block
	resp, err := req.SetPathParam("id", b.ID).SetBody(b).SetResult(&out).Put("/api/bloques/{id}")
	if err != nil {
		return nil, errors.Wrapf(err, "api.UpdateBlock")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// DeleteBlock removes a block by ID.
func (c *Client) DeleteBlock(ctx context.Context, id string) error {
	req, err := c.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", id).Delete("/api/bloques/{id}")
	if err != nil {
		return errors.Wrapf(err, "api.DeleteBlock")
	}
	if resp.IsError() {
		return errorFromResponse(resp)
	}
	return nil
}
