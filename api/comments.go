package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/rfonline/rfclient/comments"
	"github.com/rfonline/rfclient/internal/errors"
)

// PlanComments lists the commenting thread of a plan.
func (c *Client) PlanComments(ctx context.Context, planID string) ([]comments.Comment, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out []comments.Comment
	resp, err := req.SetPathParam("plan", planID).SetResult(&out).Get("/api/comentarios/planificacion/{plan}")
	if err != nil {
		return nil, errors.Wrapf(err, "api.PlanComments")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return out, nil
}

// CreateComment posts a new top-level comment. A client reference is attached
// when missing so a retried submission can be de-duplicated server-side.
func (c *Client) CreateComment(ctx context.Context, cm comments.Comment) (*comments.Comment, error) {
	if cm.ClientRef == "" {
		cm.ClientRef = uuid.New().String()
	}
	if err := c.validate.Struct(cm); err != nil {
		return nil, errors.Wrapf(err, "api.CreateComment: invalid payload")
	}

	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out comments.Comment
	resp, err := req.SetBody(cm).SetResult(&out).Post("/api/comentarios")
	if err != nil {
		return nil, errors.Wrapf(err, "api.CreateComment")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// UpdateComment rewrites the text of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, commentID, text string) (*comments.Comment, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out comments.Comment
	resp, err := req.
		SetPathParam("id", commentID).
		SetBody(map[string]string{"texto": text}).
		SetResult(&out).
		Put("/api/comentarios/{id}")
	if err != nil {
		return nil, errors.Wrapf(err, "api.UpdateComment")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// DeleteComment removes a comment and its replies.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	req, err := c.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("id", commentID).Delete("/api/comentarios/{id}")
	if err != nil {
		return errors.Wrapf(err, "api.DeleteComment")
	}
	if resp.IsError() {
		return errorFromResponse(resp)
	}
	return nil
}

// ReplyToComment adds a nested reply and returns the updated thread entry.
func (c *Client) ReplyToComment(ctx context.Context, commentID, text string) (*comments.Comment, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out comments.Comment
	resp, err := req.
		SetPathParam("id", commentID).
		SetBody(map[string]string{"texto": text}).
		SetResult(&out).
		Post("/api/comentarios/{id}/responder")
	if err != nil {
		return nil, errors.Wrapf(err, "api.ReplyToComment")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// UpdateReply rewrites the text of one reply.
func (c *Client) UpdateReply(ctx context.Context, commentID, replyID, text string) error {
	req, err := c.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{"id": commentID, "respuesta": replyID}).
		SetBody(map[string]string{"texto": text}).
		Put("/api/comentarios/{id}/respuesta/{respuesta}")
	if err != nil {
		return errors.Wrapf(err, "api.UpdateReply")
	}
	if resp.IsError() {
		return errorFromResponse(resp)
	}
	return nil
}

// DeleteReply removes one reply from a comment.
func (c *Client) DeleteReply(ctx context.Context, commentID, replyID string) error {
	req, err := c.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{"id": commentID, "respuesta": replyID}).
		Delete("/api/comentarios/{id}/respuesta/{respuesta}")
	if err != nil {
		return errors.Wrapf(err, "api.DeleteReply")
	}
	if resp.IsError() {
		return errorFromResponse(resp)
	}
	return nil
}
