package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/token"
	"github.com/rfonline/rfclient/users"
)

// Profile returns the current user's profile, subscription expiry included.
func (c *Client) Profile(ctx context.Context) (*users.Profile, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out users.Profile
	resp, err := req.SetResult(&out).Get("/api/usuarios/perfil")
	if err != nil {
		return nil, errors.Wrapf(err, "api.Profile")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// ClientListParams filters and pages the clientele listing. The role filter
// repeats the "rol" query parameter once per role.
type ClientListParams struct {
	Page   int
	Limit  int
	Search string
	Roles  []token.Role
}

func (p ClientListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	for _, r := range p.Roles {
		v.Add("rol", string(r))
	}
	return v
}

// Clients fetches one page of the user listing.
func (c *Client) Clients(ctx context.Context, params ClientListParams) (*users.ClientPage, error) {
	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out users.ClientPage
	resp, err := req.
		SetQueryParamsFromValues(params.values()).
		SetResult(&out).
		Get("/api/usuarios/clientes")
	if err != nil {
		return nil, errors.Wrapf(err, "api.Clients")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// ChangeRole moves a user onto another role of the closed set.
func (c *Client) ChangeRole(ctx context.Context, userID string, role token.Role) error {
	if _, ok := token.ParseRole(string(role)); !ok {
		return errors.Wrapf(errors.ErrUnsupported, "api.ChangeRole: role %q", role)
	}

	req, err := c.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", userID).
		SetBody(map[string]string{"rol": string(role)}).
		Put("/api/usuarios/{id}/cambiar-rol")
	if err != nil {
		return errors.Wrapf(err, "api.ChangeRole")
	}
	if resp.IsError() {
		return errorFromResponse(resp)
	}
	return nil
}
