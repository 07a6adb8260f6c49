package api

import (
	"context"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/token"
)

// Credentials is the login payload.
type Credentials struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// Registration is the sign-up payload.
type Registration struct {
	Name     string     `json:"nombre" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     token.Role `json:"rol" validate:"required,oneof=admin coach client"`
}

// Login exchanges credentials for a bearer token. A non-2xx response comes
// back as an *Error carrying the server's message.
func (c *Client) Login(ctx context.Context, email, password string, remember bool) (string, error) {
	body := Credentials{Email: email, Password: password, RememberMe: remember}
	if err := c.validate.Struct(body); err != nil {
		return "", errors.Wrapf(err, "api.Login: invalid payload")
	}

	var out struct {
		Token string `json:"token"`
	}
	resp, err := c.anonymous(ctx).SetBody(body).SetResult(&out).Post("/api/usuarios/login")
	if err != nil {
		return "", errors.Wrapf(err, "api.Login")
	}
	if resp.IsError() {
		return "", errorFromResponse(resp)
	}
	return out.Token, nil
}

// Register creates a new account. The payload is validated before it hits the
// wire so a malformed form never produces a network call.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	if err := c.validate.Struct(reg); err != nil {
		return errors.Wrapf(err, "api.Register: invalid payload")
	}

	resp, err := c.anonymous(ctx).SetBody(reg).Post("/api/usuarios/registrar")
	if err != nil {
		return errors.Wrapf(err, "api.Register")
	}
	if resp.IsError() {
		return errorFromResponse(resp)
	}
	return nil
}
