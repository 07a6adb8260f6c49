package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/rfonline/rfclient/internal/errors"
)

// Subscription payments are delegated entirely to the backend's payment
// gateways; the client only creates and captures orders.

// PaymentRequest asks the backend to start a subscription payment.
type PaymentRequest struct {
	Months int `json:"meses" validate:"required,gt=0"`
}

// Preference is a MercadoPago checkout preference; InitPoint is the URL the
// user is sent to.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// PayPalOrder is a created PayPal order awaiting approval and capture.
type PayPalOrder struct {
	ID         string `json:"id"`
	ApproveURL string `json:"approveUrl"`
}

// CreateMercadoPagoPreference starts a MercadoPago checkout. An idempotency
// key is attached so a retried request cannot open two payments.
func (c *Client) CreateMercadoPagoPreference(ctx context.Context, months int) (*Preference, error) {
	body := PaymentRequest{Months: months}
	if err := c.validate.Struct(body); err != nil {
		return nil, errors.Wrapf(err, "api.CreateMercadoPagoPreference: invalid payload")
	}

	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out Preference
	resp, err := req.
		SetHeader("X-Idempotency-Key", uuid.New().String()).
		SetBody(body).
		SetResult(&out).
		Post("/api/pagos/mercadopago/crear-preferencia")
	if err != nil {
		return nil, errors.Wrapf(err, "api.CreateMercadoPagoPreference")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// CreatePayPalOrder starts a PayPal checkout.
func (c *Client) CreatePayPalOrder(ctx context.Context, months int) (*PayPalOrder, error) {
	body := PaymentRequest{Months: months}
	if err := c.validate.Struct(body); err != nil {
		return nil, errors.Wrapf(err, "api.CreatePayPalOrder: invalid payload")
	}

	req, err := c.authed(ctx)
	if err != nil {
		return nil, err
	}

	var out PayPalOrder
	resp, err := req.
		SetHeader("X-Idempotency-Key", uuid.New().String()).
		SetBody(body).
		SetResult(&out).
		Post("/api/pagos/paypal/crear-orden")
	if err != nil {
		return nil, errors.Wrapf(err, "api.CreatePayPalOrder")
	}
	if resp.IsError() {
		return nil, errorFromResponse(resp)
	}
	return &out, nil
}

// CapturePayPalOrder finalises an approved PayPal order.
func (c *Client) CapturePayPalOrder(ctx context.Context, orderID string) error {
	req, err := c.authed(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", orderID).
		Post("/api/pagos/paypal/capturar-orden/{id}")
	if err != nil {
		return errors.Wrapf(err, "api.CapturePayPalOrder")
	}
	if resp.IsError() {
		return errorFromResponse(resp)
	}
	return nil
}
