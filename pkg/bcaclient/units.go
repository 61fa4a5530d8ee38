package bcaclient

import (
	"context"
	"net/http"
	"time"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// Unit-holders register and unit acquisition/redemption.

func (c *Client) GetUnitHoldersRegister(ctx context.Context, asAt *time.Time) (*types.DataResult[[]types.UnitHolding], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/unit_holders/register", auth: true}
	if asAt != nil {
		r.query = map[string]any{"asAt": *asAt}
	}
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.UnitHolding](resp)
}

// SubmitAcquisition commits a unit acquisition.
func (c *Client) SubmitAcquisition(ctx context.Context, req types.AcquisitionRequest) (*types.DataResult[types.UnitTransaction], error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/unit_holders/acquisition",
		payload: req,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.UnitTransaction](resp)
}

// PreviewAcquisition computes the outcome of an acquisition without
// committing it.
func (c *Client) PreviewAcquisition(ctx context.Context, req types.AcquisitionRequest) (*types.DataResult[types.UnitTransaction], error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/unit_holders/acquisition/preview",
		payload: req,
		auth:    true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.UnitTransaction](resp)
}

// SubmitRedemption commits a unit redemption.
func (c *Client) SubmitRedemption(ctx context.Context, req types.RedemptionRequest) (*types.DataResult[types.UnitTransaction], error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/unit_holders/redemption",
		payload: req,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.UnitTransaction](resp)
}

// PreviewRedemption computes the outcome of a redemption without committing
// it.
func (c *Client) PreviewRedemption(ctx context.Context, req types.RedemptionRequest) (*types.DataResult[types.UnitTransaction], error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/unit_holders/redemption/preview",
		payload: req,
		auth:    true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.UnitTransaction](resp)
}
