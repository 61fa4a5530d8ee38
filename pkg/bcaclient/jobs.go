package bcaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// Background job lifecycle and liability tracking.

func (c *Client) GetJobs(ctx context.Context) (*types.DataResult[[]types.Job], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/jobs", auth: true})
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.Job](resp)
}

func (c *Client) GetJob(ctx context.Context, jobID string) (*types.DataResult[types.Job], error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/jobs/" + url.PathEscape(jobID),
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.Job](resp)
}

func (c *Client) StartJob(ctx context.Context, jobID string) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/jobs/" + url.PathEscape(jobID) + "/start",
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) StopJob(ctx context.Context, jobID string) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/jobs/" + url.PathEscape(jobID) + "/stop",
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) DeleteJob(ctx context.Context, jobID string) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/v1/jobs/" + url.PathEscape(jobID),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) GetLiabilities(ctx context.Context) (*types.DataResult[[]types.Liability], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/liabilities", auth: true})
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.Liability](resp)
}

func (c *Client) UpdateLiability(ctx context.Context, liabilityID int64, update types.LiabilityUpdate) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPut,
		path:    "/v1/liabilities/" + strconv.FormatInt(liabilityID, 10),
		payload: update,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) DeleteLiability(ctx context.Context, liabilityID int64) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/v1/liabilities/" + strconv.FormatInt(liabilityID, 10),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}
