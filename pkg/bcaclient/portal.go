package bcaclient

import (
	"context"
	"net/http"
	"time"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// Investor portal endpoints and audit/modification logs.

func (c *Client) GetInvestorPortalAccessLogs(ctx context.Context, from, to *time.Time) (*types.DataResult[[]types.AccessLogEntry], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/investor_portal/access_logs", auth: true}
	r.query = rangeQuery(from, to)
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.AccessLogEntry](resp)
}

// RecordInvestorPortalAccess writes one access-log event. The portal
// frontend calls this before any session exists, so the request carries
// neither bearer token nor signature.
func (c *Client) RecordInvestorPortalAccess(ctx context.Context, entry types.AccessLogWrite) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPut,
		path:    "/v1/investor_portal/access_logs",
		payload: entry,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) GetInvestorPortalOptions(ctx context.Context) (*types.DataResult[types.InvestorPortalOptions], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/investor_portal/options"})
	if err != nil {
		return nil, err
	}
	return dataResult[types.InvestorPortalOptions](resp)
}

func (c *Client) UpdateInvestorPortalOptions(ctx context.Context, options types.InvestorPortalOptions) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPut,
		path:    "/v1/investor_portal/options",
		payload: options,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

// SendInvestorPortalHeartbeat keeps a portal session alive.
func (c *Client) SendInvestorPortalHeartbeat(ctx context.Context) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/investor_portal/session/heartbeat",
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) GetAuditLogs(ctx context.Context, from, to *time.Time) (*types.DataResult[[]types.AuditLogEntry], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/logs/audit", auth: true}
	r.query = rangeQuery(from, to)
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.AuditLogEntry](resp)
}

// GetModificationLogs lists field-level change records, optionally filtered
// by entity kind and ID.
func (c *Client) GetModificationLogs(ctx context.Context, entity string, entityID *int64) (*types.DataResult[[]types.ModificationLogEntry], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/logs/modification", auth: true}
	q := map[string]any{}
	if entity != "" {
		q["entity"] = entity
	}
	if entityID != nil {
		q["entityId"] = *entityID
	}
	if len(q) > 0 {
		r.query = q
	}
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.ModificationLogEntry](resp)
}
