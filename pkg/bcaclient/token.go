package bcaclient

import (
	"context"
	"net/http"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// VerifySignature performs the signed authentication exchange and caches the
// issued bearer token.
func (c *Client) VerifySignature(ctx context.Context) (*types.TokenResult, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/token/verify_signature",
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	out := tokenResult(resp)
	if out.OK && out.Token != "" {
		c.tokens.Set(out.Token)
	}
	return out, nil
}

// VerifyToken checks whether the cached bearer token is accepted by the
// server.
func (c *Client) VerifyToken(ctx context.Context) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/token/verify",
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

// RefreshToken exchanges the current bearer token for a fresh one and caches
// the replacement.
func (c *Client) RefreshToken(ctx context.Context) (*types.TokenResult, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/token/refresh",
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	out := tokenResult(resp)
	if out.OK && out.Token != "" {
		c.tokens.Set(out.Token)
	}
	return out, nil
}
