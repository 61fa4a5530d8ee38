package bcaclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// Administrator, bot, client and account management.

func (c *Client) GetAdmins(ctx context.Context) (*types.DataResult[[]types.Admin], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/admins", auth: true})
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.Admin](resp)
}

func (c *Client) UpdateAdmin(ctx context.Context, adminID int64, update types.AdminUpdate) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPut,
		path:    "/v1/admins/" + strconv.FormatInt(adminID, 10),
		payload: update,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) DeleteAdmin(ctx context.Context, adminID int64) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/v1/admins/" + strconv.FormatInt(adminID, 10),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) GetBots(ctx context.Context) (*types.DataResult[[]types.Bot], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/bots", auth: true})
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.Bot](resp)
}

func (c *Client) UpdateBot(ctx context.Context, botID int64, update types.BotUpdate) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPut,
		path:    "/v1/bots/" + strconv.FormatInt(botID, 10),
		payload: update,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) DeleteBot(ctx context.Context, botID int64) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/v1/bots/" + strconv.FormatInt(botID, 10),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) GetClients(ctx context.Context) (*types.DataResult[[]types.ClientRecord], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/clients", auth: true})
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.ClientRecord](resp)
}

func (c *Client) GetClient(ctx context.Context, clientID int64) (*types.DataResult[types.ClientRecord], error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/clients/" + strconv.FormatInt(clientID, 10),
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.ClientRecord](resp)
}

func (c *Client) UpdateClient(ctx context.Context, clientID int64, update types.ClientUpdate) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPut,
		path:    "/v1/clients/" + strconv.FormatInt(clientID, 10),
		payload: update,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) DeleteClient(ctx context.Context, clientID int64) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/v1/clients/" + strconv.FormatInt(clientID, 10),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) GetAccounts(ctx context.Context) (*types.DataResult[[]types.Account], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/accounts", auth: true})
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.Account](resp)
}

func (c *Client) GetAccount(ctx context.Context, accountID int64) (*types.DataResult[types.Account], error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/accounts/" + strconv.FormatInt(accountID, 10),
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.Account](resp)
}

func (c *Client) UpdateAccount(ctx context.Context, accountID int64, update types.AccountUpdate) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPut,
		path:    "/v1/accounts/" + strconv.FormatInt(accountID, 10),
		payload: update,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) DeleteAccount(ctx context.Context, accountID int64) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/v1/accounts/" + strconv.FormatInt(accountID, 10),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

// LinkAccountToClient attaches an account to a client.
func (c *Client) LinkAccountToClient(ctx context.Context, clientID, accountID int64) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPut,
		path: "/v1/clients/" + strconv.FormatInt(clientID, 10) +
			"/accounts/" + strconv.FormatInt(accountID, 10),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

// UnlinkAccountFromClient detaches an account from a client.
func (c *Client) UnlinkAccountFromClient(ctx context.Context, clientID, accountID int64) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path: "/v1/clients/" + strconv.FormatInt(clientID, 10) +
			"/accounts/" + strconv.FormatInt(accountID, 10),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}
