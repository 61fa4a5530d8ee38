package bcaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// Asset settings, prices, balances, sources and snapshots.

func (c *Client) GetAssetSettings(ctx context.Context) (*types.DataResult[[]types.AssetSetting], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/assets/settings", auth: true})
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.AssetSetting](resp)
}

// UpdateAssetSettingsForAsset replaces the settings for one asset. The asset
// name may contain reserved characters and is URL-escaped in the path. Nil
// manual values clear the corresponding override.
func (c *Client) UpdateAssetSettingsForAsset(ctx context.Context, assetName, assetSymbol string, manualBalance, manualPrice *decimal.Decimal) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPut,
		path:   "/v1/assets/settings/" + url.PathEscape(assetName),
		payload: types.AssetSettingUpdate{
			AssetName:     assetName,
			AssetSymbol:   assetSymbol,
			ManualBalance: manualBalance,
			ManualPrice:   manualPrice,
		},
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) DeleteAssetSettingsForAsset(ctx context.Context, assetName string) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/v1/assets/settings/" + url.PathEscape(assetName),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

// GetAssetPrices returns sourced prices, optionally as at a point in time.
func (c *Client) GetAssetPrices(ctx context.Context, at *time.Time) (*types.DataResult[[]types.AssetPrice], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/assets/prices", auth: true}
	if at != nil {
		r.query = map[string]any{"at": *at}
	}
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.AssetPrice](resp)
}

func (c *Client) GetAssetBalances(ctx context.Context, at *time.Time) (*types.DataResult[[]types.AssetBalance], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/assets/balances", auth: true}
	if at != nil {
		r.query = map[string]any{"at": *at}
	}
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.AssetBalance](resp)
}

func (c *Client) GetAssetSources(ctx context.Context) (*types.DataResult[[]types.AssetSource], error) {
	resp, err := c.send(ctx, apiRequest{method: http.MethodGet, path: "/v1/assets/sources", auth: true})
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.AssetSource](resp)
}

func (c *Client) UpdateAssetSource(ctx context.Context, sourceID int64, update types.AssetSourceUpdate) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPut,
		path:    "/v1/assets/sources/" + strconv.FormatInt(sourceID, 10),
		payload: update,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) DeleteAssetSource(ctx context.Context, sourceID int64) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodDelete,
		path:   "/v1/assets/sources/" + strconv.FormatInt(sourceID, 10),
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) GetAssetSnapshots(ctx context.Context, from, to *time.Time) (*types.DataResult[[]types.AssetSnapshot], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/assets/snapshots", auth: true}
	r.query = rangeQuery(from, to)
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.AssetSnapshot](resp)
}

// CreateAssetSnapshot values the fund's holdings now and persists the result.
func (c *Client) CreateAssetSnapshot(ctx context.Context) (*types.DataResult[types.AssetSnapshot], error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/assets/snapshots",
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.AssetSnapshot](resp)
}

// rangeQuery builds the from/to query pair, omitting unset bounds.
func rangeQuery(from, to *time.Time) map[string]any {
	if from == nil && to == nil {
		return nil
	}
	q := map[string]any{}
	if from != nil {
		q["from"] = *from
	}
	if to != nil {
		q["to"] = *to
	}
	return q
}
