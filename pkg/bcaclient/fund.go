package bcaclient

import (
	"context"
	"net/http"
	"time"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// Fee calculation/capitalisation, tax ledger/attribution and fund metrics.

// GetFeeCalculation computes fees as at the given date without committing
// anything.
func (c *Client) GetFeeCalculation(ctx context.Context, at time.Time) (*types.DataResult[types.FeeCalculation], error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/fees/calculation",
		query:  map[string]any{"at": at},
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.FeeCalculation](resp)
}

// CapitaliseFees rolls the calculated fees into the unit ledger.
func (c *Client) CapitaliseFees(ctx context.Context, date time.Time) (*types.Result, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/fees/capitalisation",
		payload: types.FeeCapitalisationRequest{Date: wireDate(date)},
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return statusResult(resp), nil
}

func (c *Client) GetTaxLedger(ctx context.Context, financialYear string) (*types.DataResult[[]types.TaxLedgerEntry], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/tax/ledger", auth: true}
	if financialYear != "" {
		r.query = map[string]any{"financialYear": financialYear}
	}
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.TaxLedgerEntry](resp)
}

// SubmitTaxAttribution commits a tax attribution run.
func (c *Client) SubmitTaxAttribution(ctx context.Context, req types.TaxAttributionRequest) (*types.DataResult[types.TaxAttribution], error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/tax/attribution",
		payload: req,
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.TaxAttribution](resp)
}

// PreviewTaxAttribution computes an attribution without committing it.
func (c *Client) PreviewTaxAttribution(ctx context.Context, req types.TaxAttributionRequest) (*types.DataResult[types.TaxAttribution], error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/tax/attribution/preview",
		payload: req,
		auth:    true,
	})
	if err != nil {
		return nil, err
	}
	return dataResult[types.TaxAttribution](resp)
}

func (c *Client) GetFundMetricsHistory(ctx context.Context, from, to *time.Time) (*types.DataResult[[]types.FundMetrics], error) {
	r := apiRequest{method: http.MethodGet, path: "/v1/fund_metrics/history", auth: true}
	r.query = rangeQuery(from, to)
	resp, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	return dataResult[[]types.FundMetrics](resp)
}
