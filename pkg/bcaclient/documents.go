package bcaclient

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/transport"
	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// Document generation. Statement/report endpoints return binary payloads;
// the application form additionally uploads attachments as a multipart form.

func (c *Client) GenerateAccountStatement(ctx context.Context, accountID int64, financialYear string) (*types.FileResult, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/documents/account_statement",
		payload: types.AccountStatementRequest{AccountID: accountID, FinancialYear: financialYear},
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return fileResult(resp, "account_statement.pdf"), nil
}

func (c *Client) GenerateTaxStatement(ctx context.Context, accountID int64, financialYear string) (*types.FileResult, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/documents/tax_statement",
		payload: types.TaxStatementRequest{AccountID: accountID, FinancialYear: financialYear},
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return fileResult(resp, "tax_statement.pdf"), nil
}

// GenerateAIIR produces the annual investment income report.
func (c *Client) GenerateAIIR(ctx context.Context, financialYear string) (*types.FileResult, error) {
	resp, err := c.send(ctx, apiRequest{
		method:  http.MethodPost,
		path:    "/v1/documents/aiir",
		payload: types.AIIRRequest{FinancialYear: financialYear},
		auth:    true,
		signed:  true,
	})
	if err != nil {
		return nil, err
	}
	return fileResult(resp, "aiir"), nil
}

// GenerateApplicationForm uploads application metadata plus binary
// attachments and returns the generated form. Multipart bodies cannot carry
// a signed envelope, so this call authenticates with the bearer token.
func (c *Client) GenerateApplicationForm(ctx context.Context, metadata types.ApplicationFormMetadata, attachments []transport.FormFile) (*types.FileResult, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/documents/application_form",
		auth:   true,
		form: &transport.MultipartForm{
			Metadata: metadata,
			Files:    attachments,
		},
	})
	if err != nil {
		return nil, err
	}
	return fileResult(resp, "application_form.pdf"), nil
}

func (c *Client) GenerateRedemptionForm(ctx context.Context, accountID int64, units decimal.Decimal, date time.Time) (*types.FileResult, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/documents/redemption_form",
		payload: types.RedemptionFormRequest{
			AccountID: accountID,
			Units:     units,
			Date:      wireDate(date),
		},
		auth:   true,
		signed: true,
	})
	if err != nil {
		return nil, err
	}
	return fileResult(resp, "redemption_form.pdf"), nil
}
