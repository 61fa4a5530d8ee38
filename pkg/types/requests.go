package types

import "github.com/shopspring/decimal"

// Request payloads for write endpoints. Field order is load-bearing: these
// structs are serialized inside the signed envelope and the server must
// reproduce the same byte sequence to verify the signature. Date fields are
// strings already normalized to the canonical ISO-8601 UTC form.

// AdminUpdate creates or replaces an administrator.
type AdminUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BotUpdate creates or replaces a bot credential.
type BotUpdate struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ClientUpdate creates or replaces an investor client.
type ClientUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// AccountUpdate creates or replaces an account.
type AccountUpdate struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ClientID *int64 `json:"clientId,omitempty"`
}

// AssetSettingUpdate replaces per-asset settings. Nil manual values are
// serialized as JSON null, clearing the override on the server.
type AssetSettingUpdate struct {
	AssetName     string           `json:"assetName"`
	AssetSymbol   string           `json:"assetSymbol"`
	ManualBalance *decimal.Decimal `json:"manualBalance"`
	ManualPrice   *decimal.Decimal `json:"manualPrice"`
}

// AssetSourceUpdate creates or replaces a balance source.
type AssetSourceUpdate struct {
	AssetName string `json:"assetName"`
	Kind      string `json:"kind"`
	Locator   string `json:"locator"`
}

// AcquisitionRequest commits (or previews) a unit acquisition.
type AcquisitionRequest struct {
	AccountID int64           `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
}

// RedemptionRequest commits (or previews) a unit redemption.
type RedemptionRequest struct {
	AccountID int64           `json:"accountId"`
	Units     decimal.Decimal `json:"units"`
	Date      string          `json:"date"`
}

// FeeCapitalisationRequest rolls calculated fees into the unit ledger.
type FeeCapitalisationRequest struct {
	Date string `json:"date"`
}

// TaxAttributionRequest commits (or previews) a tax attribution run.
type TaxAttributionRequest struct {
	FinancialYear string `json:"financialYear"`
	Date          string `json:"date"`
}

// AccessLogWrite records one investor-portal access event. Written by the
// portal frontend, so the endpoint carries neither auth facet.
type AccessLogWrite struct {
	AccountID *int64 `json:"accountId,omitempty"`
	Time      string `json:"time"`
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent,omitempty"`
}

// LiabilityUpdate creates or replaces a tracked liability.
type LiabilityUpdate struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	DateIncurred string          `json:"dateIncurred"`
	Settled      bool            `json:"settled"`
}

// AccountStatementRequest generates an account statement document.
type AccountStatementRequest struct {
	AccountID     int64  `json:"accountId"`
	FinancialYear string `json:"financialYear"`
}

// TaxStatementRequest generates a tax statement document.
type TaxStatementRequest struct {
	AccountID     int64  `json:"accountId"`
	FinancialYear string `json:"financialYear"`
}

// AIIRRequest generates the annual investment income report.
type AIIRRequest struct {
	FinancialYear string `json:"financialYear"`
}

// RedemptionFormRequest generates a redemption form document.
type RedemptionFormRequest struct {
	AccountID int64           `json:"accountId"`
	Units     decimal.Decimal `json:"units"`
	Date      string          `json:"date"`
}

// ApplicationFormMetadata is the JSON blob accompanying the binary
// attachments of an application-form upload.
type ApplicationFormMetadata struct {
	ClientName  string `json:"clientName"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
}
