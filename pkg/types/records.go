package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Admin is a fund administrator account.
type Admin struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Bot is a machine credential with its own signing identity.
type Bot struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
}

// ClientRecord is an investor client of the fund.
type ClientRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Account is an investment account, optionally linked to a client.
type Account struct {
	ID        int64     `json:"id"`
	ClientID  *int64    `json:"clientId,omitempty"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssetSetting holds per-asset configuration. Manual balance and price
// override the sourced values; null means no override, which is distinct
// from an override of zero.
type AssetSetting struct {
	AssetName     string              `json:"assetName"`
	AssetSymbol   string              `json:"assetSymbol"`
	ManualBalance decimal.NullDecimal `json:"manualBalance"`
	ManualPrice   decimal.NullDecimal `json:"manualPrice"`
}

// AssetPrice is one sourced price observation.
type AssetPrice struct {
	AssetName string          `json:"assetName"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source,omitempty"`
}

// AssetBalance is one sourced balance observation.
type AssetBalance struct {
	AssetName string          `json:"assetName"`
	Balance   decimal.Decimal `json:"balance"`
	Timestamp time.Time       `json:"timestamp"`
	Source    string          `json:"source,omitempty"`
}

// AssetSource describes where balances for an asset are read from, e.g. an
// exchange API or an on-chain address.
type AssetSource struct {
	ID        int64     `json:"id"`
	AssetName string    `json:"assetName"`
	Kind      string    `json:"kind"`
	Locator   string    `json:"locator"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssetSnapshot is a point-in-time valuation of fund holdings.
type AssetSnapshot struct {
	ID         int64           `json:"id"`
	TakenAt    time.Time       `json:"takenAt"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Balances   []AssetBalance  `json:"balances,omitempty"`
}

// UnitHolding is one row of the unit-holders register.
type UnitHolding struct {
	AccountID  int64           `json:"accountId"`
	UnitsHeld  decimal.Decimal `json:"unitsHeld"`
	AsAt       time.Time       `json:"asAt"`
	VintageID  *int64          `json:"vintageId,omitempty"`
	CostBase   decimal.NullDecimal `json:"costBase"`
}

// UnitLedgerEntry records one acquisition or redemption of units.
type UnitLedgerEntry struct {
	ID            int64           `json:"id"`
	AccountID     int64           `json:"accountId"`
	Date          time.Time       `json:"date"`
	UnitsAcquired decimal.Decimal `json:"unitsAcquired"`
	UnitsRedeemed decimal.Decimal `json:"unitsRedeemed"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Amount        decimal.Decimal `json:"amount"`
	VintageID     *int64          `json:"vintageId,omitempty"`
}

// VintageBreakdown is the per-vintage slice of a fee calculation. It nests
// the unit-ledger entries that make up the vintage.
type VintageBreakdown struct {
	VintageID int64             `json:"vintageId"`
	Date      time.Time         `json:"date"`
	Units     decimal.Decimal   `json:"units"`
	FeeAmount decimal.Decimal   `json:"feeAmount"`
	Entries   []UnitLedgerEntry `json:"entries,omitempty"`
}

// FeeCalculation is the result of a management/performance fee run.
type FeeCalculation struct {
	Date     time.Time          `json:"date"`
	TotalFee decimal.Decimal    `json:"totalFee"`
	Vintages []VintageBreakdown `json:"vintages,omitempty"`
}

// TaxLedgerEntry is one row of the tax ledger.
type TaxLedgerEntry struct {
	ID        int64           `json:"id"`
	Date      time.Time       `json:"date"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID *int64          `json:"accountId,omitempty"`
}

// TaxAttribution is the result of attributing taxable amounts to accounts.
type TaxAttribution struct {
	FinancialYear string                  `json:"financialYear"`
	Date          time.Time               `json:"date"`
	Total         decimal.Decimal         `json:"total"`
	PerAccount    []AccountTaxAttribution `json:"perAccount,omitempty"`
}

// AccountTaxAttribution is one account's share of a tax attribution.
type AccountTaxAttribution struct {
	AccountID int64            `json:"accountId"`
	Amount    decimal.Decimal  `json:"amount"`
	Entries   []TaxLedgerEntry `json:"entries,omitempty"`
}

// FundMetrics is a historical observation of fund-level figures.
type FundMetrics struct {
	Date         time.Time       `json:"date"`
	FundValue    decimal.Decimal `json:"fundValue"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	UnitsOnIssue decimal.Decimal `json:"unitsOnIssue"`
}

// UnitTransaction is the committed (or previewed) outcome of an acquisition
// or redemption.
type UnitTransaction struct {
	AccountID int64             `json:"accountId"`
	Date      time.Time         `json:"date"`
	Units     decimal.Decimal   `json:"units"`
	UnitPrice decimal.Decimal   `json:"unitPrice"`
	Amount    decimal.Decimal   `json:"amount"`
	Entries   []UnitLedgerEntry `json:"entries,omitempty"`
}

// AccessLogEntry is one investor-portal access event.
type AccessLogEntry struct {
	ID        int64     `json:"id"`
	AccountID *int64    `json:"accountId,omitempty"`
	Time      time.Time `json:"time"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// InvestorPortalOptions is the portal's display configuration.
type InvestorPortalOptions struct {
	MaintenanceMode    bool   `json:"maintenanceMode"`
	AnnouncementText   string `json:"announcementText,omitempty"`
	SessionTimeoutMins int64  `json:"sessionTimeoutMins"`
}

// AuditLogEntry is one administrative action record.
type AuditLogEntry struct {
	ID     int64     `json:"id"`
	Time   time.Time `json:"time"`
	Actor  string    `json:"actor"`
	Action string    `json:"action"`
	Entity string    `json:"entity,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// ModificationLogEntry records a field-level change to a domain record.
type ModificationLogEntry struct {
	ID       int64     `json:"id"`
	Time     time.Time `json:"time"`
	Actor    string    `json:"actor"`
	Entity   string    `json:"entity"`
	EntityID int64     `json:"entityId"`
	Field    string    `json:"field"`
	OldValue string    `json:"oldValue,omitempty"`
	NewValue string    `json:"newValue,omitempty"`
}

// Job is a background job visible through the job lifecycle endpoints.
type Job struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Status     string     `json:"status"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	LastError  string     `json:"lastError,omitempty"`
}

// Liability is a tracked fund liability.
type Liability struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	DateIncurred time.Time       `json:"dateIncurred"`
	Settled      bool            `json:"settled"`
}
