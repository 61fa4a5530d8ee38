package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFidelity(t *testing.T) {
	// A value with no exact binary floating-point representation must
	// survive the round trip exactly.
	var entry UnitLedgerEntry
	err := json.Unmarshal([]byte(`{
		"id": 1,
		"accountId": 42,
		"date": "2024-06-30T00:00:00.000Z",
		"unitsAcquired": "1234.56789",
		"unitsRedeemed": "0",
		"unitPrice": 1.015,
		"amount": "1253.08640835"
	}`), &entry)
	require.NoError(t, err)

	assert.True(t, entry.UnitsAcquired.Equal(decimal.RequireFromString("1234.56789")),
		"got %s", entry.UnitsAcquired)
	assert.Equal(t, "1234.56789", entry.UnitsAcquired.String())
	assert.True(t, entry.UnitPrice.Equal(decimal.RequireFromString("1.015")))
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("1253.08640835")))
}

func TestNullableAndOptionalDecimals(t *testing.T) {
	var setting AssetSetting
	err := json.Unmarshal([]byte(`{
		"assetName": "BTC",
		"assetSymbol": "BTC",
		"manualBalance": null,
		"manualPrice": "65000.10"
	}`), &setting)
	require.NoError(t, err)

	// Null is distinct from zero.
	assert.False(t, setting.ManualBalance.Valid)
	require.True(t, setting.ManualPrice.Valid)
	assert.True(t, setting.ManualPrice.Decimal.Equal(decimal.RequireFromString("65000.10")))
}

func TestOptionalFieldsAbsent(t *testing.T) {
	var account Account
	err := json.Unmarshal([]byte(`{
		"id": 7,
		"name": "Smith Family Trust",
		"type": "trust",
		"createdAt": "2023-01-15T03:04:05.000Z"
	}`), &account)
	require.NoError(t, err)

	// Absent is distinct from present-and-null and from zero.
	assert.Nil(t, account.ClientID)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, 2023, account.CreatedAt.UTC().Year())
}

func TestNestedFeeCalculation(t *testing.T) {
	var calc FeeCalculation
	err := json.Unmarshal([]byte(`{
		"date": "2024-06-30T00:00:00.000Z",
		"totalFee": "152.25",
		"vintages": [
			{
				"vintageId": 3,
				"date": "2023-07-01T00:00:00.000Z",
				"units": "1000",
				"feeAmount": "152.25",
				"entries": [
					{
						"id": 11,
						"accountId": 42,
						"date": "2023-07-01T00:00:00.000Z",
						"unitsAcquired": "1000",
						"unitsRedeemed": "0",
						"unitPrice": "1.00",
						"amount": "1000.00",
						"vintageId": 3
					}
				]
			}
		]
	}`), &calc)
	require.NoError(t, err)

	require.Len(t, calc.Vintages, 1)
	vintage := calc.Vintages[0]
	assert.True(t, vintage.FeeAmount.Equal(decimal.RequireFromString("152.25")))
	require.Len(t, vintage.Entries, 1)
	require.NotNil(t, vintage.Entries[0].VintageID)
	assert.Equal(t, int64(3), *vintage.Entries[0].VintageID)
}
