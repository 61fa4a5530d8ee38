package transport

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	sydney := time.FixedZone("AEST", 10*60*60)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "utc time", value: time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC), want: "2024-06-30T23:59:59.000Z"},
		{name: "zoned time converted", value: time.Date(2024, 7, 1, 9, 59, 59, 0, sydney), want: "2024-06-30T23:59:59.000Z"},
		{name: "rfc3339 string", value: "2024-06-30T23:59:59Z", want: "2024-06-30T23:59:59.000Z"},
		{name: "date-only string", value: "2024-06-30", want: "2024-06-30T00:00:00.000Z"},
		{name: "offset string", value: "2024-07-01T09:59:59+10:00", want: "2024-06-30T23:59:59.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "garbage string", value: "not a date"},
		{name: "partial date", value: "2024-13-45"},
		{name: "unsupported type", value: struct{}{}},
		{name: "nil time pointer", value: (*time.Time)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeDate(tt.value)
			require.Error(t, err)
			var invalid *InvalidDateError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	at := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	qs, err := EncodeQuery(map[string]any{
		"from":   at,
		"limit":  50,
		"asset":  "BTC/AUD",
		"active": true,
		"units":  decimal.RequireFromString("12.345"),
	})
	require.NoError(t, err)

	// Keys sorted; reserved characters escaped.
	assert.Equal(t,
		"active=true&asset=BTC%2FAUD&from=2024-06-30T00%3A00%3A00.000Z&limit=50&units=12.345",
		qs)
}

func TestEncodeQuery_Empty(t *testing.T) {
	qs, err := EncodeQuery(nil)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestEncodeQuery_UnsupportedValue(t *testing.T) {
	_, err := EncodeQuery(map[string]any{"bad": []int{1, 2}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `query parameter "bad"`)
}
