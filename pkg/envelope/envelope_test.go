package envelope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KeyOrderAndDateFormat(t *testing.T) {
	at := time.Date(2024, 3, 7, 1, 2, 3, 450_000_000, time.UTC)

	env := New("POST", "/v1/token/verify_signature", nil, at)
	data, err := env.Marshal()
	require.NoError(t, err)

	// Payload omitted when nil; keys in endpoint, date order.
	assert.Equal(t,
		`{"endpoint":"POST /v1/token/verify_signature","date":"2024-03-07T01:02:03.450Z"}`,
		string(data))
}

func TestNew_PayloadSerializedInPlace(t *testing.T) {
	at := time.Date(2024, 3, 7, 1, 2, 3, 0, time.UTC)
	payload := struct {
		AssetName   string `json:"assetName"`
		AssetSymbol string `json:"assetSymbol"`
	}{AssetName: "BTC", AssetSymbol: "BTC"}

	env := New("PUT", "/v1/assets/settings/BTC", payload, at)
	data, err := env.Marshal()
	require.NoError(t, err)

	assert.Equal(t,
		`{"endpoint":"PUT /v1/assets/settings/BTC","payload":{"assetName":"BTC","assetSymbol":"BTC"},"date":"2024-03-07T01:02:03.000Z"}`,
		string(data))
}

func TestNew_DateConvertedToUTC(t *testing.T) {
	loc := time.FixedZone("AEST", 10*60*60)
	at := time.Date(2024, 3, 7, 11, 0, 0, 0, loc)

	env := New("GET", "/v1/admins", nil, at)
	assert.Equal(t, "2024-03-07T01:00:00.000Z", env.Date)
}

func TestNew_FreshDatePerEnvelope(t *testing.T) {
	payload := map[string]string{"a": "b"}
	e1 := New("POST", "/v1/x", payload, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	e2 := New("POST", "/v1/x", payload, time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC))

	b1, err := e1.Marshal()
	require.NoError(t, err)
	b2, err := e2.Marshal()
	require.NoError(t, err)
	assert.NotEqual(t, string(b1), string(b2))
}
