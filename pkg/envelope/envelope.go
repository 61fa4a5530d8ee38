// Package envelope builds the canonical signed document that write-protected
// API calls carry as their body. The server reconstructs the same document
// byte-for-byte to verify the Content-Signature header, so serialization
// must be deterministic: struct field order fixes the key order.
package envelope

import (
	"encoding/json"
	"time"
)

// DateFormat is the wire format for envelope timestamps: ISO-8601 in UTC
// with millisecond precision.
const DateFormat = "2006-01-02T15:04:05.000Z"

// Envelope binds an endpoint, an optional payload and a send-time timestamp
// into the single document that gets signed. The date is generated when the
// request is built, never cached, so every request signs a fresh envelope.
type Envelope struct {
	Endpoint string `json:"endpoint"`
	Payload  any    `json:"payload,omitempty"`
	Date     string `json:"date"`
}

// New builds an envelope for one request. Endpoint is "<METHOD> <path>".
// A nil payload is omitted from the serialized document entirely.
func New(method, path string, payload any, now time.Time) Envelope {
	return Envelope{
		Endpoint: method + " " + path,
		Payload:  payload,
		Date:     now.UTC().Format(DateFormat),
	}
}

// Marshal returns the exact bytes that are signed and sent as the request
// body.
func (e Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
