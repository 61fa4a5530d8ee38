// Package types defines the typed results and domain records returned by the
// API client. Monetary and unit quantities are arbitrary-precision decimals,
// never floats; timestamps are timezone-aware and normalized to UTC by the
// wire format.
package types

// Result is the outcome every call reports: success flag and HTTP status.
// On failure only these two fields are populated; any error body the server
// attached is discarded at this layer and the caller branches on Status.
type Result struct {
	OK     bool `json:"ok"`
	Status int  `json:"status"`
}

// TokenResult is returned by token-issuance endpoints.
type TokenResult struct {
	Result
	Token string `json:"token,omitempty"`
}

// DataResult wraps a deserialized domain record or record slice. Data is nil
// on failure and on empty-bodied success responses.
type DataResult[T any] struct {
	Result
	Data *T `json:"data,omitempty"`
}

// File is a named binary payload, e.g. a generated PDF statement.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileResult is returned by document-generation endpoints.
type FileResult struct {
	Result
	File *File `json:"file,omitempty"`
}
