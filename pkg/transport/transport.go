// Package transport issues the wire-level HTTP calls and normalizes their
// outcomes. Ordinary HTTP failures are data, not errors: only faults below
// the HTTP layer (DNS, connection, timeout) surface as returned errors.
package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Response is the normalized outcome of one HTTP round trip. Exactly one of
// JSON, Text or Binary is populated, chosen by the declared content type of
// a successful response; failure responses carry status only.
type Response struct {
	OK          bool
	Status      int
	ContentType string
	FileName    string // from Content-Disposition, when the server names the payload
	JSON        json.RawMessage
	Text        string
	Binary      []byte
}

// Executor performs HTTP requests. Each call maps to exactly one outbound
// request; there is no retry, timeout or cancellation policy beyond what the
// supplied http.Client and context provide.
type Executor struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewExecutor creates an executor. A nil httpClient falls back to
// http.DefaultClient, a nil logger to a no-op logger.
func NewExecutor(httpClient *http.Client, logger *zap.Logger) *Executor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{httpClient: httpClient, logger: logger}
}

// Do issues the request once and normalizes the response. The outcome flag
// follows the status class (2xx is success). On success the body is
// materialized according to its content type; a body that fails to parse is
// treated as empty rather than failing the call, to tolerate servers that
// return empty bodies on some 2xx paths.
func (e *Executor) Do(req *http.Request) (*Response, error) {
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	out := &Response{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
	}

	if !out.OK {
		e.logger.Sugar().Debugw("Request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"status", resp.StatusCode,
		)
		return out, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		e.logger.Sugar().Warnw("Failed to read response body, treating as empty",
			"url", req.URL.String(),
			"error", err,
		)
		return out, nil
	}

	out.ContentType = resp.Header.Get("Content-Type")
	out.FileName = dispositionFileName(resp.Header.Get("Content-Disposition"))

	mediaType := out.ContentType
	if mt, _, err := mime.ParseMediaType(out.ContentType); err == nil {
		mediaType = mt
	}

	switch {
	case mediaType == "application/json":
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && json.Valid(trimmed) {
			out.JSON = trimmed
		} else if len(trimmed) > 0 {
			e.logger.Sugar().Warnw("Malformed JSON body on success response, treating as empty",
				"url", req.URL.String(),
				"status", resp.StatusCode,
			)
		}
	case strings.HasPrefix(mediaType, "text/"):
		out.Text = string(raw)
	case len(raw) > 0:
		out.Binary = raw
	}

	return out, nil
}

func dispositionFileName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
