// Package bcaclient is the typed client for the Blockchain Assets fund
// administration API. One method per remote endpoint; every method composes
// the same pipeline: build the wire request (attaching a bearer token and/or
// a Content-Signature over the canonical signed envelope), execute it once,
// and project the normalized response into a typed result.
package bcaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/blockchain-assets-pty-ltd/api-client/pkg/envelope"
	"github.com/blockchain-assets-pty-ltd/api-client/pkg/session"
	"github.com/blockchain-assets-pty-ltd/api-client/pkg/signer"
	"github.com/blockchain-assets-pty-ltd/api-client/pkg/transport"
	"github.com/blockchain-assets-pty-ltd/api-client/pkg/types"
)

// Config holds the optional construction parameters for a Client.
type Config struct {
	// AuthToken pre-seeds the bearer-token cache.
	AuthToken string

	// SigningKey is a hex-encoded secp256k1 private key enabling
	// self-authentication and signed writes.
	SigningKey string

	// SigningFunc is an external signing capability, mutually
	// substitutable with SigningKey. When both are set the function wins.
	SigningFunc signer.SignFunc

	// HTTPClient overrides the underlying transport, e.g. for custom TLS
	// or proxy settings.
	HTTPClient *http.Client

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// Client is a session-scoped API client. Each instance owns its own token
// cache, so multiple independently configured sessions can coexist in one
// process.
type Client struct {
	baseURL string
	signer  signer.Signer // nil when the client has no signing capability
	tokens  *session.TokenCache
	exec    *transport.Executor
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a client for the API at baseURL. cfg may be nil.
func New(baseURL string, cfg *Config) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var sgn signer.Signer
	switch {
	case cfg.SigningFunc != nil:
		sgn = signer.NewFuncSigner(cfg.SigningFunc)
	case cfg.SigningKey != "":
		keySigner, err := signer.NewKeySigner(cfg.SigningKey)
		if err != nil {
			return nil, err
		}
		sgn = keySigner
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		signer:  sgn,
		exec:    transport.NewExecutor(cfg.HTTPClient, logger),
		logger:  logger,
		now:     time.Now,
	}

	// Only a signing client can run the self-signed token exchange.
	var refresh session.RefreshFunc
	if sgn != nil {
		refresh = c.exchangeToken
	}
	c.tokens = session.New(cfg.AuthToken, refresh, logger)
	return c, nil
}

// apiRequest describes one logical call before it is lowered to the wire.
// auth and signed are independent facets; in practice signed writes
// authenticate via the signature and skip the bearer token.
type apiRequest struct {
	method  string
	path    string
	query   map[string]any
	payload any
	auth    bool
	signed  bool
	form    *transport.MultipartForm
}

func (c *Client) send(ctx context.Context, r apiRequest) (*transport.Response, error) {
	headers := http.Header{}
	var body []byte

	switch {
	case r.signed:
		if c.signer == nil {
			return nil, signer.ErrNoSigningCapability
		}
		env := envelope.New(r.method, r.path, r.payload, c.now())
		data, err := env.Marshal()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize signed envelope: %w", err)
		}
		sig, err := c.signer.Sign(ctx, string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to sign request: %w", err)
		}
		body = data
		headers.Set("Content-Signature", sig)
		headers.Set("Content-Type", "application/json")
	case r.form != nil:
		// Content type comes from the form encoder so the multipart
		// boundary is correct.
		data, contentType, err := r.form.Encode()
		if err != nil {
			return nil, err
		}
		body = data
		headers.Set("Content-Type", contentType)
	case r.payload != nil:
		data, err := json.Marshal(r.payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = data
		headers.Set("Content-Type", "application/json")
	}

	if r.auth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			headers.Set("Authorization", token)
		}
	}

	requestURL := c.baseURL + r.path
	if len(r.query) > 0 {
		qs, err := transport.EncodeQuery(r.query)
		if err != nil {
			return nil, err
		}
		requestURL += "?" + qs
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, vals := range headers {
		for _, v := range vals {
			req.Header.Set(key, v)
		}
	}

	c.logger.Sugar().Debugw("Sending request",
		"method", r.method,
		"path", r.path,
		"auth", r.auth,
		"signed", r.signed,
	)
	return c.exec.Do(req)
}

// exchangeToken performs the self-signed authentication exchange: a signed
// request with no payload to the token-issuance endpoint.
func (c *Client) exchangeToken(ctx context.Context) (string, error) {
	resp, err := c.send(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/token/verify_signature",
		signed: true,
	})
	if err != nil {
		return "", err
	}
	if !resp.OK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.Status)
	}
	var body struct {
		Token string `json:"token"`
	}
	if resp.JSON != nil {
		if err := json.Unmarshal(resp.JSON, &body); err != nil {
			return "", fmt.Errorf("failed to decode token response: %w", err)
		}
	}
	if body.Token == "" {
		return "", fmt.Errorf("token missing from response")
	}
	return body.Token, nil
}

// ParseDate normalizes a caller-supplied date string to a UTC timestamp,
// accepting the same shapes the wire format does. Unparseable input fails
// with transport.InvalidDateError.
func ParseDate(value string) (time.Time, error) {
	normalized, err := transport.NormalizeDate(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(envelope.DateFormat, normalized)
}

// wireDate formats a timestamp in the canonical ISO-8601 UTC form used in
// request payloads.
func wireDate(t time.Time) string {
	normalized, _ := transport.NormalizeDate(t)
	return normalized
}

func statusResult(resp *transport.Response) *types.Result {
	return &types.Result{OK: resp.OK, Status: resp.Status}
}

func tokenResult(resp *transport.Response) *types.TokenResult {
	out := &types.TokenResult{Result: types.Result{OK: resp.OK, Status: resp.Status}}
	if resp.OK && resp.JSON != nil {
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(resp.JSON, &body); err == nil {
			out.Token = body.Token
		}
	}
	return out
}

// dataResult decodes a successful JSON body into T. Failure responses and
// empty-bodied successes yield a result with no data.
func dataResult[T any](resp *transport.Response) (*types.DataResult[T], error) {
	out := &types.DataResult[T]{Result: types.Result{OK: resp.OK, Status: resp.Status}}
	if resp.OK && resp.JSON != nil {
		var data T
		if err := json.Unmarshal(resp.JSON, &data); err != nil {
			return nil, fmt.Errorf("failed to decode response body: %w", err)
		}
		out.Data = &data
	}
	return out, nil
}

func fileResult(resp *transport.Response, fallbackName string) *types.FileResult {
	out := &types.FileResult{Result: types.Result{OK: resp.OK, Status: resp.Status}}
	if resp.OK && resp.Binary != nil {
		name := resp.FileName
		if name == "" {
			name = fallbackName
		}
		out.File = &types.File{
			Name:        name,
			ContentType: resp.ContentType,
			Data:        resp.Binary,
		}
	}
	return out
}
