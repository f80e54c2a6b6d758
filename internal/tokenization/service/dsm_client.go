package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/prabhanjangururaj/records-vault/internal/errors"
	"github.com/prabhanjangururaj/records-vault/internal/tokenization/domain"
)

// DSM API paths and the encryption parameters used for tokenization. FPE mode
// keeps the ciphertext in the same shape as the input value.
const (
	sessionAuthPath  = "/sys/v1/session/auth"
	batchEncryptPath = "/crypto/v1/keys/batch/encrypt"
	batchDecryptPath = "/crypto/v1/keys/batch/decrypt"

	cryptoAlg  = "AES"
	cryptoMode = "FPE"
)

// DSMClient talks to a Fortanix DSM cluster: session authentication and the
// batched encrypt/decrypt endpoints. All payload values are base64 on the
// wire; the client encodes on send and decodes on receive.
type DSMClient struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// DSMClientOption configures the DSMClient.
type DSMClientOption func(*DSMClient)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client *http.Client) DSMClientOption {
	return func(c *DSMClient) {
		c.httpClient = client
	}
}

// NewDSMClient creates a client for the DSM cluster at endpoint. Every
// request is bounded by the given timeout in addition to the caller's
// context deadline.
func NewDSMClient(
	endpoint string,
	timeout time.Duration,
	logger *slog.Logger,
	opts ...DSMClientOption,
) *DSMClient {
	c := &DSMClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// authResponse is the body returned by the session auth endpoint.
type authResponse struct {
	AccessToken string `json:"access_token"`
}

// batchItemRequest is one entry of a batch encrypt/decrypt request.
type batchItemRequest struct {
	Kid     string        `json:"kid"`
	Request cryptoRequest `json:"request"`
}

// cryptoRequest carries the per-item crypto parameters. Plain is set for
// encryption, Cipher and Masked for decryption.
type cryptoRequest struct {
	Alg    string `json:"alg"`
	Plain  string `json:"plain,omitempty"`
	Cipher string `json:"cipher,omitempty"`
	Mode   string `json:"mode"`
	Masked *bool  `json:"masked,omitempty"`
}

// batchItemResponse is one entry of a batch response, positionally aligned to
// the request. Depending on the DSM version the payload arrives either at the
// top level or nested under body.
type batchItemResponse struct {
	Cipher string             `json:"cipher,omitempty"`
	Plain  string             `json:"plain,omitempty"`
	Error  json.RawMessage    `json:"error,omitempty"`
	Body   *batchItemResponse `json:"body,omitempty"`
}

// Authenticate exchanges a role's Basic-scheme API key for a bearer token.
func (c *DSMClient) Authenticate(ctx context.Context, apiKey string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+sessionAuthPath, nil)
	if err != nil {
		return "", apperrors.Wrap(domain.ErrTransport, err.Error())
	}
	req.Header.Set("Authorization", "Basic "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(domain.ErrTransport, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(domain.ErrTransport, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.Wrap(
			domain.ErrAuthenticationFailed,
			fmt.Sprintf("status %d: %s", resp.StatusCode, truncate(string(body))),
		)
	}

	var auth authResponse
	if err := json.Unmarshal(body, &auth); err != nil {
		return "", apperrors.Wrap(domain.ErrAuthenticationFailed, "unparseable auth response")
	}
	if auth.AccessToken == "" {
		return "", apperrors.Wrap(domain.ErrAuthenticationFailed, "no access token in response")
	}

	return auth.AccessToken, nil
}

// EncryptBatch tokenizes all items in a single remote call. The returned
// results are positionally aligned to items; per-item failures are reported
// in the result's Err and never abort the rest of the batch.
func (c *DSMClient) EncryptBatch(
	ctx context.Context,
	bearerToken string,
	items []domain.EncryptItem,
) ([]domain.BatchResult, error) {
	request := make([]batchItemRequest, len(items))
	for i, item := range items {
		request[i] = batchItemRequest{
			Kid: item.KeyID,
			Request: cryptoRequest{
				Alg:   cryptoAlg,
				Plain: base64.StdEncoding.EncodeToString([]byte(item.Plaintext)),
				Mode:  cryptoMode,
			},
		}
	}

	entries, err := c.postBatch(ctx, batchEncryptPath, bearerToken, request)
	if err != nil {
		return nil, err
	}

	return correlate(entries, len(items), func(entry *batchItemResponse) string {
		return entry.Cipher
	}), nil
}

// DecryptBatch detokenizes all items in a single remote call. A masked item
// may come back as a short partial string; it is passed through unchanged.
func (c *DSMClient) DecryptBatch(
	ctx context.Context,
	bearerToken string,
	items []domain.DecryptItem,
) ([]domain.BatchResult, error) {
	request := make([]batchItemRequest, len(items))
	for i, item := range items {
		masked := item.Masked
		request[i] = batchItemRequest{
			Kid: item.KeyID,
			Request: cryptoRequest{
				Alg:    cryptoAlg,
				Cipher: base64.StdEncoding.EncodeToString([]byte(item.Ciphertext)),
				Mode:   cryptoMode,
				Masked: &masked,
			},
		}
	}

	entries, err := c.postBatch(ctx, batchDecryptPath, bearerToken, request)
	if err != nil {
		return nil, err
	}

	return correlate(entries, len(items), func(entry *batchItemResponse) string {
		return entry.Plain
	}), nil
}

// postBatch sends a batch request and decodes the positional response array.
func (c *DSMClient) postBatch(
	ctx context.Context,
	path string,
	bearerToken string,
	request []batchItemRequest,
) ([]batchItemResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrTransport, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrTransport, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrTransport, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(domain.ErrTransport, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.classifyRemoteError(resp.StatusCode, string(body))
	}

	var entries []batchItemResponse
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, apperrors.Wrap(domain.ErrTransport, "unparseable batch response")
	}

	c.logger.Debug("dsm batch call completed",
		slog.String("path", path),
		slog.Int("items", len(request)),
		slog.Int("entries", len(entries)),
	)

	return entries, nil
}

// classifyRemoteError turns a non-2xx batch response into an error. Session
// expiry is detected by substring-matching the free-text error body; the
// DSM's wording is not contractually stable, so the match is deliberately
// loose and kept in this one place.
func (c *DSMClient) classifyRemoteError(statusCode int, body string) error {
	if isSessionExpiredText(body) {
		return apperrors.Wrap(domain.ErrSessionExpired, truncate(body))
	}
	return apperrors.Wrap(
		domain.ErrTransport,
		fmt.Sprintf("status %d: %s", statusCode, truncate(body)),
	)
}

// classifyItemError turns a per-item error payload into a result error.
// Expiry wording inside an item error still means the whole session is stale,
// so it carries the same sentinel as a batch-wide rejection.
func classifyItemError(raw json.RawMessage) error {
	body := string(raw)
	if isSessionExpiredText(body) {
		return apperrors.Wrap(domain.ErrSessionExpired, truncate(body))
	}
	return apperrors.New("dsm item error: " + truncate(body))
}

// isSessionExpiredText reports whether a remote error body looks like a
// session expiry rejection.
func isSessionExpiredText(s string) bool {
	return strings.Contains(s, "session has expired") ||
		strings.Contains(s, "expired") ||
		strings.Contains(s, "Session")
}

// correlate maps the positional response entries back onto the request
// indexes. Indexes the response omits become per-item errors. This is the
// single place that relies on positional ordering; replacing it with
// id-based correlation would not touch any caller.
func correlate(
	entries []batchItemResponse,
	itemCount int,
	extract func(entry *batchItemResponse) string,
) []domain.BatchResult {
	results := make([]domain.BatchResult, itemCount)
	for i := range results {
		if i >= len(entries) {
			results[i] = domain.BatchResult{Err: apperrors.New("no response entry for item")}
			continue
		}

		entry := &entries[i]
		value := extract(entry)
		if value == "" && entry.Body != nil {
			value = extract(entry.Body)
		}

		switch {
		case value != "":
			decoded, err := base64.StdEncoding.DecodeString(value)
			if err != nil {
				results[i] = domain.BatchResult{Err: apperrors.Wrap(err, "undecodable payload")}
				continue
			}
			results[i] = domain.BatchResult{Value: string(decoded)}
		case entry.Error != nil:
			results[i] = domain.BatchResult{Err: classifyItemError(entry.Error)}
		default:
			results[i] = domain.BatchResult{Err: apperrors.New("empty response entry")}
		}
	}
	return results
}

// truncate bounds an error body for log and error messages, cutting on a
// rune boundary so a multi-byte character is never split.
func truncate(s string) string {
	const max = 256
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
