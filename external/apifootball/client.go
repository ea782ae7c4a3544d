// Package apifootball talks to the API-Football v3 REST API and maps its
// payloads to domain records.
package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/fut-data/internal/platform/cache"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/platform/resilience"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

const (
	DefaultBaseURL = "https://v3.football.api-sports.io"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 6 << 20

	TeamsTTL   = 120 * time.Second
	PlayersTTL = 60 * time.Second
	CoachesTTL = 120 * time.Second

	apiKeyHeader = "x-apisports-key"
)

var apiKeyParamRegex = regexp.MustCompile(`(?i)(x-apisports-key[=:]\s*)[^&\s"']+`)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Cache          *cache.Store
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *cache.Store
	logger     *logging.Logger
	breaker    *resilience.Breaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	store := cfg.Cache
	if store == nil {
		store = cache.NewStore(cache.DefaultMaxEntries)
	}

	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.Counts == nil {
		breakerCfg.Counts = usecase.IsNetworkFailure
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		cache:      store,
		logger:     logger,
		breaker:    resilience.NewBreaker(breakerCfg),
	}
}

// CacheKey identifies a request by endpoint and its non-empty params, sorted
// by name.
func CacheKey(endpoint string, params map[string]string) string {
	return endpoint + "?" + encodeParams(params)
}

// GetCached serves a payload younger than ttl from the cache or fetches it.
// Only successful payloads are stored.
func (c *Client) GetCached(ctx context.Context, endpoint string, params map[string]string, ttl time.Duration) ([]byte, error) {
	out, err := c.cache.GetOrLoad(ctx, CacheKey(endpoint, params), ttl, func(ctx context.Context) (any, error) {
		return c.Get(ctx, endpoint, params)
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cached payload type %T", out)
	}
	return raw, nil
}

// Get performs one upstream request. Failures are *usecase.UpstreamError
// values, except caller cancellation which returns the context error.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	fullURL := c.baseURL + endpoint
	if encoded := encodeParams(params); encoded != "" {
		fullURL += "?" + encoded
	}

	var raw []byte
	err := c.breaker.Call(ctx, func(ctx context.Context) error {
		var reqErr error
		raw, reqErr = c.execute(ctx, endpoint, fullURL)
		return reqErr
	})
	if stderrors.Is(err, resilience.ErrOpen) {
		c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "endpoint", endpoint, "state", c.breaker.Snapshot().State)
		return nil, &usecase.UpstreamError{
			Kind:     usecase.UpstreamNetwork,
			Endpoint: endpoint,
			Message:  "API-Football temporariamente indisponível",
			Err:      err,
		}
	}
	return raw, err
}

// Breaker reports the upstream circuit breaker state.
func (c *Client) Breaker() resilience.Snapshot {
	return c.breaker.Snapshot()
}

func (c *Client) execute(ctx context.Context, endpoint, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build api-football request")
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, c.networkError(ctx, endpoint, "send request", err)
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
	if readErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, c.networkError(ctx, endpoint, "read response body", readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := errorsMessageField(raw)
		if message == "" {
			message = fmt.Sprintf("API-Football erro HTTP %d", resp.StatusCode)
		}
		c.logger.WarnContext(ctx, "api-football request failed",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"body", abbreviateBody(sanitizeSensitiveText(string(raw), c.apiKey)),
		)
		return nil, &usecase.UpstreamError{
			Kind:     usecase.UpstreamHTTPStatus,
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Message:  message,
		}
	}

	if message, ok := embeddedError(raw); ok {
		c.logger.WarnContext(ctx, "api-football returned errors", "endpoint", endpoint, "error", message)
		return nil, &usecase.UpstreamError{
			Kind:     usecase.UpstreamAPIPayload,
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Message:  message,
		}
	}

	return raw, nil
}

func (c *Client) networkError(ctx context.Context, endpoint, op string, err error) error {
	message := err.Error()
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) && urlErr.Err != nil {
		message = urlErr.Err.Error()
	}
	message = sanitizeSensitiveText(message, c.apiKey)

	c.logger.WarnContext(ctx, "api-football network failure", "endpoint", endpoint, "op", op, "error", message)
	return &usecase.UpstreamError{
		Kind:     usecase.UpstreamNetwork,
		Endpoint: endpoint,
		Message:  message,
		Err:      crerr.Wrap(err, op),
	}
}

func encodeParams(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		values.Set(key, value)
	}
	return values.Encode()
}

// errorsMessageField reads errors.message from an error body.
func errorsMessageField(raw []byte) string {
	node, err := sonic.Get(raw, "errors", "message")
	if err != nil {
		return ""
	}
	message, ok := truthyText(&node)
	if !ok {
		return ""
	}
	return message
}

// embeddedError reports a non-empty errors object or array on a 2xx body and
// returns its first truthy value.
func embeddedError(raw []byte) (string, bool) {
	node, err := sonic.Get(raw, "errors")
	if err != nil {
		return "", false
	}
	switch node.Type() {
	case ast.V_OBJECT, ast.V_ARRAY:
	default:
		return "", false
	}

	size := 0
	message := ""
	err = node.ForEach(func(_ ast.Sequence, item *ast.Node) bool {
		size++
		if text, ok := truthyText(item); ok {
			message = text
			return false
		}
		return true
	})
	if err != nil || size == 0 {
		return "", false
	}
	if message == "" {
		message = "API-Football retornou erro"
	}
	return message, true
}

func truthyText(node *ast.Node) (string, bool) {
	switch node.Type() {
	case ast.V_STRING:
		text, err := node.String()
		return text, err == nil && text != ""
	case ast.V_NUMBER:
		value, err := node.Float64()
		if err != nil || value == 0 {
			return "", false
		}
		text, err := node.Raw()
		return text, err == nil
	case ast.V_TRUE:
		return "true", true
	case ast.V_OBJECT, ast.V_ARRAY:
		text, err := node.Raw()
		return text, err == nil
	default:
		return "", false
	}
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "${1}REDACTED")
}

func abbreviateBody(text string) string {
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
