// Package http implements the request pipeline shared by every resource
// client: URL construction with team scoping, bearer authentication, the
// pre-request rate-limit wait, transport via retryablehttp, rate-limit header
// bookkeeping, and status-code classification into the typed error taxonomy.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/vercel-client/internal/auth"
	"github.com/fivetwenty-io/vercel-client/internal/constants"
	"github.com/fivetwenty-io/vercel-client/internal/ratelimit"
	"github.com/fivetwenty-io/vercel-client/pkg/vercel"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an outgoing API request. Body, when non-nil, is
// serialized to JSON.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents a received API response with its body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP pipeline. One instance is owned by one vercel client
// and shares a single rate-limit tracker across all its requests.
type Client struct {
	baseURL       string
	tokenProvider auth.TokenProvider
	httpClient    *retryablehttp.Client
	tracker       *ratelimit.Tracker
	teamID        string
	userAgent     string
	logger        Logger
	debug         bool
	interceptors  *vercel.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug request/response logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTeamID scopes every request to the given team via the teamId query
// parameter.
func WithTeamID(teamID string) Option {
	return func(c *Client) {
		c.teamID = teamID
	}
}

// WithRetryConfig opts in to transport-level retries for transient failures.
// Retries are disabled by default: the library's only built-in wait is the
// rate-limit pre-wait, and callers own any retry loop around requests.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
		c.httpClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	}
}

// WithHTTPTimeout bounds each underlying HTTP request.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors attaches a request/response interceptor chain.
func WithInterceptors(chain *vercel.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP pipeline client for the given base URL.
func NewClient(baseURL string, tokenProvider auth.TokenProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	// Never convert a received response into a "giving up" error: failure
	// classification needs the status code and headers. Retries stay off
	// until WithRetryConfig swaps in the default policy.
	retryClient.CheckRetry = func(_ context.Context, _ *http.Response, err error) (bool, error) {
		return false, err
	}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		tokenProvider: tokenProvider,
		httpClient:    retryClient,
		tracker:       ratelimit.NewTracker(),
		userAgent:     "vercel-client/1.0 (go)",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RateLimit returns the most recently observed rate-limit state. The second
// return is false until the first response carrying the headers arrives.
func (c *Client) RateLimit() (vercel.RateLimit, bool) {
	state, known := c.tracker.State()
	if !known {
		return vercel.RateLimit{}, false
	}

	return vercel.RateLimit{
		Limit:     state.Limit,
		Remaining: state.Remaining,
		Reset:     state.Reset,
	}, true
}

// Do executes one API request. The pipeline, in order: wait out a known
// exhausted rate-limit window, build the scoped URL, serialize the body,
// send, record rate-limit headers from the response regardless of status,
// then either return the success body or the classified *vercel.APIError.
// Non-2xx responses return both the Response and the error so callers can
// inspect the raw status if they need to.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := c.tracker.Wait(ctx); err != nil {
		return nil, vercel.NewNetworkError(err)
	}

	httpReq, intercepted, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, vercel.NewNetworkError(err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, vercel.NewNetworkError(err)
	}

	// Rate-limit state is refreshed from every response, success or failure.
	c.tracker.Update(httpResp.Header)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": httpResp.StatusCode,
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	var apiErr error
	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		apiErr = c.classifyError(req.Path, resp)
	}

	if c.interceptors != nil && intercepted != nil {
		interceptedResp := &vercel.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      apiErr,
		}

		if err := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp); err != nil {
			return resp, vercel.NewUnknownError(err)
		}
	}

	return resp, apiErr
}

// buildRequest assembles the outgoing request: URL with team scoping,
// serialized body, standard headers, and the request interceptor pass.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, *vercel.Request, error) {
	query := url.Values{}
	for key, values := range req.Query {
		query[key] = values
	}

	if c.teamID != "" {
		query.Set("teamId", c.teamID)
	}

	target := c.baseURL + req.Path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	var bodyBytes []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, nil, vercel.NewValidationError(fmt.Sprintf("encoding request body: %v", err))
		}

		bodyBytes = encoded
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	if bodyBytes != nil {
		headers.Set("Content-Type", "application/json")
	}

	if c.tokenProvider != nil {
		token, err := c.tokenProvider.Token(ctx)
		if err != nil {
			return nil, nil, vercel.NewAuthenticationFailedError(fmt.Sprintf("getting access token: %v", err))
		}

		headers.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	var intercepted *vercel.Request

	if c.interceptors != nil {
		intercepted = &vercel.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: headers,
			Body:    bodyBytes,
		}

		if err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted); err != nil {
			return nil, nil, vercel.NewUnknownError(err)
		}

		headers = intercepted.Headers
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, nil, vercel.NewValidationError(fmt.Sprintf("building request: %v", err))
	}

	httpReq.Header = headers

	return httpReq, intercepted, nil
}

// classifyError maps a non-2xx response onto the typed error taxonomy. The
// error body is parsed opportunistically; when it is absent or unparsable a
// fixed fallback message is used, so classification itself can never fail.
// Header-derived information wins over defaults when both are present.
func (c *Client) classifyError(path string, resp *Response) *vercel.APIError {
	detail, hasDetail := vercel.ParseErrorEnvelope(resp.Body)

	var apiErr *vercel.APIError

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		message := "authentication failed"
		if hasDetail && detail.Message != "" {
			message = detail.Message
		}

		apiErr = vercel.NewAuthenticationFailedError(message)

	case http.StatusForbidden:
		if hasDetail && detail.Code == vercel.TokenExpiredMarker {
			apiErr = vercel.NewTokenExpiredError()
		} else {
			apiErr = vercel.NewAuthenticationFailedError("Forbidden")
		}

	case http.StatusNotFound:
		apiErr = vercel.NewNotFoundError(path)

	case http.StatusTooManyRequests:
		resetAt := time.Now().Add(constants.DefaultRateLimitWindow)
		if resetStr := resp.Headers.Get(constants.HeaderRateLimitReset); resetStr != "" {
			if resetUnix, err := strconv.ParseInt(resetStr, 10, 64); err == nil {
				resetAt = time.Unix(resetUnix, 0)
			}
		}

		apiErr = vercel.NewRateLimitError(resetAt)

	default:
		code := "http_" + strconv.Itoa(resp.StatusCode)
		message := "unexpected API response"

		if hasDetail {
			if detail.Code != "" {
				code = detail.Code
			}

			if detail.Message != "" {
				message = detail.Message
			}
		}

		apiErr = vercel.NewAPIError(code, message)
	}

	apiErr.HTTPStatus = resp.StatusCode

	return apiErr
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request. The success body, if any, is ignored by
// callers; only success or the classified failure is surfaced.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
