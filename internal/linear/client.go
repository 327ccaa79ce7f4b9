// Package linear is the transport layer for Linear's GraphQL API.
//
// A Client sends one query document plus variables per call to a single
// HTTPS endpoint, classifies HTTP and GraphQL failures into typed errors
// and hands back the envelope's "data" object untouched. It keeps no
// state between calls: no cache, no retries and no pooled connections.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultEndpoint is Linear's public GraphQL endpoint.
	DefaultEndpoint = "https://api.linear.app/graphql"

	// RequestTimeout bounds every call end to end.
	RequestTimeout = 30 * time.Second
)

// Client executes GraphQL documents against Linear.
type Client struct {
	endpoint   string
	apiKey     string
	userAgent  string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint points the client at a different GraphQL URL.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				DisableKeepAlives: true,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the GraphQL URL the client talks to.
func (c *Client) Endpoint() string { return c.endpoint }

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type envelope struct {
	Data   json.RawMessage   `json:"data"`
	Errors []json.RawMessage `json:"errors"`
}

// Execute sends query with variables and returns the top-level fields
// of the response's data object. Nil variables are sent as {}.
//
// Errors are one of *NetworkError, *AuthenticationError,
// *AuthOrRequestError, *HTTPError or *GraphQLError.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) (map[string]json.RawMessage, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	payload, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("encoding GraphQL request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	op := operationName(query)
	entry := log.WithField("operation", op)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		entry.WithError(err).Warn("linear request failed")
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		entry.WithError(err).Warn("reading linear response failed")
		return nil, &NetworkError{Err: err}
	}

	entry = entry.WithFields(log.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		classified := classifyStatus(resp.StatusCode, strings.TrimSpace(string(body)))
		entry.Warn("linear request rejected")
		return nil, classified
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		entry.WithError(err).Warn("linear response is not JSON")
		return nil, fmt.Errorf("decoding Linear API response: %w", err)
	}

	if len(env.Errors) > 0 {
		gqlErr := &GraphQLError{Messages: make([]string, 0, len(env.Errors))}
		for _, raw := range env.Errors {
			gqlErr.Messages = append(gqlErr.Messages, errorMessage(raw))
		}
		entry.WithField("errors", len(gqlErr.Messages)).Warn("linear query returned errors")
		return nil, gqlErr
	}

	entry.Debug("linear request")

	data := map[string]json.RawMessage{}
	if isNull(env.Data) {
		return data, nil
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decoding data object: %w", err)
	}
	return data, nil
}

// errorMessage extracts "message" from a GraphQL error object, falling
// back to the raw JSON when there is none.
func errorMessage(raw json.RawMessage) string {
	var e struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != nil {
		return *e.Message
	}
	return string(raw)
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// operationName returns the name after the leading operation keyword,
// or "anonymous".
func operationName(query string) string {
	q := strings.TrimSpace(query)
	var rest string
	switch {
	case strings.HasPrefix(q, "query"):
		rest = q[len("query"):]
	case strings.HasPrefix(q, "mutation"):
		rest = q[len("mutation"):]
	default:
		return "anonymous"
	}
	rest = strings.TrimLeft(rest, " \t\r\n")
	end := strings.IndexFunc(rest, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	if end < 0 {
		end = len(rest)
	}
	if end == 0 {
		return "anonymous"
	}
	return rest[:end]
}
