package linear

import (
	"fmt"
	"strings"
)

const (
	keyFormatHint = "\n\nCommon causes:\n" +
		"1. Invalid API key - Check that LINEAR_API_KEY is set correctly\n" +
		"2. API key should start with 'lin_api_'\n" +
		"3. Get your API key from: https://linear.app/settings/api"

	authFailedMessage = "Authentication failed. Your Linear API key is invalid or expired.\n" +
		"Get a new key from: https://linear.app/settings/api"
)

// NetworkError is a transport-level failure: DNS, refused connection,
// TLS or timeout. No HTTP status was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error connecting to Linear API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response outside the 4xx range.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Linear API error %d: %s", e.StatusCode, e.Body)
}

// AuthOrRequestError is a 4xx response other than 401. A 400 carries a
// remediation hint about the key format and where to get a key.
type AuthOrRequestError struct {
	StatusCode int
	Body       string
	Hint       string
}

func (e *AuthOrRequestError) Error() string {
	return fmt.Sprintf("Linear API error %d: %s%s", e.StatusCode, e.Body, e.Hint)
}

// AuthenticationError is a 401: the key is invalid or expired.
type AuthenticationError struct {
	Body string
}

func (e *AuthenticationError) Error() string {
	return authFailedMessage
}

// GraphQLError is a 2xx response whose envelope carries a non-empty
// top-level errors list.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	var b strings.Builder
	b.WriteString("GraphQL errors:")
	for _, m := range e.Messages {
		b.WriteString("\n- ")
		b.WriteString(m)
	}
	return b.String()
}

// classifyStatus maps a non-2xx status and body to the matching error.
func classifyStatus(status int, body string) error {
	switch {
	case status == 401:
		return &AuthenticationError{Body: body}
	case status == 400:
		return &AuthOrRequestError{StatusCode: status, Body: body, Hint: keyFormatHint}
	case status >= 400 && status < 500:
		return &AuthOrRequestError{StatusCode: status, Body: body}
	default:
		return &HTTPError{StatusCode: status, Body: body}
	}
}
