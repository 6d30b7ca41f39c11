package transport

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/taskhive/boardclient/credstore"
)

const (
	authorizationHeader = "Authorization"
	requestIDHeader     = "X-Request-ID"
	bearerPrefix        = "Bearer "
)

// Interceptor is an http.RoundTripper that attaches the bearer credential
// to outgoing requests and reacts to 401 responses.
//
// Interceptor instances are intended to be configured during initialization
// and then treated as immutable unless documented otherwise.
type Interceptor struct {
	base  http.RoundTripper
	creds credstore.Store
	// onUnauthorized runs after the credential is cleared on a 401. It is
	// idempotent by contract: concurrent 401s each fire it independently.
	onUnauthorized func()
}

// New describes the new operation and its observable behavior.
//
// A nil base falls back to http.DefaultTransport. onUnauthorized may be nil.
func New(base http.RoundTripper, creds credstore.Store, onUnauthorized func()) *Interceptor {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Interceptor{
		base:           base,
		creds:          creds,
		onUnauthorized: onUnauthorized,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	out := req.Clone(req.Context())

	if out.Header.Get(authorizationHeader) == "" && t.creds != nil {
		token, err := t.creds.Load(out.Context())
		if err == nil && token != "" {
			out.Header.Set(authorizationHeader, bearerPrefix+token)
		}
	}
	if out.Header.Get(requestIDHeader) == "" {
		out.Header.Set(requestIDHeader, uuid.NewString())
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if t.creds != nil {
			_ = t.creds.Clear(out.Context())
		}
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
	}

	return resp, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(value string) (string, bool) {
	if !strings.HasPrefix(value, bearerPrefix) {
		return "", false
	}
	token := value[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}
