package rest

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/fetchkit/fetchkit/internal/config"
	http_transport "github.com/fetchkit/fetchkit/internal/transport/http"
)

// Client defines the access layer consumed by application code. Each verb
// issues exactly one request and suspends the caller until it settles; the
// pipeline is stateless and reentrant, so concurrent calls need no
// coordination.
type Client interface {
	// Get fetches the decoded value at path. The query mapping is
	// serialized into the request URL. On failure the interception policy
	// runs and the typed error is returned alongside a nil value.
	Get(ctx context.Context, path string, query Query, opts ...RequestOption) (any, error)
	// Post creates a resource and returns the uniform result envelope.
	Post(ctx context.Context, path string, payload any, opts ...RequestOption) Result
	// Put replaces a resource and returns the uniform result envelope.
	Put(ctx context.Context, path string, payload any, opts ...RequestOption) Result
	// Delete removes a resource and returns the uniform result envelope.
	Delete(ctx context.Context, path string, opts ...RequestOption) Result
}

// CredentialPolicy controls whether the auth cookie accompanies a request.
type CredentialPolicy int

const (
	// CredentialsSameOrigin sends credentials only to the configured origin.
	CredentialsSameOrigin CredentialPolicy = iota
	// CredentialsInclude sends credentials on every request.
	CredentialsInclude
	// CredentialsOmit never sends credentials.
	CredentialsOmit
)

// ParseCredentialPolicy parses the textual policy used in configuration.
// The second return value reports whether the input was recognized;
// unrecognized input yields the same-origin default.
func ParseCredentialPolicy(policy string) (CredentialPolicy, bool) {
	switch policy {
	case config.CredentialPolicySameOrigin:
		return CredentialsSameOrigin, true
	case config.CredentialPolicyInclude:
		return CredentialsInclude, true
	case config.CredentialPolicyOmit:
		return CredentialsOmit, true
	default:
		return CredentialsSameOrigin, false
	}
}

// authCookieName is the cookie carrying the session token.
const authCookieName = "auth"

// defaultHeaders returns the header set sent when the caller does not
// override it.
func defaultHeaders() map[string]string {
	return map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
}

// requestOptions collects per-call overrides.
type requestOptions struct {
	// headers, when non-nil, replaces the full default header set.
	headers map[string]string
	// policy is the credential policy for this call.
	policy CredentialPolicy
}

// RequestOption is a function that configures a single request.
type RequestOption func(*requestOptions)

// WithHeaders replaces the full default header set for one call.
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *requestOptions) {
		o.headers = headers
	}
}

// WithCredentialPolicy overrides the credential policy for one call.
func WithCredentialPolicy(policy CredentialPolicy) RequestOption {
	return func(o *requestOptions) {
		o.policy = policy
	}
}

// ClientImpl implements the Client interface over net/http.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the parsed backend root all relative paths resolve against.
	baseURL *url.URL
	// credentialedClient carries the auth cookie jar.
	credentialedClient *http.Client
	// anonymousClient sends no credentials.
	anonymousClient *http.Client
	// interceptor is applied to every failure path.
	interceptor *Interceptor
	// defaultPolicy is the credential policy used when a call does not
	// override it.
	defaultPolicy CredentialPolicy
}

// ClientOption is a function that configures a ClientImpl beyond what the
// configuration file covers.
type ClientOption func(*ClientImpl)

// WithInterceptor replaces the interceptor built from configuration.
func WithInterceptor(interceptor *Interceptor) ClientOption {
	return func(c *ClientImpl) {
		c.interceptor = interceptor
	}
}

// NewClient creates and returns a new instance of ClientImpl.
// It wires the transport middleware chain (request-ID tagging, marker
// header, debug logging) and the credential-policy clients from the
// provided configuration.
func NewClient(cfg *config.Config, options ...ClientOption) (Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if cfg.AuthToken != "" {
		jar.SetCookies(baseURL, []*http.Cookie{{
			Name:  authCookieName,
			Value: cfg.AuthToken,
		}})
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	transport := http_transport.NewRequestIDInjector(
		http_transport.NewMarkerInjector(
			http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
			http_transport.MarkerValue,
		),
	)

	defaultPolicy, _ := ParseCredentialPolicy(cfg.CredentialPolicy)

	client := &ClientImpl{
		cfg:     cfg,
		baseURL: baseURL,
		credentialedClient: &http.Client{
			Transport: transport,
			Jar:       jar,
			Timeout:   timeout,
		},
		anonymousClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		interceptor:   NewInterceptor(WithDebug(cfg.Debug)),
		defaultPolicy: defaultPolicy,
	}

	for _, option := range options {
		option(client)
	}

	return client, nil
}

// Get fetches the decoded value at path.
func (c *ClientImpl) Get(ctx context.Context, path string, query Query, opts ...RequestOption) (any, error) {
	response, apiErr := c.do(ctx, http.MethodGet, path, query, nil, opts...)
	if apiErr != nil {
		result := c.interceptor.Intercept(ctx, apiErr)

		return nil, result.Err
	}

	return response.Body, nil
}

// Post creates a resource.
func (c *ClientImpl) Post(ctx context.Context, path string, payload any, opts ...RequestOption) Result {
	return c.mutate(ctx, http.MethodPost, path, payload, opts...)
}

// Put replaces a resource.
func (c *ClientImpl) Put(ctx context.Context, path string, payload any, opts ...RequestOption) Result {
	return c.mutate(ctx, http.MethodPut, path, payload, opts...)
}

// Delete removes a resource.
func (c *ClientImpl) Delete(ctx context.Context, path string, opts ...RequestOption) Result {
	return c.mutate(ctx, http.MethodDelete, path, nil, opts...)
}

// mutate runs one mutating verb through the pipeline and wraps the outcome
// into the uniform envelope.
func (c *ClientImpl) mutate(
	ctx context.Context,
	method, path string,
	payload any,
	opts ...RequestOption,
) Result {
	response, apiErr := c.do(ctx, method, path, nil, payload, opts...)
	if apiErr != nil {
		return c.interceptor.Intercept(ctx, apiErr)
	}

	return successResult(response.Body)
}

// do issues one request and classifies its outcome. Transport-level
// failures are normalized into the same taxonomy as classified responses,
// so callers above only ever see a success Response or a typed Error.
func (c *ClientImpl) do(
	ctx context.Context,
	method, path string,
	query Query,
	payload any,
	opts ...RequestOption,
) (*Response, *Error) {
	options := &requestOptions{policy: c.defaultPolicy}
	for _, opt := range opts {
		opt(options)
	}

	route, err := c.resolveURL(path)
	if err != nil {
		return nil, normalizeFault(err)
	}

	if encoded := encodeQuery(query); encoded != "" {
		route.RawQuery = encoded
	}

	bodyReader, bodyContentType, err := encodeBody(payload)
	if err != nil {
		return nil, normalizeFault(err)
	}

	if bodyReader == nil {
		bodyReader = http.NoBody
	}

	request, err := http.NewRequestWithContext(ctx, method, route.String(), bodyReader)
	if err != nil {
		return nil, normalizeFault(err)
	}

	headers := options.headers
	if headers == nil {
		headers = defaultHeaders()
	}

	for name, value := range headers {
		request.Header.Set(name, value)
	}

	// A codec-chosen representation wins over the default content type.
	if bodyContentType != "" {
		request.Header.Set("Content-Type", bodyContentType)
	}

	response, err := c.httpClientFor(options.policy, route).Do(request)
	if err != nil {
		return nil, normalizeFault(err)
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// The body must be fully read before classification: error variants
	// carry the diagnostic payload it contains.
	rawBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, normalizeFault(err)
	}

	return classifyOutcome(response.StatusCode, rawBody, response.Header)
}

// resolveURL resolves a path against the backend root. Absolute URLs are
// used as-is so the same-origin credential policy can take effect.
func (c *ClientImpl) resolveURL(path string) (*url.URL, error) {
	parsed, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path: %w", err)
	}

	if parsed.IsAbs() {
		return parsed, nil
	}

	return c.baseURL.JoinPath(parsed.Path), nil
}

// httpClientFor selects the credentialed or anonymous client according to
// the effective credential policy and the request target.
func (c *ClientImpl) httpClientFor(policy CredentialPolicy, target *url.URL) *http.Client {
	switch policy {
	case CredentialsOmit:
		return c.anonymousClient
	case CredentialsInclude:
		return c.credentialedClient
	case CredentialsSameOrigin:
		fallthrough
	default:
		if sameOrigin(target, c.baseURL) {
			return c.credentialedClient
		}

		return c.anonymousClient
	}
}

// sameOrigin reports whether two URLs share scheme and host.
func sameOrigin(a, b *url.URL) bool {
	return a.Scheme == b.Scheme && a.Host == b.Host
}
