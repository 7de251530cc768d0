package rest

import (
	"context"

	"github.com/fetchkit/fetchkit/internal/logger"
)

// RedactedBodyText replaces the diagnostic body of generic errors outside
// debug mode, so unclassified server detail never reaches end users.
const RedactedBodyText = "the request could not be completed"

// Interceptor is the cross-cutting policy applied to every failure path.
// It triggers the unauthorized callback, redacts generic error bodies
// outside debug mode, logs the original error, and wraps the failure into
// a uniform Result envelope.
type Interceptor struct {
	// debug disables redaction of generic error bodies.
	debug bool
	// onUnauthorized is invoked once per unauthorized error. The embedding
	// application supplies it (e.g. navigation to a login flow); nil means
	// no side effect.
	onUnauthorized func()
}

// InterceptorOption is a function that configures an Interceptor.
type InterceptorOption func(*Interceptor)

// WithDebug controls whether generic error bodies are redacted.
func WithDebug(debug bool) InterceptorOption {
	return func(p *Interceptor) {
		p.debug = debug
	}
}

// WithOnUnauthorized sets the callback invoked on unauthorized errors.
func WithOnUnauthorized(callback func()) InterceptorOption {
	return func(p *Interceptor) {
		p.onUnauthorized = callback
	}
}

// NewInterceptor creates an interceptor with the given options.
// The default is non-debug with no unauthorized callback.
func NewInterceptor(options ...InterceptorOption) *Interceptor {
	interceptor := &Interceptor{}

	for _, option := range options {
		option(interceptor)
	}

	return interceptor
}

// Intercept applies the policy to a classified failure and wraps it into a
// failed Result. The original error is logged before any redaction. Named
// variants keep their body since callers rely on its contents (e.g.
// field-level validation messages in bad-request payloads); only the
// generic kind is redacted, and only outside debug mode.
func (p *Interceptor) Intercept(ctx context.Context, apiErr *Error) Result {
	if apiErr == nil {
		return successResult(nil)
	}

	logger.ErrorKV(ctx, "Request failed",
		"kind", apiErr.Kind.String(),
		"status", apiErr.Status,
		"error", apiErr.Error(),
		"body", apiErr.Body,
	)

	if apiErr.Kind == KindUnauthorized && p.onUnauthorized != nil {
		p.onUnauthorized()
	}

	if !p.debug && apiErr.Kind == KindGeneric {
		// Copy so the caller-held original stays intact.
		redacted := *apiErr
		redacted.Body = Document{bodyTextKey: RedactedBodyText}

		return failedResult(&redacted)
	}

	return failedResult(apiErr)
}
