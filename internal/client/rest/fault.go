package rest

import "errors"

// normalizeFault converts a failure that occurred before a response was
// obtained into the same taxonomy used by the classifier. A fault that is
// already a typed Error (raised earlier in the pipeline and re-propagated)
// is returned unchanged rather than wrapped a second time. Everything else
// becomes a generic error with no body or headers, keeping the original
// fault as diagnostic context. The result is always a failure.
func normalizeFault(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	return newTransportError(err)
}
