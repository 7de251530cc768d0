package rest

// Document is a decoded JSON object. It also serves as the fallback wrapper
// for bodies that were not valid JSON (see decodeBody).
type Document = map[string]any

// bodyTextKey is the fallback field holding the raw body text when a
// response body could not be parsed.
const bodyTextKey = "bodyText"

// Response is a classified success outcome: the decoded body together with
// the normalized response headers.
type Response struct {
	// Body is the decoded response body.
	Body any
	// Headers is the plain name-to-value header mapping.
	Headers map[string]string
}

// Result is the uniform envelope returned by mutating verb operations.
// Succeeded is true if and only if Err is nil; Payload is meaningful only
// on success. A Result is constructed once per request attempt and never
// modified afterwards.
type Result struct {
	// Succeeded reports whether the request produced a success outcome.
	Succeeded bool `json:"succeeded"`
	// Payload is the decoded response body on success.
	Payload any `json:"payload,omitempty"`
	// Err is the typed error on failure.
	Err *Error `json:"error,omitempty"`
}

// Query holds read-operation query parameters prior to encoding.
// Slice values become repeated keys; nil and empty-string values are
// dropped before encoding.
type Query map[string]any

// successResult builds the envelope for a success outcome.
func successResult(payload any) Result {
	return Result{
		Succeeded: true,
		Payload:   payload,
	}
}

// failedResult builds the envelope for a failure outcome.
func failedResult(err *Error) Result {
	return Result{
		Succeeded: false,
		Err:       err,
	}
}
