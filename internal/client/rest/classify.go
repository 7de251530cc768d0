package rest

import "net/http"

const (
	// successStatusMin is the lowest status code treated as success.
	successStatusMin = 200
	// successStatusMax is the highest status code treated as success.
	successStatusMax = 299
)

// classifyOutcome maps a completed response onto the outcome taxonomy.
// The body is decoded and headers normalized BEFORE the status decision so
// that error variants always carry their full diagnostic payload.
// Statuses in [200, 299] produce a success Response; everything else,
// including informational and redirect statuses, produces a typed Error
// whose variant is selected by the fixed status table.
func classifyOutcome(status int, rawBody []byte, rawHeaders http.Header) (*Response, *Error) {
	body := decodeBody(rawBody)
	headers := normalizeHeaders(rawHeaders)

	if status >= successStatusMin && status <= successStatusMax {
		return &Response{
			Body:    body,
			Headers: headers,
		}, nil
	}

	return nil, newStatusError(status, body, headers)
}
