package rest

import "net/http"

// normalizeHeaders converts a transport header collection into a plain
// name-to-value mapping in the collection's native iteration order.
// Only the first value of multi-valued headers is kept; no validation
// is performed.
func normalizeHeaders(headers http.Header) map[string]string {
	if headers == nil {
		return nil
	}

	normalized := make(map[string]string, len(headers))

	for name, values := range headers {
		if len(values) == 0 {
			continue
		}

		normalized[name] = values[0]
	}

	return normalized
}
