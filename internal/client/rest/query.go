package rest

import (
	"fmt"
	"net/url"
)

// encodeQuery serializes a query mapping into an encoded query string.
// Slice-valued parameters are appended as repeated keys, scalars are
// formatted in place, and parameters whose value is nil or an empty string
// are dropped before encoding.
func encodeQuery(query Query) string {
	if len(query) == 0 {
		return ""
	}

	values := url.Values{}

	for key, value := range query {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}

			values.Add(key, v)
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		case []any:
			for _, item := range v {
				values.Add(key, fmt.Sprint(item))
			}
		default:
			values.Add(key, fmt.Sprint(v))
		}
	}

	return values.Encode()
}
