package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeHeaders tests the normalizeHeaders function.
func TestNormalizeHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  http.Header
		expected map[string]string
	}{
		{
			name:     "nil collection",
			headers:  nil,
			expected: nil,
		},
		{
			name:     "empty collection",
			headers:  http.Header{},
			expected: map[string]string{},
		},
		{
			name: "single values",
			headers: http.Header{
				"Content-Type": []string{"application/json"},
				"X-Request-Id": []string{"abc"},
			},
			expected: map[string]string{
				"Content-Type": "application/json",
				"X-Request-Id": "abc",
			},
		},
		{
			name: "first of multiple values wins",
			headers: http.Header{
				"Set-Cookie": []string{"a=1", "b=2"},
			},
			expected: map[string]string{
				"Set-Cookie": "a=1",
			},
		},
		{
			name: "keys kept as provided by the transport",
			headers: http.Header{
				"x-lowercase": []string{"kept"},
			},
			expected: map[string]string{
				"x-lowercase": "kept",
			},
		},
		{
			name: "empty value slice skipped",
			headers: http.Header{
				"Empty": []string{},
				"Full":  []string{"v"},
			},
			expected: map[string]string{
				"Full": "v",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, normalizeHeaders(tt.headers))
		})
	}
}
