package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fetchkit/fetchkit/internal/client/rest"
)

// TestParseQueryFlags tests the parseQueryFlags function.
func TestParseQueryFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pairs       []string
		expected    rest.Query
		expectError bool
	}{
		{
			name:     "no pairs",
			pairs:    nil,
			expected: nil,
		},
		{
			name:     "single pair",
			pairs:    []string{"name=alice"},
			expected: rest.Query{"name": "alice"},
		},
		{
			name:     "empty value is kept for the client to drop",
			pairs:    []string{"name="},
			expected: rest.Query{"name": ""},
		},
		{
			name:     "value containing an equals sign",
			pairs:    []string{"filter=created>=2024"},
			expected: rest.Query{"filter": "created>=2024"},
		},
		{
			name:  "repeated name collects values",
			pairs: []string{"tag=a", "tag=b", "tag=c"},
			expected: rest.Query{
				"tag": []string{"a", "b", "c"},
			},
		},
		{
			name:  "mixed single and repeated names",
			pairs: []string{"limit=10", "tag=a", "tag=b"},
			expected: rest.Query{
				"limit": "10",
				"tag":   []string{"a", "b"},
			},
		},
		{
			name:        "missing equals sign",
			pairs:       []string{"name"},
			expectError: true,
		},
		{
			name:        "empty name",
			pairs:       []string{"=value"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query, err := parseQueryFlags(tt.pairs)

			if tt.expectError {
				require.ErrorIs(t, err, errMalformedQueryPair)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, query)
		})
	}
}

// TestParsePayload tests the parsePayload function.
func TestParsePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        string
		expected    any
		expectError bool
	}{
		{
			name:     "empty data means no body",
			data:     "",
			expected: nil,
		},
		{
			name:     "whitespace-only data means no body",
			data:     "   ",
			expected: nil,
		},
		{
			name:     "JSON object",
			data:     `{"name":"thing","count":2}`,
			expected: map[string]any{"name": "thing", "count": float64(2)},
		},
		{
			name:     "JSON array",
			data:     `[1,2]`,
			expected: []any{float64(1), float64(2)},
		},
		{
			name:     "JSON scalar",
			data:     `"plain"`,
			expected: "plain",
		},
		{
			name:        "invalid JSON",
			data:        `{"name":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload, err := parsePayload(tt.data)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, payload)
		})
	}
}
