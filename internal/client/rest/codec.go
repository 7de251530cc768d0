package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// formContentType is set when the payload is a pre-encoded form body.
const formContentType = "application/x-www-form-urlencoded"

// encodeBody converts an outgoing logical payload into a wire body.
// Pre-serialized payloads ([]byte, string, io.Reader) pass through
// unchanged; url.Values are form-encoded; anything else is JSON-marshaled.
// A nil payload yields a nil reader, which the transport treats as no body.
// The returned content type is non-empty only when the codec chose the
// wire representation itself.
func encodeBody(payload any) (io.Reader, string, error) {
	switch body := payload.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(body), "", nil
	case string:
		return strings.NewReader(body), "", nil
	case io.Reader:
		return body, "", nil
	case url.Values:
		return strings.NewReader(body.Encode()), formContentType, nil
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}

		return bytes.NewReader(encoded), "", nil
	}
}

// decodeBody converts a raw response body into a logical value.
// Valid JSON is decoded; an empty body yields an empty Document; anything
// else is absorbed into a Document carrying the raw text. Parse failures
// are never propagated.
func decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return Document{}
	}

	if !gjson.ValidBytes(raw) {
		return Document{bodyTextKey: string(raw)}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Document{bodyTextKey: string(raw)}
	}

	return decoded
}
