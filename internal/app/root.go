package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fetchkit/fetchkit/internal/client/rest"
	"github.com/fetchkit/fetchkit/internal/config"
	"github.com/fetchkit/fetchkit/internal/logger"
)

// Verb identifies one of the four backend operations.
type Verb int

const (
	// VerbRead fetches a resource.
	VerbRead Verb = iota
	// VerbCreate creates a resource.
	VerbCreate
	// VerbReplace replaces a resource.
	VerbReplace
	// VerbRemove removes a resource.
	VerbRemove
)

// Request describes a single operation against the backend.
type Request struct {
	// Verb selects the operation.
	Verb Verb
	// Path is the resource path, resolved against the configured base URL.
	Path string
	// Query is serialized into the request URL on reads.
	Query rest.Query
	// Payload is the request body for create and replace operations.
	Payload any
	// Options are per-call overrides such as headers or credential policy.
	Options []rest.RequestOption
}

// ExecuteRootCommand is the entry point for the application.
// It initializes the REST client with the failure-interception policy
// and runs the requested operation, printing its outcome to stdout.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, request *Request) {
	client, err := rest.NewClient(cfg, rest.WithInterceptor(newInterceptor(ctx, cfg)))
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize REST client: %v", err)
	}

	if err = Run(ctx, client, request, os.Stdout); err != nil {
		logger.Fatalf(ctx, "Request failed: %v", err)
	}
}

// newInterceptor builds the failure policy for CLI runs: when the backend
// rejects the stored token, the token is discarded so the next run starts
// unauthenticated instead of failing the same way again.
func newInterceptor(ctx context.Context, cfg *config.Config) *rest.Interceptor {
	return rest.NewInterceptor(
		rest.WithDebug(cfg.Debug),
		rest.WithOnUnauthorized(func() {
			if cfg.AuthToken == "" {
				return
			}

			logger.Warn(ctx, "Backend rejected the stored token, discarding it")

			cfg.AuthToken = ""

			if saveErr := config.SaveConfig(cfg); saveErr != nil {
				logger.Errorf(ctx, "Failed to update configuration: %v", saveErr)
			}
		}),
	)
}

// Run executes one request through the client and writes the outcome to
// out as indented JSON. Reads print the decoded value on success and
// return the typed error otherwise; mutations always print the uniform
// result envelope and additionally return its error so callers can exit
// non-zero.
func Run(ctx context.Context, client rest.Client, request *Request, out io.Writer) error {
	switch request.Verb {
	case VerbRead:
		value, err := client.Get(ctx, request.Path, request.Query, request.Options...)
		if err != nil {
			return err
		}

		return writeJSON(out, value)
	case VerbCreate:
		return writeResult(out, client.Post(ctx, request.Path, request.Payload, request.Options...))
	case VerbReplace:
		return writeResult(out, client.Put(ctx, request.Path, request.Payload, request.Options...))
	case VerbRemove:
		return writeResult(out, client.Delete(ctx, request.Path, request.Options...))
	default:
		return fmt.Errorf("unknown verb: %d", request.Verb)
	}
}

// writeResult prints the envelope and surfaces its error, if any.
func writeResult(out io.Writer, result rest.Result) error {
	if err := writeJSON(out, result); err != nil {
		return err
	}

	if result.Err != nil {
		return result.Err
	}

	return nil
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}
