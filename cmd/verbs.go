package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/fetchkit/fetchkit/internal/app"
	"github.com/fetchkit/fetchkit/internal/client/rest"
	"github.com/fetchkit/fetchkit/internal/logger"
)

// errMalformedQueryPair is returned when a --query value is not name=value.
var errMalformedQueryPair = errors.New("malformed query parameter, expected name=value")

var (
	getCmd = &cobra.Command{
		Use:   "get <path>",
		Short: "Fetch a resource and print its decoded value",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pairs, _ := cmd.Flags().GetStringArray("query")

			query, err := parseQueryFlags(pairs)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse query parameters: %v", err)
			}

			runVerb(cmd, &app.Request{Verb: app.VerbRead, Path: args[0], Query: query})
		},
	}

	createCmd = &cobra.Command{
		Use:   "create <path>",
		Short: "Create a resource and print the result envelope",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runVerb(cmd, &app.Request{
				Verb:    app.VerbCreate,
				Path:    args[0],
				Payload: payloadFromFlags(cmd),
			})
		},
	}

	replaceCmd = &cobra.Command{
		Use:   "replace <path>",
		Short: "Replace a resource and print the result envelope",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runVerb(cmd, &app.Request{
				Verb:    app.VerbReplace,
				Path:    args[0],
				Payload: payloadFromFlags(cmd),
			})
		},
	}

	removeCmd = &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a resource and print the result envelope",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runVerb(cmd, &app.Request{Verb: app.VerbRemove, Path: args[0]})
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	getCmd.Flags().StringArrayP(
		"query",
		"q",
		nil,
		"query parameter as name=value (repeat the flag for multiple values).")

	createCmd.Flags().StringP(
		"data",
		"d",
		"",
		"request body as a JSON document.")

	replaceCmd.Flags().StringP(
		"data",
		"d",
		"",
		"request body as a JSON document.")

	rootCmd.AddCommand(getCmd, createCmd, replaceCmd, removeCmd)
}

// runVerb applies flag overrides on top of the loaded configuration and
// executes the request.
func runVerb(cmd *cobra.Command, request *app.Request) {
	if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	// Debug mode implies debug-level logging so transport dumps show up.
	if appConfig.Debug {
		logger.SetLevel(zapcore.DebugLevel)
	}

	app.ExecuteRootCommand(cmd.Context(), appConfig, request)
}

// payloadFromFlags extracts and decodes the --data flag.
func payloadFromFlags(cmd *cobra.Command) any {
	data, _ := cmd.Flags().GetString("data")

	payload, err := parsePayload(data)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse request payload: %v", err)
	}

	return payload
}

// parseQueryFlags turns repeated name=value pairs into a query mapping.
// Repeating a name collects its values into a slice, which the client
// serializes as repeated URL keys.
func parseQueryFlags(pairs []string) (rest.Query, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	query := make(rest.Query, len(pairs))

	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("%w: %q", errMalformedQueryPair, pair)
		}

		switch existing := query[name].(type) {
		case nil:
			query[name] = value
		case string:
			query[name] = []string{existing, value}
		case []string:
			query[name] = append(existing, value)
		}
	}

	return query, nil
}

// parsePayload decodes the request body flag. An empty flag means no body.
func parsePayload(data string) (any, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse request payload: %w", err)
	}

	return payload, nil
}
