package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fetchkit/fetchkit/internal/config"
	"github.com/fetchkit/fetchkit/internal/constants"
)

const testBaseConfigContent = `
base_url: "https://api.example.com/v1"
auth_token: "config_token"
credential_policy: "same-origin"
debug: false
log_level: "info"
request_timeout: "30s"
max_log_length: "1MB"
`

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://api.example.com/v1", cfg.BaseURL)
				assert.Equal(t, config.CredentialPolicySameOrigin, cfg.CredentialPolicy)
				assert.False(t, cfg.Debug)
			},
		},
		{
			name: "base-url flag overrides config",
			flags: map[string]string{
				"base-url": "https://staging.example.com",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
				assert.Equal(t, config.CredentialPolicySameOrigin, cfg.CredentialPolicy)
			},
		},
		{
			name: "credentials flag overrides config",
			flags: map[string]string{
				"credentials": "omit",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, config.CredentialPolicyOmit, cfg.CredentialPolicy)
			},
		},
		{
			name: "debug flag overrides config",
			flags: map[string]string{
				"debug": "true",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.True(t, cfg.Debug)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"base-url":    "https://other.example.com",
				"credentials": "include",
				"debug":       "true",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://other.example.com", cfg.BaseURL)
				assert.Equal(t, config.CredentialPolicyInclude, cfg.CredentialPolicy)
				assert.True(t, cfg.Debug)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			)
			require.NoError(t, err)

			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			testCmd := &cobra.Command{Use: "test"}
			testCmd.Flags().StringP("base-url", "b", "", "backend root")
			testCmd.Flags().String("credentials", "", "credential policy")
			testCmd.Flags().Bool("debug", false, "debug mode")

			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue),
					"failed to set flag %s", flagName)
			}

			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	invalidTests := []struct {
		name        string
		flagName    string
		flagValue   string
		expectedErr error
	}{
		{
			name:        "unknown credential policy",
			flagName:    "credentials",
			flagValue:   "cross-site",
			expectedErr: config.ErrUnknownCredentialPolicy,
		},
		{
			name:        "relative base URL",
			flagName:    "base-url",
			flagValue:   "/just/a/path",
			expectedErr: config.ErrInvalidBaseURL,
		},
	}

	for _, tt := range invalidTests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			)
			require.NoError(t, err)

			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			testCmd := &cobra.Command{Use: "test"}
			testCmd.Flags().StringP("base-url", "b", "", "backend root")
			testCmd.Flags().String("credentials", "", "credential policy")

			require.NoError(t, testCmd.Flags().Set(tt.flagName, tt.flagValue))

			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of an empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		BaseURL:   "https://api.example.com",
		AuthToken: "test_token",
		LogLevel:  "info",
	}

	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	// Calling with an empty flag set should just validate the config.
	err := bindFlagsToConfig(emptyFlags, cfg)
	require.NoError(t, err)
}
