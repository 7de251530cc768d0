// Package config loads, validates, and persists application configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/fetchkit/fetchkit/internal/constants"
	"github.com/fetchkit/fetchkit/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the root URL of the JSON backend all requests are sent to.
	BaseURL string `mapstructure:"base_url"`
	// AuthToken is the session token attached as an auth cookie.
	// Empty means anonymous requests.
	AuthToken string `mapstructure:"auth_token"`
	// CredentialPolicy controls when the auth cookie accompanies a request:
	// "same-origin", "include", or "omit".
	CredentialPolicy string `mapstructure:"credential_policy"`
	// Debug disables error-body redaction and enables verbose diagnostics.
	Debug bool `mapstructure:"debug"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the per-request timeout (e.g., "30s", "2m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogLength limits dumped request/response data in logs (e.g., "256KB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogLength is the parsed log dump limit in bytes.
	ParsedMaxLogLength uint64
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".fetchkit.yaml"

	// DefaultRequestTimeout is applied when request_timeout is not set.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxLogLength is the default maximum size (in bytes) for dumped
	// request/response data in logs.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// CredentialPolicySameOrigin sends credentials only to the configured origin.
	CredentialPolicySameOrigin = "same-origin"
	// CredentialPolicyInclude sends credentials on every request.
	CredentialPolicyInclude = "include"
	// CredentialPolicyOmit never sends credentials.
	CredentialPolicyOmit = "omit"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyBaseURL indicates that the backend base URL is missing.
	ErrEmptyBaseURL = errors.New("base_url cannot be empty")
	// ErrInvalidBaseURL indicates that the backend base URL is not absolute.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrUnknownCredentialPolicy indicates an unrecognized credential policy value.
	ErrUnknownCredentialPolicy = errors.New("unknown credential policy")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return ErrEmptyBaseURL
	}

	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil || !parsedBaseURL.IsAbs() || parsedBaseURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	cfg.BaseURL = strings.TrimRight(baseURL, "/")

	if cfg.CredentialPolicy == "" {
		cfg.CredentialPolicy = CredentialPolicySameOrigin
	}

	switch cfg.CredentialPolicy {
	case CredentialPolicySameOrigin, CredentialPolicyInclude, CredentialPolicyOmit:
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownCredentialPolicy, cfg.CredentialPolicy)
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout = DefaultRequestTimeout

	if cfg.RequestTimeout != "" {
		cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse request timeout: %w", err)
		}

		if cfg.ParsedRequestTimeout <= 0 {
			return ErrInvalidRequestTimeout
		}
	}

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.AuthToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the auth_token value in the node tree.
	updateAuthTokenInNode(&node, cfg.AuthToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, authToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("auth_token", authToken)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateAuthTokenInNode updates the auth_token value in the YAML node tree.
func updateAuthTokenInNode(node *yaml.Node, authToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "auth_token" {
			// Update the value while preserving style.
			valueNode.Value = authToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
