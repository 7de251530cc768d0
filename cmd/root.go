package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fetchkit/fetchkit/internal/config"
	"github.com/fetchkit/fetchkit/internal/logger"
	"github.com/fetchkit/fetchkit/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "fetchkit {get|create|replace|remove} <path>",
		Short: "Talk to a JSON backend with uniform error handling.",
		Long: `Fetchkit is a CLI client for JSON-over-HTTP backends.
It resolves paths against a configured base URL, classifies every response
into a typed outcome, and prints results as JSON.

Supported operations:
- get      fetch a resource
- create   create a resource
- replace  replace a resource
- remove   remove a resource`,
		Version:          version.Full(),
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringP(
		"base-url",
		"b",
		"",
		"backend root all relative paths resolve against.")

	persistentFlags.String(
		"credentials",
		"",
		fmt.Sprintf("credential policy: %s, %s or %s.",
			config.CredentialPolicySameOrigin,
			config.CredentialPolicyInclude,
			config.CredentialPolicyOmit))

	persistentFlags.Bool(
		"debug",
		false,
		"log request and response dumps and keep diagnostic bodies on unclassified errors.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("base-url"); flag != nil && flag.Changed {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}

	if flag := flags.Lookup("credentials"); flag != nil && flag.Changed {
		cfg.CredentialPolicy, _ = flags.GetString("credentials")
	}

	if flag := flags.Lookup("debug"); flag != nil && flag.Changed {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	return config.ValidateConfig(cfg)
}
