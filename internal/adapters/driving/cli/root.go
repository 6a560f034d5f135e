// Package cli provides the cobra command tree for namereg.
//
// The root command resolves configuration (file, environment, flags) and
// opens the storage backend before any subcommand runs; subcommands then use
// the package-level services.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/namereg/internal/adapters/driven/config/file"
	"github.com/custodia-labs/namereg/internal/app"
	"github.com/custodia-labs/namereg/internal/config"
	"github.com/custodia-labs/namereg/internal/core/ports/driven"
	"github.com/custodia-labs/namereg/internal/core/ports/driving"
	"github.com/custodia-labs/namereg/internal/logger"
)

var (
	version = "dev"

	configDir   string
	storageFlag string
	verbose     bool

	cfg             = config.Default()
	configStore     driven.ConfigStore
	greetingService driving.GreetingService
	nameService     driving.NameService
	closeServices   func() error
)

// openApp builds the services from a resolved configuration.
var openApp = app.Open

var rootCmd = &cobra.Command{
	Use:   "namereg",
	Short: "A minimal name registry",
	Long: `namereg stores names and greets them.

Run "namereg serve" to expose the registry over HTTP, or use the greet, add
and list commands to work with the configured storage directly.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.namereg)")
	flags.StringVar(&storageFlag, "storage", "", "storage driver: sqlite, memory, postgres or mysql")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the command tree and releases storage afterwards.
func Execute(ctx context.Context, v string) error {
	version = v
	defer teardownServices()
	return rootCmd.ExecuteContext(ctx)
}

// setupServices resolves configuration and opens storage. Services that are
// already set are kept.
func setupServices(cmd *cobra.Command, _ []string) error {
	if greetingService != nil && nameService != nil {
		if cmd.Flags().Changed("verbose") {
			logger.SetVerbose(verbose)
		}
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	resolved, err := config.Load(store)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if storageFlag != "" {
		resolved.Storage.Driver = storageFlag
	}
	if cmd.Flags().Changed("verbose") {
		resolved.Log.Verbose = verbose
	}
	logger.SetVerbose(resolved.Log.Verbose)
	logger.Debug("config: %s", store.Path())

	a, err := openApp(cmd.Context(), resolved)
	if err != nil {
		return err
	}

	cfg = resolved
	configStore = store
	greetingService = a.Greeter
	nameService = a.Names
	closeServices = a.Close
	return nil
}

func teardownServices() {
	if closeServices == nil {
		return
	}
	if err := closeServices(); err != nil {
		logger.Warn("closing storage: %v", err)
	}
	closeServices = nil
}

// skipSetup replaces the root pre-run for commands that need no storage.
func skipSetup(*cobra.Command, []string) error {
	return nil
}

var errServicesNotConfigured = errors.New("services not configured")
