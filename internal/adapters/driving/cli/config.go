package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/namereg/internal/adapters/driven/config/file"
	"github.com/custodia-labs/namereg/internal/config"
	"github.com/custodia-labs/namereg/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write the config file",
	Long: `Read and write keys in the namereg config file.

Keys:
  server.addr        listen address for "serve"
  storage.driver     sqlite, memory, postgres or mysql
  storage.dsn        connection string for postgres and mysql
  storage.data_dir   directory holding names.db for sqlite
  log.verbose        true or false
  ratelimit.rps      requests per second per host, 0 disables
  ratelimit.burst    bucket size per host

A running "serve" picks up log.verbose changes without a restart.`,
	PersistentPreRunE: openConfigStore,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the value stored under KEY",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store VALUE under KEY",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.Println(configStore.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// openConfigStore opens the config file without touching storage.
func openConfigStore(*cobra.Command, []string) error {
	if configStore != nil {
		return nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !slices.Contains(config.Keys, key) {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}
	v, ok := configStore.Get(key)
	if !ok {
		return fmt.Errorf("%s is not set", key)
	}
	cmd.Println(v)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	v, err := config.ParseValue(key, raw)
	if err != nil {
		return err
	}
	if err := configStore.Set(key, v); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("%s = %v\n", key, v)
	return nil
}
