package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/namereg/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/namereg/internal/config"
	"github.com/custodia-labs/namereg/internal/core/ports/driven"
	"github.com/custodia-labs/namereg/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server exposing the registry.

Routes:
  GET /v1/test/saymy?name=NAME   greet NAME
  GET /v1/test/add?name=NAME     register NAME
  GET /v1/test/all               list every registered name
  GET /healthz, /metrics, /openapi.json

The config file is watched while serving; changing log.verbose takes effect
without a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default server.addr, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if greetingService == nil || nameService == nil {
		return errServicesNotConfigured
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	handler, err := httpapi.NewRouter(httpapi.Ports{
		Greeter: greetingService,
		Names:   nameService,
	}, httpapi.Options{
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if configStore != nil {
		go watchConfig(ctx, configStore, cmd.Flags().Changed("verbose"))
	}

	cmd.Printf("namereg listening on %s\n", addr)
	return httpapi.NewServer(addr, handler).Run(ctx)
}

// watchConfig applies log.verbose from the config file whenever it changes,
// unless --verbose pinned it.
func watchConfig(ctx context.Context, store driven.ConfigStore, pinned bool) {
	err := store.Watch(ctx, func() {
		if pinned {
			return
		}
		next, err := config.Load(store)
		if err != nil {
			logger.Warn("ignoring config change: %v", err)
			return
		}
		logger.SetVerbose(next.Log.Verbose)
		logger.Info("config reloaded (verbose=%t)", next.Log.Verbose)
	})
	if err != nil {
		logger.Warn("config watch stopped: %v", err)
	}
}
