package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nauticalab/coder-workspace/internal/api"
	"github.com/nauticalab/coder-workspace/internal/cli"
	"github.com/nauticalab/coder-workspace/internal/logger"
	"github.com/nauticalab/coder-workspace/internal/store"
	"github.com/spf13/cobra"
)

// ServerConfig holds the configuration for the server
type ServerConfig struct {
	Port      int
	Bind      string
	Watch     bool
	RateLimit int
}

var serverConfig ServerConfig

var serverCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the configuration HTTP API server",
	Long: `Start the configuration HTTP API server.

Endpoints:
  GET /config/server/{plugin}~config   Gerrit-compatible, with the )]}' guard
  GET /api/v1/config                   Plain JSON
  GET /api/v1/health                   Health check
  GET /api/v1/version                  Version information

Every request resolves the configuration afresh. With --watch, edits to the
gerrit.config and YAML files are picked up without a restart, including
files on a mounted ConfigMap volume. Sources read through the API
(--configmap, --project-repo) are not watched; SIGHUP reloads every source.`,
	Args: cobra.NoArgs,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)

	addSourceFlags(serverCmd)
	serverCmd.Flags().IntVarP(&serverConfig.Port, "port", "p", 8080, "Port to listen on")
	serverCmd.Flags().StringVarP(&serverConfig.Bind, "bind", "b", "0.0.0.0", "Address to bind to")
	serverCmd.Flags().BoolVarP(&serverConfig.Watch, "watch", "w", false, "Reload when configuration files change")
	serverCmd.Flags().IntVar(&serverConfig.RateLimit, "rate-limit", api.DefaultRateLimit, "Requests per minute allowed per client IP")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.GetDefault()

	source, err := store.NewReloadable(func() (store.Source, error) {
		return cli.BuildSource(ctx, sourceOpts)
	}, log)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if serverConfig.Watch {
		watcher, err := watchSources(ctx, source, log)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}
	go reloadOnHangup(ctx, source)

	server, err := api.NewServer(api.ServerConfig{
		Port:      serverConfig.Port,
		Bind:      serverConfig.Bind,
		Plugin:    sourceOpts.Plugin,
		Source:    source,
		Resolver:  cli.NewResolver(cloneDefault),
		Logger:    log,
		RateLimit: serverConfig.RateLimit,
		Version:   version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	log.Info("starting coderws API server",
		"bind", serverConfig.Bind, "port", serverConfig.Port,
		"plugin", sourceOpts.Plugin, "watch", serverConfig.Watch)

	if err := server.StartWithContext(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("server shutdown complete")
	return nil
}

// watchSources reloads source whenever one of its local files changes.
func watchSources(ctx context.Context, source *store.Reloadable, log logger.Logger) (*store.Watcher, error) {
	watcher, err := store.NewWatcher(log)
	if err != nil {
		return nil, err
	}
	watcher.OnChange(func() {
		// Reload logs its own failure and keeps the previous settings.
		_ = source.Reload()
	})
	for _, path := range sourceOpts.WatchPaths() {
		if err := watcher.Watch(ctx, path); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", path, err)
		}
		log.Debug("watching config file", "path", path)
	}
	return watcher, nil
}

// reloadOnHangup reloads every source, including ConfigMaps and
// refs/meta/config, on SIGHUP.
func reloadOnHangup(ctx context.Context, source *store.Reloadable) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			_ = source.Reload()
		}
	}
}
