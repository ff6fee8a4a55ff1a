package main

import (
	"fmt"
	"time"

	"github.com/nauticalab/coder-workspace/internal/cli"
	"github.com/nauticalab/coder-workspace/internal/store"
	"github.com/spf13/cobra"
)

var fetchOpts cli.FetchOptions

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the configuration from a running server",
	Long: `Fetch the configuration from a running coderws server (or a Gerrit site
running the plugin) and print it.

The server URL is taken from --server, then CODERWS_SERVER_URL, then
serverURL in ~/.coderws/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadCLIConfig()
		if err != nil {
			return fmt.Errorf("failed to load CLI config: %w", err)
		}

		opts := fetchOpts
		if !cmd.Flags().Changed("server") {
			opts.ServerURL = cfg.ServerURL
		}
		if !cmd.Flags().Changed("plugin") && cfg.Plugin != "" {
			opts.Plugin = cfg.Plugin
		}
		if !cmd.Flags().Changed("timeout") && cfg.Timeout > 0 {
			opts.Timeout = cfg.Timeout
		}
		return cli.RunFetch(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchOpts.ServerURL, "server", "s", cli.DefaultServerURL, "Server base URL")
	fetchCmd.Flags().StringVar(&fetchOpts.Plugin, "plugin", store.DefaultPluginName, "Plugin name")
	fetchCmd.Flags().StringVarP(&fetchOpts.Output, "output", "o", cli.OutputJSON, "Output format (json, yaml)")
	fetchCmd.Flags().DurationVar(&fetchOpts.Timeout, "timeout", 30*time.Second, "Request timeout")
	fetchCmd.Flags().IntVar(&fetchOpts.Retries, "retries", 0, "Retry failed requests this many times")
}
