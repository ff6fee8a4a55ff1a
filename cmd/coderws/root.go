package main

import (
	"os"

	"github.com/nauticalab/coder-workspace/internal/cli"
	"github.com/nauticalab/coder-workspace/internal/logger"
	"github.com/nauticalab/coder-workspace/internal/store"
	"github.com/spf13/cobra"
)

var (
	// Global flags (available to all commands)
	verbose  bool
	logLevel string
	logJSON  bool

	// Source flags shared by serve, resolve and validate
	sourceOpts   cli.SourceOptions
	cloneDefault bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coderws",
	Short: "Serve the coder-workspace plugin configuration",
	Long: `coderws resolves the [plugin "coder-workspace"] section of a Gerrit
configuration into the typed settings the review UI uses to provision
Coder workspaces, and serves them over a read-only HTTP API.

Settings can be layered from gerrit.config, a project's refs/meta/config,
a Kubernetes ConfigMap, a YAML file and environment variables.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logLevel
		if verbose && !cmd.Flags().Changed("log-level") {
			level = "debug"
		}
		logger.Init(&logger.Config{
			Level:  level,
			Output: os.Stderr,
			JSON:   logJSON,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")

	rootCmd.AddCommand(versionCmd)
}

// addSourceFlags registers the flags that select configuration sources.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sourceOpts.ConfigPath, "config", "c", "", "Path to gerrit.config")
	cmd.Flags().StringVar(&sourceOpts.Plugin, "plugin", store.DefaultPluginName, "Plugin section name")
	cmd.Flags().StringVar(&sourceOpts.ProjectRepo, "project-repo", "", "Git repository whose refs/meta/config holds project.config")
	cmd.Flags().StringVar(&sourceOpts.ConfigMap, "configmap", "", "Kubernetes ConfigMap as namespace/name")
	cmd.Flags().StringVar(&sourceOpts.YAMLPath, "yaml", "", "Path to a YAML file of plugin keys")
	cmd.Flags().StringVar(&sourceOpts.EnvPrefix, "env-prefix", store.DefaultEnvPrefix, "Prefix of environment overrides (empty disables)")
	cmd.Flags().BoolVar(&cloneDefault, "clone-default", false, "Default for enableCloneRepository when unset")
}
