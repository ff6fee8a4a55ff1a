package main

import (
	"github.com/nauticalab/coder-workspace/internal/cli"
	"github.com/spf13/cobra"
)

var resolveOutput string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved configuration",
	Long: `Resolve the configured sources and print the configuration exactly as
the server would serve it.

Examples:
  coderws resolve --config /var/gerrit/etc/gerrit.config
  coderws resolve --yaml overrides.yaml -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunResolve(cmd.Context(), cmd.OutOrStdout(), cli.ResolveOptions{
			Sources:      sourceOpts,
			Output:       resolveOutput,
			CloneDefault: cloneDefault,
		})
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	addSourceFlags(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", cli.OutputJSON, "Output format (json, yaml)")
}
