package main

import (
	"github.com/nauticalab/coder-workspace/internal/cli"
	"github.com/spf13/cobra"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for mistakes",
	Long: `Validate the configured sources.

Reports keys the resolver does not recognise and resolved values the review
UI cannot use, such as a malformed serverUrl or an unknown rich parameter
source. Exits non-zero when problems are found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunValidate(cmd.Context(), cmd.OutOrStdout(), cli.ValidateOptions{
			Sources:      sourceOpts,
			CloneDefault: cloneDefault,
			Strict:       validateStrict,
		})
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	addSourceFlags(validateCmd)
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat unknown keys as errors")
}
