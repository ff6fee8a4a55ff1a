package main

import (
	"fmt"
	"strings"

	"github.com/nauticalab/coder-workspace/internal/cli"
	"github.com/nauticalab/coder-workspace/internal/templates"
	"github.com/spf13/cobra"
)

var generateOpts cli.GenerateOptions

var generateCmd = &cobra.Command{
	Use:   "generate <template>",
	Short: "Render the effective plugin keys for deployment",
	Long: fmt.Sprintf(`Render the merged raw keys of every configured source.

Templates: %s

Examples:
  coderws generate gerrit-config --yaml settings.yaml
  coderws generate configmap --config gerrit.config --namespace gerrit -d manifests/`,
		strings.Join(templates.Names(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: templates.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := generateOpts
		opts.Sources = sourceOpts
		opts.Template = args[0]
		return cli.RunGenerate(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addSourceFlags(generateCmd)
	generateCmd.Flags().StringVar(&generateOpts.Name, "name", "", "ConfigMap name (defaults to the plugin name)")
	generateCmd.Flags().StringVarP(&generateOpts.Namespace, "namespace", "n", "", "ConfigMap namespace")
	generateCmd.Flags().StringVarP(&generateOpts.OutputDir, "output-dir", "d", "", "Write to this directory instead of stdout")
}
