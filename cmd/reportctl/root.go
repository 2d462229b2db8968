package main

import (
	"github.com/spf13/cobra"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	output     string
	paramsFile string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "reportctl",
		Short:         "Mission report operator tool",
		Long:          "reportctl runs mission report generations outside the API and inspects report parameters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", outputJSON, "output format: json|yaml")
	rootCmd.PersistentFlags().StringVarP(&paramsFile, "params", "p", "", "YAML file overriding the default report parameters")

	rootCmd.AddCommand(newParamsCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newRequestCmd())

	return rootCmd
}
