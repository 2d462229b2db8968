package main

import (
	"fmt"
	"os"

	"mission-report-srv/internal/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective report parameters",
		Long:  "Print the default parameters, or the defaults overlaid with --params after validation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := loadParams(paramsFile)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, params)
		},
	}
}

// loadParams overlays the YAML file at path on the default parameters.
// Maps merge key by key, so a file only needs the entries it changes.
func loadParams(path string) (model.ReportParameters, error) {
	params := model.DefaultParameters()
	if path == "" {
		return params, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.ReportParameters{}, fmt.Errorf("read params: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return model.ReportParameters{}, fmt.Errorf("parse params: %w", err)
	}
	if err := params.Validate(); err != nil {
		return model.ReportParameters{}, err
	}
	return params, nil
}
