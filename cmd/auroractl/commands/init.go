package commands

import (
	"github.com/spf13/cobra"

	"github.com/auroractl/auroractl/cmd/auroractl/handlers"
)

// Init returns the command for interactively creating a cluster configuration.
//
// This command guides users through creating a cluster configuration YAML
// file using an interactive wizard with text inputs, single-select and
// confirm prompts.
//
// Flags:
//
//	--output, -o: Path to output file (default "auroractl.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a cluster configuration",
		Long: `Interactively create a cluster configuration file.

This command guides you through configuring your serverless database
cluster step by step. It will ask about:

  - Cluster identity (name, region and engine)
  - Master credentials
  - Network placement (VPC and subnet type)
  - Scaling (capacity range and auto-pause)
  - Removal policy, Data API and credential rotation`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "auroractl.yaml", "Output file path")

	return cmd
}
