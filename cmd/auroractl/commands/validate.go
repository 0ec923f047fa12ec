package commands

import (
	"github.com/spf13/cobra"

	"github.com/auroractl/auroractl/cmd/auroractl/handlers"
)

// Validate returns the command for offline configuration validation.
//
// Optional flags:
//
//	--config, -c: Path to cluster configuration YAML file (default: auroractl.yaml)
func Validate() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the cluster configuration",
		Long: `Validate the cluster configuration without contacting AWS.

Checks the configuration file for structural errors: unknown engines and
regions, conflicting credential sources, invalid capacity units and broken
rotation declarations. Network-dependent problems such as the actual subnet
count of a VPC are only detected by 'auroractl render' or 'auroractl apply'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Validate(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: auroractl.yaml)")

	return cmd
}
