package commands

import (
	"github.com/spf13/cobra"

	"github.com/auroractl/auroractl/cmd/auroractl/handlers"
)

// Render returns the command for printing the resolved resource description.
//
// Optional flags:
//
//	--config, -c: Path to cluster configuration YAML file (default: auroractl.yaml)
func Render() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Resolve and print the cluster plan",
		Long: `Resolve the configuration into a complete resource description and
print it without creating anything.

The only AWS interaction is the read-only subnet lookup, and only when the
placement does not list explicit subnets. Configuration problems found
during resolution are printed alongside the plan. Secret-backed passwords
are never part of the output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Render(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: auroractl.yaml)")

	return cmd
}
