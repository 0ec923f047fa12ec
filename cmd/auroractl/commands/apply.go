package commands

import (
	"github.com/spf13/cobra"

	"github.com/auroractl/auroractl/cmd/auroractl/handlers"
)

// Apply returns the command for provisioning a cluster.
//
// This command handles the complete provisioning workflow: loading
// configuration, resolving defaults, creating the managed secret and derived
// resources, submitting the cluster and attaching rotation jobs.
//
// Optional flags:
//
//	--config, -c: Path to cluster configuration YAML file (default: auroractl.yaml)
//
// Environment variables:
//
//	AWS credentials are resolved through the standard SDK chain
//	(environment, shared config, instance role).
func Apply() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create the cluster",
		Long: `Create your serverless database cluster.

This command resolves the configuration into a complete resource
description, materializes the managed secret, subnet group and security
group, submits the cluster to AWS and attaches configured rotation jobs.

If no config file is specified, it looks for auroractl.yaml in the current
directory. Use 'auroractl init' to create a configuration file.

Examples:
  # Create cluster using auroractl.yaml in current directory
  auroractl apply

  # Create cluster using specific config file
  auroractl apply -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: auroractl.yaml)")

	return cmd
}
