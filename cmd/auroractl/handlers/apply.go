// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/auroractl/auroractl/internal/config"
	platformaws "github.com/auroractl/auroractl/internal/platform/aws"
	"github.com/auroractl/auroractl/internal/provisioning"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newEngineClient creates the provisioning engine client.
	newEngineClient = func(ctx context.Context, region string) (platformaws.Client, error) {
		return platformaws.NewRealClient(ctx, region)
	}

	// loadConfigFile loads and validates a config from file.
	loadConfigFile = config.Load

	// newProvisioningContext creates the provisioning context.
	newProvisioningContext = provisioning.NewContext
)

// Apply provisions a serverless database cluster.
//
// This function orchestrates the complete provisioning workflow:
//  1. Loads and validates the cluster configuration
//  2. Initializes the AWS client for the configured region
//  3. Runs the apply pipeline: validation, build, rotation
//  4. Prints the cluster's endpoints and attached rotation jobs
//
// Configuration problems collected during resolution are printed before the
// command fails, so every problem is visible in a single pass.
func Apply(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Applying configuration for cluster: %s", cfg.ClusterName)

	client, err := newEngineClient(ctx, cfg.Region)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	pctx := newProvisioningContext(ctx, cfg, client)
	if err := provisioning.NewApplyPipeline().Run(pctx); err != nil {
		printIssues(pctx.State)
		return err
	}

	printApplySuccess(pctx.State)
	return nil
}

// loadConfig loads and validates the cluster configuration. If configPath is
// empty, it looks for auroractl.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'auroractl init' to create one", err)
	}
	return cfg, nil
}

// printIssues lists the configuration problems collected on the state.
func printIssues(state *provisioning.State) {
	if len(state.Issues) == 0 {
		return
	}
	fmt.Printf("\nConfiguration problems (%d):\n", len(state.Issues))
	for _, issue := range state.Issues {
		fmt.Printf("  - %s\n", issue.Error())
	}
}

// printApplySuccess outputs completion message and next steps for the user.
func printApplySuccess(state *provisioning.State) {
	built := state.Cluster

	fmt.Printf("\nCluster created!\n")
	fmt.Printf("  Identifier: %s\n", built.ClusterIdentifier())

	if endpoint, err := built.ClusterEndpoint(); err == nil {
		fmt.Printf("  Endpoint:   %s\n", endpoint.SocketAddress())
	}
	if reader, err := built.ClusterReadEndpoint(); err == nil {
		fmt.Printf("  Reader:     %s\n", reader.SocketAddress())
	}

	if secret := built.AttachedSecret(); secret != nil {
		fmt.Printf("  Secret:     %s\n", secret.ARN)
	}

	for _, job := range state.RotationJobs {
		fmt.Printf("  Rotation:   %s (%s, every %v)\n", job.ID, job.Kind, job.Cadence)
	}
}
