package wizard

import (
	"context"
	"fmt"
)

// WizardResult holds all the answers from the interactive wizard.
type WizardResult struct {
	// Cluster Identity
	ClusterName string
	Region      string
	Engine      string

	// Credentials (optional - if empty, a managed secret with the default
	// username is created)
	Username string

	// Network Placement
	VpcID      string
	SubnetType string

	// Scaling
	ConfigureScaling bool
	MinCapacity      int
	MaxCapacity      int
	AutoPauseMinutes int

	// Lifecycle & Access
	RemovalPolicy string
	EnableDataAPI bool

	// Rotation
	SingleUserRotation bool
}

// RunWizard runs the interactive configuration wizard. The context is used
// for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{}

	if err := runClusterIdentityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("cluster identity: %w", err)
	}

	if err := runCredentialsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("credentials: %w", err)
	}

	if err := runPlacementGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("placement: %w", err)
	}

	if err := runScalingGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("scaling: %w", err)
	}

	if err := runLifecycleGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("lifecycle: %w", err)
	}

	return result, nil
}
