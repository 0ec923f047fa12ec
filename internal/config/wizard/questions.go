package wizard

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// clusterNameRegex validates cluster name format: starts with a letter,
// lowercase alphanumeric with hyphens, up to 63 characters.
var clusterNameRegex = regexp.MustCompile(`^[a-z](?:[a-z0-9-]{0,61}[a-z0-9])?$`)

// vpcIDRegex validates the VPC id format.
var vpcIDRegex = regexp.MustCompile(`^vpc-[0-9a-f]+$`)

// runClusterIdentityGroup prompts for cluster name, region and engine.
func runClusterIdentityGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster Name").
				Description("Lowercase alphanumeric characters or hyphens, starting with a letter").
				Placeholder("my-database").
				Value(&result.ClusterName).
				Validate(validateClusterName),
			huh.NewSelect[string]().
				Title("Region").
				Description("AWS region the cluster runs in").
				Options(RegionsToOptions()...).
				Value(&result.Region),
			huh.NewSelect[string]().
				Title("Engine").
				Description("Database engine").
				Options(EngineOptions...).
				Value(&result.Engine),
		).Title("Cluster Identity"),
	).RunWithContext(ctx)
}

// runCredentialsGroup prompts for the master username (optional).
func runCredentialsGroup(ctx context.Context, result *WizardResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Master Username (Optional)").
				Description("Leave empty to use \"admin\". A managed secret with a generated password is created either way.").
				Placeholder("admin").
				Value(&result.Username),
		).Title("Credentials"),
	).RunWithContext(ctx)
}

// runPlacementGroup prompts for network placement.
func runPlacementGroup(ctx context.Context, result *WizardResult) error {
	result.SubnetType = "private" // default

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("VPC ID").
				Description("The VPC the cluster is placed in").
				Placeholder("vpc-0123456789abcdef0").
				Value(&result.VpcID).
				Validate(validateVpcID),
			huh.NewSelect[string]().
				Title("Subnet Type").
				Description("Which subnets of the VPC to use").
				Options(SubnetTypeOptions...).
				Value(&result.SubnetType),
		).Title("Network Placement"),
	).RunWithContext(ctx)
}

// runScalingGroup prompts for the capacity range and auto-pause behavior.
func runScalingGroup(ctx context.Context, result *WizardResult) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Configure Scaling?").
				Description("Set an explicit capacity range and auto-pause behavior. Skipping uses provider defaults.").
				Value(&result.ConfigureScaling),
		).Title("Scaling"),
	).RunWithContext(ctx)

	if err != nil || !result.ConfigureScaling {
		return err
	}

	result.MinCapacity = 2 // default
	result.MaxCapacity = 8 // default

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Minimum Capacity").
				Options(CapacityOptions()...).
				Value(&result.MinCapacity),
			huh.NewSelect[int]().
				Title("Maximum Capacity").
				Options(CapacityOptions()...).
				Value(&result.MaxCapacity),
			huh.NewSelect[int]().
				Title("Auto-Pause After Idle").
				Description("Pause compute after this idle time").
				Options(AutoPauseOptions...).
				Value(&result.AutoPauseMinutes),
		).Title("Capacity Range"),
	).RunWithContext(ctx)
}

// runLifecycleGroup prompts for removal policy, Data API and rotation.
func runLifecycleGroup(ctx context.Context, result *WizardResult) error {
	result.RemovalPolicy = "snapshot" // default

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Removal Policy").
				Description("What happens to the cluster's data when the cluster is removed").
				Options(RemovalPolicyOptions...).
				Value(&result.RemovalPolicy),
			huh.NewConfirm().
				Title("Enable Data API?").
				Description("HTTP query endpoint for connectionless access").
				Value(&result.EnableDataAPI),
			huh.NewConfirm().
				Title("Rotate Master Credentials?").
				Description("Attach a single-user rotation job to the managed secret").
				Value(&result.SingleUserRotation),
		).Title("Lifecycle"),
	).RunWithContext(ctx)
}

// validateClusterName validates the cluster name input.
func validateClusterName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errClusterNameRequired
	}
	if !clusterNameRegex.MatchString(name) {
		return errClusterNameInvalid
	}
	return nil
}

// validateVpcID validates the VPC id input.
func validateVpcID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errVpcIDRequired
	}
	if !vpcIDRegex.MatchString(id) {
		return errVpcIDInvalid
	}
	return nil
}
