package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/auroractl/auroractl/internal/cluster"
)

// ValidRegions contains the AWS regions where serverless clusters can run.
// https://docs.aws.amazon.com/general/latest/gr/rande.html
var ValidRegions = map[string]bool{
	"us-east-1":      true, // N. Virginia
	"us-east-2":      true, // Ohio
	"us-west-2":      true, // Oregon
	"eu-west-1":      true, // Ireland
	"eu-west-2":      true, // London
	"eu-central-1":   true, // Frankfurt
	"ap-northeast-1": true, // Tokyo
	"ap-southeast-1": true, // Singapore
	"ap-southeast-2": true, // Sydney
	"ca-central-1":   true, // Canada
}

// ValidSubnetTypes contains the subnet selection modes for placement lookup.
var ValidSubnetTypes = map[string]bool{
	"private": true,
	"public":  true,
}

// Validate checks the configuration for common errors and returns a detailed
// error if validation fails.
func (c *Config) Validate() error {
	// Required fields
	if c.ClusterName == "" {
		return fmt.Errorf("cluster_name is required")
	}
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.Engine == "" {
		return fmt.Errorf("engine is required")
	}

	if !ValidRegions[c.Region] {
		return fmt.Errorf("invalid region %q: must be one of %v", c.Region, getMapKeys(ValidRegions))
	}
	if !cluster.ValidEngines[cluster.Engine(c.Engine)] {
		return fmt.Errorf("invalid engine %q: must be aurora-mysql or aurora-postgresql", c.Engine)
	}

	if err := c.validateCredentials(); err != nil {
		return fmt.Errorf("credentials validation failed: %w", err)
	}
	if err := c.validatePlacement(); err != nil {
		return fmt.Errorf("placement validation failed: %w", err)
	}
	if err := c.validateScaling(); err != nil {
		return fmt.Errorf("scaling validation failed: %w", err)
	}
	if err := c.validateRotation(); err != nil {
		return fmt.Errorf("rotation validation failed: %w", err)
	}

	if c.RemovalPolicy != "" && !cluster.ValidRemovalPolicies[cluster.RemovalPolicy(c.RemovalPolicy)] {
		return fmt.Errorf("invalid removal_policy %q: must be destroy, retain or snapshot", c.RemovalPolicy)
	}
	if c.BackupRetentionDays < 0 {
		return fmt.Errorf("backup_retention_days must not be negative")
	}

	return nil
}

// validateCredentials enforces the single-password-source rule.
func (c *Config) validateCredentials() error {
	if c.Credentials.Password != "" && c.Credentials.SecretARN != "" {
		return fmt.Errorf("password and secret_arn are mutually exclusive")
	}
	if c.Credentials.SecretARN != "" && !strings.HasPrefix(c.Credentials.SecretARN, "arn:") {
		return fmt.Errorf("secret_arn %q is not an ARN", c.Credentials.SecretARN)
	}
	return nil
}

// validatePlacement checks that subnets can be resolved at all.
func (c *Config) validatePlacement() error {
	if c.Placement.VpcID == "" && len(c.Placement.SubnetIDs) == 0 {
		return fmt.Errorf("vpc_id or subnet_ids is required")
	}
	if c.Placement.SubnetType != "" && !ValidSubnetTypes[c.Placement.SubnetType] {
		return fmt.Errorf("invalid subnet_type %q: must be private or public", c.Placement.SubnetType)
	}
	if len(c.Placement.SubnetIDs) == 1 {
		return fmt.Errorf("subnet_ids must contain at least 2 subnets, got 1")
	}
	return nil
}

// validateScaling checks the capacity units against the provider's closed set.
func (c *Config) validateScaling() error {
	if c.Scaling == nil {
		return nil
	}
	if c.Scaling.MinCapacity != 0 && !cluster.ValidCapacities[cluster.Capacity(c.Scaling.MinCapacity)] {
		return fmt.Errorf("invalid min_capacity %d", c.Scaling.MinCapacity)
	}
	if c.Scaling.MaxCapacity != 0 && !cluster.ValidCapacities[cluster.Capacity(c.Scaling.MaxCapacity)] {
		return fmt.Errorf("invalid max_capacity %d", c.Scaling.MaxCapacity)
	}
	if c.Scaling.MinCapacity != 0 && c.Scaling.MaxCapacity != 0 && c.Scaling.MinCapacity > c.Scaling.MaxCapacity {
		return fmt.Errorf("max_capacity %d must be greater than or equal to min_capacity %d",
			c.Scaling.MaxCapacity, c.Scaling.MinCapacity)
	}
	if c.Scaling.AutoPauseMinutes != nil && *c.Scaling.AutoPauseMinutes < 0 {
		return fmt.Errorf("auto_pause_minutes must not be negative")
	}
	return nil
}

// validateRotation checks rotation jobs for missing identity and duplicates.
func (c *Config) validateRotation() error {
	if c.Rotation == nil {
		return nil
	}
	if c.Rotation.CadenceDays < 0 {
		return fmt.Errorf("cadence_days must not be negative")
	}

	seen := make(map[string]bool)
	for _, job := range c.Rotation.MultiUser {
		if job.ID == "" {
			return fmt.Errorf("multi_user rotation requires an id")
		}
		if job.SecretARN == "" {
			return fmt.Errorf("multi_user rotation %q requires a secret_arn", job.ID)
		}
		if seen[job.ID] {
			return fmt.Errorf("duplicate multi_user rotation id %q", job.ID)
		}
		seen[job.ID] = true
	}
	return nil
}

// getMapKeys returns the keys of a map, sorted for error messages.
func getMapKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
