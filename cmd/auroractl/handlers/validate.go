package handlers

import (
	"context"
	"fmt"
)

// Validate checks a configuration file without touching AWS.
//
// Both the file-level schema and the derived cluster description are
// validated, so a passing config is guaranteed to survive the validation
// phase of apply.
func Validate(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	spec := cfg.ToClusterSpec()
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("cluster description is invalid: %w", err)
	}

	fmt.Printf("Configuration is valid\n")
	fmt.Printf("  Cluster: %s\n", cfg.ClusterName)
	fmt.Printf("  Region:  %s\n", cfg.Region)
	fmt.Printf("  Engine:  %s\n", spec.Engine)
	return nil
}
