package handlers

import (
	"context"
	"fmt"

	"github.com/auroractl/auroractl/internal/config/wizard"
)

var (
	runWizard   = wizard.RunWizard
	buildConfig = wizard.BuildConfig
	writeConfig = wizard.WriteConfig
)

// Init runs the interactive configuration wizard and writes the resulting
// config file.
func Init(ctx context.Context, outputPath string) error {
	fmt.Println("Welcome to auroractl!")
	fmt.Println("This wizard will help you create a cluster configuration.")
	fmt.Println()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	cfg := buildConfig(result)
	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration written to %s\n", outputPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  auroractl validate   Check the configuration")
	fmt.Println("  auroractl render     Preview the resolved cluster description")
	fmt.Println("  auroractl apply      Create the cluster")
	return nil
}
