package handlers

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"gopkg.in/yaml.v3"

	"github.com/auroractl/auroractl/internal/cluster"
)

// Render resolves a configuration into the full resource description and
// prints it as YAML, without creating anything. Secret-backed passwords are
// never resolved during rendering; an explicit plaintext password is redacted
// before printing.
func Render(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client, err := newEngineClient(ctx, cfg.Region)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	spec := cfg.ToClusterSpec()
	plan, err := cluster.NewBuilder(spec, client).Plan(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve cluster description: %w", err)
	}

	if plan.Input.MasterUserPassword != nil {
		plan.Input.MasterUserPassword = aws.String("[redacted]")
	}

	out, err := yaml.Marshal(plan.Input)
	if err != nil {
		return fmt.Errorf("failed to render cluster description: %w", err)
	}
	fmt.Print(string(out))

	if len(plan.Issues) > 0 {
		fmt.Printf("\nConfiguration problems (%d):\n", len(plan.Issues))
		for _, issue := range plan.Issues {
			fmt.Printf("  - %s\n", issue.Error())
		}
		return fmt.Errorf("configuration has %d problems", len(plan.Issues))
	}
	return nil
}
