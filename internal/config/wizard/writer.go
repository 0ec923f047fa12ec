package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/auroractl/auroractl/internal/config"
)

// Function variable for dependency injection in tests.
var confirmOverwrite = defaultConfirmOverwrite

// WriteConfig writes the config to a YAML file with a descriptive header.
// If the file already exists, the user is asked before it is overwritten.
func WriteConfig(cfg *config.Config, outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("aborted: %s already exists", outputPath)
		}
	}

	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader())
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader returns the comment header written above the YAML document.
func generateHeader() string {
	return fmt.Sprintf(`# auroractl cluster configuration
# Generated by "auroractl init" on %s
#
# Validate with:  auroractl validate
# Apply with:     auroractl apply
`, time.Now().Format("2006-01-02"))
}

// defaultConfirmOverwrite asks on stdin whether an existing file may be
// replaced.
func defaultConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("%s already exists. Overwrite? [y/N]: ", path)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false, nil
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
