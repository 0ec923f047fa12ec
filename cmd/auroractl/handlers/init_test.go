package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroractl/auroractl/internal/config"
	"github.com/auroractl/auroractl/internal/config/wizard"
)

// saveAndRestoreInitFactories saves and restores the init factory functions.
func saveAndRestoreInitFactories(t *testing.T) {
	t.Helper()
	origRunWizard := runWizard
	origBuildConfig := buildConfig
	origWriteConfig := writeConfig

	t.Cleanup(func() {
		runWizard = origRunWizard
		buildConfig = origBuildConfig
		writeConfig = origWriteConfig
	})
}

func TestInit_Success(t *testing.T) {
	saveAndRestoreInitFactories(t)

	result := &wizard.WizardResult{ClusterName: "orders-db", Region: "eu-central-1"}
	runWizard = func(_ context.Context) (*wizard.WizardResult, error) {
		return result, nil
	}
	buildConfig = func(r *wizard.WizardResult) *config.Config {
		assert.Same(t, result, r)
		return testConfig()
	}

	var writtenPath string
	writeConfig = func(_ *config.Config, outputPath string) error {
		writtenPath = outputPath
		return nil
	}

	var err error
	output := captureOutput(func() {
		err = Init(context.Background(), "auroractl.yaml")
	})

	require.NoError(t, err)
	assert.Equal(t, "auroractl.yaml", writtenPath)
	assert.Contains(t, output, "Welcome to auroractl!")
	assert.Contains(t, output, "Configuration written to auroractl.yaml")
	assert.Contains(t, output, "Next steps:")
	assert.Contains(t, output, "auroractl apply")
}

func TestInit_WizardCancelled(t *testing.T) {
	saveAndRestoreInitFactories(t)

	runWizard = func(_ context.Context) (*wizard.WizardResult, error) {
		return nil, errors.New("user aborted")
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), "auroractl.yaml")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard failed")
}

func TestInit_WriteError(t *testing.T) {
	saveAndRestoreInitFactories(t)

	runWizard = func(_ context.Context) (*wizard.WizardResult, error) {
		return &wizard.WizardResult{}, nil
	}
	buildConfig = func(_ *wizard.WizardResult) *config.Config {
		return testConfig()
	}
	writeConfig = func(_ *config.Config, _ string) error {
		return errors.New("permission denied")
	}

	var err error
	captureOutput(func() {
		err = Init(context.Background(), "auroractl.yaml")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config")
}
