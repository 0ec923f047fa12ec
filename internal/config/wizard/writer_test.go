package wizard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroractl/auroractl/internal/config"
)

func wizardConfig() *config.Config {
	return BuildConfig(&WizardResult{
		ClusterName:   "orders-db",
		Region:        "eu-central-1",
		Engine:        "aurora-mysql",
		VpcID:         "vpc-0123456789abcdef0",
		SubnetType:    "private",
		RemovalPolicy: "snapshot",
	})
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auroractl.yaml")

	require.NoError(t, WriteConfig(wizardConfig(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# auroractl cluster configuration")
	assert.Contains(t, content, "cluster_name: orders-db")

	// The written file round-trips through the loader.
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "orders-db", cfg.ClusterName)
	assert.Equal(t, "aurora-mysql", cfg.Engine)
}

func TestWriteConfig_OverwriteDeclined(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auroractl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	original := confirmOverwrite
	confirmOverwrite = func(string) (bool, error) { return false, nil }
	defer func() { confirmOverwrite = original }()

	err := WriteConfig(wizardConfig(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestWriteConfig_OverwriteAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auroractl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	original := confirmOverwrite
	confirmOverwrite = func(string) (bool, error) { return true, nil }
	defer func() { confirmOverwrite = original }()

	require.NoError(t, WriteConfig(wizardConfig(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cluster_name: orders-db")
}
