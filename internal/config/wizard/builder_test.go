package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	result := &WizardResult{
		ClusterName:      "orders-db",
		Region:           "eu-central-1",
		Engine:           "aurora-mysql",
		Username:         "app",
		VpcID:            "vpc-0123456789abcdef0",
		SubnetType:       "private",
		ConfigureScaling: true,
		MinCapacity:      2,
		MaxCapacity:      8,
		AutoPauseMinutes: 10,
		RemovalPolicy:    "snapshot",
		EnableDataAPI:    true,
	}

	cfg := BuildConfig(result)

	assert.Equal(t, "orders-db", cfg.ClusterName)
	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, "aurora-mysql", cfg.Engine)
	assert.Equal(t, "app", cfg.Credentials.Username)
	assert.Equal(t, "vpc-0123456789abcdef0", cfg.Placement.VpcID)
	assert.Equal(t, "private", cfg.Placement.SubnetType)
	assert.Equal(t, "snapshot", cfg.RemovalPolicy)
	assert.True(t, cfg.EnableDataAPI)
	assert.Nil(t, cfg.Rotation)

	require.NotNil(t, cfg.Scaling)
	assert.Equal(t, 2, cfg.Scaling.MinCapacity)
	assert.Equal(t, 8, cfg.Scaling.MaxCapacity)
	require.NotNil(t, cfg.Scaling.AutoPauseMinutes)
	assert.Equal(t, 10, *cfg.Scaling.AutoPauseMinutes)

	// The wizard can only produce valid configurations.
	require.NoError(t, cfg.Validate())
}

func TestBuildConfig_SkippedScaling(t *testing.T) {
	result := &WizardResult{
		ClusterName:        "orders-db",
		Region:             "eu-central-1",
		Engine:             "aurora-postgresql",
		VpcID:              "vpc-0123456789abcdef0",
		SubnetType:         "private",
		RemovalPolicy:      "retain",
		SingleUserRotation: true,
	}

	cfg := BuildConfig(result)

	assert.Nil(t, cfg.Scaling)
	require.NotNil(t, cfg.Rotation)
	assert.True(t, cfg.Rotation.SingleUser)
	require.NoError(t, cfg.Validate())
}

func TestValidateClusterName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "orders-db"},
		{name: "single letter", input: "a"},
		{name: "empty", input: "", wantErr: errClusterNameRequired},
		{name: "whitespace only", input: "   ", wantErr: errClusterNameRequired},
		{name: "starts with digit", input: "1orders", wantErr: errClusterNameInvalid},
		{name: "uppercase", input: "Orders", wantErr: errClusterNameInvalid},
		{name: "trailing hyphen", input: "orders-", wantErr: errClusterNameInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateClusterName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateVpcID(t *testing.T) {
	assert.NoError(t, validateVpcID("vpc-0123456789abcdef0"))
	assert.ErrorIs(t, validateVpcID(""), errVpcIDRequired)
	assert.ErrorIs(t, validateVpcID("subnet-abc"), errVpcIDInvalid)
	assert.ErrorIs(t, validateVpcID("vpc-XYZ"), errVpcIDInvalid)
}
