package wizard

import (
	"github.com/auroractl/auroractl/internal/config"
)

// BuildConfig converts a WizardResult into a Config.
func BuildConfig(result *WizardResult) *config.Config {
	cfg := &config.Config{
		ClusterName: result.ClusterName,
		Region:      result.Region,
		Engine:      result.Engine,
		Credentials: config.CredentialsConfig{
			Username: result.Username,
		},
		Placement: config.PlacementConfig{
			VpcID:      result.VpcID,
			SubnetType: result.SubnetType,
		},
		RemovalPolicy: result.RemovalPolicy,
		EnableDataAPI: result.EnableDataAPI,
	}

	if result.ConfigureScaling {
		pause := result.AutoPauseMinutes
		cfg.Scaling = &config.ScalingConfig{
			MinCapacity:      result.MinCapacity,
			MaxCapacity:      result.MaxCapacity,
			AutoPauseMinutes: &pause,
		}
	}

	if result.SingleUserRotation {
		cfg.Rotation = &config.RotationConfig{SingleUser: true}
	}

	return cfg
}
