package config

import (
	"time"

	"github.com/auroractl/auroractl/internal/cluster"
)

// Config holds the declarative description of one serverless database
// cluster.
type Config struct {
	ClusterName string `yaml:"cluster_name"`
	Region      string `yaml:"region"`

	Engine        string `yaml:"engine"`
	EngineVersion string `yaml:"engine_version,omitempty"`

	Credentials CredentialsConfig `yaml:"credentials,omitempty"`

	DefaultDatabase     string `yaml:"default_database,omitempty"`
	BackupRetentionDays int    `yaml:"backup_retention_days,omitempty"`
	DeletionProtection  *bool  `yaml:"deletion_protection,omitempty"`
	EnableDataAPI       bool   `yaml:"enable_data_api,omitempty"`

	Placement PlacementConfig `yaml:"placement"`
	Scaling   *ScalingConfig  `yaml:"scaling,omitempty"`

	RemovalPolicy    string   `yaml:"removal_policy,omitempty"`
	SecurityGroupIDs []string `yaml:"security_group_ids,omitempty"`
	SubnetGroup      string   `yaml:"subnet_group,omitempty"`
	ParameterGroup   string   `yaml:"parameter_group,omitempty"`
	KMSKeyID         string   `yaml:"kms_key_id,omitempty"`

	Rotation *RotationConfig `yaml:"rotation,omitempty"`
}

// CredentialsConfig configures the master user. Password and SecretARN are
// mutually exclusive; when neither is set a managed secret is created.
type CredentialsConfig struct {
	Username  string `yaml:"username,omitempty"`
	Password  string `yaml:"password,omitempty"`
	SecretARN string `yaml:"secret_arn,omitempty"`
}

// PlacementConfig configures the network placement of the cluster.
type PlacementConfig struct {
	VpcID      string   `yaml:"vpc_id,omitempty"`
	SubnetIDs  []string `yaml:"subnet_ids,omitempty"`
	SubnetType string   `yaml:"subnet_type,omitempty"`
}

// ScalingConfig configures the capacity range and auto-pause behavior.
// AutoPauseMinutes distinguishes absent (provider default) from an explicit
// zero, which disables pausing.
type ScalingConfig struct {
	MinCapacity      int  `yaml:"min_capacity,omitempty"`
	MaxCapacity      int  `yaml:"max_capacity,omitempty"`
	AutoPauseMinutes *int `yaml:"auto_pause_minutes,omitempty"`
}

// RotationConfig configures credential rotation jobs for the cluster.
type RotationConfig struct {
	// SingleUser attaches a single-user rotation to the cluster's own secret.
	SingleUser bool `yaml:"single_user,omitempty"`

	// CadenceDays applies to the single-user job. Zero means the default.
	CadenceDays int `yaml:"cadence_days,omitempty"`

	// MultiUser lists additional user secrets to rotate.
	MultiUser []MultiUserRotationConfig `yaml:"multi_user,omitempty"`
}

// MultiUserRotationConfig configures one multi-user rotation job.
type MultiUserRotationConfig struct {
	ID          string `yaml:"id"`
	SecretARN   string `yaml:"secret_arn"`
	CadenceDays int    `yaml:"cadence_days,omitempty"`
}

// ToClusterSpec converts the configuration into the cluster build input. The
// configuration should be validated first; conversion itself never fails.
func (c *Config) ToClusterSpec() *cluster.ClusterSpec {
	spec := &cluster.ClusterSpec{
		Engine:            cluster.Engine(c.Engine),
		EngineVersion:     c.EngineVersion,
		ClusterIdentifier: c.ClusterName,
		Credentials: cluster.CredentialSpec{
			Username:  c.Credentials.Username,
			Password:  c.Credentials.Password,
			SecretARN: c.Credentials.SecretARN,
		},
		BackupRetention:     time.Duration(c.BackupRetentionDays) * 24 * time.Hour,
		DefaultDatabaseName: c.DefaultDatabase,
		DeletionProtection:  c.DeletionProtection,
		EnableDataAPI:       c.EnableDataAPI,
		Placement: cluster.VpcPlacement{
			VpcID:      c.Placement.VpcID,
			SubnetIDs:  c.Placement.SubnetIDs,
			SubnetType: cluster.SubnetType(c.Placement.SubnetType),
		},
		RemovalPolicy:          cluster.RemovalPolicy(c.RemovalPolicy),
		SecurityGroupIDs:       c.SecurityGroupIDs,
		StorageEncryptionKeyID: c.KMSKeyID,
		ParameterGroupName:     c.ParameterGroup,
		SubnetGroupName:        c.SubnetGroup,
	}

	if c.Scaling != nil {
		scaling := &cluster.ScalingSpec{
			MinCapacity: cluster.Capacity(c.Scaling.MinCapacity),
			MaxCapacity: cluster.Capacity(c.Scaling.MaxCapacity),
		}
		if c.Scaling.AutoPauseMinutes != nil {
			pause := time.Duration(*c.Scaling.AutoPauseMinutes) * time.Minute
			scaling.AutoPause = &pause
		}
		spec.Scaling = scaling
	}

	return spec
}
