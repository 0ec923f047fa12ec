package cluster

import (
	"fmt"
	"sort"
	"time"
)

// Engine identifies the database engine of a serverless cluster.
type Engine string

const (
	// EngineAuroraMySQL is the MySQL-compatible Aurora engine.
	EngineAuroraMySQL Engine = "aurora-mysql"
	// EngineAuroraPostgreSQL is the PostgreSQL-compatible Aurora engine.
	EngineAuroraPostgreSQL Engine = "aurora-postgresql"
)

// ValidEngines contains all engines that support serverless mode.
var ValidEngines = map[Engine]bool{
	EngineAuroraMySQL:      true,
	EngineAuroraPostgreSQL: true,
}

// engineFamilies maps each engine to its parameter group family.
var engineFamilies = map[Engine]string{
	EngineAuroraMySQL:      "aurora-mysql5.7",
	EngineAuroraPostgreSQL: "aurora-postgresql10",
}

// enginePorts maps each engine to its conventional port. The live port of a
// provisioned cluster always comes from the provisioning engine's response;
// this is only used where no live attribute exists yet.
var enginePorts = map[Engine]int32{
	EngineAuroraMySQL:      3306,
	EngineAuroraPostgreSQL: 5432,
}

// Valid reports whether the engine is a known serverless-capable engine.
func (e Engine) Valid() bool {
	return ValidEngines[e]
}

// ParameterGroupFamily returns the engine's parameter group family.
func (e Engine) ParameterGroupFamily() string {
	return engineFamilies[e]
}

// DefaultParameterGroup returns the name of the engine's default cluster
// parameter group, bound when the caller supplies no explicit one.
func (e Engine) DefaultParameterGroup() string {
	return fmt.Sprintf("default.%s", e.ParameterGroupFamily())
}

// DefaultPort returns the engine's conventional port.
func (e Engine) DefaultPort() int32 {
	return enginePorts[e]
}

// RemovalPolicy controls what happens to the cluster's underlying resources
// when the cluster is removed.
type RemovalPolicy string

const (
	RemovalPolicyDestroy  RemovalPolicy = "destroy"
	RemovalPolicyRetain   RemovalPolicy = "retain"
	RemovalPolicySnapshot RemovalPolicy = "snapshot"
)

// ValidRemovalPolicies contains all valid removal policies.
var ValidRemovalPolicies = map[RemovalPolicy]bool{
	RemovalPolicyDestroy:  true,
	RemovalPolicyRetain:   true,
	RemovalPolicySnapshot: true,
}

// SubnetType selects which kind of subnets a placement lookup resolves.
type SubnetType string

const (
	SubnetTypePrivate SubnetType = "private"
	SubnetTypePublic  SubnetType = "public"
)

// VpcPlacement describes the network placement of a cluster: the VPC it
// lives in and how its subnets are selected. When SubnetIDs is set the
// selection is explicit and no lookup is performed; otherwise subnets are
// resolved from the VPC filtered by SubnetType.
type VpcPlacement struct {
	VpcID      string
	SubnetIDs  []string
	SubnetType SubnetType
}

// ClusterSpec is the declarative input for building a serverless database
// cluster. It is caller-owned and read-only to the Builder.
type ClusterSpec struct {
	// Engine identity. Required.
	Engine        Engine
	EngineVersion string // optional, provider default when empty

	// ClusterIdentifier names the cluster. Required: derived resource names
	// and the rotation registry are keyed by it.
	ClusterIdentifier string

	// Credentials for the master user. Zero value triggers creation of a
	// managed secret for the default username.
	Credentials CredentialSpec

	// BackupRetention is the backup retention window. Zero means provider
	// default; otherwise it is rendered in whole days.
	BackupRetention time.Duration

	// DefaultDatabaseName is the name of a database created inside the
	// cluster. Optional.
	DefaultDatabaseName string

	// DeletionProtection is left to the provider default when nil.
	DeletionProtection *bool

	// EnableDataAPI enables the HTTP query endpoint. Defaults to false.
	EnableDataAPI bool

	// Placement is the network placement. The resolved subnet set must
	// contain at least two subnets.
	Placement VpcPlacement

	// Scaling configures the capacity range and auto-pause behavior.
	// Optional; provider defaults apply when nil.
	Scaling *ScalingSpec

	// RemovalPolicy defaults to snapshot semantics when empty.
	RemovalPolicy RemovalPolicy

	// SecurityGroupIDs are caller-supplied security groups. When empty, one
	// default group is created in the VPC.
	SecurityGroupIDs []string

	// StorageEncryptionKeyID is an optional KMS key for storage and managed
	// secret encryption. Storage is always encrypted either way.
	StorageEncryptionKeyID string

	// ParameterGroupName overrides the engine's default parameter group.
	ParameterGroupName string

	// SubnetGroupName reuses an existing subnet group instead of deriving one.
	SubnetGroupName string
}

// Validate checks the spec for structural errors that make building
// impossible. Cross-field problems that the Builder can collect and report
// (subnet count, scaling range) are not checked here.
func (s *ClusterSpec) Validate() error {
	if s.ClusterIdentifier == "" {
		return fmt.Errorf("cluster identifier is required")
	}
	if s.Engine == "" {
		return fmt.Errorf("engine is required")
	}
	if !s.Engine.Valid() {
		return fmt.Errorf("invalid engine %q: must be one of %v", s.Engine, engineNames())
	}
	if s.RemovalPolicy != "" && !ValidRemovalPolicies[s.RemovalPolicy] {
		return fmt.Errorf("invalid removal policy %q", s.RemovalPolicy)
	}
	if s.Placement.VpcID == "" && len(s.Placement.SubnetIDs) == 0 {
		return fmt.Errorf("placement requires a VPC id or explicit subnet ids")
	}
	if err := s.Credentials.Validate(); err != nil {
		return err
	}
	return nil
}

// engineNames returns the known engines, sorted for error messages.
func engineNames() []Engine {
	names := make([]Engine, 0, len(ValidEngines))
	for e := range ValidEngines {
		names = append(names, e)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
