package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	platformaws "github.com/auroractl/auroractl/internal/platform/aws"
	"github.com/auroractl/auroractl/internal/util/naming"
)

// engineMode is fixed: this package only models serverless clusters.
const engineMode = "serverless"

// Builder resolves a ClusterSpec into a complete resource description and,
// on Build, submits it to the provisioning engine and wraps the returned
// live attributes. Each Builder call operates on the caller-owned spec and
// produces independently owned output.
type Builder struct {
	spec   *ClusterSpec
	client platformaws.Client
}

// NewBuilder creates a Builder for the given spec and provisioning engine.
func NewBuilder(spec *ClusterSpec, client platformaws.Client) *Builder {
	return &Builder{spec: spec, client: client}
}

// Plan is the fully resolved resource description plus everything derived
// during resolution. Issues holds the configuration errors collected while
// resolving; a plan with issues is flagged invalid but still complete enough
// to inspect.
type Plan struct {
	// Input is the declare-resource document. Its MasterUserPassword is only
	// set for explicit plaintext credentials; secret-backed passwords are
	// materialized at submission time.
	Input *rds.CreateDBClusterInput

	// SubnetIDs is the resolved subnet placement.
	SubnetIDs []string

	// SubnetGroupName is the subnet group the cluster binds, created during
	// Build when it is not caller-supplied.
	SubnetGroupName string

	// SecurityGroupIDs is the caller-supplied security group set. Empty when
	// a default group will be created during Build.
	SecurityGroupIDs []string

	// Issues are the configuration errors collected during resolution.
	Issues []ConfigurationError
}

// BuildResult is the outcome of a Build call.
type BuildResult struct {
	// Cluster is the provisioned cluster resource. Nil when the plan was
	// flagged with configuration errors and therefore never submitted.
	Cluster *Cluster

	// Plan is the resolved resource description, always non-nil.
	Plan *Plan
}

// Issues returns the configuration errors collected during the build.
func (r *BuildResult) Issues() []ConfigurationError {
	return r.Plan.Issues
}

// Plan resolves the spec into a resource description without creating
// anything. The only engine interaction is the read-only subnet lookup, and
// only when the placement is not explicit. Configuration errors are
// collected on the plan rather than aborting resolution.
func (b *Builder) Plan(ctx context.Context) (*Plan, error) {
	spec := b.spec
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	plan := &Plan{}

	subnetIDs, err := resolveSubnets(ctx, spec.Placement, b.client.Network())
	if err != nil {
		return nil, err
	}
	plan.SubnetIDs = subnetIDs
	if len(subnetIDs) < 2 {
		plan.Issues = append(plan.Issues, ConfigurationError{
			Field:   "placement",
			Message: fmt.Sprintf("cluster requires at least 2 subnets, got %d", len(subnetIDs)),
		})
	}

	plan.SubnetGroupName = spec.SubnetGroupName
	if plan.SubnetGroupName == "" {
		plan.SubnetGroupName = naming.SubnetGroup(spec.ClusterIdentifier)
	}
	plan.SecurityGroupIDs = spec.SecurityGroupIDs

	username := spec.Credentials.Username
	if username == "" {
		username = DefaultUsername
	}

	input := &rds.CreateDBClusterInput{
		DBClusterIdentifier: aws.String(spec.ClusterIdentifier),
		Engine:              aws.String(string(spec.Engine)),
		EngineMode:          aws.String(engineMode),
		MasterUsername:      aws.String(username),
		DBSubnetGroupName:   aws.String(plan.SubnetGroupName),
		StorageEncrypted:    aws.Bool(true),
		EnableHttpEndpoint:  aws.Bool(spec.EnableDataAPI),
		DeletionProtection:  spec.DeletionProtection,
		VpcSecurityGroupIds: spec.SecurityGroupIDs,
		Tags:                resourceTags(spec),
	}
	if spec.EngineVersion != "" {
		input.EngineVersion = aws.String(spec.EngineVersion)
	}
	if spec.BackupRetention > 0 {
		input.BackupRetentionPeriod = aws.Int32(int32(spec.BackupRetention.Hours() / 24))
	}
	if spec.DefaultDatabaseName != "" {
		input.DatabaseName = aws.String(spec.DefaultDatabaseName)
	}
	if spec.StorageEncryptionKeyID != "" {
		input.KmsKeyId = aws.String(spec.StorageEncryptionKeyID)
	}
	if spec.ParameterGroupName != "" {
		input.DBClusterParameterGroupName = aws.String(spec.ParameterGroupName)
	} else {
		input.DBClusterParameterGroupName = aws.String(spec.Engine.DefaultParameterGroup())
	}
	if spec.Credentials.Password != "" {
		input.MasterUserPassword = aws.String(spec.Credentials.Password)
	}

	if spec.Scaling != nil {
		rendered, err := spec.Scaling.Render()
		if err != nil {
			var configErr ConfigurationError
			if !errors.As(err, &configErr) {
				return nil, err
			}
			plan.Issues = append(plan.Issues, configErr)
		} else {
			input.ScalingConfiguration = rendered
		}
	}

	plan.Input = input
	return plan, nil
}

// Build resolves the spec, submits the resource description to the
// provisioning engine and wraps the returned live attributes into a Cluster.
// A plan flagged with configuration errors is returned unsubmitted so the
// caller can report every problem in one pass; engine failures are fatal.
func (b *Builder) Build(ctx context.Context) (*BuildResult, error) {
	plan, err := b.Plan(ctx)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{Plan: plan}
	if len(plan.Issues) > 0 {
		return result, nil
	}

	spec := b.spec
	secrets := b.client.Secrets()

	login, err := ResolveCredentials(ctx, spec.Credentials, spec.ClusterIdentifier, spec.StorageEncryptionKeyID, secrets)
	if err != nil {
		return nil, err
	}
	password, err := MaterializePassword(ctx, login, secrets)
	if err != nil {
		return nil, err
	}
	plan.Input.MasterUserPassword = aws.String(password)

	if spec.SubnetGroupName == "" {
		if _, err := resolveSubnetGroup(ctx, spec, plan.SubnetIDs, b.client.Clusters()); err != nil {
			return nil, err
		}
	}

	securityGroupIDs, err := resolveSecurityGroups(ctx, spec, b.client.Network())
	if err != nil {
		return nil, err
	}
	plan.SecurityGroupIDs = securityGroupIDs
	plan.Input.VpcSecurityGroupIds = securityGroupIDs

	out, err := b.client.Clusters().CreateDBCluster(ctx, plan.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to create cluster %s: %w", spec.ClusterIdentifier, err)
	}

	db := out.DBCluster
	port := aws.ToInt32(db.Port)
	if port == 0 {
		port = spec.Engine.DefaultPort()
	}

	built := &Cluster{
		identifier:   aws.ToString(db.DBClusterIdentifier),
		endpoint:     NewEndpoint(aws.ToString(db.Endpoint), port),
		readEndpoint: NewEndpoint(aws.ToString(db.ReaderEndpoint), port),
		connections:  NewConnections(securityGroupIDs, port),
		placement:    spec.Placement,
	}

	if login.SecretARN != "" {
		attached, err := attachSecret(ctx, login.SecretARN, built, secrets)
		if err != nil {
			return nil, err
		}
		built.secret = attached
	}

	result.Cluster = built
	return result, nil
}

// attachSecret binds a resolved secret to the cluster by tagging it with the
// attachment target metadata the rotation executor reads.
func attachSecret(ctx context.Context, secretARN string, c *Cluster, secrets platformaws.SecretsAPI) (*AttachedSecret, error) {
	target := c.AsSecretAttachmentTarget()
	_, err := secrets.TagResource(ctx, &secretsmanager.TagResourceInput{
		SecretId: aws.String(secretARN),
		Tags: []smtypes.Tag{
			{Key: aws.String("auroractl.io/target-id"), Value: aws.String(target.TargetID)},
			{Key: aws.String("auroractl.io/target-type"), Value: aws.String(target.TargetType)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach secret to cluster %s: %w", c.ClusterIdentifier(), err)
	}
	return &AttachedSecret{ARN: secretARN, Target: target}, nil
}
