package cluster

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformaws "github.com/auroractl/auroractl/internal/platform/aws"
)

// provisioningMock wires a MockClient that behaves like a healthy engine and
// counts the mutating calls it receives.
type provisioningMock struct {
	client *platformaws.MockClient

	clustersCreated     []rds.CreateDBClusterInput
	subnetGroupsCreated []rds.CreateDBSubnetGroupInput
	securityGroups      []ec2.CreateSecurityGroupInput
	secretsCreated      []secretsmanager.CreateSecretInput
	secretsTagged       []secretsmanager.TagResourceInput
	subnetIDs           []string
}

func newProvisioningMock(subnetIDs []string) *provisioningMock {
	m := &provisioningMock{client: platformaws.NewMockClient(), subnetIDs: subnetIDs}

	m.client.NetworkClient.DescribeSubnetsFunc = func(_ context.Context, _ *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
		subnets := make([]ec2types.Subnet, 0, len(m.subnetIDs))
		for _, id := range m.subnetIDs {
			subnets = append(subnets, ec2types.Subnet{SubnetId: aws.String(id)})
		}
		return &ec2.DescribeSubnetsOutput{Subnets: subnets}, nil
	}
	m.client.NetworkClient.CreateSecurityGroupFunc = func(_ context.Context, params *ec2.CreateSecurityGroupInput, _ ...func(*ec2.Options)) (*ec2.CreateSecurityGroupOutput, error) {
		m.securityGroups = append(m.securityGroups, *params)
		return &ec2.CreateSecurityGroupOutput{GroupId: aws.String("sg-default")}, nil
	}
	m.client.ClusterClient.CreateDBSubnetGroupFunc = func(_ context.Context, params *rds.CreateDBSubnetGroupInput, _ ...func(*rds.Options)) (*rds.CreateDBSubnetGroupOutput, error) {
		m.subnetGroupsCreated = append(m.subnetGroupsCreated, *params)
		return &rds.CreateDBSubnetGroupOutput{}, nil
	}
	m.client.ClusterClient.CreateDBClusterFunc = func(_ context.Context, params *rds.CreateDBClusterInput, _ ...func(*rds.Options)) (*rds.CreateDBClusterOutput, error) {
		m.clustersCreated = append(m.clustersCreated, *params)
		return &rds.CreateDBClusterOutput{
			DBCluster: &rdstypes.DBCluster{
				DBClusterIdentifier: params.DBClusterIdentifier,
				Endpoint:            aws.String("orders-db.cluster-abc.eu-central-1.rds.amazonaws.com"),
				ReaderEndpoint:      aws.String("orders-db.cluster-ro-abc.eu-central-1.rds.amazonaws.com"),
				Port:                aws.Int32(3306),
			},
		}, nil
	}
	m.client.SecretsClient.GetRandomPasswordFunc = func(_ context.Context, _ *secretsmanager.GetRandomPasswordInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetRandomPasswordOutput, error) {
		return &secretsmanager.GetRandomPasswordOutput{RandomPassword: aws.String("generated-password")}, nil
	}
	m.client.SecretsClient.CreateSecretFunc = func(_ context.Context, params *secretsmanager.CreateSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error) {
		m.secretsCreated = append(m.secretsCreated, *params)
		return &secretsmanager.CreateSecretOutput{
			ARN: aws.String("arn:aws:secretsmanager:eu-central-1:123456789012:secret:orders-db-credentials"),
		}, nil
	}
	m.client.SecretsClient.TagResourceFunc = func(_ context.Context, params *secretsmanager.TagResourceInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.TagResourceOutput, error) {
		m.secretsTagged = append(m.secretsTagged, *params)
		return &secretsmanager.TagResourceOutput{}, nil
	}
	return m
}

func TestBuild_FullDefaults(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a", "subnet-b", "subnet-c"})

	spec := &ClusterSpec{
		Engine:            EngineAuroraMySQL,
		ClusterIdentifier: "orders-db",
		Placement:         VpcPlacement{VpcID: "vpc-1234", SubnetType: SubnetTypePrivate},
		Scaling: &ScalingSpec{
			MinCapacity: Capacity2,
			MaxCapacity: Capacity8,
			AutoPause:   durationPtr(0),
		},
	}

	result, err := NewBuilder(spec, mock.client).Build(context.Background())
	require.NoError(t, err)
	require.Empty(t, result.Issues())
	require.NotNil(t, result.Cluster)

	// Exactly one cluster was submitted with the resolved defaults.
	require.Len(t, mock.clustersCreated, 1)
	input := mock.clustersCreated[0]
	assert.Equal(t, aws.String("orders-db"), input.DBClusterIdentifier)
	assert.Equal(t, aws.String("aurora-mysql"), input.Engine)
	assert.Equal(t, aws.String("serverless"), input.EngineMode)
	assert.Equal(t, aws.String("admin"), input.MasterUsername)
	assert.Equal(t, aws.String("generated-password"), input.MasterUserPassword)
	assert.Equal(t, aws.String("default.aurora-mysql5.7"), input.DBClusterParameterGroupName)
	assert.Equal(t, aws.String("orders-db-subnets"), input.DBSubnetGroupName)
	assert.Equal(t, aws.Bool(true), input.StorageEncrypted)
	assert.Equal(t, aws.Bool(false), input.EnableHttpEndpoint)
	assert.Equal(t, []string{"sg-default"}, input.VpcSecurityGroupIds)

	// Scaling rendered into engine units with auto-pause disabled explicitly.
	require.NotNil(t, input.ScalingConfiguration)
	assert.Equal(t, aws.Bool(false), input.ScalingConfiguration.AutoPause)
	assert.Equal(t, aws.Int32(2), input.ScalingConfiguration.MinCapacity)
	assert.Equal(t, aws.Int32(8), input.ScalingConfiguration.MaxCapacity)

	// The managed secret was created exactly once and attached to the cluster.
	require.Len(t, mock.secretsCreated, 1)
	assert.Equal(t, aws.String("orders-db-credentials"), mock.secretsCreated[0].Name)
	require.Len(t, mock.secretsTagged, 1)
	require.NotNil(t, result.Cluster.AttachedSecret())
	assert.Equal(t, "orders-db", result.Cluster.AttachedSecret().Target.TargetID)

	// A default security group and a derived subnet group were materialized.
	require.Len(t, mock.securityGroups, 1)
	assert.Equal(t, aws.String("orders-db-default"), mock.securityGroups[0].GroupName)
	require.Len(t, mock.subnetGroupsCreated, 1)
	assert.Equal(t, []string{"subnet-a", "subnet-b", "subnet-c"}, mock.subnetGroupsCreated[0].SubnetIds)

	// Live attributes wrapped into endpoints sharing the returned port.
	writer, err := result.Cluster.ClusterEndpoint()
	require.NoError(t, err)
	assert.Equal(t, "orders-db.cluster-abc.eu-central-1.rds.amazonaws.com:3306", writer.SocketAddress())
	reader, err := result.Cluster.ClusterReadEndpoint()
	require.NoError(t, err)
	assert.Equal(t, int32(3306), reader.Port())

	port, ok := result.Cluster.Connections().DefaultPort()
	assert.True(t, ok)
	assert.Equal(t, int32(3306), port)
}

func TestBuild_TooFewSubnetsReturnsUnsubmittedPlan(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a"})

	spec := &ClusterSpec{
		Engine:            EngineAuroraPostgreSQL,
		ClusterIdentifier: "orders-db",
		Placement:         VpcPlacement{VpcID: "vpc-1234"},
	}

	result, err := NewBuilder(spec, mock.client).Build(context.Background())
	require.NoError(t, err, "a flagged plan is reported through issues, not an error")
	require.NotNil(t, result.Plan)
	require.NotNil(t, result.Plan.Input, "the resource description stays inspectable")
	assert.Nil(t, result.Cluster)

	require.Len(t, result.Issues(), 1)
	assert.Equal(t, "placement", result.Issues()[0].Field)
	assert.Contains(t, result.Issues()[0].Message, "at least 2 subnets")

	// Nothing was materialized for the flagged plan.
	assert.Empty(t, mock.clustersCreated)
	assert.Empty(t, mock.secretsCreated)
	assert.Empty(t, mock.subnetGroupsCreated)
	assert.Empty(t, mock.securityGroups)
}

func TestBuild_CollectsMultipleIssues(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a"})

	spec := &ClusterSpec{
		Engine:            EngineAuroraMySQL,
		ClusterIdentifier: "orders-db",
		Placement:         VpcPlacement{VpcID: "vpc-1234"},
		Scaling: &ScalingSpec{
			MinCapacity: Capacity16,
			MaxCapacity: Capacity8,
		},
	}

	result, err := NewBuilder(spec, mock.client).Build(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result.Cluster)

	fields := make([]string, 0, len(result.Issues()))
	for _, issue := range result.Issues() {
		fields = append(fields, issue.Field)
	}
	assert.ElementsMatch(t, []string{"placement", "scaling"}, fields)
}

func TestPlan_ExplicitSubnetsSkipLookup(t *testing.T) {
	mock := newProvisioningMock(nil)
	mock.client.NetworkClient.DescribeSubnetsFunc = func(_ context.Context, _ *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
		t.Fatal("explicit subnet selection must not trigger a lookup")
		return nil, nil
	}

	spec := &ClusterSpec{
		Engine:            EngineAuroraMySQL,
		ClusterIdentifier: "orders-db",
		Placement: VpcPlacement{
			VpcID:     "vpc-1234",
			SubnetIDs: []string{"subnet-a", "subnet-b"},
		},
	}

	plan, err := NewBuilder(spec, mock.client).Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"subnet-a", "subnet-b"}, plan.SubnetIDs)
	assert.Empty(t, plan.Issues)
}

func TestPlan_Deterministic(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a", "subnet-b"})

	spec := &ClusterSpec{
		Engine:            EngineAuroraMySQL,
		ClusterIdentifier: "orders-db",
		Credentials:       CredentialSpec{Username: "app", Password: "s3cret"},
		Placement:         VpcPlacement{VpcID: "vpc-1234"},
		Scaling:           &ScalingSpec{MinCapacity: Capacity2, MaxCapacity: Capacity8},
	}

	builder := NewBuilder(spec, mock.client)
	first, err := builder.Plan(context.Background())
	require.NoError(t, err)
	second, err := builder.Plan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, mock.clustersCreated, "planning never submits")
	assert.Empty(t, mock.secretsCreated, "planning never creates secrets")
}

func TestPlan_NeverContainsSecretBackedPassword(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a", "subnet-b"})

	spec := &ClusterSpec{
		Engine:            EngineAuroraMySQL,
		ClusterIdentifier: "orders-db",
		Credentials: CredentialSpec{
			Username:  "app",
			SecretARN: "arn:aws:secretsmanager:eu-central-1:123456789012:secret:external",
		},
		Placement: VpcPlacement{VpcID: "vpc-1234"},
	}

	plan, err := NewBuilder(spec, mock.client).Plan(context.Background())
	require.NoError(t, err)
	assert.Nil(t, plan.Input.MasterUserPassword)
	assert.Equal(t, aws.String("app"), plan.Input.MasterUsername)
}

func TestBuild_CallerSuppliedGroupsAreReused(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a", "subnet-b"})

	spec := &ClusterSpec{
		Engine:            EngineAuroraPostgreSQL,
		ClusterIdentifier: "orders-db",
		Credentials:       CredentialSpec{Username: "app", Password: "s3cret"},
		Placement:         VpcPlacement{VpcID: "vpc-1234"},
		SecurityGroupIDs:  []string{"sg-custom"},
		SubnetGroupName:   "shared-subnets",
	}

	result, err := NewBuilder(spec, mock.client).Build(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Cluster)

	assert.Empty(t, mock.securityGroups, "supplied security groups suppress the default group")
	assert.Empty(t, mock.subnetGroupsCreated, "a supplied subnet group name is reused, not created")
	assert.Empty(t, mock.secretsTagged, "plaintext credentials leave nothing to attach")
	assert.Nil(t, result.Cluster.AttachedSecret())

	require.Len(t, mock.clustersCreated, 1)
	assert.Equal(t, aws.String("shared-subnets"), mock.clustersCreated[0].DBSubnetGroupName)
	assert.Equal(t, []string{"sg-custom"}, mock.clustersCreated[0].VpcSecurityGroupIds)
	assert.Equal(t, []string{"sg-custom"}, result.Cluster.Connections().SecurityGroupIDs())
}

func TestBuild_PortFallsBackToEngineDefault(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a", "subnet-b"})
	mock.client.ClusterClient.CreateDBClusterFunc = func(_ context.Context, params *rds.CreateDBClusterInput, _ ...func(*rds.Options)) (*rds.CreateDBClusterOutput, error) {
		return &rds.CreateDBClusterOutput{
			DBCluster: &rdstypes.DBCluster{
				DBClusterIdentifier: params.DBClusterIdentifier,
				Endpoint:            aws.String("orders-db.cluster-abc.eu-central-1.rds.amazonaws.com"),
				ReaderEndpoint:      aws.String("orders-db.cluster-ro-abc.eu-central-1.rds.amazonaws.com"),
			},
		}, nil
	}

	spec := &ClusterSpec{
		Engine:            EngineAuroraPostgreSQL,
		ClusterIdentifier: "orders-db",
		Credentials:       CredentialSpec{Username: "app", Password: "s3cret"},
		Placement:         VpcPlacement{VpcID: "vpc-1234"},
	}

	result, err := NewBuilder(spec, mock.client).Build(context.Background())
	require.NoError(t, err)

	writer, err := result.Cluster.ClusterEndpoint()
	require.NoError(t, err)
	assert.Equal(t, int32(5432), writer.Port())
}

func TestBuild_RetainPolicyTagsResources(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a", "subnet-b"})

	spec := &ClusterSpec{
		Engine:            EngineAuroraMySQL,
		ClusterIdentifier: "orders-db",
		Credentials:       CredentialSpec{Username: "app", Password: "s3cret"},
		Placement:         VpcPlacement{VpcID: "vpc-1234"},
		RemovalPolicy:     RemovalPolicyRetain,
	}

	_, err := NewBuilder(spec, mock.client).Build(context.Background())
	require.NoError(t, err)

	require.Len(t, mock.clustersCreated, 1)
	var retained bool
	for _, tag := range mock.clustersCreated[0].Tags {
		if aws.ToString(tag.Key) == "auroractl.io/retain" {
			retained = aws.ToString(tag.Value) == "true"
		}
	}
	assert.True(t, retained)
}

func TestBuild_ReappliedSubnetGroupIsReused(t *testing.T) {
	mock := newProvisioningMock([]string{"subnet-a", "subnet-b"})
	mock.client.ClusterClient.CreateDBSubnetGroupFunc = func(_ context.Context, _ *rds.CreateDBSubnetGroupInput, _ ...func(*rds.Options)) (*rds.CreateDBSubnetGroupOutput, error) {
		return nil, &smithy.GenericAPIError{Code: "DBSubnetGroupAlreadyExists", Message: "orders-db-subnets already exists"}
	}

	spec := &ClusterSpec{
		Engine:            EngineAuroraMySQL,
		ClusterIdentifier: "orders-db",
		Placement:         VpcPlacement{VpcID: "vpc-1234"},
	}

	result, err := NewBuilder(spec, mock.client).Build(context.Background())
	require.NoError(t, err, "an existing derived subnet group is reused, not an error")
	require.NotNil(t, result.Cluster)

	require.Len(t, mock.clustersCreated, 1)
	assert.Equal(t, aws.String("orders-db-subnets"), mock.clustersCreated[0].DBSubnetGroupName)
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
