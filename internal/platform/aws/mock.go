package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// MockClient is a mock implementation of Client.
type MockClient struct {
	ClusterClient *MockClusterAPI
	SecretsClient *MockSecretsAPI
	NetworkClient *MockNetworkAPI
}

// NewMockClient returns a MockClient with empty mocks for every API surface.
func NewMockClient() *MockClient {
	return &MockClient{
		ClusterClient: &MockClusterAPI{},
		SecretsClient: &MockSecretsAPI{},
		NetworkClient: &MockNetworkAPI{},
	}
}

func (m *MockClient) Clusters() ClusterAPI {
	return m.ClusterClient
}

func (m *MockClient) Secrets() SecretsAPI {
	return m.SecretsClient
}

func (m *MockClient) Network() NetworkAPI {
	return m.NetworkClient
}

type MockClusterAPI struct {
	CreateDBClusterFunc     func(ctx context.Context, params *rds.CreateDBClusterInput, optFns ...func(*rds.Options)) (*rds.CreateDBClusterOutput, error)
	CreateDBSubnetGroupFunc func(ctx context.Context, params *rds.CreateDBSubnetGroupInput, optFns ...func(*rds.Options)) (*rds.CreateDBSubnetGroupOutput, error)
}

func (m *MockClusterAPI) CreateDBCluster(ctx context.Context, params *rds.CreateDBClusterInput, optFns ...func(*rds.Options)) (*rds.CreateDBClusterOutput, error) {
	return m.CreateDBClusterFunc(ctx, params, optFns...)
}

func (m *MockClusterAPI) CreateDBSubnetGroup(ctx context.Context, params *rds.CreateDBSubnetGroupInput, optFns ...func(*rds.Options)) (*rds.CreateDBSubnetGroupOutput, error) {
	return m.CreateDBSubnetGroupFunc(ctx, params, optFns...)
}

type MockSecretsAPI struct {
	CreateSecretFunc      func(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
	GetRandomPasswordFunc func(ctx context.Context, params *secretsmanager.GetRandomPasswordInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetRandomPasswordOutput, error)
	GetSecretValueFunc    func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	RotateSecretFunc      func(ctx context.Context, params *secretsmanager.RotateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.RotateSecretOutput, error)
	TagResourceFunc       func(ctx context.Context, params *secretsmanager.TagResourceInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.TagResourceOutput, error)
}

func (m *MockSecretsAPI) CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error) {
	return m.CreateSecretFunc(ctx, params, optFns...)
}

func (m *MockSecretsAPI) GetRandomPassword(ctx context.Context, params *secretsmanager.GetRandomPasswordInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetRandomPasswordOutput, error) {
	return m.GetRandomPasswordFunc(ctx, params, optFns...)
}

func (m *MockSecretsAPI) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	return m.GetSecretValueFunc(ctx, params, optFns...)
}

func (m *MockSecretsAPI) RotateSecret(ctx context.Context, params *secretsmanager.RotateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.RotateSecretOutput, error) {
	return m.RotateSecretFunc(ctx, params, optFns...)
}

func (m *MockSecretsAPI) TagResource(ctx context.Context, params *secretsmanager.TagResourceInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.TagResourceOutput, error) {
	return m.TagResourceFunc(ctx, params, optFns...)
}

type MockNetworkAPI struct {
	DescribeSubnetsFunc     func(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	CreateSecurityGroupFunc func(ctx context.Context, params *ec2.CreateSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.CreateSecurityGroupOutput, error)
}

func (m *MockNetworkAPI) DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	return m.DescribeSubnetsFunc(ctx, params, optFns...)
}

func (m *MockNetworkAPI) CreateSecurityGroup(ctx context.Context, params *ec2.CreateSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.CreateSecurityGroupOutput, error) {
	return m.CreateSecurityGroupFunc(ctx, params, optFns...)
}
