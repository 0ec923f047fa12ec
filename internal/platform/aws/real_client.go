package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// RealClient implements Client using the AWS SDK service clients.
type RealClient struct {
	rds     *rds.Client
	secrets *secretsmanager.Client
	ec2     *ec2.Client

	region          string
	endpoint        string
	accessKeyID     string
	secretAccessKey string
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpoint sets a custom endpoint, e.g. for LocalStack.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *RealClient) {
		c.endpoint = endpoint
	}
}

// WithStaticCredentials sets static credentials, e.g. for LocalStack.
func WithStaticCredentials(accessKeyID, secretAccessKey string) ClientOption {
	return func(c *RealClient) {
		c.accessKeyID = accessKeyID
		c.secretAccessKey = secretAccessKey
	}
}

// NewRealClient creates a RealClient for the given region using the default
// AWS credential chain.
func NewRealClient(ctx context.Context, region string, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{region: region}
	for _, opt := range opts {
		opt(c)
	}

	configOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if c.accessKeyID != "" && c.secretAccessKey != "" {
		configOpts = append(configOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.accessKeyID, c.secretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var endpoint *string
	if c.endpoint != "" {
		endpoint = aws.String(c.endpoint)
	}

	c.rds = rds.NewFromConfig(cfg, func(o *rds.Options) {
		o.BaseEndpoint = endpoint
	})
	c.secrets = secretsmanager.NewFromConfig(cfg, func(o *secretsmanager.Options) {
		o.BaseEndpoint = endpoint
	})
	c.ec2 = ec2.NewFromConfig(cfg, func(o *ec2.Options) {
		o.BaseEndpoint = endpoint
	})

	return c, nil
}

func (c *RealClient) Clusters() ClusterAPI {
	return c.rds
}

func (c *RealClient) Secrets() SecretsAPI {
	return c.secrets
}

func (c *RealClient) Network() NetworkAPI {
	return c.ec2
}
