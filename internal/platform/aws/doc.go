// Package aws wraps the AWS APIs that act as the provisioning engine for
// database clusters: RDS for the cluster and subnet group declarations, EC2
// for subnet placement and security groups, and Secrets Manager for managed
// credentials and rotation.
//
// The package exposes narrow per-service interfaces so that the cluster
// builder can be exercised logically in tests without any network round-trip.
// RealClient binds the interfaces to the AWS SDK; MockClient provides
// function-field fakes.
package aws
