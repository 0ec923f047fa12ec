// Package cluster provides the core resource model and binding logic for
// provisioning serverless database clusters on Amazon Aurora.
//
// # Architecture
//
// The package is organized into focused modules:
//
//   - spec.go: Declarative cluster specification and engine identity
//   - scaling.go: Capacity range and auto-pause rendering
//   - credentials.go: Credential resolution and managed secret creation
//   - resolvers.go: Subnet, subnet group and security group resolvers
//   - builder.go: Orchestration of all resolvers into one resource description
//   - cluster.go: The owned cluster resource and the shared capability interface
//   - imported.go: Clusters adopted from externally supplied attributes
//   - rotation.go: Single-user and multi-user credential rotation jobs
//   - endpoint.go: Network endpoint value type
//
// # Binding Flow
//
// 1. Subnet placement is resolved from the VPC and selection (>= 2 subnets required)
// 2. Subnet group, credentials, security groups and scaling are resolved or defaulted
// 3. The assembled resource description is submitted to the provisioning engine
// 4. Returned live attributes are wrapped into endpoints and a connections descriptor
// 5. A resolved managed secret is attached to the resulting cluster
//
// # Key Design Principles
//
//   - Collect, don't abort: spec-level problems are gathered as ConfigurationError
//     values on the build result so callers see all of them in one pass
//   - Explicit resolvers: every implicit default (subnet group, security group,
//     secret) is a separately testable function returning the caller-supplied
//     value or a freshly constructed default
//   - Explicit failure: capability accessors on imported clusters return a
//     PreconditionError instead of degrading to a zero value
package cluster
