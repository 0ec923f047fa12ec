// Package provisioning provides shared types, interfaces, and orchestration
// for building serverless database clusters.
//
// # Core Types
//
// Context carries configuration, state, the provisioning engine client and
// the observer. Phase defines a provisioning step with Name() and
// Provision() methods. State accumulates results from each phase (resolved
// plan, built cluster, rotation jobs).
//
// The standard pipeline runs validation, build and rotation phases in order.
package provisioning
