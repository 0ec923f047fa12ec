// Package config loads and validates the declarative YAML configuration for
// a serverless database cluster.
//
// The configuration file describes a single cluster: engine identity,
// credentials, network placement, scaling behavior and rotation jobs. Load
// parses and validates in one step; LoadWithoutValidation exists for tooling
// that needs to read partially valid configs. ToClusterSpec converts a
// validated configuration into the cluster package's build input.
package config
