package cluster

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	platformaws "github.com/auroractl/auroractl/internal/platform/aws"
	"github.com/auroractl/auroractl/internal/util/naming"
)

// RotationKind distinguishes the rotation application attached to a secret.
type RotationKind string

const (
	// RotationSingleUser rotates the secret's own credential in place.
	RotationSingleUser RotationKind = "single-user"
	// RotationMultiUser alternates between two users, using the cluster's
	// attached secret as the master credential during rotation.
	RotationMultiUser RotationKind = "multi-user"
)

// DefaultRotationCadence is applied when no cadence is specified.
const DefaultRotationCadence = 30 * 24 * time.Hour

// RotationJob binds a secret, a rotation application and a cluster target to
// a scheduled rotation cadence. The job carries the cluster's network
// placement so the rotation executor can reach the cluster.
type RotationJob struct {
	ID                string
	Kind              RotationKind
	SecretARN         string
	MasterSecretARN   string // set for multi-user jobs
	ClusterIdentifier string
	Placement         VpcPlacement
	Cadence           time.Duration
}

// SingleUserRotationOptions configures AddSingleUserRotation.
type SingleUserRotationOptions struct {
	// Cadence between rotations. DefaultRotationCadence when zero.
	Cadence time.Duration
}

// MultiUserRotationOptions configures AddMultiUserRotation.
type MultiUserRotationOptions struct {
	// SecretARN is the user secret to rotate. Required.
	SecretARN string

	// Cadence between rotations. DefaultRotationCadence when zero.
	Cadence time.Duration
}

// RotationManager attaches credential rotation jobs to clusters. It owns the
// per-cluster registry that enforces at most one single-user rotation per
// cluster and rejects duplicate multi-user job identifiers.
type RotationManager struct {
	secrets    platformaws.SecretsAPI
	registered map[string]struct{}
}

// NewRotationManager creates a RotationManager declaring rotations through
// the given secrets API.
func NewRotationManager(secrets platformaws.SecretsAPI) *RotationManager {
	return &RotationManager{
		secrets:    secrets,
		registered: make(map[string]struct{}),
	}
}

// AddSingleUserRotation attaches a single-user rotation job to the cluster's
// own attached secret. It fails with a PreconditionError when the cluster
// has no attached secret and with an AlreadyExistsError when a single-user
// job is already registered for the cluster.
func (m *RotationManager) AddSingleUserRotation(ctx context.Context, c *Cluster, opts SingleUserRotationOptions) (*RotationJob, error) {
	secret := c.AttachedSecret()
	if secret == nil {
		return nil, PreconditionError{
			Op:      "add single user rotation",
			Message: fmt.Sprintf("cluster %s has no attached secret; rotation requires a managed or attached secret", c.ClusterIdentifier()),
		}
	}

	id := naming.SingleUserRotation(c.ClusterIdentifier())
	if err := m.register(c.ClusterIdentifier(), id); err != nil {
		return nil, err
	}

	cadence := opts.Cadence
	if cadence == 0 {
		cadence = DefaultRotationCadence
	}

	if err := m.declareRotation(ctx, secret.ARN, cadence); err != nil {
		return nil, err
	}

	return &RotationJob{
		ID:                id,
		Kind:              RotationSingleUser,
		SecretARN:         secret.ARN,
		ClusterIdentifier: c.ClusterIdentifier(),
		Placement:         c.Placement(),
		Cadence:           cadence,
	}, nil
}

// AddMultiUserRotation attaches a multi-user rotation job for a
// caller-supplied user secret. The cluster's attached secret becomes the
// master secret used for credential escalation during rotation, so the
// cluster must have one. Each job requires a caller-supplied identifier;
// registering a second job under the same identifier fails with an
// AlreadyExistsError.
func (m *RotationManager) AddMultiUserRotation(ctx context.Context, c *Cluster, id string, opts MultiUserRotationOptions) (*RotationJob, error) {
	secret := c.AttachedSecret()
	if secret == nil {
		return nil, PreconditionError{
			Op:      "add multi user rotation",
			Message: fmt.Sprintf("cluster %s has no attached secret to use as the master secret", c.ClusterIdentifier()),
		}
	}
	if id == "" {
		return nil, fmt.Errorf("multi user rotation requires an identifier")
	}
	if opts.SecretARN == "" {
		return nil, fmt.Errorf("multi user rotation requires a user secret")
	}

	jobID := naming.MultiUserRotation(c.ClusterIdentifier(), id)
	if err := m.register(c.ClusterIdentifier(), jobID); err != nil {
		return nil, err
	}

	cadence := opts.Cadence
	if cadence == 0 {
		cadence = DefaultRotationCadence
	}

	if err := m.declareRotation(ctx, opts.SecretARN, cadence); err != nil {
		return nil, err
	}

	return &RotationJob{
		ID:                jobID,
		Kind:              RotationMultiUser,
		SecretARN:         opts.SecretARN,
		MasterSecretARN:   secret.ARN,
		ClusterIdentifier: c.ClusterIdentifier(),
		Placement:         c.Placement(),
		Cadence:           cadence,
	}, nil
}

// register records a job id in the per-cluster registry. Construction calls
// are single-threaded, so a plain set-membership check suffices.
func (m *RotationManager) register(clusterIdentifier, id string) error {
	key := fmt.Sprintf("%s/%s", clusterIdentifier, id)
	if _, exists := m.registered[key]; exists {
		return AlreadyExistsError{Resource: "rotation job", ID: id}
	}
	m.registered[key] = struct{}{}
	return nil
}

// declareRotation submits the rotation schedule for a secret.
func (m *RotationManager) declareRotation(ctx context.Context, secretARN string, cadence time.Duration) error {
	days := int64(cadence.Hours() / 24)
	if days < 1 {
		days = 1
	}

	_, err := m.secrets.RotateSecret(ctx, &secretsmanager.RotateSecretInput{
		SecretId: aws.String(secretARN),
		RotationRules: &smtypes.RotationRulesType{
			AutomaticallyAfterDays: aws.Int64(days),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to declare rotation for secret %s: %w", secretARN, err)
	}
	return nil
}
