package provisioning

import (
	"fmt"
	"time"

	"github.com/auroractl/auroractl/internal/cluster"
)

// ValidationPhase implements the Phase interface for pre-flight validation.
// It validates the configuration and converts it into the cluster spec the
// build phase consumes.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (p *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface.
func (p *ValidationPhase) Provision(ctx *Context) error {
	if err := ctx.Config.Validate(); err != nil {
		return err
	}

	spec := ctx.Config.ToClusterSpec()
	if err := spec.Validate(); err != nil {
		return err
	}

	ctx.State.Spec = spec
	return nil
}

// BuildPhase implements the Phase interface for cluster materialization. It
// resolves the spec, submits it to the provisioning engine and records the
// outcome on the shared state. A plan flagged with configuration issues is
// kept on the state and fails the phase without submitting anything.
type BuildPhase struct{}

// NewBuildPhase creates a new build phase.
func NewBuildPhase() *BuildPhase {
	return &BuildPhase{}
}

// Name implements the Phase interface.
func (p *BuildPhase) Name() string {
	return "build"
}

// Provision implements the Phase interface.
func (p *BuildPhase) Provision(ctx *Context) error {
	spec := ctx.State.Spec
	if spec == nil {
		return fmt.Errorf("no cluster spec on state: validation phase must run first")
	}

	LogResourceCreating(ctx.Observer, p.Name(), "cluster", spec.ClusterIdentifier)

	result, err := cluster.NewBuilder(spec, ctx.Client).Build(ctx)
	if err != nil {
		recordBuild("error")
		return err
	}

	ctx.State.Plan = result.Plan
	ctx.State.Issues = result.Issues()

	if len(result.Issues()) > 0 {
		for _, issue := range result.Issues() {
			recordConfigIssue()
			ctx.Observer.Event(Event{
				Type:    EventValidationError,
				Phase:   p.Name(),
				Message: issue.Error(),
				Fields:  map[string]string{"field": issue.Field},
			})
		}
		recordBuild("invalid")
		return fmt.Errorf("%d configuration issues, nothing submitted", len(result.Issues()))
	}

	ctx.State.Cluster = result.Cluster
	recordBuild("success")
	LogResourceCreated(ctx.Observer, p.Name(), "cluster", spec.ClusterIdentifier, result.Cluster.ClusterIdentifier())
	return nil
}

// RotationPhase implements the Phase interface for attaching credential
// rotation jobs to the built cluster. The phase is a no-op when the
// configuration declares no rotation.
type RotationPhase struct{}

// NewRotationPhase creates a new rotation phase.
func NewRotationPhase() *RotationPhase {
	return &RotationPhase{}
}

// Name implements the Phase interface.
func (p *RotationPhase) Name() string {
	return "rotation"
}

// Provision implements the Phase interface.
func (p *RotationPhase) Provision(ctx *Context) error {
	rotation := ctx.Config.Rotation
	if rotation == nil {
		return nil
	}
	if ctx.State.Cluster == nil {
		return fmt.Errorf("no cluster on state: build phase must run first")
	}

	manager := cluster.NewRotationManager(ctx.Client.Secrets())

	if rotation.SingleUser {
		job, err := manager.AddSingleUserRotation(ctx, ctx.State.Cluster, cluster.SingleUserRotationOptions{
			Cadence: time.Duration(rotation.CadenceDays) * 24 * time.Hour,
		})
		if err != nil {
			return err
		}
		ctx.State.RotationJobs = append(ctx.State.RotationJobs, job)
		recordRotationJob(string(job.Kind))
		LogResourceCreated(ctx.Observer, p.Name(), "rotation job", job.ID, job.SecretARN)
	}

	for _, mu := range rotation.MultiUser {
		job, err := manager.AddMultiUserRotation(ctx, ctx.State.Cluster, mu.ID, cluster.MultiUserRotationOptions{
			SecretARN: mu.SecretARN,
			Cadence:   time.Duration(mu.CadenceDays) * 24 * time.Hour,
		})
		if err != nil {
			return err
		}
		ctx.State.RotationJobs = append(ctx.State.RotationJobs, job)
		recordRotationJob(string(job.Kind))
		LogResourceCreated(ctx.Observer, p.Name(), "rotation job", job.ID, job.SecretARN)
	}

	return nil
}
