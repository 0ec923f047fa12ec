package provisioning

import (
	"context"

	"github.com/auroractl/auroractl/internal/cluster"
	"github.com/auroractl/auroractl/internal/config"
	platformaws "github.com/auroractl/auroractl/internal/platform/aws"
)

// State holds the shared results of provisioning phases. It is progressively
// populated as each phase completes and is passed to subsequent phases that
// need earlier results.
type State struct {
	// Validation results (populated by the validation phase)
	Spec *cluster.ClusterSpec

	// Build results (populated by the build phase)
	Plan    *cluster.Plan
	Cluster *cluster.Cluster
	Issues  []cluster.ConfigurationError

	// Rotation results (populated by the rotation phase)
	RotationJobs []*cluster.RotationJob
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Client   platformaws.Client
	Observer Observer
}

// NewContext creates a new provisioning context with a console observer.
func NewContext(ctx context.Context, cfg *config.Config, client platformaws.Client) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Client:   client,
		Observer: NewConsoleObserver(),
	}
}
