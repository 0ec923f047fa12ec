package provisioning

import (
	"fmt"
	"time"
)

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// Pipeline executes an ordered list of provisioning phases.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline from the given phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// NewApplyPipeline creates the standard pipeline for applying a cluster
// configuration: validation, build, rotation.
func NewApplyPipeline() *Pipeline {
	return NewPipeline(
		NewValidationPhase(),
		NewBuildPhase(),
		NewRotationPhase(),
	)
}

// Run executes all phases sequentially, stopping at the first failure.
func (p *Pipeline) Run(ctx *Context) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(p.Phases))

	for i, phase := range p.Phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(p.Phases))

		LogPhaseStart(ctx.Observer, name)

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, name, err)
			recordPhaseDuration(phase.Name(), "failure", time.Since(phaseStart))
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		recordPhaseDuration(phase.Name(), "success", time.Since(phaseStart))
		LogPhaseComplete(ctx.Observer, name, time.Since(phaseStart))
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
