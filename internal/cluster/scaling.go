package cluster

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// Capacity is a discrete processing/memory allocation step for auto-scaling
// compute, in Aurora capacity units.
type Capacity int32

const (
	Capacity1   Capacity = 1
	Capacity2   Capacity = 2
	Capacity8   Capacity = 8
	Capacity16  Capacity = 16
	Capacity32  Capacity = 32
	Capacity64  Capacity = 64
	Capacity128 Capacity = 128
	Capacity192 Capacity = 192
	Capacity256 Capacity = 256
	Capacity384 Capacity = 384
)

// ValidCapacities contains the closed set of capacity units the provider
// accepts. Any other value is invalid input.
var ValidCapacities = map[Capacity]bool{
	Capacity1:   true,
	Capacity2:   true,
	Capacity8:   true,
	Capacity16:  true,
	Capacity32:  true,
	Capacity64:  true,
	Capacity128: true,
	Capacity192: true,
	Capacity256: true,
	Capacity384: true,
}

// ScalingSpec configures the capacity range and auto-pause behavior of a
// serverless cluster. Zero capacities mean "provider default". AutoPause
// semantics: nil leaves pausing enabled with the provider's default delay, a
// zero duration disables pausing, any other duration enables pausing after
// that idle time.
type ScalingSpec struct {
	MinCapacity Capacity
	MaxCapacity Capacity
	AutoPause   *time.Duration
}

// Render validates the spec and renders it into the provisioning engine's
// scaling configuration document. Absent fields are passed through so the
// provider selects its defaults.
func (s *ScalingSpec) Render() (*rdstypes.ScalingConfiguration, error) {
	if s.MinCapacity != 0 && !ValidCapacities[s.MinCapacity] {
		return nil, ConfigurationError{
			Field:   "scaling.min_capacity",
			Message: fmt.Sprintf("invalid capacity %d: must be one of %v", s.MinCapacity, capacityValues()),
		}
	}
	if s.MaxCapacity != 0 && !ValidCapacities[s.MaxCapacity] {
		return nil, ConfigurationError{
			Field:   "scaling.max_capacity",
			Message: fmt.Sprintf("invalid capacity %d: must be one of %v", s.MaxCapacity, capacityValues()),
		}
	}
	if s.MinCapacity != 0 && s.MaxCapacity != 0 && s.MinCapacity > s.MaxCapacity {
		return nil, ConfigurationError{
			Field:   "scaling",
			Message: fmt.Sprintf("maximum capacity %d must be greater than or equal to minimum capacity %d", s.MaxCapacity, s.MinCapacity),
		}
	}

	rendered := &rdstypes.ScalingConfiguration{}
	if s.MinCapacity != 0 {
		rendered.MinCapacity = aws.Int32(int32(s.MinCapacity))
	}
	if s.MaxCapacity != 0 {
		rendered.MaxCapacity = aws.Int32(int32(s.MaxCapacity))
	}

	switch {
	case s.AutoPause == nil:
		// Absent still renders the flag: pausing enabled, delay left to the
		// provider.
		rendered.AutoPause = aws.Bool(true)
	case *s.AutoPause == 0:
		rendered.AutoPause = aws.Bool(false)
	default:
		rendered.AutoPause = aws.Bool(true)
		rendered.SecondsUntilAutoPause = aws.Int32(int32(s.AutoPause.Seconds()))
	}

	return rendered, nil
}

// capacityValues returns the valid capacities sorted for error messages.
func capacityValues() []Capacity {
	ordered := []Capacity{
		Capacity1, Capacity2, Capacity8, Capacity16, Capacity32,
		Capacity64, Capacity128, Capacity192, Capacity256, Capacity384,
	}
	return ordered
}
