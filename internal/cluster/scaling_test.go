package cluster

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalingSpec_Render_CapacityRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    ScalingSpec
		wantErr bool
	}{
		{
			name: "min below max",
			spec: ScalingSpec{MinCapacity: Capacity2, MaxCapacity: Capacity8},
		},
		{
			name: "min equals max",
			spec: ScalingSpec{MinCapacity: Capacity16, MaxCapacity: Capacity16},
		},
		{
			name:    "min above max",
			spec:    ScalingSpec{MinCapacity: Capacity64, MaxCapacity: Capacity8},
			wantErr: true,
		},
		{
			name: "only min",
			spec: ScalingSpec{MinCapacity: Capacity2},
		},
		{
			name: "only max",
			spec: ScalingSpec{MaxCapacity: Capacity2},
		},
		{
			name: "neither capacity",
			spec: ScalingSpec{},
		},
		{
			name:    "invalid min unit",
			spec:    ScalingSpec{MinCapacity: Capacity(3), MaxCapacity: Capacity8},
			wantErr: true,
		},
		{
			name:    "invalid max unit",
			spec:    ScalingSpec{MinCapacity: Capacity2, MaxCapacity: Capacity(100)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := tt.spec.Render()
			if tt.wantErr {
				require.Error(t, err)
				var configErr ConfigurationError
				assert.True(t, errors.As(err, &configErr), "error should be a ConfigurationError, got %T", err)
				assert.Nil(t, rendered)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, rendered)
		})
	}
}

func TestScalingSpec_Render_Capacities(t *testing.T) {
	rendered, err := (&ScalingSpec{MinCapacity: Capacity2, MaxCapacity: Capacity8}).Render()
	require.NoError(t, err)

	assert.Equal(t, aws.Int32(2), rendered.MinCapacity)
	assert.Equal(t, aws.Int32(8), rendered.MaxCapacity)
	assert.Equal(t, aws.Bool(true), rendered.AutoPause, "absent auto-pause renders as enabled")
	assert.Nil(t, rendered.SecondsUntilAutoPause)
}

func TestScalingSpec_Render_AutoPause(t *testing.T) {
	duration := func(d time.Duration) *time.Duration { return &d }

	tests := []struct {
		name        string
		autoPause   *time.Duration
		wantPause   *bool
		wantSeconds *int32
	}{
		{
			name:      "absent enables pausing with no explicit delay",
			wantPause: aws.Bool(true),
		},
		{
			name:      "zero disables pausing",
			autoPause: duration(0),
			wantPause: aws.Bool(false),
		},
		{
			name:        "ten minutes",
			autoPause:   duration(10 * time.Minute),
			wantPause:   aws.Bool(true),
			wantSeconds: aws.Int32(600),
		},
		{
			name:        "one hour",
			autoPause:   duration(time.Hour),
			wantPause:   aws.Bool(true),
			wantSeconds: aws.Int32(3600),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := (&ScalingSpec{AutoPause: tt.autoPause}).Render()
			require.NoError(t, err)

			assert.Equal(t, tt.wantPause, rendered.AutoPause)
			assert.Equal(t, tt.wantSeconds, rendered.SecondsUntilAutoPause)
		})
	}
}
