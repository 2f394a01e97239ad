package fighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPhysicsState(t *testing.T) {
	p := NewPhysicsState(0.5)

	assert.Equal(t, 0.5, p.Gravity)
	assert.True(t, p.Falling)
	assert.Zero(t, p.VerticalVelocity)
}

func TestPhysicsState_Advance(t *testing.T) {
	tests := []struct {
		name     string
		falling  bool
		velocity float64
		want     float64
	}{
		{name: "falling from rest", falling: true, velocity: 0, want: 0.5},
		{name: "falling while rising", falling: true, velocity: -13, want: -12.5},
		{name: "falling keeps accelerating", falling: true, velocity: 40, want: 40.5},
		{name: "grounded zeroes velocity", falling: false, velocity: 3, want: 0},
		{name: "grounded zeroes upward velocity", falling: false, velocity: -2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPhysicsState(0.5)
			p.Falling = tt.falling
			p.VerticalVelocity = tt.velocity

			p.Advance()

			assert.Equal(t, tt.want, p.VerticalVelocity)
			assert.Equal(t, tt.velocity, p.PreviousVerticalVelocity)
			assert.Equal(t, tt.falling, p.WasFalling)
		})
	}
}

func TestPhysicsState_AdvanceHasNoTerminalVelocity(t *testing.T) {
	p := NewPhysicsState(0.5)
	for i := 0; i < 200; i++ {
		p.Advance()
	}
	assert.Equal(t, 100.0, p.VerticalVelocity)
}
