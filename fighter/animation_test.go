package fighter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_AdjustFramesInitialWalk(t *testing.T) {
	p := newGroundedPlayer(0)

	p.AdjustFrames(0)

	assert.Equal(t, Frame{Set: Walk, Direction: Right, Index: 0}, p.Frame())
}

func TestPlayer_AdjustFramesJumpSets(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		want     FrameSetID
	}{
		{name: "rising", velocity: -4, want: JumpAscend},
		{name: "apex", velocity: 0, want: JumpAscend},
		{name: "descending", velocity: 4, want: JumpDescend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(0, 0)
			p.HandleKeyDown(keyLeft)
			p.Physics.VerticalVelocity = tt.velocity

			p.AdjustFrames(0)
			p.AdjustFrames(time.Second)

			assert.Equal(t, Frame{Set: tt.want, Direction: Left, Index: 0}, p.Frame())
		})
	}
}

func TestPlayer_AdjustFramesWalkCycleIsTimeGated(t *testing.T) {
	p := newGroundedPlayer(0)
	p.HandleKeyDown(keyRight)

	p.AdjustFrames(0)
	require.Equal(t, 1, p.Frame().Index)

	p.AdjustFrames(50 * time.Millisecond)
	assert.Equal(t, 1, p.Frame().Index)

	p.AdjustFrames(100 * time.Millisecond)
	assert.Equal(t, 1, p.Frame().Index, "interval must be exceeded, not reached")

	p.AdjustFrames(101 * time.Millisecond)
	assert.Equal(t, 2, p.Frame().Index)

	for i := 0; i < 4; i++ {
		p.AdjustFrames(time.Duration(202+101*i) * time.Millisecond)
	}
	assert.Equal(t, 0, p.Frame().Index, "walk cycle wraps after six frames")
}

func TestPlayer_AdjustFramesIdleHoldsFrame(t *testing.T) {
	p := newGroundedPlayer(0)
	p.AdjustFrames(0)

	p.AdjustFrames(time.Second)
	p.AdjustFrames(2 * time.Second)

	assert.Equal(t, Frame{Set: Walk, Direction: Right, Index: 0}, p.Frame())
}

func TestPlayer_AdjustFramesDirectionChangeRedraws(t *testing.T) {
	p := newGroundedPlayer(0)
	p.AdjustFrames(0)

	p.HandleKeyDown(keyLeft)
	p.AdjustFrames(time.Millisecond)

	assert.Equal(t, Frame{Set: Walk, Direction: Left, Index: 1}, p.Frame())
}

func TestPlayer_AdjustFramesLandingResumesMidCycle(t *testing.T) {
	p := newTestPlayer(0, 0)
	p.HandleKeyDown(keyRight)
	p.Physics.VerticalVelocity = 6
	p.AdjustFrames(0)
	require.Equal(t, JumpDescend, p.Frame().Set)

	p.Physics.Falling = false
	p.Physics.VerticalVelocity = 0
	p.AdjustFrames(time.Second)

	assert.Equal(t, Frame{Set: Walk, Direction: Right, Index: 3}, p.Frame())
}

func TestPlayer_AdjustFramesLandingIdle(t *testing.T) {
	p := newTestPlayer(0, 0)
	p.AdjustFrames(0)

	p.Physics.Falling = false
	p.AdjustFrames(time.Second)

	assert.Equal(t, Frame{Set: Walk, Direction: Right, Index: 2}, p.Frame())
}

func TestPlayer_AttackPlaysUntilFirstFrameIsDrawn(t *testing.T) {
	p := newGroundedPlayer(0)
	p.AdjustFrames(0)
	p.HandleKeyDown(keyDown)
	require.True(t, p.Attacking())

	wantIndex := []int{1, 2, 0}
	for i, want := range wantIndex {
		p.AdjustFrames(time.Duration(i+1) * time.Millisecond)
		frame, at := p.DrawTarget()

		assert.Equal(t, Frame{Set: Attack, Direction: Right, Index: want}, frame)
		if want == 0 {
			assert.Equal(t, p.AttackShape(Right), at)
			assert.False(t, p.Attacking(), "first attack frame ends the attack")
		} else {
			assert.Equal(t, p.Body(), at)
			assert.True(t, p.Attacking())
		}
	}
}

func TestPlayer_DrawTargetUsesFacingAttackShape(t *testing.T) {
	p := newGroundedPlayer(0)
	p.HandleKeyDown(keyLeft)
	p.HandleKeyUp(keyLeft)
	p.current = FrameSet{Attack, Left}
	p.frameIndex = 0
	p.attacking = true

	frame, at := p.DrawTarget()

	assert.Equal(t, Attack, frame.Set)
	assert.Equal(t, p.AttackShape(Left), at)
	assert.NotEqual(t, p.AttackShape(Right), at)
	assert.False(t, p.Attacking())
}

func TestNewPlayerRejectsEmptyFrameSet(t *testing.T) {
	params := testParams(0, 0)
	params.Frames[Attack] = 0

	assert.PanicsWithValue(t, "fighter: frame set attack has no frames", func() {
		NewPlayer(params)
	})
}

func TestNewPlayerRejectsBadParams(t *testing.T) {
	t.Run("unsized body", func(t *testing.T) {
		params := testParams(0, 0)
		params.Body.W = 0
		assert.Panics(t, func() { NewPlayer(params) })
	})

	t.Run("zero fps", func(t *testing.T) {
		params := testParams(0, 0)
		params.AnimateFPS = 0
		assert.Panics(t, func() { NewPlayer(params) })
	})
}
