package fighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_Overlaps(t *testing.T) {
	a := Shape{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Shape
		want bool
	}{
		{name: "inside", b: Shape{X: 2, Y: 2, W: 2, H: 2}, want: true},
		{name: "partial", b: Shape{X: 9, Y: 9, W: 10, H: 10}, want: true},
		{name: "touching right edge", b: Shape{X: 10, Y: 0, W: 5, H: 10}, want: false},
		{name: "touching bottom edge", b: Shape{X: 0, Y: 10, W: 10, H: 5}, want: false},
		{name: "apart", b: Shape{X: 50, Y: 50, W: 5, H: 5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestPlayer_ResolveAxisAtRest(t *testing.T) {
	p := newGroundedPlayer(0)
	before := p.Body()

	unaltered, err := p.ResolveAxis(0, AxisY, ShapeSet{ground})

	require.NoError(t, err)
	assert.True(t, unaltered)
	assert.Equal(t, before, p.Body())
}

func TestPlayer_ResolveAxisLanding(t *testing.T) {
	p := newTestPlayer(0, 57)

	unaltered, err := p.ResolveAxis(5, AxisY, ShapeSet{ground})

	require.NoError(t, err)
	assert.False(t, unaltered)
	assert.Equal(t, 60.0, p.Body().Y)
	assert.Equal(t, 60.0, p.AttackShape(Left).Y)
	assert.Equal(t, 60.0, p.AttackShape(Right).Y)
	assert.False(t, ShapeSet{ground}.Collides(p.Body()))
}

func TestPlayer_ResolveAxisHeadBump(t *testing.T) {
	ceiling := Shape{X: -1000, Y: 0, W: 2000, H: 20}
	p := newTestPlayer(0, 25)
	p.Physics.VerticalVelocity = -10

	unaltered, err := p.ResolveAxis(-10, AxisY, ShapeSet{ceiling})

	require.NoError(t, err)
	assert.False(t, unaltered)
	assert.Equal(t, 20.0, p.Body().Y)
	assert.Zero(t, p.Physics.VerticalVelocity)
}

func TestPlayer_ResolveAxisDownwardKeepsVelocity(t *testing.T) {
	p := newTestPlayer(0, 57)
	p.Physics.VerticalVelocity = 5

	_, err := p.ResolveAxis(5, AxisY, ShapeSet{ground})

	require.NoError(t, err)
	assert.Equal(t, 5.0, p.Physics.VerticalVelocity)
}

func TestPlayer_ResolveAxisHorizontal(t *testing.T) {
	wall := Shape{X: 200, Y: 0, W: 20, H: 200}

	t.Run("stops at wall moving right", func(t *testing.T) {
		p := newGroundedPlayer(170)

		unaltered, err := p.ResolveAxis(15, AxisX, ShapeSet{wall, ground})

		require.NoError(t, err)
		assert.False(t, unaltered)
		assert.Equal(t, 180.0, p.Body().X)
		assert.Equal(t, 160.0, p.AttackShape(Left).X)
		assert.Equal(t, 180.0, p.AttackShape(Right).X)
	})

	t.Run("stops at wall moving left", func(t *testing.T) {
		p := newGroundedPlayer(230)

		unaltered, err := p.ResolveAxis(-15, AxisX, ShapeSet{wall, ground})

		require.NoError(t, err)
		assert.False(t, unaltered)
		assert.Equal(t, 220.0, p.Body().X)
	})

	t.Run("free movement", func(t *testing.T) {
		p := newGroundedPlayer(0)

		unaltered, err := p.ResolveAxis(5, AxisX, ShapeSet{wall, ground})

		require.NoError(t, err)
		assert.True(t, unaltered)
		assert.Equal(t, 5.0, p.Body().X)
	})
}

func TestPlayer_ResolveAxisNeverLeavesOverlap(t *testing.T) {
	obstacles := ShapeSet{
		ground,
		{X: 100, Y: 40, W: 30, H: 60},
		{X: -60, Y: 0, W: 20, H: 100},
		{X: 0, Y: -30, W: 80, H: 10},
	}

	for _, axis := range []Axis{AxisX, AxisY} {
		for _, v := range []float64{-17, -9.5, -3, -0.5, 0.5, 3, 9.5, 17} {
			for x := -30.0; x <= 120; x += 7.5 {
				p := newTestPlayer(x, 20)
				if obstacles.Collides(p.Body()) {
					continue
				}
				_, err := p.ResolveAxis(v, axis, obstacles)
				require.NoError(t, err)
				assert.False(t, obstacles.Collides(p.Body()),
					"axis %s velocity %v start x %v ended at %+v", axis, v, x, p.Body())
			}
		}
	}
}

func TestPlayer_ResolveAxisEnclosedBody(t *testing.T) {
	box := Shape{X: -500, Y: -500, W: 1000, H: 1000}
	p := newTestPlayer(0, 0)
	before := p.Body()
	beforeLeft := p.AttackShape(Left)

	unaltered, err := p.ResolveAxis(4, AxisY, ShapeSet{box})

	assert.False(t, unaltered)
	require.ErrorIs(t, err, ErrUnresolvedOverlap)
	assert.Equal(t, before, p.Body())
	assert.Equal(t, beforeLeft, p.AttackShape(Left))
}

func TestPlayer_ResolveAxisTunnelsThroughThinObstacle(t *testing.T) {
	thin := Shape{X: 40, Y: 0, W: 2, H: 200}
	p := newGroundedPlayer(0)

	unaltered, err := p.ResolveAxis(50, AxisX, ShapeSet{thin})

	require.NoError(t, err)
	assert.True(t, unaltered)
	assert.Equal(t, 50.0, p.Body().X)
}

func TestPlayer_ResolveAxisPanicsOnUnsizedBody(t *testing.T) {
	p := newTestPlayer(0, 0)
	p.body = Shape{}

	assert.Panics(t, func() {
		_, _ = p.ResolveAxis(1, AxisX, ShapeSet{})
	})
}

func TestPlayer_CheckFalling(t *testing.T) {
	t.Run("nothing below starts falling", func(t *testing.T) {
		p := newTestPlayer(0, 0)
		p.Physics.Falling = false

		p.CheckFalling(ShapeSet{ground})

		assert.True(t, p.Physics.Falling)
	})

	t.Run("ground below clamps downward velocity and lands", func(t *testing.T) {
		p := newTestPlayer(0, 60)
		p.Physics.VerticalVelocity = 5

		p.CheckFalling(ShapeSet{ground})

		assert.Zero(t, p.Physics.VerticalVelocity)
		assert.False(t, p.Physics.Falling)
	})

	t.Run("ground below keeps upward velocity airborne", func(t *testing.T) {
		p := newTestPlayer(0, 60)
		p.Physics.VerticalVelocity = -13

		p.CheckFalling(ShapeSet{ground})

		assert.Equal(t, -13.0, p.Physics.VerticalVelocity)
		assert.True(t, p.Physics.Falling)
	})

	t.Run("probe does not move the body", func(t *testing.T) {
		p := newTestPlayer(0, 60)
		before := p.Body()

		p.CheckFalling(ShapeSet{ground})

		assert.Equal(t, before, p.Body())
	})
}

func TestPlayer_GetPositionJump(t *testing.T) {
	p := newGroundedPlayer(0)
	obstacles := ShapeSet{ground}

	p.HandleKeyDown(keyUp)
	require.Equal(t, -13.0, p.Physics.VerticalVelocity)
	require.True(t, p.Physics.Falling)

	require.NoError(t, p.GetPosition(obstacles))

	// Gravity is applied before the move, so this tick moves by -12.5.
	assert.Equal(t, -12.5, p.Physics.VerticalVelocity)
	assert.Equal(t, -13.0, p.Physics.PreviousVerticalVelocity)
	assert.Equal(t, 47.5, p.Body().Y)
	assert.True(t, p.Physics.Falling)
}

func TestPlayer_JumpReturnsToGround(t *testing.T) {
	p := newGroundedPlayer(0)
	obstacles := ShapeSet{ground}

	p.HandleKeyDown(keyUp)
	landed := false
	for tick := 0; tick < 200; tick++ {
		require.NoError(t, p.GetPosition(obstacles))
		require.False(t, obstacles.Collides(p.Body()))
		if !p.Physics.Falling {
			landed = true
			break
		}
	}

	require.True(t, landed)
	assert.Zero(t, p.Physics.VerticalVelocity)
	assert.InDelta(t, 60.0, p.Body().Y, 1)
}

func TestPlayer_GetPositionClearsHorizontalVelocity(t *testing.T) {
	wall := Shape{X: 30, Y: 0, W: 20, H: 200}

	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		{name: "free", start: -100, want: -95},
		{name: "blocked", start: 8, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newGroundedPlayer(tt.start)
			p.xVel = 5

			require.NoError(t, p.GetPosition(ShapeSet{ground, wall}))

			assert.Zero(t, p.HorizontalVelocity())
			assert.Equal(t, tt.want, p.Body().X)
		})
	}
}

func TestPlayer_UpdateMovesAtConstantSpeed(t *testing.T) {
	p := newGroundedPlayer(0)
	obstacles := ShapeSet{ground}
	p.HandleKeyDown(keyRight)

	for tick := 1; tick <= 4; tick++ {
		require.NoError(t, p.Update(0, obstacles))
		assert.Equal(t, float64(5*tick), p.Body().X)
		assert.Zero(t, p.HorizontalVelocity())
	}

	p.HandleKeyUp(keyRight)
	require.NoError(t, p.Update(0, obstacles))
	assert.Equal(t, 20.0, p.Body().X)
}

func TestPlayer_GetPositionReportsEnclosure(t *testing.T) {
	box := Shape{X: -500, Y: -500, W: 1000, H: 1000}
	p := newTestPlayer(0, 0)
	p.xVel = 3

	err := p.GetPosition(ShapeSet{box})

	require.ErrorIs(t, err, ErrUnresolvedOverlap)
	assert.Zero(t, p.HorizontalVelocity())
}
