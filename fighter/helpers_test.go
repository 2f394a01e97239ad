package fighter

const (
	keyUp Key = iota + 1
	keyDown
	keyLeft
	keyRight
)

var testKeys = KeyBindings{Up: keyUp, Down: keyDown, Left: keyLeft, Right: keyRight}

// ground is a floor whose top edge is at y=100.
var ground = Shape{X: -1000, Y: 100, W: 2000, H: 20}

func testParams(x, y float64) Params {
	return Params{
		Speed:       5,
		JumpImpulse: -13,
		Gravity:     0.5,
		Body:        Shape{X: x, Y: y, W: 20, H: 40},
		AttackLeft:  Shape{X: x - 20, Y: y, W: 40, H: 40},
		AttackRight: Shape{X: x, Y: y, W: 40, H: 40},
		Frames: FrameCounts{
			Walk:        6,
			JumpAscend:  2,
			JumpDescend: 2,
			Attack:      3,
		},
		AnimateFPS:   10,
		LandingFrame: 2,
		Keys:         testKeys,
	}
}

func newTestPlayer(x, y float64) *Player {
	return NewPlayer(testParams(x, y))
}

// newGroundedPlayer returns a player standing on ground.
func newGroundedPlayer(x float64) *Player {
	p := newTestPlayer(x, 60)
	p.Physics.Falling = false
	return p
}
