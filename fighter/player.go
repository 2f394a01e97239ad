package fighter

import (
	"fmt"
	"time"
)

// Params configures a new Player. Shapes are in world coordinates.
type Params struct {
	Speed       float64
	JumpImpulse float64 // negative is upward
	Gravity     float64

	Body        Shape
	AttackLeft  Shape
	AttackRight Shape

	Frames       FrameCounts
	AnimateFPS   float64
	LandingFrame int

	Keys KeyBindings
	Cues Cues

	// MinCorrectionSteps is the smallest back-out budget ResolveAxis uses.
	MinCorrectionSteps int
}

// Player is a controllable fighter: physics, collision shapes, held
// directions and animation state.
type Player struct {
	Physics PhysicsState

	body        Shape
	attackLeft  Shape
	attackRight Shape

	xVel        float64
	speed       float64
	jumpImpulse float64

	direction       Direction
	oldDirection    Direction
	hasOldDirection bool
	stack           directionStack
	attacking       bool

	frames          FrameCounts
	current         FrameSet
	frameIndex      int
	redraw          bool
	animateTimer    time.Duration
	animateInterval time.Duration
	landingFrame    int

	keys          KeyBindings
	cues          Cues
	minCorrection int
}

// NewPlayer builds a Player facing right and airborne. It panics on
// parameters no level could work with: an unsized body, a missing frame set
// or a non-positive animation rate.
func NewPlayer(p Params) *Player {
	if p.Body.W <= 0 || p.Body.H <= 0 {
		panic(fmt.Sprintf("fighter: body shape must have a size, got %+v", p.Body))
	}
	if p.AnimateFPS <= 0 {
		panic(fmt.Sprintf("fighter: animation rate must be positive, got %v", p.AnimateFPS))
	}
	p.Frames.validate()

	cues := p.Cues
	if cues == nil {
		cues = NoCues{}
	}

	frames := make(FrameCounts, len(p.Frames))
	for id, n := range p.Frames {
		frames[id] = n
	}

	return &Player{
		Physics:         NewPhysicsState(p.Gravity),
		body:            p.Body,
		attackLeft:      p.AttackLeft,
		attackRight:     p.AttackRight,
		speed:           p.Speed,
		jumpImpulse:     p.JumpImpulse,
		direction:       Right,
		frames:          frames,
		current:         FrameSet{Walk, Right},
		animateInterval: time.Duration(float64(time.Second) / p.AnimateFPS),
		landingFrame:    p.LandingFrame,
		keys:            p.Keys,
		cues:            cues,
		minCorrection:   p.MinCorrectionSteps,
	}
}

// Update runs one simulation tick: animation selection, horizontal intent
// from held directions, then movement and collision.
func (p *Player) Update(now time.Duration, obstacles Obstacles) error {
	p.AdjustFrames(now)
	if len(p.stack) > 0 {
		p.xVel += p.direction.Sign() * p.speed
	}
	return p.GetPosition(obstacles)
}

func (p *Player) Body() Shape { return p.body }

// AttackShape returns the attack shape for the given facing.
func (p *Player) AttackShape(d Direction) Shape {
	if d == Left {
		return p.attackLeft
	}
	return p.attackRight
}

func (p *Player) Direction() Direction { return p.direction }

// Held returns the held directions, most recent last.
func (p *Player) Held() []Direction {
	return append([]Direction(nil), p.stack...)
}

func (p *Player) Attacking() bool { return p.attacking }

func (p *Player) HorizontalVelocity() float64 { return p.xVel }

func (p *Player) Keys() KeyBindings { return p.keys }

// SetCues replaces the audio cue sink, e.g. when the player mutes the game.
func (p *Player) SetCues(c Cues) {
	if c == nil {
		c = NoCues{}
	}
	p.cues = c
}
