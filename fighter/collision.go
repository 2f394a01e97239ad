package fighter

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnresolvedOverlap is returned when pixel-stepped correction cannot push
// the body out of the terrain, which means an obstacle encloses it. This is a
// level data problem.
var ErrUnresolvedOverlap = errors.New("fighter: body still overlaps terrain after correction")

// CheckFalling probes one unit below the body to decide whether the fighter
// stands on something. The landed cue fires only on the falling to grounded
// edge.
func (p *Player) CheckFalling(obstacles Obstacles) {
	if !obstacles.Collides(p.body.Offset(0, 1)) {
		p.Physics.Falling = true
		return
	}

	p.Physics.VerticalVelocity = math.Min(p.Physics.VerticalVelocity, 0)
	if p.Physics.VerticalVelocity == 0 {
		if p.Physics.Falling {
			p.cues.Cue(CueLanded)
		}
		p.Physics.Falling = false
	}
}

// ResolveAxis moves the body and both attack shapes by velocity along axis in
// a single step, then backs them out one unit at a time until the body is
// clear of obstacles. It reports true when no correction was needed.
//
// The move is not swept: obstacles thinner than |velocity| can be skipped.
func (p *Player) ResolveAxis(velocity float64, axis Axis, obstacles Obstacles) (bool, error) {
	if p.body.W <= 0 || p.body.H <= 0 {
		panic(fmt.Sprintf("fighter: resolving %s axis with unsized body %+v", axis, p.body))
	}

	body, left, right := p.body, p.attackLeft, p.attackRight
	p.translate(axis, velocity)

	step := -1.0
	if velocity < 0 {
		step = 1
	}
	limit := p.correctionLimit(velocity, axis)

	unaltered := true
	for n := 0; obstacles.Collides(p.body); n++ {
		if n == limit {
			p.body, p.attackLeft, p.attackRight = body, left, right
			return false, fmt.Errorf("resolve %s axis at %.2f,%.2f with velocity %.2f: %w",
				axis, body.X, body.Y, velocity, ErrUnresolvedOverlap)
		}
		p.translate(axis, step)
		if axis == AxisY && velocity < 0 {
			// Head bump.
			p.Physics.VerticalVelocity = 0
		}
		unaltered = false
	}
	return unaltered, nil
}

// GetPosition runs one tick of movement: fall check, gravity, then vertical
// and horizontal resolution. Horizontal velocity never carries over to the
// next tick.
func (p *Player) GetPosition(obstacles Obstacles) error {
	p.CheckFalling(obstacles)
	p.Physics.Advance()

	var errY, errX error
	if p.Physics.VerticalVelocity != 0 {
		_, errY = p.ResolveAxis(p.Physics.VerticalVelocity, AxisY, obstacles)
	}
	if p.xVel != 0 {
		_, errX = p.ResolveAxis(p.xVel, AxisX, obstacles)
		p.xVel = 0
	}
	return errors.Join(errY, errX)
}

func (p *Player) translate(axis Axis, d float64) {
	p.body.translate(axis, d)
	p.attackLeft.translate(axis, d)
	p.attackRight.translate(axis, d)
}

// correctionLimit bounds the back-out loop. Backing out further than the
// distance moved plus the body's own extent cannot clear an obstacle the body
// started outside of.
func (p *Player) correctionLimit(velocity float64, axis Axis) int {
	limit := int(math.Ceil(math.Abs(velocity)+p.body.Extent(axis))) + 1
	if limit < p.minCorrection {
		limit = p.minCorrection
	}
	return limit
}
