package fighter

import (
	"fmt"
	"time"
)

// FrameSetID names one animation of a fighter.
type FrameSetID int

const (
	Walk FrameSetID = iota
	JumpAscend
	JumpDescend
	Attack
	frameSetCount
)

var frameSetNames = [frameSetCount]string{"walk", "jump_ascend", "jump_descend", "attack"}

func (id FrameSetID) String() string {
	if id < 0 || id >= frameSetCount {
		return fmt.Sprintf("FrameSetID(%d)", int(id))
	}
	return frameSetNames[id]
}

// FrameSetIDs lists every frame set a fighter needs.
func FrameSetIDs() []FrameSetID {
	return []FrameSetID{Walk, JumpAscend, JumpDescend, Attack}
}

// FrameCounts holds the number of frames in each frame set. Both facing
// directions of a set have the same length.
type FrameCounts map[FrameSetID]int

func (fc FrameCounts) validate() {
	for _, id := range FrameSetIDs() {
		if fc[id] <= 0 {
			panic(fmt.Sprintf("fighter: frame set %s has no frames", id))
		}
	}
}

// FrameSet is one animation in one facing direction.
type FrameSet struct {
	ID        FrameSetID
	Direction Direction
}

// Frame identifies the image a fighter currently displays.
type Frame struct {
	Set       FrameSetID
	Direction Direction
	Index     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s/%s/%d", f.Set, f.Direction, f.Index)
}

// Clock reports the time elapsed since a fixed origin.
type Clock func() time.Duration

// SinceStart returns a monotonic Clock starting now.
func SinceStart() Clock {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// AdjustFrames picks the frame set for the current physical state and, when
// the set changed or the frame interval elapsed, advances the frame.
func (p *Player) AdjustFrames(now time.Duration) {
	if !p.hasOldDirection {
		p.current = FrameSet{Walk, p.direction}
		p.oldDirection = p.direction
		p.hasOldDirection = true
		p.redraw = true
	}

	if p.Physics.Falling {
		if p.Physics.VerticalVelocity > 0 {
			p.current = FrameSet{JumpDescend, p.direction}
		} else {
			p.current = FrameSet{JumpAscend, p.direction}
		}
		p.redraw = true
	} else if p.attacking {
		p.current = FrameSet{Attack, p.direction}
		p.redraw = true
	} else if p.direction != p.oldDirection {
		p.current = FrameSet{Walk, p.direction}
		p.oldDirection = p.direction
		p.redraw = true
	}

	if !p.redraw && now-p.animateTimer <= p.animateInterval {
		return
	}

	if p.Physics.Falling {
		p.frameIndex = 0
	} else {
		if p.isJumpSet(p.current) {
			p.current = FrameSet{Walk, p.direction}
			p.frameIndex = p.landingFrame
		}
		if len(p.stack) > 0 || p.attacking {
			p.frameIndex = (p.frameIndex + 1) % p.frames[p.current.ID]
		} else {
			p.current = FrameSet{Walk, p.direction}
		}
	}
	p.frameIndex %= p.frames[p.current.ID]
	p.animateTimer = now
	p.redraw = false
}

func (p *Player) isJumpSet(fs FrameSet) bool {
	return fs.Direction == p.direction && (fs.ID == JumpAscend || fs.ID == JumpDescend)
}

// Frame returns the frame chosen by the last AdjustFrames call.
func (p *Player) Frame() Frame {
	return Frame{Set: p.current.ID, Direction: p.current.Direction, Index: p.frameIndex}
}

// DrawTarget returns the frame to draw and where to draw it. The first attack
// frame is drawn over the attack shape on the facing side, which also ends the
// attack.
func (p *Player) DrawTarget() (Frame, Shape) {
	f := p.Frame()
	if f == (Frame{Set: Attack, Direction: p.direction, Index: 0}) {
		p.attacking = false
		return f, p.AttackShape(p.direction)
	}
	return f, p.body
}
