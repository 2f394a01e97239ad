package fighter

// PhysicsState holds the vertical motion of a character. It is advanced once
// per simulation tick, after fall detection has decided whether the character
// is standing on something.
type PhysicsState struct {
	VerticalVelocity         float64
	PreviousVerticalVelocity float64
	Gravity                  float64
	Falling                  bool
	WasFalling               bool
}

// NewPhysicsState returns a state that starts airborne, so a freshly spawned
// character drops onto the ground below its spawn point.
func NewPhysicsState(gravity float64) PhysicsState {
	return PhysicsState{
		Gravity:    gravity,
		Falling:    true,
		WasFalling: true,
	}
}

// Advance applies one tick of gravity. There is no terminal velocity.
func (p *PhysicsState) Advance() {
	p.WasFalling = p.Falling
	p.PreviousVerticalVelocity = p.VerticalVelocity
	if p.Falling {
		p.VerticalVelocity += p.Gravity
		return
	}
	p.VerticalVelocity = 0
}
