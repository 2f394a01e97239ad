package fighter

// Key is an opaque key identifier supplied by the input backend.
type Key int

// KeyBindings maps the four logical roles of a fighter to concrete keys.
// Up jumps, Down attacks, Left and Right move.
type KeyBindings struct {
	Up, Down, Left, Right Key
}

func (b KeyBindings) direction(k Key) (Direction, bool) {
	switch k {
	case b.Left:
		return Left, true
	case b.Right:
		return Right, true
	}
	return Right, false
}

// Direction is the way a fighter faces.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign is -1 for Left and +1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// directionStack records held directional inputs, most recent last.
type directionStack []Direction

func (s *directionStack) remove(d Direction) {
	for i, held := range *s {
		if held == d {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

func (s *directionStack) push(d Direction) {
	s.remove(d)
	*s = append(*s, d)
}

func (s directionStack) top() (Direction, bool) {
	if len(s) == 0 {
		return Right, false
	}
	return s[len(s)-1], true
}

// HandleKeyDown applies a key press. Directional keys become the active
// direction; Down starts an attack and Up jumps, both only while grounded.
func (p *Player) HandleKeyDown(key Key) {
	if d, ok := p.keys.direction(key); ok {
		p.stack.push(d)
		p.direction = d
		return
	}

	switch key {
	case p.keys.Down:
		if !p.Physics.Falling {
			p.attacking = true
			p.cues.Cue(CueSwoosh)
		}
	case p.keys.Up:
		if !p.Physics.Falling {
			p.Physics.VerticalVelocity = p.jumpImpulse
			p.Physics.Falling = true
		}
	}
}

// HandleKeyUp applies a key release. Releasing a direction hands control back
// to the most recently pressed direction that is still held.
func (p *Player) HandleKeyUp(key Key) {
	d, ok := p.keys.direction(key)
	if !ok {
		return
	}
	p.stack.remove(d)
	if top, ok := p.stack.top(); ok {
		p.direction = top
	}
}
