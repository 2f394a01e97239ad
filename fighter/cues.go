package fighter

//go:generate go tool mockgen -source=cues.go -destination=mocks/mock_cues.go -package=mocks

// CueID identifies a fire-and-forget audio cue raised by a fighter.
type CueID int

const (
	CueLanded CueID = iota
	CueSwoosh
)

func (c CueID) String() string {
	switch c {
	case CueLanded:
		return "landed"
	case CueSwoosh:
		return "swoosh"
	}
	return "unknown"
}

// Cues receives audio cues. Implementations must not block.
type Cues interface {
	Cue(id CueID)
}

// NoCues discards every cue. Muted fighters use it.
type NoCues struct{}

func (NoCues) Cue(CueID) {}
