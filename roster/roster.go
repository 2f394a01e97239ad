// Package roster describes the playable servant classes: which ones exist,
// how they move and how their sprite sheets are laid out.
package roster

import (
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/automoto/grailduel/fighter"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

// Selection is a menu choice of servant class.
type Selection int

const (
	Saber Selection = iota
	Archer
	Caster
	Assassin
	selectionCount
)

var selectionNames = [selectionCount]string{"Saber", "Archer", "Caster", "Assassin"}

func (s Selection) String() string {
	if s < 0 || s >= selectionCount {
		return fmt.Sprintf("Selection(%d)", int(s))
	}
	return selectionNames[s]
}

// Valid reports whether s names a class.
func (s Selection) Valid() bool {
	return s >= 0 && s < selectionCount
}

// Next returns the following class, stopping at the last one.
func (s Selection) Next() Selection {
	if s < selectionCount-1 {
		return s + 1
	}
	return s
}

// Prev returns the preceding class, stopping at the first one.
func (s Selection) Prev() Selection {
	if s > 0 {
		return s - 1
	}
	return s
}

// Selections lists every class in menu order.
func Selections() []Selection {
	return []Selection{Saber, Archer, Caster, Assassin}
}

// ParseSelection maps a class name (case-insensitive) to a Selection.
func ParseSelection(name string) (Selection, error) {
	for _, s := range Selections() {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("roster: unknown servant %q", name)
}

type SizeSpec struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type AttackSpec struct {
	Left  RectSpec `yaml:"left"`
	Right RectSpec `yaml:"right"`
}

// FrameSpec locates one frame set on a sprite sheet.
type FrameSpec struct {
	Sheet string   `yaml:"sheet"`
	Size  SizeSpec `yaml:"size"`
	Cells [][2]int `yaml:"cells"`
}

// CellPoints returns the cells as image points.
func (f FrameSpec) CellPoints() []image.Point {
	pts := make([]image.Point, len(f.Cells))
	for i, c := range f.Cells {
		pts[i] = image.Pt(c[0], c[1])
	}
	return pts
}

// FrameSize returns the cell size as an image point.
func (f FrameSpec) FrameSize() image.Point {
	return image.Pt(f.Size.W, f.Size.H)
}

type FramesSpec struct {
	Walk        FrameSpec `yaml:"walk"`
	JumpAscend  FrameSpec `yaml:"jump_ascend"`
	JumpDescend FrameSpec `yaml:"jump_descend"`
	Attack      FrameSpec `yaml:"attack"`
}

// Set returns the sheet layout of the given frame set.
func (f FramesSpec) Set(id fighter.FrameSetID) FrameSpec {
	switch id {
	case fighter.JumpAscend:
		return f.JumpAscend
	case fighter.JumpDescend:
		return f.JumpDescend
	case fighter.Attack:
		return f.Attack
	}
	return f.Walk
}

// Counts returns the frame count of every set.
func (f FramesSpec) Counts() fighter.FrameCounts {
	counts := make(fighter.FrameCounts, 4)
	for _, id := range fighter.FrameSetIDs() {
		counts[id] = len(f.Set(id).Cells)
	}
	return counts
}

// Class is one servant class.
type Class struct {
	Name        string     `yaml:"name"`
	Speed       float64    `yaml:"speed"`
	JumpImpulse float64    `yaml:"jump_impulse"`
	Color       string     `yaml:"color"`
	Body        SizeSpec   `yaml:"body"`
	Attack      AttackSpec `yaml:"attack"`
	Frames      FramesSpec `yaml:"frames"`
}

// Tint parses the class colour, falling back to grey.
func (c Class) Tint() color.RGBA {
	hex := strings.TrimPrefix(c.Color, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return color.RGBA{R: 160, G: 160, B: 160, A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// Shapes places the body and attack shapes for a body whose top-left corner
// is at (x, y).
func (c Class) Shapes(x, y float64) (body, left, right fighter.Shape) {
	body = fighter.Shape{X: x, Y: y, W: float64(c.Body.W), H: float64(c.Body.H)}
	left = fighter.Shape{X: x + c.Attack.Left.X, Y: y + c.Attack.Left.Y, W: c.Attack.Left.W, H: c.Attack.Left.H}
	right = fighter.Shape{X: x + c.Attack.Right.X, Y: y + c.Attack.Right.Y, W: c.Attack.Right.W, H: c.Attack.Right.H}
	return body, left, right
}

func (c Class) validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("servant %s: speed must be positive", c.Name)
	}
	if c.JumpImpulse >= 0 {
		return fmt.Errorf("servant %s: jump_impulse must be negative (upward)", c.Name)
	}
	if c.Body.W <= 0 || c.Body.H <= 0 {
		return fmt.Errorf("servant %s: body needs a size", c.Name)
	}
	for _, id := range fighter.FrameSetIDs() {
		f := c.Frames.Set(id)
		if len(f.Cells) == 0 {
			return fmt.Errorf("servant %s: frame set %s has no cells", c.Name, id)
		}
		if f.Size.W <= 0 || f.Size.H <= 0 {
			return fmt.Errorf("servant %s: frame set %s needs a cell size", c.Name, id)
		}
	}
	return nil
}

// Roster is the full set of classes, indexed by Selection.
type Roster struct {
	classes [selectionCount]Class
}

type rosterFile struct {
	Servants []Class `yaml:"servants"`
}

// Parse decodes and validates a roster document. Every Selection must have
// exactly one class.
func Parse(data []byte) (*Roster, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("roster: unmarshal: %w", err)
	}

	var r Roster
	var seen [selectionCount]bool
	for _, c := range file.Servants {
		sel, err := ParseSelection(c.Name)
		if err != nil {
			return nil, err
		}
		if seen[sel] {
			return nil, fmt.Errorf("roster: servant %s defined twice", sel)
		}
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("roster: %w", err)
		}
		seen[sel] = true
		r.classes[sel] = c
	}
	for _, sel := range Selections() {
		if !seen[sel] {
			return nil, fmt.Errorf("roster: servant %s missing", sel)
		}
	}
	return &r, nil
}

// Default returns the built-in roster. It panics if the embedded document is
// broken.
func Default() *Roster {
	r, err := Parse(defaultRoster)
	if err != nil {
		panic(err)
	}
	return r
}

// LoadFile reads a roster document from disk.
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: load %s: %w", path, err)
	}
	return Parse(data)
}

// Class returns the class for sel. It panics on an invalid selection.
func (r *Roster) Class(sel Selection) Class {
	if !sel.Valid() {
		panic(fmt.Sprintf("roster: invalid selection %d", int(sel)))
	}
	return r.classes[sel]
}
