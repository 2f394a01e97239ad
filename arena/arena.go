// Package arena holds the static terrain fighters collide with. Obstacles
// live in a resolv.Space for broad-phase lookup; the final overlap test is an
// exact rectangle check.
package arena

import (
	"github.com/automoto/grailduel/fighter"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	TagSolid = "solid"
	TagProbe = "probe"
)

// Space cell size in pixels
const cellSize = 16

// Spawn is a player spawn location.
type Spawn struct {
	X, Y  float64
	Index int
}

// Arena is a read-only obstacle set. It implements fighter.Obstacles.
type Arena struct {
	Name   string
	Width  int
	Height int
	Spawns []Spawn

	space     *resolv.Space
	obstacles []*resolv.Object
	probe     *resolv.Object
}

var _ fighter.Obstacles = (*Arena)(nil)

// New builds an arena of the given pixel size from obstacle rectangles.
func New(name string, width, height int, rects []fighter.Shape, spawns []Spawn) *Arena {
	space := resolv.NewSpace(width, height, cellSize, cellSize)

	a := &Arena{
		Name:      name,
		Width:     width,
		Height:    height,
		Spawns:    spawns,
		space:     space,
		obstacles: make([]*resolv.Object, 0, len(rects)),
	}

	for _, r := range rects {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, TagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		space.Add(obj)
		a.obstacles = append(a.obstacles, obj)
	}

	a.probe = resolv.NewObject(0, 0, 1, 1, TagProbe)
	space.Add(a.probe)

	return a
}

// Collides reports whether s overlaps any obstacle. Edge contact is not an
// overlap.
func (a *Arena) Collides(s fighter.Shape) bool {
	// Pad the probe by a pixel so sub-pixel overlaps at cell borders are
	// still found by the cell lookup.
	a.probe.X = s.X - 1
	a.probe.Y = s.Y - 1
	a.probe.W = s.W + 2
	a.probe.H = s.H + 2
	a.probe.Update()

	check := a.probe.Check(0, 0, TagSolid)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(TagSolid) {
		if s.Overlaps(shapeOf(obj)) {
			return true
		}
	}
	return false
}

// Shapes returns the obstacle rectangles in insertion order.
func (a *Arena) Shapes() []fighter.Shape {
	shapes := make([]fighter.Shape, 0, len(a.obstacles))
	for _, obj := range a.obstacles {
		shapes = append(shapes, shapeOf(obj))
	}
	return shapes
}

// Spawn returns the spawn point with the given index, or ok=false.
func (a *Arena) Spawn(index int) (Spawn, bool) {
	for _, sp := range a.Spawns {
		if sp.Index == index {
			return sp, true
		}
	}
	return Spawn{}, false
}

func shapeOf(obj *resolv.Object) fighter.Shape {
	return fighter.Shape{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
