package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/grailduel/fighter"
	"github.com/automoto/grailduel/roster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FrameRects returns the source rectangle of every cell, in order. Cells
// are [column, row] positions on a grid of the given cell size.
func FrameRects(cells []image.Point, size image.Point) []image.Rectangle {
	rects := make([]image.Rectangle, len(cells))
	for i, c := range cells {
		origin := image.Pt(c.X*size.X, c.Y*size.Y)
		rects[i] = image.Rectangle{Min: origin, Max: origin.Add(size)}
	}
	return rects
}

// SliceFrames cuts one frame per cell out of a sheet. The frames share the
// sheet's pixels.
func SliceFrames(sheet *ebiten.Image, cells []image.Point, size image.Point) []*ebiten.Image {
	rects := FrameRects(cells, size)
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return frames
}

// SheetSize returns the smallest sheet holding every cell of the given frame
// sets.
func SheetSize(specs ...roster.FrameSpec) image.Point {
	var size image.Point
	for _, spec := range specs {
		for _, r := range FrameRects(spec.CellPoints(), spec.FrameSize()) {
			size.X = max(size.X, r.Max.X)
			size.Y = max(size.Y, r.Max.Y)
		}
	}
	return size
}

// sheetSets groups a class's frame sets by the sheet they live on.
func sheetSets(class roster.Class) map[string][]fighter.FrameSetID {
	sheets := make(map[string][]fighter.FrameSetID)
	for _, id := range fighter.FrameSetIDs() {
		path := class.Frames.Set(id).Sheet
		sheets[path] = append(sheets[path], id)
	}
	return sheets
}

// placeholderSheet draws a stand-in sheet for a class whose art is not on
// disk. Every frame set sharing the sheet gets simple figures in the class
// colour, laid out on the same cells the real art would use.
func placeholderSheet(class roster.Class, ids []fighter.FrameSetID) *ebiten.Image {
	specs := make([]roster.FrameSpec, len(ids))
	for i, id := range ids {
		specs[i] = class.Frames.Set(id)
	}
	size := SheetSize(specs...)
	sheet := ebiten.NewImage(max(size.X, 1), max(size.Y, 1))

	tint := class.Tint()
	for i, id := range ids {
		spec := specs[i]
		rects := FrameRects(spec.CellPoints(), spec.FrameSize())
		for n, r := range rects {
			drawPlaceholderFrame(sheet, r, id, n, len(rects), tint, class)
		}
	}
	return sheet
}

func drawPlaceholderFrame(dst *ebiten.Image, r image.Rectangle, id fighter.FrameSetID, n, count int, tint color.RGBA, class roster.Class) {
	bw := float32(min(class.Body.W, r.Dx()))
	bh := float32(min(class.Body.H, r.Dy()))
	x := float32(r.Min.X)
	y := float32(r.Min.Y + r.Dy() - int(bh))
	if id == fighter.Attack {
		// the body sits where it stands inside the attack box
		x = float32(r.Min.X) - float32(class.Attack.Right.X)
		y = float32(r.Min.Y) - float32(class.Attack.Right.Y)
	}

	head := bh / 4
	legs := bh / 4
	torso := bh - head - legs
	light := lighten(tint)

	vector.FillRect(dst, x+bw/4, y, bw/2, head, light, false)
	vector.FillRect(dst, x, y+head, bw, torso, tint, false)

	legW := bw / 3
	switch id {
	case fighter.Walk:
		stride := float32(math.Sin(2*math.Pi*float64(n)/float64(max(count, 1)))) * legW / 2
		vector.FillRect(dst, x+stride+bw/6, y+head+torso, legW, legs, tint, false)
		vector.FillRect(dst, x-stride+bw/2, y+head+torso, legW, legs, tint, false)
	case fighter.JumpAscend:
		vector.FillRect(dst, x+bw/6, y+head+torso, legW, legs/2, tint, false)
		vector.FillRect(dst, x+bw/2, y+head+torso, legW, legs/2, tint, false)
	case fighter.JumpDescend:
		vector.FillRect(dst, x, y+head+torso, legW, legs, tint, false)
		vector.FillRect(dst, x+bw-legW, y+head+torso, legW, legs, tint, false)
	case fighter.Attack:
		vector.FillRect(dst, x+bw/6, y+head+torso, legW, legs, tint, false)
		vector.FillRect(dst, x+bw/2, y+head+torso, legW, legs, tint, false)
		drawSlash(dst, r, x+bw, y+head+torso/3, n, count, light)
	}
}

// drawSlash sweeps a blade from overhead to forward as n advances.
func drawSlash(dst *ebiten.Image, r image.Rectangle, hx, hy float32, n, count int, clr color.Color) {
	reach := float64(r.Max.X) - float64(hx)
	if reach <= 0 {
		return
	}
	start := -math.Pi / 2
	sweep := math.Pi * 0.75
	t := float64(n+1) / float64(max(count, 1))
	angle := start + sweep*t
	ex := hx + float32(math.Cos(angle)*reach)
	ey := hy + float32(math.Sin(angle)*reach)
	ey = min(max(ey, float32(r.Min.Y)), float32(r.Max.Y))
	vector.StrokeLine(dst, hx, hy, ex, ey, 3, clr, true)
}

func lighten(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
		A: c.A,
	}
}
