package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/automoto/grailduel/arena"
	"github.com/automoto/grailduel/fighter"
	"github.com/automoto/grailduel/roster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	// source holds optional on-disk art and sound. Nil means none.
	source fs.FS
)

// ErrNoSource is returned when an asset is requested but no assets
// directory was configured.
var ErrNoSource = errors.New("assets: no assets directory")

// SetSource points sprite and audio loading at fsys. Passing nil makes every
// sprite fall back to a generated placeholder and every sound to silence.
func SetSource(fsys fs.FS) {
	source = fsys
	spriteLoader = NewSpriteLoader(fsys)
}

// ReadFile reads a file from the configured assets directory.
func ReadFile(path string) ([]byte, error) {
	if source == nil {
		return nil, fmt.Errorf("read %s: %w", path, ErrNoSource)
	}
	return fs.ReadFile(source, path)
}

// LoadArenas loads every level bundled with the game, keyed by name.
func LoadArenas() (map[string]*arena.Arena, []string, error) {
	return arena.LoadAll(levelFS, "levels")
}

// ServantFrames maps each frame set to its frames, facing right.
type ServantFrames map[fighter.FrameSetID][]*ebiten.Image

// SpriteLoader caches sheets and sliced frames per servant class.
type SpriteLoader struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	failed     map[string]error
	frameCache map[string]ServantFrames
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		failed:     make(map[string]error),
		frameCache: make(map[string]ServantFrames),
	}
}

// LoadImage decodes a PNG from the loader's filesystem. Failures are
// remembered so a missing file is only looked up once.
func (l *SpriteLoader) LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := l.loadImage(path)
	return img, err
}

// loadImage also reports whether this call was the first to see the result.
func (l *SpriteLoader) loadImage(path string) (*ebiten.Image, bool, error) {
	if img, ok := l.cache[path]; ok {
		return img, false, nil
	}
	if err, ok := l.failed[path]; ok {
		return nil, false, err
	}

	img, err := l.decode(path)
	if err != nil {
		l.failed[path] = err
		return nil, true, err
	}
	l.cache[path] = img
	return img, true, nil
}

func (l *SpriteLoader) decode(path string) (*ebiten.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("load image %s: %w", path, ErrNoSource)
	}
	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// Frames returns the frames of a class. Sheets missing from disk are
// replaced by placeholders so a servant can always be drawn.
func (l *SpriteLoader) Frames(class roster.Class) ServantFrames {
	if frames, ok := l.frameCache[class.Name]; ok {
		return frames
	}

	frames := make(ServantFrames, len(fighter.FrameSetIDs()))
	for path, ids := range sheetSets(class) {
		sheet, first, err := l.loadImage(path)
		if err != nil {
			if first && !errors.Is(err, ErrNoSource) {
				log.Printf("Warning: %v; drawing placeholder for %s", err, class.Name)
			}
			sheet = placeholderSheet(class, ids)
		}
		for _, id := range ids {
			spec := class.Frames.Set(id)
			frames[id] = SliceFrames(sheet, spec.CellPoints(), spec.FrameSize())
		}
	}

	l.frameCache[class.Name] = frames
	return frames
}

// Forget drops cached frames so the next Frames call re-slices them, for
// example after the roster changed.
func (l *SpriteLoader) Forget() {
	clear(l.frameCache)
}

var spriteLoader = NewSpriteLoader(nil)

// Frames returns the frames of a class from the shared loader.
func Frames(class roster.Class) ServantFrames {
	return spriteLoader.Frames(class)
}

// ForgetFrames clears the shared loader's frame cache.
func ForgetFrames() {
	spriteLoader.Forget()
}

// Image returns a decoration image from the assets directory, if present.
func Image(path string) (*ebiten.Image, bool) {
	img, first, err := spriteLoader.loadImage(path)
	if err != nil {
		if first && !errors.Is(err, ErrNoSource) {
			log.Printf("Warning: %v", err)
		}
		return nil, false
	}
	return img, true
}
