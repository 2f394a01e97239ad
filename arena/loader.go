package arena

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/automoto/grailduel/fighter"
	"github.com/lafriks/go-tiled"
)

// Tiled object group names
const (
	ObstacleGroup = "Obstacles"
	SpawnGroup    = "PlayerSpawn"
)

// Load parses a TMX file into an Arena. Obstacles are the rectangles of the
// Obstacles object group; spawns come from PlayerSpawn objects and their
// spawnIndex property.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	width := levelMap.Width * levelMap.TileWidth
	height := levelMap.Height * levelMap.TileHeight
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("load TMX %s: map has no size", tmxPath)
	}

	var rects []fighter.Shape
	var spawns []Spawn
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case ObstacleGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("load TMX %s: obstacle %d has no size", tmxPath, o.ID)
				}
				rects = append(rects, fighter.Shape{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				spawns = append(spawns, Spawn{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	sort.Slice(spawns, func(i, j int) bool {
		return spawns[i].Index < spawns[j].Index
	})

	name := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	log.Printf("Loaded arena %s: %d obstacles, %d spawn points, %dx%d",
		name, len(rects), len(spawns), width, height)

	return New(name, width, height, rects, spawns), nil
}

// LoadAll loads every .tmx file in dir, returning arenas keyed by name and the
// sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		a, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
