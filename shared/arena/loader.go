package arena

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed layouts/*.tmx
var embedded embed.FS

var ErrNoSpawns = errors.New("arena: no ShooterSpawn objects")

const (
	groupSpawns      = "ShooterSpawn"
	groupFixedSource = "FixedSource"
	propShooterIndex = "shooterIndex"
)

// Load parses a TMX file into a Layout. It takes an fs.FS so callers can pass
// the embedded layouts or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case groupSpawns:
			for _, o := range og.Objects {
				layout.Spawns = append(layout.Spawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt(propShooterIndex),
				})
			}
		case groupFixedSource:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.FixedSource = &Point{X: o.X, Y: o.Y}
			}
		}
	}

	if len(layout.Spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawns)
	}

	sort.SliceStable(layout.Spawns, func(i, j int) bool {
		return layout.Spawns[i].Index < layout.Spawns[j].Index
	})
	return layout, nil
}

// LoadAll loads every .tmx file in dir, keyed by file stem, plus the sorted
// list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		l, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		layouts[l.Name] = l
		names = append(names, l.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}

// Builtin returns one of the layouts shipped with the binary.
func Builtin(name string) (*Layout, error) {
	return Load(embedded, "layouts/"+name+".tmx")
}
