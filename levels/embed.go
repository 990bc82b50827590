package levels

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/obj"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk directory whose files override the embedded levels.
var Dir = "levels"

// Level is a literal platform layout.
type Level struct {
	Name      string        `yaml:"name"`
	Spawn     common.Point  `yaml:"spawn"`
	Platforms []PlatformDef `yaml:"platforms"`
}

// PlatformDef mirrors obj.NewPlatform's arguments.
type PlatformDef struct {
	Size        common.Point `yaml:"size"`
	Translation common.Point `yaml:"translation"`
	Position    common.Point `yaml:"position"`
}

// Default is the built-in level: a long ledge with a pillar standing on it.
func Default() Level {
	return Level{
		Name:  "default",
		Spawn: common.Pt(0, 0),
		Platforms: []PlatformDef{
			{Size: common.Pt(250, 1), Translation: common.Pt(0, 50), Position: common.Pt(0, 0)},
			{Size: common.Pt(20, 50), Translation: common.Pt(100, 10), Position: common.Pt(100, 10)},
		},
	}
}

// Load reads levels/<name>.yaml, preferring the disk copy over the embedded one.
func Load(name string) (Level, error) {
	file := levelFile(name)
	data, err := os.ReadFile(filepath.Join(Dir, file))
	if err != nil {
		data, err = LevelsFS.ReadFile(file)
		if err != nil {
			return Level{}, fmt.Errorf("levels: read %s: %w", file, err)
		}
	}

	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("levels: unmarshal %s: %w", file, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, filepath.Ext(file))
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", file, err)
	}
	return lvl, nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return names
}

func (l Level) Validate() error {
	if len(l.Platforms) == 0 {
		return errors.New("no platforms")
	}
	for i, p := range l.Platforms {
		if p.Size.X <= 0 || p.Size.Y <= 0 {
			return fmt.Errorf("platform %d: half extents must be positive, got %v", i, p.Size)
		}
	}
	return nil
}

// Build inserts the level's platforms into world.
func (l Level) Build(world *obj.World) []*obj.Platform {
	platforms := make([]*obj.Platform, 0, len(l.Platforms))
	for _, p := range l.Platforms {
		platforms = append(platforms, obj.NewPlatform(p.Size, p.Translation, p.Position, world))
	}
	return platforms
}

func levelFile(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	if ext := filepath.Ext(base); ext == ".yaml" || ext == ".yml" {
		return base
	}
	return base + ".yaml"
}
