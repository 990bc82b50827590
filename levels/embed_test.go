package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/obj"
	"github.com/troligtvis/lavafloor/prefabs"
)

func withDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedDefaultMatchesLiteral(t *testing.T) {
	withDir(t, t.TempDir())

	lvl, err := Load("default")
	require.NoError(t, err)
	assert.Equal(t, Default(), lvl)
}

func TestLoad(t *testing.T) {
	withDir(t, t.TempDir())

	cases := []struct {
		name      string
		file      string
		platforms int
		spawn     common.Point
	}{
		{"flat", "flat", 1, common.Pt(0, 289.5)},
		{"flat_with_ext", "flat.yaml", 1, common.Pt(0, 289.5)},
		{"steps", "steps", 4, common.Pt(-300, 250)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl, err := Load(c.file)
			require.NoError(t, err)
			assert.Len(t, lvl.Platforms, c.platforms)
			assert.Equal(t, c.spawn, lvl.Spawn)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("platforms: {"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.yaml"), []byte("name: empty\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat_bad.yaml"),
		[]byte("platforms:\n  - size: {x: 0, y: 1}\n"), 0o644))

	cases := []struct {
		name string
		file string
		msg  string
	}{
		{"missing", "nope", "levels: read nope.yaml"},
		{"broken", "broken", "levels: unmarshal broken.yaml"},
		{"no_platforms", "empty", "no platforms"},
		{"bad_extents", "flat_bad", "half extents must be positive"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(c.file)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
		})
	}
}

func TestDiskLevelOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	data := []byte("spawn: {x: 5, y: 6}\nplatforms:\n  - size: {x: 10, y: 1}\n    translation: {x: 0, y: 20}\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.yaml"), data, 0o644))

	lvl, err := Load("flat")
	require.NoError(t, err)
	assert.Equal(t, "flat", lvl.Name)
	assert.Equal(t, common.Pt(5, 6), lvl.Spawn)
	assert.Equal(t, common.Pt(10, 1), lvl.Platforms[0].Size)
}

func TestNames(t *testing.T) {
	assert.ElementsMatch(t, []string{"default", "flat", "steps"}, Names())
}

func TestBuild(t *testing.T) {
	w := obj.NewWorld(prefabs.DefaultPhysicsSpec(), nil)
	platforms := Default().Build(w)

	require.Len(t, platforms, 2)
	assert.Equal(t, common.Pt(250, 1), platforms[0].Size())
	assert.Equal(t, common.Pt(100, 10), platforms[1].Position())
	assert.Len(t, w.Physics().Colliders(), 2)
}
