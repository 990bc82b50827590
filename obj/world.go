package obj

import (
	"github.com/troligtvis/lavafloor/physics"
	"github.com/troligtvis/lavafloor/prefabs"
	"go.uber.org/zap"
)

// World is the per-level container around a physics world. A new one is
// built every time a level is entered.
type World struct {
	physics *physics.World
	ticks   uint64
}

func NewWorld(spec prefabs.PhysicsSpec, logger *zap.Logger) *World {
	return &World{physics: physics.NewWorld(spec, logger)}
}

func (w *World) Physics() *physics.World {
	return w.physics
}

// Step advances the simulation one fixed step. Only the level scene calls it.
func (w *World) Step() {
	w.physics.Step()
	w.ticks++
}

func (w *World) Ticks() uint64 {
	return w.ticks
}
