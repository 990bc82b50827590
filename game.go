package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/levels"
	"github.com/troligtvis/lavafloor/obj"
	"github.com/troligtvis/lavafloor/prefabs"
	"github.com/troligtvis/lavafloor/scene"
	"go.uber.org/zap"
)

// maxFrameDelta caps the frame delta after a stall, e.g. a window drag.
const maxFrameDelta = 0.25

type Game struct {
	frames int
	debug  bool

	director  *scene.Director
	levelName string
	watcher   *prefabs.Watcher
	logger    *zap.Logger

	lastUpdate time.Time
}

func NewGame(levelName string, debug, watch bool, logger *zap.Logger) *Game {
	lvl := levels.Default()
	if levelName != "" {
		l, err := levels.Load(levelName)
		if err != nil {
			logger.Error("failed to load level, using default", zap.String("level", levelName), zap.Error(err))
		} else {
			lvl = l
		}
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		logger.Warn("player spec not loaded, using defaults", zap.Error(err))
	}
	physicsSpec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		logger.Warn("physics spec not loaded, using defaults", zap.Error(err))
	}

	g := &Game{
		debug:     debug,
		levelName: lvl.Name,
		logger:    logger,
		director: scene.NewDirector(scene.Config{
			Level:   lvl,
			Player:  playerSpec,
			Physics: physicsSpec,
			Logger:  logger,
			Debug:   debug,
		}),
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g
}

func (g *Game) Update() error {
	g.frames++
	dt := g.frameDelta()

	g.applyReloads()

	for _, ev := range obj.PollKeys() {
		if ev.Pressed && obj.ActionFor(ev.Key) == obj.ActionQuit {
			return ebiten.Termination
		}
		g.director.HandleKey(ev)
	}

	g.director.Update(dt)
	return nil
}

func (g *Game) frameDelta() float64 {
	now := time.Now()
	defer func() { g.lastUpdate = now }()
	if g.lastUpdate.IsZero() {
		return common.TimeStep
	}
	return min(now.Sub(g.lastUpdate).Seconds(), maxFrameDelta)
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for _, err := range g.watcher.PollErrors() {
		g.logger.Warn("hot reload watch error", zap.Error(err))
	}
	for _, name := range g.watcher.Poll() {
		switch name {
		case prefabs.PlayerSpecFile:
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				g.logger.Warn("player spec reload failed", zap.Error(err))
				continue
			}
			g.director.SetPlayerSpec(spec)
			g.logger.Info("player spec reloaded")
		case prefabs.PhysicsSpecFile:
			spec, err := prefabs.LoadPhysicsSpec()
			if err != nil {
				g.logger.Warn("physics spec reload failed", zap.Error(err))
				continue
			}
			g.director.SetPhysicsSpec(spec)
			g.logger.Info("physics spec reloaded, applies on next level start")
		case g.levelName + ".yaml":
			lvl, err := levels.Load(g.levelName)
			if err != nil {
				g.logger.Warn("level reload failed", zap.Error(err))
				continue
			}
			g.director.SetLevel(lvl)
			g.logger.Info("level reloaded, applies on next level start", zap.String("level", lvl.Name))
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    %s", g.frames, ebiten.ActualFPS(), g.director.Name()))
	}
}

// Close stops the hot reload watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
