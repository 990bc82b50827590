package scene

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/levels"
	"github.com/troligtvis/lavafloor/logging"
	"github.com/troligtvis/lavafloor/obj"
	"github.com/troligtvis/lavafloor/physics"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	// lavaDepth is how far below the lowest platform the lava starts.
	lavaDepth = 240.0

	cameraSmoothing = 0.15
)

// Level runs one attempt at a level on its own physics world.
type Level struct {
	def       levels.Level
	world     *obj.World
	player    *obj.Player
	platforms []*obj.Platform
	camera    *obj.Camera

	lavaY  float64
	debug  bool
	logger *zap.Logger
	runID  string
}

func NewLevel(cfg Config) *Level {
	def := cfg.Level
	if len(def.Platforms) == 0 {
		def = levels.Default()
	}
	logger, runID := logging.WithRun(cfg.Logger, "level")
	logger = logger.Named("level").With(zap.String("level", def.Name))

	world := obj.NewWorld(cfg.Physics, logger)
	platforms := def.Build(world)
	player := obj.NewPlayer(world, def.Spawn, cfg.Player)

	camera := obj.NewCamera(common.BaseWidth, common.BaseHeight, cameraSmoothing)
	camera.SnapTo(def.Spawn)

	lavaY := math.Inf(-1)
	for _, p := range platforms {
		lavaY = math.Max(lavaY, p.Bounds().T)
	}
	lavaY += lavaDepth

	logger.Info("level started",
		zap.Int("platforms", len(platforms)),
		zap.Float64("spawn_x", def.Spawn.X),
		zap.Float64("spawn_y", def.Spawn.Y),
		zap.Float64("lava_y", lavaY),
	)

	return &Level{
		def:       def,
		world:     world,
		player:    player,
		platforms: platforms,
		camera:    camera,
		lavaY:     lavaY,
		debug:     cfg.Debug,
		logger:    logger,
		runID:     runID,
	}
}

func (l *Level) Name() string {
	return "level " + l.def.Name
}

// Update runs one tick: a single physics step, then the player controller.
// Falling into the lava restarts the level.
func (l *Level) Update(dt float64) Transition {
	l.world.Step()
	l.player.Update(dt, l.world)
	l.camera.Update(l.player.Position())

	if l.player.Position().Y > l.lavaY {
		l.logger.Info("player fell into lava",
			zap.Uint64("tick", l.world.Ticks()),
			zap.Float64("x", l.player.Position().X),
		)
		return SwitchTo(KindLevel)
	}
	return Stay()
}

func (l *Level) HandleKey(ev obj.KeyEvent) {
	l.player.Input().Apply(ev)
}

func (l *Level) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	offset := l.camera.Offset()

	lavaTop := float32(l.lavaY + offset.Y)
	if lavaTop < float32(screen.Bounds().Dy()) {
		vector.FillRect(screen, 0, lavaTop, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())-lavaTop, colornames.Orangered, false)
	}

	for _, p := range l.platforms {
		p.Draw(screen, offset)
	}
	l.player.Draw(screen, offset)

	if l.debug {
		pw := l.world.Physics()
		pw.DebugDraw(screen, offset)
		colliders := pw.Colliders()
		for _, c := range colliders {
			ebitenutil.DebugPrintAt(screen, colliderLabel(c), int(c.Bounds.L+offset.X), int(c.Bounds.B+offset.Y)-16)
		}
		pos, vel := l.player.Position(), l.player.Velocity()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"tick %d  state %s  grounded %v  colliders %d\npos (%.1f, %.1f)  vel (%.1f, %.1f)",
			l.world.Ticks(), l.player.State(), l.player.Grounded(), len(colliders), pos.X, pos.Y, vel.X, vel.Y,
		), 10, 24)
	}
}

func colliderLabel(c physics.ColliderInfo) string {
	return fmt.Sprintf("%s %s %s", c.Type, c.Kind, c.Handle)
}

func (l *Level) World() *obj.World {
	return l.world
}

func (l *Level) Player() *obj.Player {
	return l.player
}

func (l *Level) Platforms() []*obj.Platform {
	return l.platforms
}

func (l *Level) RunID() string {
	return l.runID
}

// LavaY is the depth at which the player is sent back to the spawn.
func (l *Level) LavaY() float64 {
	return l.lavaY
}
