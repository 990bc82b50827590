// Command simulate runs a level headless with a scripted input timeline and
// logs the player's state, for tuning movement without a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/levels"
	"github.com/troligtvis/lavafloor/logging"
	"github.com/troligtvis/lavafloor/obj"
	"github.com/troligtvis/lavafloor/prefabs"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	levelName := flag.String("level", "", "level name in levels/ (default: built-in level)")
	ticks := flag.Int("ticks", 180, "number of ticks to simulate")
	script := flag.String("script", "", "input timeline, e.g. \"0:right,30:right+jump,40:right,90:\"")
	dt := flag.Float64("dt", common.TimeStep, "frame delta passed to the controller")
	every := flag.Int("every", 10, "log player state every N ticks")
	debug := flag.Bool("debug", false, "log physics setup at debug level")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	timeline, err := parseScript(*script)
	if err != nil {
		logger.Error("bad script", zap.Error(err))
		return 2
	}

	lvl := levels.Default()
	if *levelName != "" {
		if lvl, err = levels.Load(*levelName); err != nil {
			logger.Error("failed to load level", zap.Error(err))
			return 1
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

	logger, _ = logging.WithRun(logger, "simulate")
	logger = logger.With(zap.String("level", lvl.Name))

	world := obj.NewWorld(physicsSpec, logger)
	lvl.Build(world)
	player := obj.NewPlayer(world, lvl.Spawn, playerSpec)
	for _, c := range world.Physics().Colliders() {
		logger.Debug("collider",
			zap.Stringer("handle", c.Handle),
			zap.Stringer("type", c.Type),
			zap.Stringer("kind", c.Kind),
			zap.Float64("left", c.Bounds.L),
			zap.Float64("top", c.Bounds.B),
			zap.Float64("right", c.Bounds.R),
			zap.Float64("bottom", c.Bounds.T),
		)
	}

	for _, s := range simulate(world, player, timeline, *ticks, *dt, *every) {
		logger.Info("player",
			zap.Uint64("tick", s.Tick),
			zap.String("state", s.State),
			zap.Bool("grounded", s.Grounded),
			zap.Float64("x", s.Position.X),
			zap.Float64("y", s.Position.Y),
			zap.Float64("vx", s.Velocity.X),
			zap.Float64("vy", s.Velocity.Y),
		)
	}
	return 0
}

// sample is the player state after one tick.
type sample struct {
	Tick     uint64
	State    string
	Grounded bool
	Position common.Point
	Velocity common.Point
}

// keyframe sets the held input from Tick onward.
type keyframe struct {
	Tick  int
	Input obj.PlayerInput
}

func simulate(world *obj.World, player *obj.Player, timeline []keyframe, ticks int, dt float64, every int) []sample {
	if every <= 0 {
		every = 1
	}
	var out []sample
	next := 0
	for i := 0; i < ticks; i++ {
		for next < len(timeline) && timeline[next].Tick <= i {
			*player.Input() = timeline[next].Input
			next++
		}
		world.Step()
		player.Update(dt, world)
		if i%every == 0 || i == ticks-1 {
			out = append(out, sample{
				Tick:     world.Ticks(),
				State:    player.State(),
				Grounded: player.Grounded(),
				Position: player.Position(),
				Velocity: player.Velocity(),
			})
		}
	}
	return out
}

// parseScript reads "tick:key+key,tick:key". An empty key list releases
// everything.
func parseScript(s string) ([]keyframe, error) {
	var out []keyframe
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		tickStr, keys, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("keyframe %q: want tick:keys", part)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("keyframe %q: bad tick", part)
		}
		var in obj.PlayerInput
		for _, key := range strings.Split(keys, "+") {
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "":
			case "left":
				in.Left = true
			case "right":
				in.Right = true
			case "jump":
				in.Jump = true
			default:
				return nil, fmt.Errorf("keyframe %q: unknown key %q", part, key)
			}
		}
		out = append(out, keyframe{Tick: tick, Input: in})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Tick < out[j].Tick })
	return out, nil
}
