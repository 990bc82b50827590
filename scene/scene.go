package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/troligtvis/lavafloor/levels"
	"github.com/troligtvis/lavafloor/obj"
	"github.com/troligtvis/lavafloor/prefabs"
	"go.uber.org/zap"
)

// Kind enumerates the scenes the game can be in.
type Kind uint8

const (
	KindMenu Kind = iota
	KindLevel
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindLevel:
		return "level"
	default:
		return "unknown"
	}
}

// Transition is what a scene asks for at the end of its update.
type Transition struct {
	Kind Kind
	Stay bool
}

func Stay() Transition {
	return Transition{Stay: true}
}

// SwitchTo asks for a fresh scene of kind k. Switching to the current kind
// restarts it.
func SwitchTo(k Kind) Transition {
	return Transition{Kind: k}
}

// Config carries everything needed to build a scene.
type Config struct {
	Level   levels.Level
	Player  prefabs.PlayerSpec
	Physics prefabs.PhysicsSpec
	Logger  *zap.Logger
	Debug   bool
}

// Director owns the active scene. Exactly one of menu and level is set,
// matching kind.
type Director struct {
	cfg    Config
	logger *zap.Logger

	kind  Kind
	menu  *Menu
	level *Level

	// held mirrors the movement keys across scene changes.
	held obj.PlayerInput
}

func NewDirector(cfg Config) *Director {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	d := &Director{cfg: cfg, logger: cfg.Logger.Named("scene")}
	d.enter(KindMenu)
	return d
}

// Start skips straight to kind.
func (d *Director) Start(kind Kind) {
	d.enter(kind)
}

func (d *Director) Kind() Kind {
	return d.kind
}

// Level returns the running level scene, or nil in the menu.
func (d *Director) Level() *Level {
	return d.level
}

func (d *Director) Menu() *Menu {
	return d.menu
}

func (d *Director) Name() string {
	switch d.kind {
	case KindMenu:
		return d.menu.Name()
	case KindLevel:
		return d.level.Name()
	}
	return ""
}

func (d *Director) Update(dt float64) {
	var t Transition
	switch d.kind {
	case KindMenu:
		t = d.menu.Update(dt)
	case KindLevel:
		t = d.level.Update(dt)
	}
	if !t.Stay {
		d.enter(t.Kind)
	}
}

func (d *Director) Draw(screen *ebiten.Image) {
	switch d.kind {
	case KindMenu:
		d.menu.Draw(screen)
	case KindLevel:
		d.level.Draw(screen)
	}
}

func (d *Director) HandleKey(ev obj.KeyEvent) {
	d.held.Apply(ev)
	switch d.kind {
	case KindMenu:
		d.menu.HandleKey(ev)
	case KindLevel:
		d.level.HandleKey(ev)
	}
}

// SetPlayerSpec applies new tuning to the running level and every later one.
func (d *Director) SetPlayerSpec(spec prefabs.PlayerSpec) {
	d.cfg.Player = spec
	if d.level != nil {
		d.level.player.SetSpec(spec)
	}
}

// SetPhysicsSpec takes effect the next time a level is entered.
func (d *Director) SetPhysicsSpec(spec prefabs.PhysicsSpec) {
	d.cfg.Physics = spec
}

func (d *Director) SetLevel(lvl levels.Level) {
	d.cfg.Level = lvl
}

func (d *Director) enter(kind Kind) {
	prev := d.kind
	switch kind {
	case KindMenu:
		d.menu = NewMenu()
		d.level = nil
	case KindLevel:
		d.level = NewLevel(d.cfg)
		d.menu = nil
		// key events only report transitions, so carry held directions
		// into the new level. A held jump needs a fresh press.
		in := d.level.player.Input()
		in.Left, in.Right = d.held.Left, d.held.Right
	default:
		d.logger.Warn("ignoring transition to unknown scene", zap.Stringer("kind", kind))
		return
	}
	d.kind = kind
	d.logger.Info("scene entered", zap.Stringer("from", prev), zap.Stringer("to", kind))
}
