package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/physics"
	"github.com/troligtvis/lavafloor/prefabs"
)

const dt = 1.0 / 60.0

// newFloorScene builds the flat test layout: a wide thin floor at y=300 and
// a player resting right on top of it.
func newFloorScene(t *testing.T) (*World, *Player) {
	t.Helper()
	w := NewWorld(prefabs.DefaultPhysicsSpec(), nil)
	NewPlatform(common.Pt(400, 0.5), common.Pt(0, 300), common.Pt(0, 300), w)
	p := NewPlayer(w, common.Pt(0, 289.5), prefabs.DefaultPlayerSpec())
	return w, p
}

func tick(w *World, p *Player) {
	w.Step()
	p.Update(dt, w)
}

func run(w *World, p *Player, n int) {
	for i := 0; i < n; i++ {
		tick(w, p)
	}
}

func TestNewPlayer(t *testing.T) {
	w := NewWorld(prefabs.DefaultPhysicsSpec(), nil)
	p := NewPlayer(w, common.Pt(4, 5), prefabs.PlayerSpec{})

	assert.Equal(t, common.Pt(4, 5), p.Position())
	assert.Equal(t, common.Pt(4, 5), w.Physics().Position(p.Body()))
	assert.True(t, p.Grounded(), "ground history starts out set")
	assert.False(t, p.HasJumped())
	assert.Equal(t, 10.2, p.Spec().Mass)

	info := w.Physics().Collider(p.Collider())
	assert.Equal(t, physics.ObjectTypePlayer, info.Type)
	assert.Equal(t, common.Pt(10, 10), info.HalfExtents)
	assert.Equal(t, p.Bounds(), info.Bounds)
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	cases := []struct {
		name  string
		spawn common.Point
	}{
		{"touching", common.Pt(0, 289.5)},
		{"short_drop", common.Pt(0, 250)},
		{"long_drop", common.Pt(0, 0)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld(prefabs.DefaultPhysicsSpec(), nil)
			floor := NewPlatform(common.Pt(400, 0.5), common.Pt(0, 300), common.Pt(0, 300), w)
			p := NewPlayer(w, c.spawn, prefabs.DefaultPlayerSpec())
			slop := w.Physics().Spec().CollisionSlop

			run(w, p, 240)
			y := p.Position().Y
			assert.True(t, p.Grounded())
			assert.Equal(t, "idle", p.State())
			assert.LessOrEqual(t, p.Bounds().T, floor.Bounds().B+slop+1e-9, "player bottom must stay on the floor top")
			assert.GreaterOrEqual(t, y, 289.5-1e-9, "player must not float above the floor")

			run(w, p, 360)
			assert.InDelta(t, y, p.Position().Y, 1e-6, "resting player should not sink or bounce")
			assert.LessOrEqual(t, p.Bounds().T, floor.Bounds().B+slop+1e-9)
			assert.True(t, w.Physics().GroundCheck(p.Collider(), physics.ObjectTypePlayer))
			assert.Equal(t, uint64(600), w.Ticks())
		})
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	w := NewWorld(prefabs.DefaultPhysicsSpec(), nil)
	NewPlatform(common.Pt(250, 1), common.Pt(0, 50), common.Pt(0, 0), w)
	pillar := NewPlatform(common.Pt(20, 50), common.Pt(100, 10), common.Pt(100, 10), w)
	p := NewPlayer(w, common.Pt(0, 0), prefabs.DefaultPlayerSpec())
	slop := w.Physics().Spec().CollisionSlop

	run(w, p, 120)
	require.True(t, p.Grounded())

	p.Input().Right = true
	run(w, p, 180)

	wallX := pillar.Bounds().L
	assert.LessOrEqual(t, p.Bounds().R, wallX+slop+1e-9, "player edge must stay out of the pillar")
	assert.Greater(t, p.Bounds().R, wallX-1, "player should reach the pillar")
	assert.True(t, p.Grounded(), "pushing into a wall keeps the floor contact")
	assert.Equal(t, 100.0, p.Velocity().X)

	x := p.Position().X
	run(w, p, 60)
	assert.InDelta(t, x, p.Position().X, 1e-6)
}

func TestZeroInputStopsHorizontalMotion(t *testing.T) {
	cases := []struct {
		name  string
		prior float64
	}{
		{"moving_right", 75},
		{"moving_left", -300},
		{"at_rest", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, p := newFloorScene(t)
			run(w, p, 10)
			w.Physics().SetVelocity(p.Body(), common.Pt(c.prior, 0))

			p.Update(dt, w)

			assert.Equal(t, 0.0, p.Velocity().X)
			assert.Equal(t, 0.0, w.Physics().Velocity(p.Body()).X)
		})
	}
}

func TestRunSpeed(t *testing.T) {
	cases := []struct {
		name     string
		input    PlayerInput
		airborne bool
		want     float64
	}{
		{"right_on_ground", PlayerInput{Right: true}, false, 100},
		{"left_on_ground", PlayerInput{Left: true}, false, -100},
		{"both_cancel", PlayerInput{Left: true, Right: true}, false, 0},
		{"right_in_air", PlayerInput{Right: true}, true, 80},
		{"left_in_air", PlayerInput{Left: true}, true, -80},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var w *World
			var p *Player
			if c.airborne {
				w = NewWorld(prefabs.DefaultPhysicsSpec(), nil)
				p = NewPlayer(w, common.Pt(0, 0), prefabs.DefaultPlayerSpec())
				run(w, p, 2)
				require.False(t, p.Grounded())
			} else {
				w, p = newFloorScene(t)
				run(w, p, 10)
				require.True(t, p.Grounded())
			}

			*p.Input() = c.input
			tick(w, p)
			assert.Equal(t, c.want, p.Velocity().X)
		})
	}
}

func TestJumpFromGround(t *testing.T) {
	w, p := newFloorScene(t)
	run(w, p, 60)
	require.True(t, p.Grounded())

	p.Input().Right = true
	p.Input().Jump = true
	tick(w, p)

	assert.True(t, p.HasJumped())
	assert.Equal(t, 0.0, p.Velocity().X, "jump resets horizontal velocity")
	assert.InDelta(t, -p.Spec().JumpPower, p.Velocity().Y, 0.5)
	assert.Equal(t, p.Velocity(), w.Physics().Velocity(p.Body()))
}

func TestFirstAirborneJumpIsFree(t *testing.T) {
	w := NewWorld(prefabs.DefaultPhysicsSpec(), nil)
	p := NewPlayer(w, common.Pt(0, 0), prefabs.DefaultPlayerSpec())

	// two ticks of free fall flush the initial ground history
	run(w, p, 2)
	require.False(t, p.Grounded())
	require.False(t, p.HasJumped())

	w.Step()
	before := w.Physics().Velocity(p.Body()).Y
	p.Input().Jump = true
	p.Update(dt, w)
	assert.True(t, p.HasJumped())
	assert.InDelta(t, before-p.Spec().JumpPower, p.Velocity().Y, 1e-9)

	p.Input().Jump = false
	run(w, p, 3)

	w.Step()
	before = w.Physics().Velocity(p.Body()).Y
	require.Greater(t, before, p.Spec().LowJumpThreshold)
	p.Input().Jump = true
	p.Update(dt, w)
	fallShaping := w.Physics().ShapingGravity() * (p.Spec().FallMultiplier - 1) * dt
	assert.InDelta(t, before+fallShaping, p.Velocity().Y, 1e-9, "second airborne jump must not fire")
}

func TestJumpNeedsRecentGround(t *testing.T) {
	w, p := newFloorScene(t)
	run(w, p, 30)

	// holding jump keeps re-firing until the ground history clears
	p.Input().Jump = true
	for i := 0; i < 30 && p.Grounded(); i++ {
		tick(w, p)
	}
	require.True(t, p.HasJumped())
	require.False(t, p.Grounded())

	p.Input().Jump = false
	tick(w, p)
	require.False(t, p.Grounded())

	w.Step()
	before := w.Physics().Velocity(p.Body()).Y
	require.Less(t, before, 0.0, "still rising, so a held jump adds no shaping")
	p.Input().Jump = true
	p.Update(dt, w)
	assert.InDelta(t, before, p.Velocity().Y, 1e-9)
}

func TestReleasingJumpShortensRise(t *testing.T) {
	jump := func(hold bool) *Player {
		w, p := newFloorScene(t)
		run(w, p, 60)
		p.Input().Jump = true
		tick(w, p)
		p.Input().Jump = hold
		run(w, p, 6)
		return p
	}

	held := jump(true)
	released := jump(false)

	require.Less(t, held.Velocity().Y, 0.0, "held jump is still rising")
	assert.Greater(t, released.Velocity().Y, held.Velocity().Y)
	assert.Greater(t, released.Position().Y, held.Position().Y, "held jump climbs higher")
}

func TestFallMultiplierSpeedsUpDescent(t *testing.T) {
	w := NewWorld(prefabs.DefaultPhysicsSpec(), nil)
	p := NewPlayer(w, common.Pt(0, 0), prefabs.DefaultPlayerSpec())
	pw := w.Physics()

	pw.SetVelocity(p.Body(), common.Pt(0, 10))
	w.Step()
	before := pw.Velocity(p.Body()).Y
	p.Update(dt, w)

	want := before + pw.ShapingGravity()*(p.Spec().FallMultiplier-1)*dt
	assert.InDelta(t, want, p.Velocity().Y, 1e-9)
}

func TestSetSpecKeepsBodyShape(t *testing.T) {
	w := NewWorld(prefabs.DefaultPhysicsSpec(), nil)
	p := NewPlayer(w, common.Pt(0, 0), prefabs.DefaultPlayerSpec())

	spec := prefabs.DefaultPlayerSpec()
	spec.Mass = 99
	spec.HalfExtent = 50
	spec.MaxSpeed = 150
	spec.AirSpeedPenalty = 0
	p.SetSpec(spec)
	assert.Equal(t, 150.0, p.Spec().MaxSpeed)
	assert.Equal(t, 0.0, p.Spec().AirSpeedPenalty, "zero tuning values are kept")
	assert.Equal(t, 10.2, p.Spec().Mass)
	assert.Equal(t, 10.0, p.Spec().HalfExtent)
	assert.Equal(t, 20.0, p.Spec().JumpPower)
}
