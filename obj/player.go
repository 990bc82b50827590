package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/physics"
	"github.com/troligtvis/lavafloor/prefabs"
)

// PlayerInput is the held state of the movement keys.
type PlayerInput struct {
	Left  bool
	Right bool
	Jump  bool
}

// Direction is right minus left: -1, 0 or +1.
func (in PlayerInput) Direction() float64 {
	var dir float64
	if in.Right {
		dir++
	}
	if in.Left {
		dir--
	}
	return dir
}

type Player struct {
	position common.Point
	velocity common.Point
	input    PlayerInput

	hasJumped bool
	// groundHistory[1] is the last tick's ground contact, groundHistory[0]
	// the one before. Read before it is shifted.
	groundHistory [2]bool

	body     physics.BodyHandle
	collider physics.ColliderHandle
	spec     prefabs.PlayerSpec
}

func NewPlayer(world *World, spawn common.Point, spec prefabs.PlayerSpec) *Player {
	spec = spec.WithDefaults()
	pw := world.Physics()
	body := pw.AddRigidBody(physics.RigidBodyDesc{
		Translation: spawn,
		Mass:        spec.Mass,
	})
	collider := pw.AddCollider(body, physics.ColliderDesc{
		HalfExtents: common.Pt(spec.HalfExtent, spec.HalfExtent),
		Type:        physics.ObjectTypePlayer,
	})
	return &Player{
		position:      spawn,
		groundHistory: [2]bool{true, true},
		body:          body,
		collider:      collider,
		spec:          spec,
	}
}

// Update runs the controller for one tick. dt is the frame delta in seconds
// and only scales the fall and low-jump gravity terms.
func (p *Player) Update(dt float64, world *World) {
	pw := world.Physics()

	dir := p.input.Direction()

	velocity := pw.Velocity(p.body)
	velocity.X = 0

	grounded := p.groundHistory[0] || p.groundHistory[1]
	maxSpeed := p.spec.MaxSpeed
	if !grounded {
		maxSpeed -= p.spec.AirSpeedPenalty
	}

	pw.SetVelocity(p.body, common.Add(velocity, common.Pt(dir*maxSpeed, 0)))
	p.position = pw.Position(p.body)

	onGround := pw.GroundCheck(p.collider, physics.ObjectTypePlayer)

	if (grounded || !p.hasJumped) && p.input.Jump {
		p.hasJumped = true
		velocity.X = 0
		pw.SetVelocity(p.body, common.Add(velocity, common.Pt(0, -p.spec.JumpPower)))
	}

	g := pw.ShapingGravity()
	v := pw.Velocity(p.body)
	if v.Y > 0 {
		v.Y += g * (p.spec.FallMultiplier - 1) * dt
		pw.SetVelocity(p.body, v)
	} else if v.Y < p.spec.LowJumpThreshold && !p.input.Jump {
		v.Y += g * (p.spec.LowJumpMultiplier - 1) * dt
		pw.SetVelocity(p.body, v)
	}
	p.velocity = v

	p.groundHistory[0] = p.groundHistory[1]
	p.groundHistory[1] = onGround
}

// Position is the body position as of the last Update.
func (p *Player) Position() common.Point {
	return p.position
}

// Velocity is the body velocity as of the last Update.
func (p *Player) Velocity() common.Point {
	return p.velocity
}

func (p *Player) Input() *PlayerInput {
	return &p.input
}

func (p *Player) HasJumped() bool {
	return p.hasJumped
}

// Grounded reports a ground contact in either of the last two ticks.
func (p *Player) Grounded() bool {
	return p.groundHistory[0] || p.groundHistory[1]
}

func (p *Player) Body() physics.BodyHandle {
	return p.body
}

func (p *Player) Collider() physics.ColliderHandle {
	return p.collider
}

func (p *Player) Spec() prefabs.PlayerSpec {
	return p.spec
}

// SetSpec swaps the tuning constants. Mass and size are fixed once the body
// exists, so only the movement fields take effect.
func (p *Player) SetSpec(spec prefabs.PlayerSpec) {
	spec = spec.WithDefaults()
	spec.Mass = p.spec.Mass
	spec.HalfExtent = p.spec.HalfExtent
	p.spec = spec
}

// Bounds returns the player box around its cached position.
func (p *Player) Bounds() cp.BB {
	return cp.NewBBForExtents(p.position.Vector(), p.spec.HalfExtent, p.spec.HalfExtent)
}

// State names what the player is doing, for overlays and logs.
func (p *Player) State() string {
	switch {
	case p.groundHistory[1] && p.velocity.X == 0:
		return "idle"
	case p.groundHistory[1]:
		return "running"
	case p.velocity.Y < 0:
		return "jumping"
	default:
		return "falling"
	}
}
