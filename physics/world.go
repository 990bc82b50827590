package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/prefabs"
	"go.uber.org/zap"
)

// RigidBodyDesc describes a dynamic body. Rotation is locked so attached
// boxes stay axis-aligned.
type RigidBodyDesc struct {
	Translation common.Point
	Mass        float64
}

// ColliderDesc describes a box collider relative to its body.
type ColliderDesc struct {
	HalfExtents common.Point
	Translation common.Point
	Type        ObjectType
	Friction    float64
}

// ColliderInfo is a read-only view of a collider for rendering.
type ColliderInfo struct {
	Handle      ColliderHandle
	Body        BodyHandle
	Type        ObjectType
	Kind        BodyKind
	HalfExtents common.Point
	Bounds      cp.BB
}

type bodyRecord struct {
	body *cp.Body
	kind BodyKind
	mass float64
}

type colliderRecord struct {
	shape       *cp.Shape
	body        BodyHandle
	halfExtents common.Point
	translation common.Point
	tag         ObjectType
}

// World owns the chipmunk space and every body and collider in it.
type World struct {
	space  *cp.Space
	spec   prefabs.PhysicsSpec
	logger *zap.Logger

	bodies    arena[bodyRecord]
	colliders arena[colliderRecord]
	byShape   map[*cp.Shape]ColliderHandle

	ticks uint64
}

func NewWorld(spec prefabs.PhysicsSpec, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	spec = spec.WithDefaults()

	space := cp.NewSpace()
	space.Iterations = spec.Iterations
	space.SetGravity(cp.Vector{X: 0, Y: spec.Gravity})
	space.SetCollisionSlop(spec.CollisionSlop)

	w := &World{
		space:     space,
		spec:      spec,
		logger:    logger.Named("physics"),
		bodies:    newArena[bodyRecord](),
		colliders: newArena[colliderRecord](),
		byShape:   make(map[*cp.Shape]ColliderHandle),
	}
	w.logger.Debug("world created",
		zap.Float64("time_step", spec.TimeStep),
		zap.Float64("gravity", spec.Gravity),
		zap.Uint("iterations", spec.Iterations),
		zap.Float64("collision_slop", spec.CollisionSlop),
	)
	return w
}

// Step advances the simulation by one fixed time step. Dynamic bodies end
// the step overlapping ground colliders by at most the collision slop.
func (w *World) Step() {
	w.space.Step(w.spec.TimeStep)
	w.resolveGroundOverlap()
	w.ticks++
}

// Ticks returns how many steps have been taken.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Elapsed returns the simulated time in seconds.
func (w *World) Elapsed() float64 {
	return float64(w.ticks) * w.spec.TimeStep
}

func (w *World) TimeStep() float64 {
	return w.spec.TimeStep
}

// Gravity is the downward acceleration applied by Step.
func (w *World) Gravity() float64 {
	return w.spec.Gravity
}

// ShapingGravity is the gravity magnitude controllers use for their own
// fall and low-jump adjustments. It is not applied by Step.
func (w *World) ShapingGravity() float64 {
	return w.spec.ShapingGravity
}

// Spec returns the configuration the world was built with.
func (w *World) Spec() prefabs.PhysicsSpec {
	return w.spec
}

func (w *World) AddRigidBody(desc RigidBodyDesc) BodyHandle {
	mass := desc.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(desc.Translation.Vector())
	w.space.AddBody(body)

	h := BodyHandle(w.bodies.insert(bodyRecord{body: body, kind: BodyDynamic, mass: mass}))
	w.logger.Debug("rigid body added",
		zap.Stringer("body", h),
		zap.Float64("mass", mass),
		zap.Float64("x", desc.Translation.X),
		zap.Float64("y", desc.Translation.Y),
	)
	return h
}

// AddGround inserts an immovable body at the origin.
func (w *World) AddGround() BodyHandle {
	body := cp.NewStaticBody()
	w.space.AddBody(body)

	h := BodyHandle(w.bodies.insert(bodyRecord{body: body, kind: BodyGround}))
	w.logger.Debug("ground body added", zap.Stringer("body", h))
	return h
}

func (w *World) AddCollider(bh BodyHandle, desc ColliderDesc) ColliderHandle {
	rec := w.body(bh)
	if !desc.Type.valid() {
		panic(fmt.Sprintf("physics: collider on %s has no object type", bh))
	}
	if desc.HalfExtents.X <= 0 || desc.HalfExtents.Y <= 0 {
		panic(fmt.Sprintf("physics: collider on %s has non-positive half extents %v", bh, desc.HalfExtents))
	}

	bb := cp.NewBBForExtents(desc.Translation.Vector(), desc.HalfExtents.X, desc.HalfExtents.Y)
	shape := cp.NewBox2(rec.body, bb, 0)
	shape.SetFriction(desc.Friction)
	shape.SetCollisionType(desc.Type.collisionType())
	w.space.AddShape(shape)

	ch := ColliderHandle(w.colliders.insert(colliderRecord{
		shape:       shape,
		body:        bh,
		halfExtents: desc.HalfExtents,
		translation: desc.Translation,
		tag:         desc.Type,
	}))
	w.byShape[shape] = ch
	w.logger.Debug("collider added",
		zap.Stringer("collider", ch),
		zap.Stringer("body", bh),
		zap.Stringer("type", desc.Type),
	)
	return ch
}

func (w *World) Position(h BodyHandle) common.Point {
	return common.FromVector(w.body(h).body.Position())
}

func (w *World) SetPosition(h BodyHandle, p common.Point) {
	w.dynamicBody(h, "set position").body.SetPosition(p.Vector())
}

func (w *World) Velocity(h BodyHandle) common.Point {
	return common.FromVector(w.body(h).body.Velocity())
}

func (w *World) SetVelocity(h BodyHandle, v common.Point) {
	w.dynamicBody(h, "set velocity").body.SetVelocityVector(v.Vector())
}

// Kind reports whether h is a dynamic or ground body.
func (w *World) Kind(h BodyHandle) BodyKind {
	return w.body(h).kind
}

func (w *World) Collider(h ColliderHandle) ColliderInfo {
	return w.colliderInfo(h, w.collider(h))
}

// Colliders returns every collider in insertion order.
func (w *World) Colliders() []ColliderInfo {
	out := make([]ColliderInfo, 0, w.colliders.len())
	for i := 0; i < w.colliders.len(); i++ {
		h := ColliderHandle(w.colliders.handleAt(i))
		out = append(out, w.colliderInfo(h, &w.colliders.items[i]))
	}
	return out
}

func (w *World) colliderInfo(h ColliderHandle, rec *colliderRecord) ColliderInfo {
	body := w.body(rec.body)
	center := common.Add(common.FromVector(body.body.Position()), rec.translation)
	return ColliderInfo{
		Handle:      h,
		Body:        rec.body,
		Type:        rec.tag,
		Kind:        body.kind,
		HalfExtents: rec.halfExtents,
		Bounds:      cp.NewBBForExtents(center.Vector(), rec.halfExtents.X, rec.halfExtents.Y),
	}
}

func (w *World) body(h BodyHandle) *bodyRecord {
	rec, ok := w.bodies.get(uint64(h))
	if !ok {
		panic(fmt.Sprintf("physics: unknown body handle %s", h))
	}
	return rec
}

func (w *World) dynamicBody(h BodyHandle, op string) *bodyRecord {
	rec := w.body(h)
	if rec.kind != BodyDynamic {
		panic(fmt.Sprintf("physics: %s on %s body %s", op, rec.kind, h))
	}
	return rec
}

func (w *World) collider(h ColliderHandle) *colliderRecord {
	rec, ok := w.colliders.get(uint64(h))
	if !ok {
		panic(fmt.Sprintf("physics: unknown collider handle %s", h))
	}
	return rec
}
