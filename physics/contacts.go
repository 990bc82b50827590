package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Contact is one point of a contact manifold. PointA lies on the queried
// collider, PointB on the other one. Distance is negative when overlapping.
type Contact struct {
	PointA   cp.Vector
	PointB   cp.Vector
	Distance float64
}

// ContactManifold holds the contact points between two colliders. Normal
// points from the queried collider toward the other one.
type ContactManifold struct {
	Normal cp.Vector
	Points []Contact
}

func (m ContactManifold) Clone() ContactManifold {
	out := ContactManifold{Normal: m.Normal}
	if len(m.Points) > 0 {
		out.Points = append([]Contact(nil), m.Points...)
	}
	return out
}

// TypePair orders the queried collider's tag first.
type TypePair struct {
	Self  ObjectType
	Other ObjectType
}

type Collision struct {
	Types    TypePair
	Self     ColliderHandle
	Other    ColliderHandle
	Manifold ContactManifold
}

// Collisions returns every active contact of the collider from the last step.
func (w *World) Collisions(h ColliderHandle) []Collision {
	rec := w.collider(h)
	body := w.body(rec.body).body

	var out []Collision
	body.EachArbiter(func(arb *cp.Arbiter) {
		if arb.Count() == 0 {
			return
		}
		self, other := arb.Shapes()
		if self != rec.shape || other.Sensor() {
			return
		}
		otherHandle, ok := w.byShape[other]
		if !ok {
			return
		}
		otherRec := w.collider(otherHandle)
		out = append(out, Collision{
			Types:    TypePair{Self: rec.tag, Other: otherRec.tag},
			Self:     h,
			Other:    otherHandle,
			Manifold: manifoldFromArbiter(arb),
		})
	})
	return out
}

// GroundCheck reports whether the collider rests on a platform: some
// platform contact has a normal whose x component rounds to zero.
func (w *World) GroundCheck(h ColliderHandle, self ObjectType) bool {
	if tag := w.collider(h).tag; tag != self {
		panic(fmt.Sprintf("physics: ground check on %s expected %s, collider is %s", h, self, tag))
	}
	for _, c := range w.Collisions(h) {
		if c.Types.Other != ObjectTypePlatform {
			continue
		}
		if len(c.Manifold.Points) > 0 && math.Round(c.Manifold.Normal.X) == 0 {
			return true
		}
	}
	return false
}

func manifoldFromArbiter(arb *cp.Arbiter) ContactManifold {
	set := arb.ContactPointSet()
	m := ContactManifold{
		Normal: set.Normal,
		Points: make([]Contact, set.Count),
	}
	for i := 0; i < set.Count; i++ {
		p := set.Points[i]
		m.Points[i] = Contact{PointA: p.PointA, PointB: p.PointB, Distance: p.Distance}
	}
	return m
}

// resolveGroundOverlap moves every dynamic body out of the ground colliders it
// overlaps until only the collision slop remains.
func (w *World) resolveGroundOverlap() {
	slop := w.spec.CollisionSlop
	for i := range w.bodies.items {
		rec := &w.bodies.items[i]
		if rec.kind != BodyDynamic {
			continue
		}

		var push overlapPush
		rec.body.EachArbiter(func(arb *cp.Arbiter) {
			if arb.Count() == 0 {
				return
			}
			self, other := arb.Shapes()
			if self.Sensor() || other.Sensor() || other.Body().GetType() != cp.BODY_STATIC {
				return
			}
			set := arb.ContactPointSet()
			deepest := 0.0
			for j := 0; j < set.Count; j++ {
				deepest = math.Min(deepest, set.Points[j].Distance)
			}
			if depth := -deepest - slop; depth > 0 {
				push.add(set.Normal.Mult(-depth))
			}
		})

		if v := push.vector(); v.X != 0 || v.Y != 0 {
			rec.body.SetPosition(rec.body.Position().Add(v))
		}
	}
}

// overlapPush keeps the largest correction in each direction so two ground
// colliders overlapping the body from the same side do not push it twice.
type overlapPush struct {
	minX, maxX float64
	minY, maxY float64
}

func (p *overlapPush) add(v cp.Vector) {
	p.minX = math.Min(p.minX, v.X)
	p.maxX = math.Max(p.maxX, v.X)
	p.minY = math.Min(p.minY, v.Y)
	p.maxY = math.Max(p.maxY, v.Y)
}

func (p overlapPush) vector() cp.Vector {
	return cp.Vector{X: p.minX + p.maxX, Y: p.minY + p.maxY}
}
