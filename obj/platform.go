package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/troligtvis/lavafloor/common"
	"github.com/troligtvis/lavafloor/physics"
)

// Platform is an immovable box fixture.
type Platform struct {
	size        common.Point
	translation common.Point
	position    common.Point
	bounds      cp.BB

	body     physics.BodyHandle
	collider physics.ColliderHandle
}

// NewPlatform inserts a ground body with a box of half extents size placed at
// translation. position is kept as the nominal placement; the collider
// bounds are what gets drawn.
func NewPlatform(size, translation, position common.Point, world *World) *Platform {
	pw := world.Physics()
	body := pw.AddGround()
	collider := pw.AddCollider(body, physics.ColliderDesc{
		HalfExtents: size,
		Translation: translation,
		Type:        physics.ObjectTypePlatform,
		Friction:    pw.Spec().PlatformFriction,
	})
	return &Platform{
		size:        size,
		translation: translation,
		position:    position,
		bounds:      pw.Collider(collider).Bounds,
		body:        body,
		collider:    collider,
	}
}

func (p *Platform) Size() common.Point { return p.size }
func (p *Platform) Translation() common.Point { return p.translation }
func (p *Platform) Position() common.Point { return p.position }
func (p *Platform) Body() physics.BodyHandle { return p.body }
func (p *Platform) Collider() physics.ColliderHandle { return p.collider }

// Bounds returns the world-space box of the platform collider.
func (p *Platform) Bounds() cp.BB {
	return p.bounds
}
