package physics

import "github.com/jakecoffman/cp"

// ObjectType classifies a collider for contact queries.
type ObjectType uint8

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypePlayer
	ObjectTypePlatform
)

func (t ObjectType) String() string {
	switch t {
	case ObjectTypePlayer:
		return "player"
	case ObjectTypePlatform:
		return "platform"
	default:
		return "unknown"
	}
}

func (t ObjectType) valid() bool {
	return t == ObjectTypePlayer || t == ObjectTypePlatform
}

func (t ObjectType) collisionType() cp.CollisionType {
	return cp.CollisionType(t)
}

// BodyKind separates simulated bodies from immovable ground.
type BodyKind uint8

const (
	BodyDynamic BodyKind = iota
	BodyGround
)

func (k BodyKind) String() string {
	if k == BodyGround {
		return "ground"
	}
	return "dynamic"
}
