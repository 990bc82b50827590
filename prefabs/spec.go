package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	PlayerSpecFile  = "player.yaml"
	PhysicsSpecFile = "physics.yaml"
)

// PlayerSpec holds the movement feel constants of the player controller.
type PlayerSpec struct {
	Name              string  `yaml:"name"`
	Mass              float64 `yaml:"mass"`
	HalfExtent        float64 `yaml:"half_extent"`
	MaxSpeed          float64 `yaml:"max_speed"`
	AirSpeedPenalty   float64 `yaml:"air_speed_penalty"`
	JumpPower         float64 `yaml:"jump_power"`
	FallMultiplier    float64 `yaml:"fall_multiplier"`
	LowJumpMultiplier float64 `yaml:"low_jump_multiplier"`
	LowJumpThreshold  float64 `yaml:"low_jump_threshold"`
}

// PhysicsSpec configures the physics world at construction.
type PhysicsSpec struct {
	TimeStep         float64 `yaml:"time_step"`
	Gravity          float64 `yaml:"gravity"`
	ShapingGravity   float64 `yaml:"shaping_gravity"`
	Iterations       uint    `yaml:"iterations"`
	PlatformFriction float64 `yaml:"platform_friction"`
	CollisionSlop    float64 `yaml:"collision_slop"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:              "player",
		Mass:              10.2,
		HalfExtent:        10,
		MaxSpeed:          100,
		AirSpeedPenalty:   20,
		JumpPower:         20,
		FallMultiplier:    12.5,
		LowJumpMultiplier: 12,
		LowJumpThreshold:  0.3,
	}
}

func DefaultPhysicsSpec() PhysicsSpec {
	return PhysicsSpec{
		TimeStep:         1.0 / 60.0,
		Gravity:          9.81,
		ShapingGravity:   30,
		Iterations:       20,
		PlatformFriction: 0.8,
		CollisionSlop:    0.1,
	}
}

// WithDefaults turns the zero spec into DefaultPlayerSpec and otherwise only
// fills the fields a player cannot be built without. Zero tuning values are
// kept.
func (s PlayerSpec) WithDefaults() PlayerSpec {
	d := DefaultPlayerSpec()
	if s == (PlayerSpec{}) {
		return d
	}
	if s.Name == "" {
		s.Name = d.Name
	}
	if s.Mass <= 0 {
		s.Mass = d.Mass
	}
	if s.HalfExtent <= 0 {
		s.HalfExtent = d.HalfExtent
	}
	return s
}

// WithDefaults turns the zero spec into DefaultPhysicsSpec and otherwise only
// fills the fields a world cannot step without. Zero gravity, friction and
// slop are valid.
func (s PhysicsSpec) WithDefaults() PhysicsSpec {
	d := DefaultPhysicsSpec()
	if s == (PhysicsSpec{}) {
		return d
	}
	if s.TimeStep <= 0 {
		s.TimeStep = d.TimeStep
	}
	if s.Iterations == 0 {
		s.Iterations = d.Iterations
	}
	if s.CollisionSlop < 0 {
		s.CollisionSlop = d.CollisionSlop
	}
	return s
}

// LoadSpec decodes filename on top of base, so fields the file omits keep
// their value from base.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadPlayerSpec() (PlayerSpec, error) {
	spec, err := LoadSpec(PlayerSpecFile, DefaultPlayerSpec())
	if err != nil {
		return DefaultPlayerSpec(), err
	}
	return spec.WithDefaults(), nil
}

func LoadPhysicsSpec() (PhysicsSpec, error) {
	spec, err := LoadSpec(PhysicsSpecFile, DefaultPhysicsSpec())
	if err != nil {
		return DefaultPhysicsSpec(), err
	}
	return spec.WithDefaults(), nil
}
