// Package buoyancy computes the upward corrective force that keeps a body
// floating near a water plane.
package buoyancy

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultRadius        = 0.2
	DefaultStrength      = 0.6
	DefaultWaterSurfaceY = 0.27
)

// Config describes the submersion zone of one floating body. It is created once
// when the body is set up and never changed afterwards.
type Config struct {
	Radius        float32 // Half-height of the submersion zone
	Strength      float32 // Force per unit of depth
	WaterSurfaceY float32 // World-space height of the water plane
}

func DefaultConfig() Config {
	return Config{
		Radius:        DefaultRadius,
		Strength:      DefaultStrength,
		WaterSurfaceY: DefaultWaterSurfaceY,
	}
}

// ForceSink applies a world-space force at a world-space point. It is
// implemented by the physics backend that owns the body.
type ForceSink interface {
	ApplyForce(force, point mgl32.Vec3)
}

// Magnitude returns the upward force for a reference point at height y.
// The boolean is false when the point is above the submersion zone and no
// force should be applied at all.
func Magnitude(cfg Config, y float32) (float32, bool) {
	distBelow := cfg.WaterSurfaceY - y
	if distBelow < -cfg.Radius {
		return 0, false
	}
	depth := distBelow + cfg.Radius
	if depth < 0 {
		depth = 0
	}
	return cfg.Strength * depth, true
}

// Step applies at most one upward force to sink for a body whose reference
// point is at position. A nil sink means there is no body this frame.
func Step(cfg Config, position mgl32.Vec3, sink ForceSink) {
	if sink == nil {
		return
	}
	magnitude, ok := Magnitude(cfg, position.Y())
	if !ok {
		return
	}
	sink.ApplyForce(mgl32.Vec3{0, magnitude, 0}, position)
}
