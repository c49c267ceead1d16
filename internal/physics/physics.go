// Package physics hosts the bodies that floating objects push against.
// Two backends are available: a small 3D rigid-body world and a planar
// world built on Chipmunk for side-view scenes.
package physics

import (
	"fmt"

	"DreamVilla/internal/buoyancy"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	BackendRigid  = "rigid"
	BackendPlanar = "planar"

	defaultRadius = 0.5
)

// BodySpec describes a body to create. Mass <= 0 makes the body static.
type BodySpec struct {
	Position       mgl32.Vec3
	Mass           float32
	Radius         float32
	LinearDamping  float32
	AngularDamping float32
}

func (s BodySpec) radius() float32 {
	if s.Radius <= 0 {
		return defaultRadius
	}
	return s.Radius
}

// Handle is what scene objects keep of their body: a place to push forces and
// a pose to read back after each step.
type Handle interface {
	buoyancy.ForceSink
	Position() mgl32.Vec3
	Rotation() mgl32.Quat
}

type Backend interface {
	AddBody(spec BodySpec) Handle
	Step(dt float32)
}

// NewBackend creates the backend registered under name
func NewBackend(name string, gravity mgl32.Vec3) (Backend, error) {
	switch name {
	case "", BackendRigid:
		return NewWorld(gravity), nil
	case BackendPlanar:
		return NewPlanar(gravity), nil
	default:
		return nil, fmt.Errorf("unknown physics backend %q", name)
	}
}
