package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// World is a minimal 3D rigid-body integrator. Bodies are spheres for the
// purpose of inertia and never collide.
type World struct {
	Gravity mgl32.Vec3
	bodies  []*Body
}

// Body is a rigid body owned by a World
type Body struct {
	position        mgl32.Vec3
	orientation     mgl32.Quat
	Velocity        mgl32.Vec3
	AngularVelocity mgl32.Vec3

	invMass        float32
	invInertia     float32
	linearDamping  float32
	angularDamping float32

	force  mgl32.Vec3
	torque mgl32.Vec3
}

func NewWorld(gravity mgl32.Vec3) *World {
	return &World{Gravity: gravity}
}

func (w *World) AddBody(spec BodySpec) Handle {
	return w.NewBody(spec)
}

// NewBody is AddBody returning the concrete type
func (w *World) NewBody(spec BodySpec) *Body {
	b := &Body{
		position:       spec.Position,
		orientation:    mgl32.QuatIdent(),
		linearDamping:  clamp01(spec.LinearDamping),
		angularDamping: clamp01(spec.AngularDamping),
	}
	if spec.Mass > 0 {
		r := spec.radius()
		b.invMass = 1 / spec.Mass
		// Solid sphere
		b.invInertia = 1 / (0.4 * spec.Mass * r * r)
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Step advances every dynamic body by dt using semi-implicit Euler and clears
// the accumulated forces.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		b.integrate(w.Gravity, dt)
	}
}

func (b *Body) integrate(gravity mgl32.Vec3, dt float32) {
	defer b.clearForces()
	if b.invMass == 0 {
		return
	}

	acc := gravity.Add(b.force.Mul(b.invMass))
	b.Velocity = b.Velocity.Add(acc.Mul(dt)).Mul(dampingFactor(b.linearDamping, dt))
	b.position = b.position.Add(b.Velocity.Mul(dt))

	angAcc := b.torque.Mul(b.invInertia)
	b.AngularVelocity = b.AngularVelocity.Add(angAcc.Mul(dt)).Mul(dampingFactor(b.angularDamping, dt))
	if b.AngularVelocity.Len() > 0 {
		spin := mgl32.Quat{W: 0, V: b.AngularVelocity}.Mul(b.orientation).Scale(0.5 * dt)
		b.orientation = b.orientation.Add(spin).Normalize()
	}
}

func (b *Body) clearForces() {
	b.force = mgl32.Vec3{}
	b.torque = mgl32.Vec3{}
}

// ApplyForce accumulates a world-space force acting at a world-space point
// until the next step. Off-centre points also produce torque.
func (b *Body) ApplyForce(force, point mgl32.Vec3) {
	b.force = b.force.Add(force)
	b.torque = b.torque.Add(point.Sub(b.position).Cross(force))
}

func (b *Body) Position() mgl32.Vec3 {
	return b.position
}

func (b *Body) Rotation() mgl32.Quat {
	return b.orientation
}

func (b *Body) Force() mgl32.Vec3 {
	return b.force
}

func (b *Body) Torque() mgl32.Vec3 {
	return b.torque
}

func (b *Body) IsStatic() bool {
	return b.invMass == 0
}

// dampingFactor is the fraction of velocity kept after dt seconds
func dampingFactor(damping, dt float32) float32 {
	if damping <= 0 {
		return 1
	}
	return float32(math.Pow(float64(1-damping), float64(dt)))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
