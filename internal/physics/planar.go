package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

// Planar runs bodies in the XY plane on a Chipmunk space. The Z coordinate of
// each body is kept as given at creation.
type Planar struct {
	space *cp.Space
}

type PlanarBody struct {
	body *cp.Body
	z    float32
}

func NewPlanar(gravity mgl32.Vec3) *Planar {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(toVector(gravity))
	return &Planar{space: space}
}

func (p *Planar) AddBody(spec BodySpec) Handle {
	return p.NewBody(spec)
}

func (p *Planar) NewBody(spec BodySpec) *PlanarBody {
	radius := float64(spec.radius())

	var body *cp.Body
	if spec.Mass > 0 {
		mass := float64(spec.Mass)
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	} else {
		body = cp.NewStaticBody()
	}
	body.SetPosition(toVector(spec.Position))

	linear := float64(clamp01(spec.LinearDamping))
	angular := float64(clamp01(spec.AngularDamping))
	if linear > 0 || angular > 0 {
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
			w := b.AngularVelocity()
			cp.BodyUpdateVelocity(b, gravity, damping*math.Pow(1-linear, dt), dt)
			if angular > 0 {
				b.SetAngularVelocity(b.AngularVelocity() - w*(1-math.Pow(1-angular, dt)))
			}
		})
	}

	p.space.AddBody(body)
	p.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))

	return &PlanarBody{body: body, z: spec.Position.Z()}
}

func (p *Planar) Step(dt float32) {
	if dt <= 0 {
		return
	}
	p.space.Step(float64(dt))
}

// ApplyForce forwards the XY part of the force to Chipmunk. Forces are cleared
// by the space on every step.
func (b *PlanarBody) ApplyForce(force, point mgl32.Vec3) {
	b.body.ApplyForceAtWorldPoint(toVector(force), toVector(point))
}

func (b *PlanarBody) Position() mgl32.Vec3 {
	pos := b.body.Position()
	return mgl32.Vec3{float32(pos.X), float32(pos.Y), b.z}
}

func (b *PlanarBody) Rotation() mgl32.Quat {
	return mgl32.QuatRotate(float32(b.body.Angle()), mgl32.Vec3{0, 0, 1})
}

// Body returns the underlying Chipmunk body.
func (b *PlanarBody) Body() *cp.Body {
	return b.body
}

func toVector(v mgl32.Vec3) cp.Vector {
	return cp.Vector{X: float64(v.X()), Y: float64(v.Y())}
}
