package physics

import (
	"math"
	"testing"

	"DreamVilla/internal/buoyancy"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWorldFreeFall(t *testing.T) {
	w := NewWorld(mgl32.Vec3{0, -10, 0})
	b := w.NewBody(BodySpec{Position: mgl32.Vec3{0, 10, 0}, Mass: 1})

	for i := 0; i < 10; i++ {
		w.Step(0.1)
	}

	// Semi-implicit Euler: y = 10 - 10 * 0.1^2 * (1+2+...+10)
	expected := float32(10 - 10*0.01*55)
	if math.Abs(float64(b.Position().Y()-expected)) > 1e-4 {
		t.Errorf("Expected y=%f, got %f", expected, b.Position().Y())
	}
	if math.Abs(float64(b.Velocity.Y()+10)) > 1e-4 {
		t.Errorf("Expected vy=-10, got %f", b.Velocity.Y())
	}
}

func TestWorldStaticBodyDoesNotMove(t *testing.T) {
	w := NewWorld(mgl32.Vec3{0, -10, 0})
	b := w.NewBody(BodySpec{Position: mgl32.Vec3{1, 2, 3}})

	b.ApplyForce(mgl32.Vec3{0, 100, 0}, b.Position())
	w.Step(0.5)

	if !b.IsStatic() {
		t.Error("Body without mass should be static")
	}
	if b.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Static body moved to %v", b.Position())
	}
	if b.Force() != (mgl32.Vec3{}) {
		t.Error("Forces should be cleared after a step even for static bodies")
	}
}

func TestApplyForceAtCentreHasNoTorque(t *testing.T) {
	w := NewWorld(mgl32.Vec3{})
	b := w.NewBody(BodySpec{Position: mgl32.Vec3{0, 1, 0}, Mass: 2})

	b.ApplyForce(mgl32.Vec3{0, 4, 0}, b.Position())

	if b.Force() != (mgl32.Vec3{0, 4, 0}) {
		t.Errorf("Expected force (0,4,0), got %v", b.Force())
	}
	if b.Torque() != (mgl32.Vec3{}) {
		t.Errorf("Expected no torque, got %v", b.Torque())
	}

	w.Step(1)

	if math.Abs(float64(b.Velocity.Y()-2)) > 1e-5 {
		t.Errorf("Expected vy=2 after 1s of 4N on 2kg, got %f", b.Velocity.Y())
	}
	if b.Force() != (mgl32.Vec3{}) {
		t.Error("Force accumulator should be cleared after a step")
	}
}

func TestApplyForceOffCentreSpins(t *testing.T) {
	w := NewWorld(mgl32.Vec3{})
	b := w.NewBody(BodySpec{Mass: 1, Radius: 1})

	b.ApplyForce(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0})

	if b.Torque() != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected torque (0,0,1), got %v", b.Torque())
	}

	w.Step(0.1)

	if b.AngularVelocity.Z() <= 0 {
		t.Errorf("Expected positive spin around Z, got %v", b.AngularVelocity)
	}
	if b.Rotation() == mgl32.QuatIdent() {
		t.Error("Orientation should change after spinning")
	}
	if math.Abs(float64(b.Rotation().Len()-1)) > 1e-5 {
		t.Error("Orientation should stay normalized")
	}
}

func TestLinearDampingSlowsBody(t *testing.T) {
	w := NewWorld(mgl32.Vec3{})
	damped := w.NewBody(BodySpec{Mass: 1, LinearDamping: 0.5})
	free := w.NewBody(BodySpec{Mass: 1})
	damped.Velocity = mgl32.Vec3{1, 0, 0}
	free.Velocity = mgl32.Vec3{1, 0, 0}

	w.Step(1)

	if math.Abs(float64(damped.Velocity.X()-0.5)) > 1e-5 {
		t.Errorf("Expected damped velocity 0.5, got %f", damped.Velocity.X())
	}
	if free.Velocity.X() != 1 {
		t.Errorf("Undamped body should keep its velocity, got %f", free.Velocity.X())
	}
}

func TestBuoyancyKeepsBodyAfloat(t *testing.T) {
	w := NewWorld(mgl32.Vec3{0, -9.82, 0})
	b := w.NewBody(BodySpec{Position: mgl32.Vec3{0, 1, 0}, Mass: 0.01, LinearDamping: 0.5})
	cfg := buoyancy.DefaultConfig()

	for i := 0; i < 600; i++ {
		buoyancy.Step(cfg, b.Position(), b)
		w.Step(1.0 / 60)
	}

	y := b.Position().Y()
	if y < cfg.WaterSurfaceY-cfg.Radius || y > cfg.WaterSurfaceY+cfg.Radius {
		t.Errorf("Expected body to settle inside the submersion zone, got y=%f", y)
	}
}

func TestNewBackend(t *testing.T) {
	for _, name := range []string{"", BackendRigid, BackendPlanar} {
		if _, err := NewBackend(name, mgl32.Vec3{}); err != nil {
			t.Errorf("Backend %q: unexpected error %v", name, err)
		}
	}
	if _, err := NewBackend("bullet", mgl32.Vec3{}); err == nil {
		t.Error("Unknown backend should return an error")
	}
}
