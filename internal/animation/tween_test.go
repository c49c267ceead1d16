package animation

import (
	"math"
	"testing"

	"DreamVilla/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range []string{"linear", "easeInQuad", "easeOutQuad", "easeInOutQuad"} {
		fn := Easing(name)
		if fn(0) != 0 {
			t.Errorf("%s(0) = %f, expected 0", name, fn(0))
		}
		if fn(1) != 1 {
			t.Errorf("%s(1) = %f, expected 1", name, fn(1))
		}
	}
}

func TestEaseInOutQuadMidpoint(t *testing.T) {
	if EaseInOutQuad(0.5) != 0.5 {
		t.Errorf("Expected 0.5 at the midpoint, got %f", EaseInOutQuad(0.5))
	}
	if EaseInOutQuad(0.25) != 0.125 {
		t.Errorf("Expected 0.125 at a quarter, got %f", EaseInOutQuad(0.25))
	}
}

func TestUnknownEasingIsLinear(t *testing.T) {
	if Easing("bounce")(0.3) != 0.3 {
		t.Error("Unknown easing should fall back to linear")
	}
}

func TestTweenMovesAndFinishes(t *testing.T) {
	obj := behaviour.NewGameObject("Rig")
	tw := NewTween("teleport", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{4, 0, 0}, 0.5, "linear")

	obj.AddComponent(tw)
	if obj.GetComponent("animation__teleport") != tw {
		t.Fatal("Tween should be registered under its prefixed name")
	}

	tw.Update(0.25)
	if math.Abs(float64(obj.Transform.Position.X()-2)) > 1e-5 {
		t.Errorf("Expected x=2 halfway, got %f", obj.Transform.Position.X())
	}

	tw.Update(0.3)
	if obj.Transform.Position != (mgl32.Vec3{4, 0, 0}) {
		t.Errorf("Expected to land exactly on target, got %v", obj.Transform.Position)
	}
	if !tw.Done() {
		t.Error("Tween should be done")
	}
	if len(obj.Components) != 0 {
		t.Errorf("Finished tween should detach itself, %d components left", len(obj.Components))
	}
}

func TestTweenZeroDurationJumps(t *testing.T) {
	obj := behaviour.NewGameObject("Rig")
	tw := NewTween("teleport", mgl32.Vec3{}, mgl32.Vec3{1, 2, 3}, 0, "easeInOutQuad")
	obj.AddComponent(tw)

	tw.Update(0.016)

	if obj.Transform.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Expected immediate jump, got %v", obj.Transform.Position)
	}
}

func TestTweenScale(t *testing.T) {
	obj := behaviour.NewGameObject("Ball")
	tw := NewTween("grow", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{3, 3, 3}, 1, "linear")
	tw.Property = PropertyScale
	obj.Transform.Position = mgl32.Vec3{5, 0, 0}

	obj.AddComponent(tw)
	tw.Update(0.5)

	if math.Abs(float64(obj.Transform.Scale.X()-2)) > 1e-5 {
		t.Errorf("Expected scale 2 halfway, got %f", obj.Transform.Scale.X())
	}
	if obj.Transform.Position != (mgl32.Vec3{5, 0, 0}) {
		t.Errorf("Scale tween should not move the object, got %v", obj.Transform.Position)
	}
}
