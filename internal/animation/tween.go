package animation

import (
	"DreamVilla/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	PropertyPosition = "position"
	PropertyScale    = "scale"

	// Prefix of the type name every tween is registered under on its object
	NamePrefix = "animation__"
)

// Tween animates one transform property from From to To over Duration seconds.
// When finished it writes To exactly and detaches itself from its object.
type Tween struct {
	behaviour.BaseComponent
	Name     string
	Property string
	From     mgl32.Vec3
	To       mgl32.Vec3
	Duration float32
	Easing   string

	elapsed float32
	ease    EasingFunc
	done    bool
}

func NewTween(name string, from, to mgl32.Vec3, duration float32, easing string) *Tween {
	return &Tween{
		Name:     name,
		Property: PropertyPosition,
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
	}
}

func (tw *Tween) Awake() {
	tw.ease = Easing(tw.Easing)
	tw.apply(0)
}

func (tw *Tween) Update(dt float32) {
	if tw.done {
		return
	}
	tw.elapsed += dt
	if tw.Duration <= 0 || tw.elapsed >= tw.Duration {
		tw.apply(1)
		tw.done = true
		if obj := tw.GetGameObject(); obj != nil {
			obj.RemoveComponent(tw)
		}
		return
	}
	tw.apply(tw.ease(tw.elapsed / tw.Duration))
}

func (tw *Tween) apply(k float32) {
	obj := tw.GetGameObject()
	if obj == nil {
		return
	}
	value := tw.From.Add(tw.To.Sub(tw.From).Mul(k))
	if k == 1 {
		value = tw.To
	}
	switch tw.Property {
	case PropertyPosition:
		obj.Transform.SetPosition(value)
	case PropertyScale:
		obj.Transform.SetScale(value)
	}
}

func (tw *Tween) Done() bool {
	return tw.done
}

func (tw *Tween) GetTypeName() string {
	return NamePrefix + tw.Name
}

func (tw *Tween) GetComponentType() behaviour.ComponentType {
	return behaviour.ComponentTypeAnimation
}
